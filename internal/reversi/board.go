package reversi

const (
	Files      = 8
	Ranks      = 8
	NumSquares = Files * Ranks
)

// ------------------------------------------------------------
// 列掩码：沿水平/斜向移位时用来防止棋子从 H 列“绕”到下一行的 A 列
// （或反方向从 A 列绕到上一行的 H 列）。
// ------------------------------------------------------------
const (
	maskFileA uint64 = 0x0101010101010101 // A 列（位 0,8,...,56）
	maskFileH uint64 = 0x8080808080808080 // H 列（位 7,15,...,63）
)

// direction 描述 8 个扫描方向之一：位移量（正=左移，负=右移）
// 加上移位前要清掉的列，保证任何一次 shift 都不会跨行回绕。
type direction struct {
	delta int
	wrap  uint64
}

// 东/西/北/南/东北/西北/东南/西南。
// 南北方向纯粹整行平移，不需要列保护；出界的位由 64 位移位自然丢弃。
var directions = [8]direction{
	{+1, maskFileH}, // 东
	{-1, maskFileA}, // 西
	{+8, 0},         // 北
	{-8, 0},         // 南
	{+9, maskFileH}, // 东北
	{+7, maskFileA}, // 西北
	{-7, maskFileH}, // 东南
	{-9, maskFileA}, // 西南
}

// shift 将位板整体沿方向 d 平移一格。会回绕的位先被 wrap 掩码清掉。
func (d direction) shift(b uint64) uint64 {
	b &^= d.wrap
	if d.delta > 0 {
		return b << uint(d.delta)
	}
	return b >> uint(-d.delta)
}

func indexOf(file, rank int) int { return rank*Files + file }
func fileOf(sq int) int          { return sq % Files }
func rankOf(sq int) int          { return sq / Files }

// NewInitialPosition 摆出标准开局：黑 D4/E5，白 D5/E4，黑先。
func NewInitialPosition() *Position {
	return &Position{
		Black:      1<<27 | 1<<36, // D4, E5
		White:      1<<35 | 1<<28, // D5, E4
		SideToMove: Black,
	}
}

// playerBoards 返回（当前手番的位板, 对手的位板）。
func (p *Position) playerBoards() (player, opponent uint64) {
	if p.SideToMove == Black {
		return p.Black, p.White
	}
	return p.White, p.Black
}

// SquareAt 返回 sq（0~63）上的棋子颜色，空位返回 NoSide。
func (p *Position) SquareAt(sq int) Side {
	if sq < 0 || sq >= NumSquares {
		return NoSide
	}
	bit := uint64(1) << uint(sq)
	switch {
	case p.Black&bit != 0:
		return Black
	case p.White&bit != 0:
		return White
	}
	return NoSide
}
