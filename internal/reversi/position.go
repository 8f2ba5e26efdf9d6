package reversi

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrIllegalPass = errors.New("illegal pass")
)

// ApplyMove 在 sq（0~63）落子并翻转所有被夹住的对手棋子，
// 返回新局面，原局面保持不变。落点不在合法集内时返回 ErrIllegalMove。
func (p *Position) ApplyMove(sq int) (*Position, error) {
	if sq < 0 || sq >= NumSquares {
		return nil, ErrIllegalMove
	}
	moveBit := uint64(1) << uint(sq)
	if p.LegalMoves()&moveBit == 0 {
		return nil, ErrIllegalMove
	}

	player, opponent := p.playerBoards()
	var flips uint64
	for _, d := range directions {
		flips |= d.flipRun(moveBit, player, opponent)
	}

	np := *p
	if p.SideToMove == Black {
		np.Black ^= flips | moveBit
		np.White ^= flips
	} else {
		np.White ^= flips | moveBit
		np.Black ^= flips
	}
	np.SideToMove = p.SideToMove.Opponent()
	return &np, nil
}

// ApplyPass 交换手番，棋盘不动。只有在当前手番无子可落时才允许，
// 否则返回 ErrIllegalPass。
func (p *Position) ApplyPass() (*Position, error) {
	if p.LegalMoves() != 0 {
		return nil, ErrIllegalPass
	}
	np := *p
	np.SideToMove = p.SideToMove.Opponent()
	return &np, nil
}
