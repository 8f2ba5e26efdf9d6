package reversi

import "math/bits"

// LegalMoves 返回当前手番所有合法落点的位板。
//
// 对 8 个方向各做一次“夹子”扫描：
//  1. 种子 = 紧贴在己方棋子该方向一侧的对手棋子；
//  2. 候选集沿方向推进，只要还踩在连续的对手棋子串上就继续；
//  3. 每推进一步，串的下一格若是空位，该空位即为合法落点。
//
// 纯函数，不修改 p。
func (p *Position) LegalMoves() uint64 {
	player, opponent := p.playerBoards()
	empty := ^(player | opponent)

	var legal uint64
	for _, d := range directions {
		cand := opponent & d.shift(player)
		for cand != 0 {
			next := d.shift(cand)
			legal |= empty & next
			cand = opponent & next
		}
	}
	return legal
}

// ListLegalMoves 把合法落点按索引升序转成坐标文本，例如 ["E3","F4","C5","D6"]。
func (p *Position) ListLegalMoves() []string {
	legal := p.LegalMoves()
	moves := make([]string, 0, bits.OnesCount64(legal))
	for bb := legal; bb != 0; bb &= bb - 1 {
		moves = append(moves, IndexToSquare(bits.TrailingZeros64(bb)))
	}
	return moves
}

// flipRun 从 moveBit 出发沿方向 d 收集连续的对手棋子串。
// 串的尽头若是己方棋子则整串可翻转；尽头是空位或棋盘边缘则一子不翻。
func (d direction) flipRun(moveBit, player, opponent uint64) uint64 {
	var run uint64
	cur := opponent & d.shift(moveBit)
	for cur != 0 {
		run |= cur
		next := d.shift(cur)
		if next&player != 0 {
			return run
		}
		cur = opponent & next
	}
	return 0
}
