package reversi

import "math/bits"

// Score 返回（黑棋子数, 白棋子数）。
func (p *Position) Score() (black, white int) {
	return bits.OnesCount64(p.Black), bits.OnesCount64(p.White)
}

// CanPass 判断当前手番是否无子可落（此时双方约定必须 pass）。
func (p *Position) CanPass() bool {
	return p.LegalMoves() == 0
}

// IsGameOver 在双方都无子可落时为真。只有一方无子可落时对局继续，
// 该方必须 pass。判断在副本上进行，p 本身不会被改动。
func (p *Position) IsGameOver() bool {
	if p.LegalMoves() != 0 {
		return false
	}
	opp := *p
	opp.SideToMove = p.SideToMove.Opponent()
	return opp.LegalMoves() == 0
}
