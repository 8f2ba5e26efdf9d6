package httpserver

import "reversi/internal/reversi"

// NewGame 返回
type NewGameResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"`    // FEN 字符串
	ToMove     int      `json:"to_move"`     // 0=黑(b),1=白(w)
	LegalMoves []string `json:"legal_moves"` // 当前所有可落子格，如 ["E3","F4"]
	Score      ScoreDTO `json:"score"`
	Status     string   `json:"status"`
}

// Play 请求：square 是坐标文本（"E3"），大小写均可
type PlayRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

// Play 返回
type PlayResponse struct {
	Position   string   `json:"position"`
	ToMove     int      `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Score      ScoreDTO `json:"score"`
	Status     string   `json:"status"` // "ongoing" / "black_won" / "white_won" / "draw"
}

// Pass 请求：当前手番无子可落时换边
type PassRequest struct {
	GameID string `json:"game_id"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// State 返回：结构和 PlayResponse 一样
type StateResponse struct {
	Position   string   `json:"position"`
	ToMove     int      `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Score      ScoreDTO `json:"score"`
	Status     string   `json:"status"`
}

// Reset 请求：同一局 id 摆回开局
type ResetRequest struct {
	GameID string `json:"game_id"`
}

type ScoreDTO struct {
	Black int `json:"black"`
	White int `json:"white"`
}

func sideToInt(s reversi.Side) int {
	switch s {
	case reversi.Black:
		return 0
	case reversi.White:
		return 1
	default:
		return -1
	}
}

func scoreOf(p *reversi.Position) ScoreDTO {
	b, w := p.Score()
	return ScoreDTO{Black: b, White: w}
}

// statusOf 给出对局状态。胜负由终局时的子数差决定，引擎本身不关心输赢。
func statusOf(p *reversi.Position) string {
	if !p.IsGameOver() {
		return "ongoing"
	}
	b, w := p.Score()
	switch {
	case b > w:
		return "black_won"
	case w > b:
		return "white_won"
	default:
		return "draw"
	}
}

func playResponseFor(p *reversi.Position) PlayResponse {
	return PlayResponse{
		Position:   p.Encode(),
		ToMove:     sideToInt(p.SideToMove),
		LegalMoves: p.ListLegalMoves(),
		Score:      scoreOf(p),
		Status:     statusOf(p),
	}
}

func stateResponseFor(p *reversi.Position) StateResponse {
	return StateResponse{
		Position:   p.Encode(),
		ToMove:     sideToInt(p.SideToMove),
		LegalMoves: p.ListLegalMoves(),
		Score:      scoreOf(p),
		Status:     statusOf(p),
	}
}
