package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"reversi/internal/reversi"
	"reversi/internal/server/game"
)

// Handler 实现 http.Handler，负责 /api/* 路由。
// 所有对局状态都存在 Manager 里，引擎保持纯值语义。
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/play":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlay(w, r)

	case "/api/pass":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePass(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/reset":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleReset(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()

	resp := NewGameResponse{
		GameID:     g.ID,
		Position:   g.Pos.Encode(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: g.Pos.ListLegalMoves(),
		Score:      scoreOf(g.Pos),
		Status:     statusOf(g.Pos),
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	sq, err := reversi.SquareToIndex(req.Square)
	if err != nil {
		http.Error(w, "invalid square", http.StatusBadRequest)
		return
	}

	g, err := h.games.Apply(req.GameID, func(p *reversi.Position) (*reversi.Position, error) {
		return p.ApplyMove(sq)
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, playResponseFor(g.Pos))
}

func (h *Handler) handlePass(w http.ResponseWriter, r *http.Request) {
	var req PassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Apply(req.GameID, func(p *reversi.Position) (*reversi.Position, error) {
		return p.ApplyPass()
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, playResponseFor(g.Pos))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, stateResponseFor(g.Pos))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Reset(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, stateResponseFor(g.Pos))
}

// writeGameError 把领域错误翻译成 HTTP 状态码：
// 未知对局 404，规则类错误 400，其余 500。
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, reversi.ErrIllegalMove):
		http.Error(w, "illegal move", http.StatusBadRequest)
	case errors.Is(err, reversi.ErrIllegalPass):
		http.Error(w, "illegal pass", http.StatusBadRequest)
	default:
		log.Println("game error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
