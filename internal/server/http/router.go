package httpserver

import (
	"net/http"

	"reversi/internal/server/game"
)

// NewMux 把两套路由装到同一个 ServeMux 上：
// /api/* 走 JSON Handler，其余路径（页面、/board.svg）走 UI。
// cmd 与 mobile 都从这里拿整套服务。
func NewMux(games *game.Manager) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(games))
	mux.Handle("/", NewUI(games))
	return mux
}
