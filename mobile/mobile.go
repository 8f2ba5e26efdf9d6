package mobile

import (
	"log"
	"net/http"

	"reversi/internal/server/game"
	httpserver "reversi/internal/server/http"
)

// StartServer starts the local HTTP server.
// port: port to listen on, e.g. "2888"
func StartServer(port string) {
	mux := httpserver.NewMux(game.NewManager())

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
