package main

import (
	"fmt"

	"reversi/internal/reversi"
)

func main() {
	pos := reversi.NewInitialPosition()
	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Legal moves:", pos.ListLegalMoves())
	fmt.Print(pos)
}
