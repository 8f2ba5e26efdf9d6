package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"reversi/internal/reversi"
)

func main() {
	pos := reversi.NewInitialPosition()
	sc := bufio.NewScanner(os.Stdin)

	fmt.Println("=== Reversi (CLI) ===")
	fmt.Println("Enter moves like D3. Enter \"pass\" when you have no legal move.")
	fmt.Println()

	for {
		fmt.Print(pos)
		fmt.Println()
		black, white := pos.Score()
		fmt.Printf("Score: Black %d, White %d\n", black, white)
		fmt.Printf("Turn: %s\n", turnLabel(pos.SideToMove))

		if pos.IsGameOver() {
			fmt.Println()
			fmt.Println("Game over!")
			fmt.Printf("Final score: Black %d, White %d\n", black, white)
			switch {
			case black > white:
				fmt.Println("Winner: Black (●)")
			case white > black:
				fmt.Println("Winner: White (○)")
			default:
				fmt.Println("Draw.")
			}
			return
		}

		if moves := pos.ListLegalMoves(); len(moves) > 0 {
			fmt.Println("Legal moves:", strings.Join(moves, " "))
		} else {
			fmt.Println("No legal moves: pass")
		}

		fmt.Print("Move (e.g. D3 or pass): ")
		if !sc.Scan() {
			fmt.Println()
			return
		}
		input := strings.ToUpper(strings.TrimSpace(sc.Text()))

		if input == "PASS" {
			next, err := pos.ApplyPass()
			if err != nil {
				fmt.Println("You still have a legal move. Cannot pass.")
				fmt.Println()
				continue
			}
			pos = next
			fmt.Println("Passed.")
			fmt.Println()
			continue
		}

		sq, err := reversi.SquareToIndex(input)
		if err != nil {
			fmt.Println("Bad input. Enter a square like D3, or pass.")
			fmt.Println()
			continue
		}
		next, err := pos.ApplyMove(sq)
		if err != nil {
			fmt.Println("That square is not a legal move. Try again.")
			fmt.Println()
			continue
		}
		pos = next
		fmt.Printf("Played %s.\n\n", input)
	}
}

func turnLabel(s reversi.Side) string {
	if s == reversi.Black {
		return "Black (●)"
	}
	return "White (○)"
}
