package reversi

import (
	"strings"
	"testing"
)

func mustDecode(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode %q failed: %v", fen, err)
	}
	return pos
}

func TestInitialLegalMoves(t *testing.T) {
	pos := NewInitialPosition()

	want := uint64(1)<<20 | 1<<29 | 1<<34 | 1<<43 // E3, F4, C5, D6
	if got := pos.LegalMoves(); got != want {
		t.Fatalf("initial legal moves: got=%064b want=%064b", got, want)
	}

	moves := pos.ListLegalMoves()
	if got := strings.Join(moves, " "); got != "E3 F4 C5 D6" {
		t.Fatalf("initial legal move list: got=%q want=%q", got, "E3 F4 C5 D6")
	}
}

func TestLegalMovesDoNotWrapAcrossRanks(t *testing.T) {
	// 黑 H3、白 A4：两子在棋盘上并不相邻（只是位索引相差 1），
	// 向东扫描绝不能把 B4 当成合法手。西向同理（黑 A6、白 H5 → G5）。
	tests := []struct {
		name string
		fen  string
	}{
		{"east off H file", "8/8/7x/o7/8/8/8/8 b"},
		{"west off A file", "8/8/8/8/7o/x7/8/8 b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			if got := pos.LegalMoves(); got != 0 {
				t.Fatalf("legal moves: got=%064b want=0", got)
			}
		})
	}
}

func TestLegalMovesEmptyWhenNoFlank(t *testing.T) {
	// 当前手番无子可落，但对手（白）在 D1 有合法手。
	pos := mustDecode(t, "xox5/8/8/8/8/8/8/8 b")
	if got := pos.LegalMoves(); got != 0 {
		t.Fatalf("black legal moves: got=%064b want=0", got)
	}

	flipped := *pos
	flipped.SideToMove = White
	if want := uint64(1) << 3; flipped.LegalMoves() != want { // D1
		t.Fatalf("white legal moves: got=%064b want=%064b", flipped.LegalMoves(), want)
	}
}

func TestLegalMovesFullBoard(t *testing.T) {
	pos := &Position{Black: ^uint64(0), SideToMove: White}
	if got := pos.LegalMoves(); got != 0 {
		t.Fatalf("full board legal moves: got=%064b want=0", got)
	}
}

func TestLegalMovesPure(t *testing.T) {
	pos := NewInitialPosition()
	before := *pos
	pos.LegalMoves()
	pos.ListLegalMoves()
	if *pos != before {
		t.Fatalf("LegalMoves mutated the position: got=%+v want=%+v", *pos, before)
	}
}
