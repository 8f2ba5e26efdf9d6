package reversi

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		fen          string
		black, white int
	}{
		{"8/8/8/3xo3/3ox3/8/8/8 b", 2, 2},
		{"xox5/8/8/8/8/8/8/8 b", 2, 1},
		{"x7/8/8/8/8/8/8/7o b", 1, 1},
		{"xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx w", 64, 0},
	}
	for _, tt := range tests {
		pos := mustDecode(t, tt.fen)
		b, w := pos.Score()
		if b != tt.black || w != tt.white {
			t.Fatalf("%q score: got=(%d,%d) want=(%d,%d)", tt.fen, b, w, tt.black, tt.white)
		}
	}
}

func TestCanPass(t *testing.T) {
	if NewInitialPosition().CanPass() {
		t.Fatalf("initial position reports can pass")
	}
	pos := mustDecode(t, "xox5/8/8/8/8/8/8/8 b")
	if !pos.CanPass() {
		t.Fatalf("blocked side does not report can pass")
	}
}

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		fen  string
		over bool
	}{
		{"8/8/8/3xo3/3ox3/8/8/8 b", false},
		// 黑无棋可走，白在 D1 仍有合法手：未终局。
		{"xox5/8/8/8/8/8/8/8 b", false},
		{"x7/8/8/8/8/8/8/7o b", true},
		{"xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx w", true},
	}
	for _, tt := range tests {
		pos := mustDecode(t, tt.fen)
		before := *pos
		if got := pos.IsGameOver(); got != tt.over {
			t.Fatalf("%q game over: got=%v want=%v", tt.fen, got, tt.over)
		}
		if *pos != before {
			t.Fatalf("IsGameOver mutated the position: got=%+v want=%+v", *pos, before)
		}
	}
}

func TestSquareAt(t *testing.T) {
	pos := NewInitialPosition()
	tests := []struct {
		sq   int
		want Side
	}{
		{27, Black},  // D4
		{36, Black},  // E5
		{28, White},  // E4
		{35, White},  // D5
		{0, NoSide},  // A1
		{-1, NoSide},
		{64, NoSide},
	}
	for _, tt := range tests {
		if got := pos.SquareAt(tt.sq); got != tt.want {
			t.Fatalf("SquareAt(%d): got=%v want=%v", tt.sq, got, tt.want)
		}
	}
}
