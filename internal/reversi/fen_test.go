package reversi

import (
	"errors"
	"testing"
)

func TestEncodeInitialPosition(t *testing.T) {
	const want = "8/8/8/3xo3/3ox3/8/8/8 b"
	if got := NewInitialPosition().Encode(); got != want {
		t.Fatalf("encode initial: got=%q want=%q", got, want)
	}
}

func TestDecodeInitialPosition(t *testing.T) {
	pos := mustDecode(t, "8/8/8/3xo3/3ox3/8/8/8 b")
	if *pos != *NewInitialPosition() {
		t.Fatalf("decoded initial: got=%+v want=%+v", *pos, *NewInitialPosition())
	}
}

func TestEncodeAfterOpeningMove(t *testing.T) {
	pos := NewInitialPosition()
	next, err := pos.ApplyMove(20) // E3
	if err != nil {
		t.Fatalf("apply E3 failed: %v", err)
	}
	const want = "8/8/4x3/3xx3/3ox3/8/8/8 w"
	if got := next.Encode(); got != want {
		t.Fatalf("encode after E3: got=%q want=%q", got, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	fens := []string{
		"8/8/8/3xo3/3ox3/8/8/8 b",
		"8/8/4x3/3xx3/3ox3/8/8/8 w",
		"xox5/8/8/8/8/8/8/8 b",
		"x7/8/8/8/8/8/8/7o b",
		"xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx w",
	}
	for _, fen := range fens {
		pos := mustDecode(t, fen)
		back, err := DecodePosition(pos.Encode())
		if err != nil {
			t.Fatalf("re-decode %q failed: %v", pos.Encode(), err)
		}
		if *back != *pos {
			t.Fatalf("round trip %q: got=%+v want=%+v", fen, *back, *pos)
		}
		if back.LegalMoves() != pos.LegalMoves() {
			t.Fatalf("round trip %q changed legal moves", fen)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	fens := []string{
		"",
		"8/8/8/3xo3/3ox3/8/8/8",
		"8/8/8/3xo3/3ox3/8/8/8 b w",
		"8/8/8/8 b",
		"8/8/8/3xo3/3ox3/8/8/8/8 b",
		"8/8/8/3xo3/3ox3/8/8/8 r",
		"9/8/8/8/8/8/8/8 b",
		"8/8/8/3xo4/3ox3/8/8/8 b",
		"xx/8/8/8/8/8/8/8 b",
		"8/8/8/3XO3/3ox3/8/8/8 b",
	}
	for _, fen := range fens {
		if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("decode %q error: got=%v want=%v", fen, err, ErrInvalidFEN)
		}
	}
}
