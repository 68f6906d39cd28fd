package box

import "testing"

func TestShowDotParseDotRoundTrip(t *testing.T) {
	for _, dot := range []int{0, 1, Cols - 1, Cols, TotalDots - 1, ParseDot("Hh")} {
		s := ShowDot(dot)
		if got := ParseDot(s); got != dot {
			t.Fatalf("ParseDot(ShowDot(%d)=%q) = %d, want %d", dot, s, got, dot)
		}
	}
}

func TestParseDotKnownCoordinates(t *testing.T) {
	cases := map[string]int{
		"Aa": 0,
		"Ab": 1,
		"Ba": Cols,
		"Hh": 7*Cols + 7,
	}
	for s, want := range cases {
		if got := ParseDot(s); got != want {
			t.Errorf("ParseDot(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestPlayerMoveShowAndCode(t *testing.T) {
	m := PlayerMove{Dot: ParseDot("Hh"), Orientation: Vertical}
	if got, want := m.Show(), "Hhv"; got != want {
		t.Errorf("Show() = %q, want %q", got, want)
	}
	if got, want := m.Code(), 2*m.Dot+1; got != want {
		t.Errorf("Code() = %d, want %d", got, want)
	}
	m.Orientation = Horizontal
	if got, want := m.Code(), 2*m.Dot; got != want {
		t.Errorf("Code() = %d, want %d", got, want)
	}
}

func TestParseMoves(t *testing.T) {
	chance, move, err := ParseMoves("Hh123456h")
	if err != nil {
		t.Fatalf("ParseMoves returned error: %v", err)
	}
	if chance != "123456" {
		t.Errorf("chance move = %q, want 123456", chance)
	}
	if move.Dot != ParseDot("Hh") || move.Orientation != Horizontal {
		t.Errorf("move = %+v, want dot=Hh orientation=h", move)
	}
}

func TestParseMovesRejectsBadLength(t *testing.T) {
	if _, _, err := ParseMoves("short"); err == nil {
		t.Fatal("expected an error for a malformed move string")
	}
}
