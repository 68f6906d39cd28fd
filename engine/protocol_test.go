package engine

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/elkasimi/codecup-box/box"
)

func TestRunAnswersOneTurnThenQuits(t *testing.T) {
	// "Start" tells the engine it moves first this turn, so there is
	// no preceding opponent move to apply before dealing the chance
	// tile "654321".
	in := strings.NewReader("1 Hh123456h Start 654321 Quit")
	var out bytes.Buffer

	e := New(in, &out, Config{Seed: 1, TimeRatio: 0.01})
	if err := e.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	scanner := bufio.NewScanner(&out)
	if !scanner.Scan() {
		t.Fatal("expected one move line on stdout")
	}
	line := scanner.Text()
	if len(line) != 3 {
		t.Fatalf("move line = %q, want a 3-byte move like \"Xxo\"", line)
	}
	orientation := box.Orientation(line[2])
	if orientation != box.Vertical && orientation != box.Horizontal {
		t.Fatalf("move line = %q, orientation byte is neither v nor h", line)
	}
}

func TestRunPlaysAFullExchangeBeforeQuitting(t *testing.T) {
	// Turn 1: "Start" (we move first, no opponent move to apply yet)
	// then our dealt tile "654321". Turn 2: the opponent's encoded
	// move "Aa123456v" (dot "Aa" + the tile "123456" it placed with +
	// orientation 'v'), then our next dealt tile "234561". Each dealt
	// tile must be an actual permutation of "123456", not just six
	// digit characters, since it is looked up in TilesPermutations.
	in := strings.NewReader("2 Hh123456h Start 654321 Aa123456v 234561 Quit")
	var out bytes.Buffer

	e := New(in, &out, Config{Seed: 7, TimeRatio: 0.01})
	if err := e.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d move lines, want 2: %q", len(lines), lines)
	}
}

func TestRunReturnsErrorOnEOFMidSetup(t *testing.T) {
	in := strings.NewReader("1")
	var out bytes.Buffer
	e := New(in, &out, Config{})
	if err := e.Run(); err == nil {
		t.Fatal("expected an error when stdin ends before the starting tile")
	}
}
