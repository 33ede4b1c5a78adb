package reversi

import (
	"errors"
	"testing"
)

func TestPositionalWeights(t *testing.T) {
	tests := []struct {
		at   Coord
		want int
	}{
		{Coord{0, 0}, 80},
		{Coord{5, 5}, 80},
		{Coord{0, 1}, -15},
		{Coord{1, 1}, -25},
		{Coord{2, 2}, 6},
		{Coord{2, 0}, 10},
		{Coord{1, 2}, 2},
		{Coord{-1, 0}, 0},
	}
	for _, tt := range tests {
		if got := PositionalWeight(tt.at); got != tt.want {
			t.Errorf("PositionalWeight(%v) = %d, want %d", tt.at, got, tt.want)
		}
	}

	// The table is symmetric under both mirrors
	for r := range Size {
		for c := range Size {
			w := positionalWeights[r][c]
			if positionalWeights[Size-1-r][c] != w || positionalWeights[r][Size-1-c] != w {
				t.Fatalf("weights not symmetric at (%d,%d)", r, c)
			}
		}
	}
}

func TestScoreMove(t *testing.T) {
	m := Move{At: Coord{1, 4}, Flips: []Coord{{2, 3}}}
	if got := ScoreMove(m); got != -23.5 {
		t.Errorf("ScoreMove() = %v, want -23.5", got)
	}
}

func TestChooseOpponentMoveAfterOpening(t *testing.T) {
	b := NewBoard()
	ApplyMove(&b, Black, 1, 3)

	// (1,2) and (3,4) both score 2+1.5; (1,4) scores -25+1.5.
	set := LegalMoves(b, White)
	if set.Len() != 3 {
		t.Fatalf("White has %d moves, want 3: %v", set.Len(), set.Moves())
	}
	for _, at := range []Coord{{1, 2}, {1, 4}, {3, 4}} {
		if !set.Has(at) {
			t.Errorf("White should be able to play %v", at)
		}
	}

	m, ok := ChooseOpponentMove(b)
	if !ok {
		t.Fatal("ChooseOpponentMove() found no move")
	}
	if m.At != (Coord{1, 2}) {
		t.Errorf("ChooseOpponentMove() = %v, want (1,2) by row-major tie-break", m.At)
	}
	if ScoreMove(m) != 3.5 {
		t.Errorf("chosen move scores %v, want 3.5", ScoreMove(m))
	}
}

func TestChooseOpponentMovePrefersCorner(t *testing.T) {
	b := boardFrom(t,
		"......",
		".B....",
		"..W...",
		"......",
		"...BW.",
		"......",
	)
	// (0,0) takes the corner; (4,2) also flips one disc but weighs 2.
	m, ok := ChooseOpponentMove(b)
	if !ok || m.At != (Coord{0, 0}) {
		t.Errorf("ChooseOpponentMove() = %v, %v; want corner (0,0)", m.At, ok)
	}
}

func TestChooseOpponentMoveNone(t *testing.T) {
	b := boardFrom(t,
		"BBB...",
		"......",
		"......",
		"BW....",
		"......",
		"......",
	)
	if _, ok := ChooseOpponentMove(b); ok {
		t.Error("White has no legal move here")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"", ModeFriend, false},
		{"friend", ModeFriend, false},
		{"CPU", ModeCPU, false},
		{" cpu ", ModeCPU, false},
		{"online", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.err {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if ModeFriend.Toggle() != ModeCPU || ModeCPU.Toggle() != ModeFriend {
		t.Error("Toggle() should swap modes")
	}
}
