package reversi

// directions lists the 8 compass steps in the order flips are collected.
var directions = [8]struct{ dr, dc int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Move is a legal placement together with the discs it flips.
type Move struct {
	At    Coord
	Flips []Coord
}

// MoveSet holds the flip list for every legal cell, indexed by position.
type MoveSet struct {
	flips [Size][Size][]Coord
	count int
}

// Has reports whether a move at the coordinate is legal.
func (m *MoveSet) Has(at Coord) bool {
	if !InBounds(at.Row, at.Col) {
		return false
	}
	return len(m.flips[at.Row][at.Col]) > 0
}

// Flips returns the discs flipped by a move at the coordinate,
// or nil if the move is not legal.
func (m *MoveSet) Flips(at Coord) []Coord {
	if !InBounds(at.Row, at.Col) {
		return nil
	}
	return m.flips[at.Row][at.Col]
}

// Len returns the number of legal moves.
func (m *MoveSet) Len() int {
	return m.count
}

// Empty reports whether there are no legal moves.
func (m *MoveSet) Empty() bool {
	return m.count == 0
}

// Moves returns the legal moves in row-major order.
func (m *MoveSet) Moves() []Move {
	moves := make([]Move, 0, m.count)
	for r := range Size {
		for c := range Size {
			if f := m.flips[r][c]; len(f) > 0 {
				moves = append(moves, Move{At: Coord{Row: r, Col: c}, Flips: f})
			}
		}
	}
	return moves
}

// ComputeFlips returns the opposing discs that a placement by p at (r, c)
// would flip. Lines are walked in the fixed direction order and a line only
// counts when it ends on one of p's own discs. An occupied or off-board
// target yields nil.
func ComputeFlips(b Board, p Player, r, c int) []Coord {
	if !InBounds(r, c) || b[r][c] != Empty {
		return nil
	}

	var flips []Coord
	for _, d := range directions {
		rr, cc := r+d.dr, c+d.dc
		start := len(flips)
		for InBounds(rr, cc) && b[rr][cc] == p.Opponent() {
			flips = append(flips, Coord{Row: rr, Col: cc})
			rr += d.dr
			cc += d.dc
		}
		// Unanchored line: walked off the board or hit an empty cell
		if len(flips) > start && !(InBounds(rr, cc) && b[rr][cc] == p) {
			flips = flips[:start]
		}
	}
	if len(flips) == 0 {
		return nil
	}
	return flips
}

// LegalMoves enumerates every placement available to p.
func LegalMoves(b Board, p Player) MoveSet {
	var set MoveSet
	for r := range Size {
		for c := range Size {
			if f := ComputeFlips(b, p, r, c); len(f) > 0 {
				set.flips[r][c] = f
				set.count++
			}
		}
	}
	return set
}

// HasMove reports whether p has at least one legal move.
func HasMove(b Board, p Player) bool {
	for r := range Size {
		for c := range Size {
			if len(ComputeFlips(b, p, r, c)) > 0 {
				return true
			}
		}
	}
	return false
}

// ApplyMove places p's disc at (r, c) and flips the captured discs in place.
// The move must be legal; an illegal move leaves the board untouched and
// returns false.
func ApplyMove(b *Board, p Player, r, c int) bool {
	flips := ComputeFlips(*b, p, r, c)
	if len(flips) == 0 {
		return false
	}
	b[r][c] = p
	for _, f := range flips {
		b[f.Row][f.Col] = p
	}
	return true
}

// IsGameOver reports whether neither player can move.
func IsGameOver(b Board) bool {
	return !HasMove(b, Black) && !HasMove(b, White)
}
