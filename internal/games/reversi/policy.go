package reversi

// positionalWeights scores each cell for the CPU. Corners are stable and
// cannot be flipped back; X-squares (-25) and C-squares (-15) hand the
// corner to the opponent.
var positionalWeights = [Size][Size]int{
	{80, -15, 10, 10, -15, 80},
	{-15, -25, 2, 2, -25, -15},
	{10, 2, 6, 6, 2, 10},
	{10, 2, 6, 6, 2, 10},
	{-15, -25, 2, 2, -25, -15},
	{80, -15, 10, 10, -15, 80},
}

// flipBonus is added per flipped disc.
const flipBonus = 1.5

// OpponentSide is the side the CPU always plays.
const OpponentSide = White

// PositionalWeight returns the static weight of a cell.
func PositionalWeight(at Coord) int {
	if !InBounds(at.Row, at.Col) {
		return 0
	}
	return positionalWeights[at.Row][at.Col]
}

// ScoreMove returns the single-ply evaluation of a move.
func ScoreMove(m Move) float64 {
	return float64(PositionalWeight(m.At)) + float64(len(m.Flips))*flipBonus
}

// ChooseOpponentMove picks White's move on b: the highest scoring legal
// move, with ties going to the first one in row-major order.
// Returns false when White has no legal move.
func ChooseOpponentMove(b Board) (Move, bool) {
	set := LegalMoves(b, OpponentSide)
	var (
		best      Move
		bestScore float64
		found     bool
	)
	for _, m := range set.Moves() {
		score := ScoreMove(m)
		if !found || score > bestScore {
			best, bestScore, found = m, score, true
		}
	}
	return best, found
}
