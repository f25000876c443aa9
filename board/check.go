package board

// AttackedSquares returns the union of pseudo-legal destinations over every
// piece of the given color, computed without the king-safety filter. This is
// the attack set check testing runs against.
func (b *Board) AttackedSquares(color Color) []Coord {
	var attacked []Coord
	for coord := range b.pieces[color] {
		for _, c := range b.RawMoves(coord) {
			if !containsCoord(attacked, c) {
				attacked = append(attacked, c)
			}
		}
	}
	return attacked
}

// InCheck reports whether the given color's king is attacked. A board with
// no king of that color is never in check.
func (b *Board) InCheck(color Color) bool {
	king, ok := b.KingCoord(color)
	if !ok {
		return false
	}
	for coord := range b.pieces[color.Other()] {
		if containsCoord(b.RawMoves(coord), king) {
			return true
		}
	}
	return false
}

// filterCheckMoves keeps only the candidates whose resulting position does
// not leave the mover's color in check. Each candidate is simulated on a
// scratch clone and reverted before the next one; the clone never escapes
// this call.
func (b *Board) filterCheckMoves(from Coord, candidates []Coord) []Coord {
	if len(candidates) == 0 {
		return nil
	}

	scratch := b.Clone()
	mover := b.grid[from.Row][from.Col]

	result := make([]Coord, 0, len(candidates))
	for _, to := range candidates {
		captured := scratch.ApplyMove(from, to)
		if !scratch.InCheck(mover.Color) {
			result = append(result, to)
		}
		scratch.ApplyMove(to, from)
		if captured.Kind != Empty {
			scratch.PlacePiece(captured, to.Row, to.Col)
		}
	}
	return result
}

// InCheckmate reports whether the given color has a king and no legal move
// with any of its pieces. It does not verify that the king is currently
// attacked, so a stalemated side is also reported as checkmated; callers
// that need the distinction must test InCheck themselves.
func (b *Board) InCheckmate(color Color) bool {
	if _, ok := b.KingCoord(color); !ok {
		return false
	}
	for coord := range b.pieces[color] {
		if len(b.Moves(coord)) > 0 {
			return false
		}
	}
	return true
}
