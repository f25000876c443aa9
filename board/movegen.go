package board

// Ray directions and jump offsets, expressed as (row, col) deltas.
var (
	rookDirections   = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [4]Coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8]Coord{
		{-2, -1}, {-2, 1},
		{-1, -2}, {-1, 2},
		{1, -2}, {1, 2},
		{2, -1}, {2, 1},
	}
	kingOffsets = [8]Coord{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Moves returns the legal destinations for the occupant of from: the
// pseudo-legal destinations with every move that would leave the mover's
// own king attacked filtered out. An Empty square yields no moves.
func (b *Board) Moves(from Coord) []Coord {
	return b.filterCheckMoves(from, b.RawMoves(from))
}

// RawMoves returns the pseudo-legal destinations for the occupant of from,
// without the king-safety filter. Check detection uses this entry point so
// that check testing and move generation stay acyclic.
func (b *Board) RawMoves(from Coord) []Coord {
	piece := b.grid[from.Row][from.Col]

	var raw []Coord
	switch piece.Kind {
	case King:
		// Castling destinations are never generated.
		for _, d := range kingOffsets {
			raw = append(raw, Coord{from.Row + d.Row, from.Col + d.Col})
		}
	case Queen:
		raw = b.slidingMoves(from, piece.Color, rookDirections[:])
		raw = append(raw, b.slidingMoves(from, piece.Color, bishopDirections[:])...)
	case Rook:
		raw = b.slidingMoves(from, piece.Color, rookDirections[:])
	case Bishop:
		raw = b.slidingMoves(from, piece.Color, bishopDirections[:])
	case Knight:
		for _, d := range knightOffsets {
			raw = append(raw, Coord{from.Row + d.Row, from.Col + d.Col})
		}
	case Pawn:
		raw = b.pawnMoves(from, piece)
	case Empty:
	}

	// Shared post-processing for every kind: drop off-board coordinates,
	// drop friendly-occupied destinations, drop duplicates.
	moves := make([]Coord, 0, len(raw))
	for _, c := range raw {
		if !c.InBounds() {
			continue
		}
		if occ := b.grid[c.Row][c.Col]; occ.Kind != Empty && occ.Color == piece.Color {
			continue
		}
		if containsCoord(moves, c) {
			continue
		}
		moves = append(moves, c)
	}
	return moves
}

// slidingMoves casts rays from from in the given directions. A ray extends
// over Empty squares and stops at the first occupant; the occupied square
// itself is kept only when it holds an enemy piece.
func (b *Board) slidingMoves(from Coord, color Color, directions []Coord) []Coord {
	var result []Coord
	for _, d := range directions {
		for step := 1; step < 8; step++ {
			c := Coord{from.Row + d.Row*step, from.Col + d.Col*step}
			if !c.InBounds() {
				break
			}
			occ := b.grid[c.Row][c.Col]
			if occ.Kind != Empty {
				if occ.Color != color {
					result = append(result, c)
				}
				break
			}
			result = append(result, c)
		}
	}
	return result
}

// pawnMoves generates pawn destinations: single push onto an Empty square,
// double push from the home row when both squares ahead are Empty, diagonal
// captures, and the en-passant destination when the marker sits directly
// beside the pawn and holds an enemy pawn.
//
// The en-passant move only produces the diagonal destination; removing the
// captured pawn is not implemented in ApplyMove.
func (b *Board) pawnMoves(from Coord, pawn Piece) []Coord {
	dir, home := -1, 6
	if pawn.Color == Black {
		dir, home = 1, 1
	}
	ahead := from.Row + dir

	var result []Coord

	if from.Row == home && b.grid[ahead][from.Col].Kind == Empty {
		result = append(result, Coord{ahead, from.Col})
		if b.grid[ahead+dir][from.Col].Kind == Empty {
			result = append(result, Coord{ahead + dir, from.Col})
		}
	}

	if ahead >= 0 && ahead < 8 && b.grid[ahead][from.Col].Kind == Empty {
		result = append(result, Coord{ahead, from.Col})
	}

	for _, dc := range [2]int{-1, 1} {
		c := Coord{ahead, from.Col + dc}
		if !c.InBounds() {
			continue
		}
		if occ := b.grid[c.Row][c.Col]; occ.Kind != Empty && occ.Color != pawn.Color {
			result = append(result, c)
		}
	}

	if b.EnPassant != NoCoord {
		for _, dc := range [2]int{-1, 1} {
			side := Coord{from.Row, from.Col + dc}
			if !side.InBounds() || side != b.EnPassant {
				continue
			}
			if occ := b.grid[side.Row][side.Col]; occ.Kind == Pawn && occ.Color != pawn.Color {
				result = append(result, Coord{ahead, side.Col})
			}
		}
	}

	return result
}

func containsCoord(coords []Coord, c Coord) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}
