package board

import "fmt"

// Board holds a complete position: the grid, the side to move, castling
// rights, the en-passant marker, the move counters, and two color-indexed
// maps from occupied coordinate to piece. The maps are a secondary index
// over the grid kept for fast iteration over one side's pieces; every
// mutation flows through setCell so grid and maps never diverge.
//
// Castling flags and the counters are carried state only: no move changes
// them.
type Board struct {
	grid [8][8]Piece

	// Turn is the side to move.
	Turn Color

	WhiteKingsideCastle  bool
	WhiteQueensideCastle bool
	BlackKingsideCastle  bool
	BlackQueensideCastle bool

	// EnPassant is the destination of the most recent pawn double push,
	// or NoCoord. It is overwritten on every double push and never
	// cleared by any other move.
	EnPassant Coord

	HalfmoveClock  int
	FullmoveNumber int

	pieces [2]map[Coord]Piece
}

// New returns an empty board: White to move, all four castling rights set,
// no en-passant marker, halfmove 0, fullmove 1.
func New() *Board {
	b := &Board{
		WhiteKingsideCastle:  true,
		WhiteQueensideCastle: true,
		BlackKingsideCastle:  true,
		BlackQueensideCastle: true,
		EnPassant:            NoCoord,
		FullmoveNumber:       1,
	}
	b.pieces[White] = make(map[Coord]Piece)
	b.pieces[Black] = make(map[Coord]Piece)
	return b
}

// Default returns the standard starting position.
func Default() *Board {
	b := New()
	b.LoadFEN(StartFEN)
	// LoadFEN does not ingest the castling field and Clear zeroes the
	// flags; the starting position has all four rights.
	b.WhiteKingsideCastle = true
	b.WhiteQueensideCastle = true
	b.BlackKingsideCastle = true
	b.BlackQueensideCastle = true
	return b
}

// Clear resets the board to all-Empty. Unlike New, every castling flag is
// cleared; the FEN loader relies on that, since it calls Clear before
// placing pieces and never ingests the castling field.
func (b *Board) Clear() {
	*b = Board{
		EnPassant:      NoCoord,
		FullmoveNumber: 1,
	}
	b.pieces[White] = make(map[Coord]Piece)
	b.pieces[Black] = make(map[Coord]Piece)
}

// Clone returns a deep copy of the board. The copy shares nothing with the
// original.
func (b *Board) Clone() *Board {
	clone := *b
	for _, c := range [2]Color{White, Black} {
		clone.pieces[c] = make(map[Coord]Piece, len(b.pieces[c]))
		for coord, p := range b.pieces[c] {
			clone.pieces[c][coord] = p
		}
	}
	return &clone
}

// At returns the occupant of the square.
func (b *Board) At(c Coord) Piece {
	return b.grid[c.Row][c.Col]
}

// setCell writes the grid cell and keeps both index maps in step: the
// previous occupant's entry is removed, and the new piece is inserted into
// its color's map. Empty never enters a map.
func (b *Board) setCell(c Coord, p Piece) {
	if prev := b.grid[c.Row][c.Col]; prev.Kind != Empty {
		delete(b.pieces[prev.Color], c)
	}
	b.grid[c.Row][c.Col] = p
	if p.Kind != Empty {
		b.pieces[p.Color][c] = p
	}
}

// PlacePiece puts a piece on the square at (row, col). Coordinates outside
// 0..7 are a caller error and panic. Placing EmptyPiece vacates the square.
func (b *Board) PlacePiece(p Piece, row, col int) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		panic(fmt.Sprintf("board: invalid coordinates %d %d", row, col))
	}
	b.setCell(Coord{row, col}, p)
}

// ApplyMove relocates the occupant of from to to, mechanically and without
// any legality check. The captured occupant of to is returned (EmptyPiece
// when the destination was vacant). A pawn moving two rows sets the
// en-passant marker to the destination. The turn is toggled. Castling
// flags, promotion and the move counters are untouched.
func (b *Board) ApplyMove(from, to Coord) Piece {
	mover := b.grid[from.Row][from.Col]
	captured := b.grid[to.Row][to.Col]

	b.setCell(from, EmptyPiece)
	b.setCell(to, mover)

	if mover.Kind == Pawn && abs(to.Row-from.Row) == 2 {
		b.EnPassant = to
	}

	b.Turn = b.Turn.Other()
	return captured
}

// KingCoord locates the king of the given color. The second return is
// false when the board holds no such king.
func (b *Board) KingCoord(color Color) (Coord, bool) {
	for coord, p := range b.pieces[color] {
		if p.Kind == King {
			return coord, true
		}
	}
	return NoCoord, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
