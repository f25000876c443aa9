// Package board implements a chess position: an 8x8 grid of pieces with
// per-color coordinate indexes, FEN load/save, legal move generation and
// check detection.
//
// The rules are deliberately restricted: castling rights are tracked but no
// castling move is ever generated or executed, pawns never promote, the
// en-passant capture does not remove the captured pawn, and the halfmove and
// fullmove counters are serialized but never advanced.
package board

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceKind is the kind of occupant of a square. Empty is a sentinel
// occupant, not an absence: every square always holds a Piece.
type PieceKind uint8

const (
	Empty PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the kind name.
func (k PieceKind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "Empty"
	}
}

// Piece is a square occupant. The Color of an Empty piece carries no
// meaning.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// EmptyPiece is the occupant of a vacant square.
var EmptyPiece = Piece{}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, space for Empty.
func (p Piece) Letter() byte {
	letters := [...]byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	b := letters[p.Kind]
	if p.Color == Black && p.Kind != Empty {
		b += 'a' - 'A'
	}
	return b
}

// String returns the FEN letter, or "." for Empty.
func (p Piece) String() string {
	if p.Kind == Empty {
		return "."
	}
	return string(p.Letter())
}

// PieceFromLetter converts a FEN letter to a Piece. The second return is
// false when the rune is not one of the twelve recognized letters.
func PieceFromLetter(r rune) (Piece, bool) {
	color := White
	if r >= 'a' && r <= 'z' {
		color = Black
		r -= 'a' - 'A'
	}
	var kind PieceKind
	switch r {
	case 'K':
		kind = King
	case 'Q':
		kind = Queen
	case 'R':
		kind = Rook
	case 'B':
		kind = Bishop
	case 'N':
		kind = Knight
	case 'P':
		kind = Pawn
	default:
		return EmptyPiece, false
	}
	return Piece{Kind: kind, Color: color}, true
}
