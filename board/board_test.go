package board

import (
	"testing"

	"github.com/bgdnrvsky/chyes/internal/testutil"
)

// sq converts algebraic notation to a Coord, for readable test setups.
func sq(s string) Coord {
	c, ok := ParseCoord(s)
	if !ok {
		panic("bad square in test: " + s)
	}
	return c
}

func TestNewDefaults(t *testing.T) {
	b := New()

	if b.Turn != White {
		t.Errorf("Turn = %v, want White", b.Turn)
	}
	if !b.WhiteKingsideCastle || !b.WhiteQueensideCastle || !b.BlackKingsideCastle || !b.BlackQueensideCastle {
		t.Error("New board must start with all castling rights")
	}
	if b.EnPassant != NoCoord {
		t.Errorf("EnPassant = %v, want NoCoord", b.EnPassant)
	}
	if b.HalfmoveClock != 0 || b.FullmoveNumber != 1 {
		t.Errorf("counters = %d %d, want 0 1", b.HalfmoveClock, b.FullmoveNumber)
	}
}

func TestClearDropsCastlingRights(t *testing.T) {
	// Clear and New deliberately disagree on castling defaults: the FEN
	// loader calls Clear and never ingests the castling field.
	b := Default()
	b.Clear()

	if b.WhiteKingsideCastle || b.WhiteQueensideCastle || b.BlackKingsideCastle || b.BlackQueensideCastle {
		t.Error("Clear must drop all castling rights")
	}
	if b.Turn != White {
		t.Errorf("Turn = %v, want White", b.Turn)
	}
	if len(b.pieces[White]) != 0 || len(b.pieces[Black]) != 0 {
		t.Error("Clear must empty both piece indexes")
	}
}

func TestPlacePieceOutOfRangePanics(t *testing.T) {
	b := New()
	for _, rc := range [][2]int{{8, 0}, {0, 8}, {-1, 0}, {0, -1}} {
		rc := rc
		testutil.AssertPanics(t, func() {
			b.PlacePiece(Piece{Kind: Rook, Color: White}, rc[0], rc[1])
		})
	}
}

func TestPlacePieceUpdatesIndex(t *testing.T) {
	b := New()
	b.PlacePiece(Piece{Kind: Rook, Color: White}, 3, 3)

	if got := b.pieces[White][Coord{3, 3}]; got.Kind != Rook {
		t.Errorf("white index at d5 = %v, want rook", got)
	}

	// Overwriting with the other color must not leave a stale entry.
	b.PlacePiece(Piece{Kind: Knight, Color: Black}, 3, 3)
	if _, ok := b.pieces[White][Coord{3, 3}]; ok {
		t.Error("stale white index entry after black overwrite")
	}
	if got := b.pieces[Black][Coord{3, 3}]; got.Kind != Knight {
		t.Errorf("black index at d5 = %v, want knight", got)
	}

	// Placing EmptyPiece vacates the square and the index.
	b.PlacePiece(EmptyPiece, 3, 3)
	if b.At(Coord{3, 3}).Kind != Empty {
		t.Error("square not vacated")
	}
	if len(b.pieces[Black]) != 0 {
		t.Error("index entry survived EmptyPiece placement")
	}
}

func TestApplyMoveQuiet(t *testing.T) {
	b := Default()

	captured := b.ApplyMove(sq("e2"), sq("e4"))
	if captured.Kind != Empty {
		t.Errorf("captured = %v, want empty", captured)
	}
	if b.At(sq("e2")).Kind != Empty {
		t.Error("origin square not cleared")
	}
	if got := b.At(sq("e4")); got.Kind != Pawn || got.Color != White {
		t.Errorf("destination = %v, want white pawn", got)
	}
	if b.Turn != Black {
		t.Errorf("Turn = %v, want Black", b.Turn)
	}
	if b.EnPassant != sq("e4") {
		t.Errorf("EnPassant = %v, want e4 after a double push", b.EnPassant)
	}
}

func TestApplyMoveCapture(t *testing.T) {
	b := New()
	b.Clear()
	b.PlacePiece(Piece{Kind: Rook, Color: White}, sq("d4").Row, sq("d4").Col)
	b.PlacePiece(Piece{Kind: Pawn, Color: Black}, sq("d7").Row, sq("d7").Col)

	captured := b.ApplyMove(sq("d4"), sq("d7"))
	if captured.Kind != Pawn || captured.Color != Black {
		t.Errorf("captured = %v, want black pawn", captured)
	}
	if _, ok := b.pieces[Black][sq("d7")]; ok {
		t.Error("captured piece still present in black index")
	}
	if got := b.pieces[White][sq("d7")]; got.Kind != Rook {
		t.Errorf("white index at d7 = %v, want rook", got)
	}
	if _, ok := b.pieces[White][sq("d4")]; ok {
		t.Error("mover still present in white index at origin")
	}
}

func TestApplyMoveRevertRestoresState(t *testing.T) {
	b := New()
	b.Clear()
	b.PlacePiece(Piece{Kind: Rook, Color: White}, sq("d4").Row, sq("d4").Col)
	b.PlacePiece(Piece{Kind: Knight, Color: Black}, sq("d7").Row, sq("d7").Col)

	before := b.Clone()

	captured := b.ApplyMove(sq("d4"), sq("d7"))
	b.ApplyMove(sq("d7"), sq("d4"))
	if captured.Kind != Empty {
		b.PlacePiece(captured, sq("d7").Row, sq("d7").Col)
	}

	if b.grid != before.grid {
		t.Error("grid occupancy not restored after revert")
	}
	testutil.AssertEqual(t, b.pieces[White], before.pieces[White], "white index after revert")
	testutil.AssertEqual(t, b.pieces[Black], before.pieces[Black], "black index after revert")
}

func TestEnPassantMarkerNotCleared(t *testing.T) {
	b := Default()
	b.ApplyMove(sq("e2"), sq("e4"))
	if b.EnPassant != sq("e4") {
		t.Fatalf("EnPassant = %v, want e4", b.EnPassant)
	}

	// A non-double-push move leaves the marker in place.
	b.ApplyMove(sq("g8"), sq("f6"))
	if b.EnPassant != sq("e4") {
		t.Errorf("EnPassant = %v after knight move, want e4 still", b.EnPassant)
	}

	// The next double push overwrites it.
	b.ApplyMove(sq("d2"), sq("d4"))
	if b.EnPassant != sq("d4") {
		t.Errorf("EnPassant = %v, want d4", b.EnPassant)
	}
}

func TestKingCoord(t *testing.T) {
	b := Default()

	coord, ok := b.KingCoord(White)
	if !ok || coord != sq("e1") {
		t.Errorf("KingCoord(White) = %v %v, want e1 true", coord, ok)
	}
	coord, ok = b.KingCoord(Black)
	if !ok || coord != sq("e8") {
		t.Errorf("KingCoord(Black) = %v %v, want e8 true", coord, ok)
	}

	b.Clear()
	if _, ok := b.KingCoord(White); ok {
		t.Error("KingCoord on empty board reported a king")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := Default()
	clone := b.Clone()

	clone.ApplyMove(sq("e2"), sq("e4"))

	if b.At(sq("e2")).Kind != Pawn {
		t.Error("mutating the clone changed the original grid")
	}
	if _, ok := b.pieces[White][sq("e4")]; ok {
		t.Error("mutating the clone changed the original index")
	}
	if b.Turn != White {
		t.Error("mutating the clone changed the original turn")
	}
}
