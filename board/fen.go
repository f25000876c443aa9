package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFEN replaces the board contents with the position described by fen.
//
// Only the piece layout and the side to move are ingested. The castling,
// en-passant and counter fields are accepted but discarded: after loading,
// those carry whatever Clear set them to. A side-to-move token other than
// "w" or "b" is a caller error and panics.
//
// The layout field is scanned leniently: a digit 1-8 skips that many files,
// '/' starts the next rank, the twelve piece letters place pieces, and any
// other character consumes one file as Empty rather than being rejected.
func (b *Board) LoadFEN(fen string) {
	fields := strings.Split(fen, " ")
	layout, turn := fields[0], fields[1]

	b.Clear()

	switch turn {
	case "w":
		b.Turn = White
	case "b":
		b.Turn = Black
	default:
		panic(fmt.Sprintf("board: invalid side to move %q", turn))
	}

	row, col := 0, 0
	for _, r := range layout {
		switch {
		case r == '/':
			row++
			col = 0
		case r >= '1' && r <= '8':
			col += int(r - '0')
		default:
			piece, _ := PieceFromLetter(r)
			b.PlacePiece(piece, row, col)
			col++
		}
	}
}

// FEN serializes the position. The six fields appear space-separated in the
// standard order: layout, side to move, castling rights, en-passant target,
// halfmove clock, fullmove number. The castling field is empty, not "-",
// when no flag is set.
func (b *Board) FEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p.Kind == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.WhiteKingsideCastle {
		sb.WriteByte('K')
	}
	if b.WhiteQueensideCastle {
		sb.WriteByte('Q')
	}
	if b.BlackKingsideCastle {
		sb.WriteByte('k')
	}
	if b.BlackQueensideCastle {
		sb.WriteByte('q')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))

	return sb.String()
}
