package board

import "fmt"

// Coord identifies a square. Row 0 is the top rank (rank 8) and grows
// downward; Col 0..7 maps to files a..h.
type Coord struct {
	Row, Col int
}

// NoCoord is the sentinel for "no square", used for an unset en-passant
// marker.
var NoCoord = Coord{-1, -1}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < 8 && c.Col >= 0 && c.Col < 8
}

// String returns the algebraic notation for the square (e.g. "e4"), or "-"
// for a coordinate off the board.
func (c Coord) String() string {
	if !c.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, 8-c.Row)
}

// ParseCoord parses algebraic notation (e.g. "e4") into a Coord. The second
// return is false when the text does not name a square.
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 {
		return NoCoord, false
	}
	c := Coord{Row: 8 - int(s[1]-'0'), Col: int(s[0] - 'a')}
	if !c.InBounds() {
		return NoCoord, false
	}
	return c, true
}
