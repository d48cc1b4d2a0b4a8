package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a cell offset relative to a piece's anchor.
type Point struct {
	X int
	Y int
}

// Piece is the shape the board consumes: an ordered list of occupied cell
// offsets plus, per relative column, the lowest occupied row. Pieces are
// built once and read-only afterwards; the board applies the offsets in body
// order during placement.
type Piece struct {
	body        []Point
	lowestYVals []int
}

// NewPiece builds a piece from its occupied offsets. Offsets must be
// non-negative and duplicate-free, and every relative column up to the
// piece's width must contain at least one cell.
func NewPiece(body []Point) (Piece, error) {
	if len(body) == 0 {
		return Piece{}, fmt.Errorf("piece has no body")
	}
	width := 0
	seen := make(map[Point]bool, len(body))
	for _, pt := range body {
		if pt.X < 0 || pt.Y < 0 {
			return Piece{}, fmt.Errorf("piece offset (%d,%d) is negative", pt.X, pt.Y)
		}
		if seen[pt] {
			return Piece{}, fmt.Errorf("piece offset (%d,%d) duplicated", pt.X, pt.Y)
		}
		seen[pt] = true
		if pt.X+1 > width {
			width = pt.X + 1
		}
	}
	lowest := make([]int, width)
	for i := range lowest {
		lowest[i] = -1
	}
	for _, pt := range body {
		if lowest[pt.X] == -1 || pt.Y < lowest[pt.X] {
			lowest[pt.X] = pt.Y
		}
	}
	for x, v := range lowest {
		if v == -1 {
			return Piece{}, fmt.Errorf("piece column %d has no cells", x)
		}
	}
	return Piece{body: append([]Point(nil), body...), lowestYVals: lowest}, nil
}

// ParsePiece reads the textual piece notation "x y x y ...", one coordinate
// pair per occupied cell.
func ParsePiece(s string) (Piece, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return Piece{}, fmt.Errorf("piece %q: want an even number of coordinates", s)
	}
	body := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(fields[i])
		if err != nil {
			return Piece{}, fmt.Errorf("piece %q: %w", s, err)
		}
		y, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return Piece{}, fmt.Errorf("piece %q: %w", s, err)
		}
		body = append(body, Point{X: x, Y: y})
	}
	p, err := NewPiece(body)
	if err != nil {
		return Piece{}, fmt.Errorf("piece %q: %w", s, err)
	}
	return p, nil
}

// Body returns the occupied offsets in placement order. Callers must treat
// the slice as read-only.
func (p Piece) Body() []Point { return p.body }

// Width returns the number of relative columns the piece spans.
func (p Piece) Width() int { return len(p.lowestYVals) }

// LowestYVals returns, for each relative column, the lowest occupied row.
// Callers must treat the slice as read-only.
func (p Piece) LowestYVals() []int { return p.lowestYVals }
