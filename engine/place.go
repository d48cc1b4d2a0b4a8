package engine

// PlaceResult is the outcome of a placement attempt. The failure values are
// ordinary results rather than errors: a failed placement is an expected game
// event that the caller recovers from with Undo.
type PlaceResult int

const (
	// PlaceOK means the whole piece was copied into the grid.
	PlaceOK PlaceResult = iota
	// PlaceRowFilled means the piece was placed and at least one row is now
	// completely full.
	PlaceRowFilled
	// PlaceOutOfBounds means an offset fell outside the grid.
	PlaceOutOfBounds
	// PlaceCollision means an offset landed on an already occupied cell.
	PlaceCollision
)

func (r PlaceResult) String() string {
	switch r {
	case PlaceOK:
		return "ok"
	case PlaceRowFilled:
		return "row filled"
	case PlaceOutOfBounds:
		return "out of bounds"
	case PlaceCollision:
		return "collision"
	}
	return "unknown"
}

// Failed reports whether the placement stopped early and left the board in a
// partially mutated state that must be recovered with Undo.
func (r PlaceResult) Failed() bool {
	return r == PlaceOutOfBounds || r == PlaceCollision
}

// Place copies the piece's cells into the grid with the anchor at (x, y).
//
// Offsets are applied in the piece's own order, and processing stops at the
// first offset that is out of bounds or collides. Cells written before the
// failing offset stay written: a failed placement leaves the board invalid
// for play, and the caller's recovery is Undo. For that reason the board
// opens a mutation episode (taking its undo snapshot if it was committed)
// before anything is written, even for placements that go on to fail.
func (b *Board) Place(piece Piece, x, y int) PlaceResult {
	b.beginMutation()

	rowFilled := false
	for _, pt := range piece.Body() {
		xp, yp := x+pt.X, y+pt.Y
		if xp < 0 || xp >= b.width || yp < 0 || yp >= b.height {
			return PlaceOutOfBounds
		}
		if b.cell(xp, yp) {
			return PlaceCollision
		}
		b.setCell(xp, yp, true)
		if b.colHeight[xp] < yp+1 {
			b.colHeight[xp] = yp + 1
		}
		b.rowFill[yp]++
		if b.rowFill[yp] == b.width {
			rowFilled = true
		}
	}
	if rowFilled {
		return PlaceRowFilled
	}
	return PlaceOK
}

// DropHeight returns the y at which the piece would come to rest if dropped
// straight down with its anchor in column x. It is computed from the cached
// column tallies and the piece's lowest-row profile, no grid scan. The piece
// must fit horizontally: columns x through x+Width()-1 must be on the board.
func (b *Board) DropHeight(piece Piece, x int) int {
	y := 0
	for i, lowest := range piece.LowestYVals() {
		if h := b.colHeight[x+i] - lowest; h > y {
			y = h
		}
	}
	return y
}
