package engine

import (
	"fmt"

	"tetris/utils"
)

/**
 * Tetris board engine (game logic only, no rendering)
 */

// Board is a fixed-size playing field for a block-stacking game. It owns the
// occupancy grid, cached per-column height and per-row fill tallies, and a
// single backup snapshot used by Undo.
//
// The tallies are maintained incrementally by Place and rederived by
// ClearRows; they always agree with the grid between operations. A board is
// meant for one owning caller, there is no internal locking.
type Board struct {
	width  int
	height int

	grid      []bool // column-major, cell (x,y) at x*height+y
	colHeight []int  // 1 + y of the highest occupied cell, 0 for an empty column
	rowFill   []int  // occupied cells per row; rowFill[y] == width means full

	committed bool

	// snapshot of grid and tallies at the start of the current mutation
	// episode, valid while committed is false
	backupGrid      []bool
	backupColHeight []int
	backupRowFill   []int
	hasBackup       bool
}

// NewBoard allocates an empty committed board. All storage, including the
// undo snapshot, is allocated here once and reused for the board's lifetime.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d: dimensions must be positive", width, height)
	}
	b := &Board{
		width:           width,
		height:          height,
		grid:            make([]bool, width*height),
		colHeight:       make([]int, width),
		rowFill:         make([]int, height),
		backupGrid:      make([]bool, width*height),
		backupColHeight: make([]int, width),
		backupRowFill:   make([]int, height),
	}
	b.NewGame()
	return b, nil
}

// NewGame empties every cell and tally and marks the board committed. The
// backing arrays are reused, not reallocated.
func (b *Board) NewGame() {
	for i := range b.grid {
		b.grid[i] = false
	}
	for x := range b.colHeight {
		b.colHeight[x] = 0
	}
	for y := range b.rowFill {
		b.rowFill[y] = 0
	}
	b.committed = true
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// MaxHeight returns the tallest column height, 0 for an empty board.
func (b *Board) MaxHeight() int { return utils.Max(b.colHeight) }

// ColumnHeight returns one more than the y of the highest occupied cell in
// column x, or 0 if the column is empty. Panics when x is out of range;
// queries are not the way to probe placement validity, Place does its own
// bounds checks.
func (b *Board) ColumnHeight(x int) int { return b.colHeight[x] }

// RowWidth returns the number of occupied cells in row y. Panics when y is
// out of range.
func (b *Board) RowWidth(y int) int { return b.rowFill[y] }

// Occupied reports whether cell (x,y) is filled. Cells outside the grid
// always read as occupied, so callers can probe neighbors without separate
// bounds checks.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return true
	}
	return b.grid[x*b.height+y]
}

func (b *Board) cell(x, y int) bool { return b.grid[x*b.height+y] }

func (b *Board) setCell(x, y int, filled bool) { b.grid[x*b.height+y] = filled }
