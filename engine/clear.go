package engine

// ClearRows removes every completely filled row, shifts the rows above each
// removed row down one step per row removed beneath them (relative order
// preserved), and returns the number of rows removed.
//
// Like Place, ClearRows opens a mutation episode if the board was committed.
// A place followed by a clear shares a single snapshot, so one Undo reverts
// the pair.
func (b *Board) ClearRows() int {
	b.beginMutation()

	maxH := b.MaxHeight()
	cleared := 0
	writeTo := 0
	for y := 0; y < maxH; y++ {
		if b.rowFill[y] == b.width {
			cleared++
			continue
		}
		if writeTo != y {
			b.copyRow(writeTo, y)
		}
		writeTo++
	}
	if cleared == 0 {
		return 0
	}
	for y := writeTo; y < maxH; y++ {
		b.emptyRow(y)
	}
	b.rebuildTallies()
	return cleared
}

func (b *Board) copyRow(to, from int) {
	for x := 0; x < b.width; x++ {
		b.setCell(x, to, b.cell(x, from))
	}
	b.rowFill[to] = b.rowFill[from]
}

func (b *Board) emptyRow(y int) {
	for x := 0; x < b.width; x++ {
		b.setCell(x, y, false)
	}
	b.rowFill[y] = 0
}

// rebuildTallies rederives both tallies from the grid. Compaction can move
// an arbitrary number of rows, which leaves the incrementally maintained
// column heights stale; a full rescan is the only safe way to restore them.
func (b *Board) rebuildTallies() {
	for x := range b.colHeight {
		b.colHeight[x] = 0
	}
	for y := range b.rowFill {
		b.rowFill[y] = 0
	}
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.cell(x, y) {
				b.colHeight[x] = y + 1
				b.rowFill[y]++
			}
		}
	}
}
