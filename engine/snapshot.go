package engine

// beginMutation opens a mutation episode. On the first mutating call after a
// Commit or Undo it deep-copies the live grid and tallies into the backup
// snapshot and marks the board uncommitted; further mutations in the same
// episode keep that snapshot, so Undo always reverts to the episode's start,
// never further back.
func (b *Board) beginMutation() {
	if !b.committed {
		return
	}
	copy(b.backupGrid, b.grid)
	copy(b.backupColHeight, b.colHeight)
	copy(b.backupRowFill, b.rowFill)
	b.hasBackup = true
	b.committed = false
}

// Commit accepts the pending mutation episode and gives up the ability to
// undo it. Committing an already committed board does nothing.
func (b *Board) Commit() {
	b.committed = true
}

// Undo reverts the grid and tallies to the snapshot taken at the start of
// the current mutation episode, then marks the board committed. On a
// committed board Undo is a no-op: there is nothing to revert. A second
// consecutive Undo therefore changes nothing.
func (b *Board) Undo() {
	if b.committed {
		return
	}
	// unreachable through the public API: the uncommitted transition always
	// snapshots first
	if !b.hasBackup {
		panic("engine: undo with no backup snapshot")
	}
	copy(b.grid, b.backupGrid)
	copy(b.colHeight, b.backupColHeight)
	copy(b.rowFill, b.backupRowFill)
	b.committed = true
}

// Committed reports whether the board is stable, with no pending mutation
// episode to undo.
func (b *Board) Committed() bool { return b.committed }
