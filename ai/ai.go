package ai

import "tetris/engine"

// AI picks drop columns for pieces using only the board's public API.
type AI struct{}

// ChooseColumn returns the anchor column whose straight drop gives the best
// position for the piece, or -1 when the piece fits in no column. Every
// feasible column is trial-placed at its drop height, scored and undone, so
// the board is unchanged when ChooseColumn returns. Ties go to the leftmost
// column.
//
// The board must be committed; each trial relies on opening and undoing its
// own mutation episode.
func (ai *AI) ChooseColumn(b *engine.Board, piece engine.Piece) int {
	if !b.Committed() {
		panic("ai: board has a pending mutation")
	}

	best := -1
	bestScore := 0
	for x := 0; x+piece.Width() <= b.Width(); x++ {
		score, ok := ai.scoreDrop(b, piece, x)
		if !ok {
			continue
		}
		if best == -1 || score > bestScore {
			best = x
			bestScore = score
		}
	}
	return best
}

// scoreDrop drops the piece in column x and measures the result, higher is
// better: completed rows dominate, then a lower remaining stack. The trial
// is undone before returning.
func (ai *AI) scoreDrop(b *engine.Board, piece engine.Piece, x int) (int, bool) {
	res := b.Place(piece, x, b.DropHeight(piece, x))
	if res.Failed() {
		b.Undo()
		return 0, false
	}
	score := b.ClearRows()*b.Height() - b.MaxHeight()
	b.Undo()
	return score, true
}
