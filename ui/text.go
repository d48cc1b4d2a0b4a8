package ui

import (
	"strings"

	"tetris/engine"
)

// Render draws a board as text, rows top to bottom (highest y first), '+'
// for occupied cells, '|' side borders and a dashed base line. Presentation
// only; it reads the board through its query API.
func Render(b *engine.Board) string {
	var sb strings.Builder
	for y := b.Height() - 1; y >= 0; y-- {
		sb.WriteByte('|')
		for x := 0; x < b.Width(); x++ {
			if b.Occupied(x, y) {
				sb.WriteByte('+')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.Repeat("-", b.Width()+2))
	return sb.String()
}
