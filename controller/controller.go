package controller

import (
	"go.uber.org/zap"

	"tetris/ai"
	"tetris/engine"
)

// PieceSource supplies the next piece to drop. Implementations must return
// pieces no wider than the board.
type PieceSource interface {
	Next() engine.Piece
}

// Move is one scripted drop: a piece and the column its anchor lands in.
type Move struct {
	Piece  engine.Piece
	Column int
}

// Controller is the owning driver of one board: it picks a column, drops the
// piece at its drop height, clears completed rows, commits on success and
// undoes on failure. Game over is the driver's call, the board never raises
// it.
type Controller struct {
	board  *engine.Board
	ai     ai.AI
	pieces PieceSource
	log    *zap.Logger

	steps int
	score int
	over  bool
}

// New builds a controller for the board. pieces may be nil for purely
// scripted play through Drop and Play; Step needs a source.
func New(board *engine.Board, pieces PieceSource, log *zap.Logger) *Controller {
	return &Controller{board: board, pieces: pieces, log: log}
}

// Step drops the next piece from the source at the AI-chosen column and
// reports whether the game is still running.
func (c *Controller) Step() bool {
	if c.over {
		return false
	}
	if c.pieces == nil {
		panic("controller: Step needs a piece source")
	}
	piece := c.pieces.Next()
	x := c.ai.ChooseColumn(c.board, piece)
	if x < 0 {
		c.gameOver("no feasible column")
		return false
	}
	return c.drop(piece, x)
}

// Run steps the game with AI-chosen columns until it ends or limit steps
// have been played.
func (c *Controller) Run(limit int) {
	for i := 0; i < limit && c.Step(); i++ {
	}
}

// Drop places the piece with its anchor in column x at the drop height and
// reports whether the game is still running.
func (c *Controller) Drop(piece engine.Piece, x int) bool {
	if c.over {
		return false
	}
	return c.drop(piece, x)
}

// Play executes scripted moves in order, stopping early at game over, and
// returns the number of steps played in total.
func (c *Controller) Play(moves []Move) int {
	for _, mv := range moves {
		if !c.Drop(mv.Piece, mv.Column) {
			break
		}
	}
	return c.steps
}

func (c *Controller) drop(piece engine.Piece, x int) bool {
	// DropHeight requires a horizontally feasible column; an overhanging
	// piece is the same out-of-bounds failure a placement would report
	if x < 0 || x+piece.Width() > c.board.Width() {
		c.gameOver("placement failed: " + engine.PlaceOutOfBounds.String())
		return false
	}
	y := c.board.DropHeight(piece, x)
	res := c.board.Place(piece, x, y)
	if res.Failed() {
		// partial mutation is expected here, undo restores the last
		// committed state
		c.board.Undo()
		c.gameOver("placement failed: " + res.String())
		return false
	}
	cleared := 0
	if res == engine.PlaceRowFilled {
		cleared = c.board.ClearRows()
	}
	c.board.Commit()
	c.steps++
	c.score += cleared
	c.log.Debug("piece dropped",
		zap.Int("column", x),
		zap.Int("row", y),
		zap.Int("cleared", cleared),
		zap.Int("maxHeight", c.board.MaxHeight()))
	if c.board.MaxHeight() >= c.board.Height() {
		c.gameOver("column reached the top")
		return false
	}
	return true
}

func (c *Controller) gameOver(reason string) {
	c.over = true
	c.log.Info("game over",
		zap.String("reason", reason),
		zap.Int("steps", c.steps),
		zap.Int("score", c.score))
}

// Score returns the total number of rows cleared so far.
func (c *Controller) Score() int { return c.score }

// Steps returns the number of pieces successfully dropped.
func (c *Controller) Steps() int { return c.steps }

// Over reports whether the game has ended.
func (c *Controller) Over() bool { return c.over }

// Board exposes the driven board for rendering and queries.
func (c *Controller) Board() *engine.Board { return c.board }
