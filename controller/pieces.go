package controller

import (
	"fmt"
	"math/rand"

	"tetris/engine"
)

// Shapes dealt in random play, in the board's textual piece notation. Fixed
// orientations only, the engine has no rotation.
var defaultShapes = []string{
	"0 0 1 0 2 0 3 0", // bar, flat
	"0 0 0 1 0 2 0 3", // bar, upright
	"0 0 0 1 1 0 1 1", // square
	"0 0 1 0 1 1 2 0", // tee
	"0 0 0 1 0 2 1 0", // ell
	"0 1 1 0 1 1 2 0", // ess
}

// RandomSource deals pieces from a fixed bag with a seeded generator; the
// same seed replays the same game.
type RandomSource struct {
	bag []engine.Piece
	rng *rand.Rand
}

func NewRandomSource(seed int64) (*RandomSource, error) {
	bag := make([]engine.Piece, 0, len(defaultShapes))
	for _, s := range defaultShapes {
		p, err := engine.ParsePiece(s)
		if err != nil {
			return nil, fmt.Errorf("builtin shape: %w", err)
		}
		bag = append(bag, p)
	}
	return &RandomSource{bag: bag, rng: rand.New(rand.NewSource(seed))}, nil
}

func (s *RandomSource) Next() engine.Piece {
	return s.bag[s.rng.Intn(len(s.bag))]
}
