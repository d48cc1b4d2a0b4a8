// Package config loads game scenarios from YAML: board dimensions, piece
// shapes and an optional scripted move list. Shape definitions live here, on
// the caller's side of the boundary; the engine only ever sees parsed
// pieces.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tetris/engine"
)

// Move is one scripted drop: a named shape and its anchor column.
type Move struct {
	Piece  string `yaml:"piece"`
	Column int    `yaml:"column"`
}

type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
	Steps  int   `yaml:"steps"`

	// Pieces maps shape names to offset notation ("x y x y ..."), e.g.
	// bar: "0 0 1 0 2 0 3 0".
	Pieces map[string]string `yaml:"pieces"`

	// Moves, when present, replaces random play with a fixed script.
	Moves []Move `yaml:"moves"`
}

func Default() Config {
	return Config{Width: 10, Height: 20, Seed: 1, Steps: 200}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board size %dx%d: dimensions must be positive", c.Width, c.Height)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps %d: must not be negative", c.Steps)
	}
	widths := make(map[string]int, len(c.Pieces))
	for name, notation := range c.Pieces {
		p, err := engine.ParsePiece(notation)
		if err != nil {
			return fmt.Errorf("shape %q: %w", name, err)
		}
		if p.Width() > c.Width {
			return fmt.Errorf("shape %q: wider than the board", name)
		}
		widths[name] = p.Width()
	}
	for i, mv := range c.Moves {
		w, ok := widths[mv.Piece]
		if !ok {
			return fmt.Errorf("move %d: unknown piece %q", i, mv.Piece)
		}
		// the whole piece must fit, not just the anchor column
		if mv.Column < 0 || mv.Column+w > c.Width {
			return fmt.Errorf("move %d: piece %q at column %d runs off the board", i, mv.Piece, mv.Column)
		}
	}
	return nil
}

// PieceSet parses the named shapes. Call Validate first; parse failures here
// are programmer errors.
func (c Config) PieceSet() (map[string]engine.Piece, error) {
	set := make(map[string]engine.Piece, len(c.Pieces))
	for name, notation := range c.Pieces {
		p, err := engine.ParsePiece(notation)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		set[name] = p
	}
	return set, nil
}
