// SPDX-License-Identifier: MIT
// Package: rectmaze/builder
//
// impl_random.go - seeded random wall scatter.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/geom"
)

// Random returns a w×h bitmap where each cell is a wall with probability p.
// The top-left and bottom-right cells are always clear and serve as Start and
// Goal; they may or may not be connected. Requires WithSeed or WithRand.
func Random(w, h int, p float64) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if err := validateMin("Random", w, 1, h, 1); err != nil {
			return nil, err
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("Random: p=%.3f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
		}
		cells := cfg.blank(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if cfg.rng.Float64() >= p {
					cells[y][x] = cfg.clearValue
				}
			}
		}
		start, goal := geom.Pt(0, 0), geom.Pt(w-1, h-1)
		cells[start.Y][start.X] = cfg.clearValue
		cells[goal.Y][goal.X] = cfg.clearValue
		return &Maze{Cells: cells, Start: start, Goal: goal}, nil
	}
}
