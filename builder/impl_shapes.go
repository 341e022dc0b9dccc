// SPDX-License-Identifier: MIT
// Package: rectmaze/builder
//
// impl_shapes.go - closed-form maze constructors.
//
// Each constructor documents the decomposition it is designed to produce when
// extracted from Start, so tests can assert exact node and edge counts.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/geom"
)

// Room returns a fully clear w×h bitmap. It decomposes into a single node.
func Room(w, h int) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if err := validateMin("Room", w, 1, h, 1); err != nil {
			return nil, err
		}
		cells := cfg.blank(w, h)
		fill(cells, geom.NewRect(geom.Pt(0, 0), geom.Pt(w, h)), cfg.clearValue)
		return &Maze{Cells: cells, Start: geom.Pt(0, 0), Goal: geom.Pt(w-1, h-1)}, nil
	}
}

// Corridor returns a one-row corridor of length n.
func Corridor(n int) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if err := validateMin("Corridor", n, 1, 1, 1); err != nil {
			return nil, err
		}
		return Room(n, 1)(cfg)
	}
}

// Staircase returns a diagonal corridor: row y has clear cells at x=y and
// x=y+1. It decomposes into exactly `steps` nodes chained by steps-1 edges,
// so the goal distance is steps-1.
func Staircase(steps int) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if err := validateMin("Staircase", steps, 1, 1, 1); err != nil {
			return nil, err
		}
		cells := cfg.blank(steps+1, steps)
		for y := 0; y < steps; y++ {
			cells[y][y] = cfg.clearValue
			cells[y][y+1] = cfg.clearValue
		}
		return &Maze{Cells: cells, Start: geom.Pt(0, 0), Goal: geom.Pt(steps, steps-1)}, nil
	}
}

// TJunction returns a fixed 7×7 maze with one dead-end branch two nodes deep:
//
//	...####
//	##.####
//	##.....
//	##.####
//	##....#
//	#####.#
//	#####.#
//
// Extraction yields 5 nodes and 4 edges; pruning removes the branch in two
// rounds and leaves a 3-node chain.
func TJunction() Constructor {
	return ASCII(
		"S..####",
		"##.####",
		"##....G",
		"##.####",
		"##....#",
		"#####.#",
		"#####.#",
	)
}

// Split returns two w×h rooms separated by a one-column wall. Start lies in
// the left room and Goal in the right one, so no path exists.
func Split(w, h int) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if err := validateMin("Split", w, 1, h, 1); err != nil {
			return nil, err
		}
		cells := cfg.blank(2*w+1, h)
		fill(cells, geom.NewRect(geom.Pt(0, 0), geom.Pt(w, h)), cfg.clearValue)
		fill(cells, geom.NewRect(geom.Pt(w+1, 0), geom.Pt(2*w+1, h)), cfg.clearValue)
		return &Maze{Cells: cells, Start: geom.Pt(0, 0), Goal: geom.Pt(2*w, h-1)}, nil
	}
}

// Comb returns a top corridor of width 2*teeth-1 with `teeth` one-cell-wide
// dead ends hanging below it, each `depth` rows long. Start and Goal sit at
// the two ends of the corridor, so pruning removes every tooth in one round.
func Comb(teeth, depth int) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if err := validateMin("Comb", teeth, 2, depth, 1); err != nil {
			return nil, err
		}
		w := 2*teeth - 1
		cells := cfg.blank(w, depth+1)
		fill(cells, geom.NewRect(geom.Pt(0, 0), geom.Pt(w, 1)), cfg.clearValue)
		for i := 0; i < teeth; i++ {
			fill(cells, geom.NewRect(geom.Pt(2*i, 1), geom.Pt(2*i+1, depth+1)), cfg.clearValue)
		}
		return &Maze{Cells: cells, Start: geom.Pt(0, 0), Goal: geom.Pt(w-1, 0)}, nil
	}
}

// Serpentine returns a boustrophedon corridor inside a w×h box. Clear rows
// sit at even y and are joined alternately at the right and left edges.
func Serpentine(w, h int) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if err := validateMin("Serpentine", w, 2, h, 1); err != nil {
			return nil, err
		}
		cells := cfg.blank(w, h)
		last := geom.Pt(0, 0)
		for y := 0; y < h; y += 2 {
			fill(cells, geom.NewRect(geom.Pt(0, y), geom.Pt(w, y+1)), cfg.clearValue)
			if y%4 == 0 {
				last = geom.Pt(w-1, y)
			} else {
				last = geom.Pt(0, y)
			}
			if y+1 < h {
				x := w - 1
				if y%4 != 0 {
					x = 0
				}
				cells[y+1][x] = cfg.clearValue
			}
		}
		if (h-1)%2 == 1 {
			// odd last row is a connector; the goal moves onto it
			x := w - 1
			if (h-2)%4 != 0 {
				x = 0
			}
			last = geom.Pt(x, h-1)
		}
		return &Maze{Cells: cells, Start: geom.Pt(0, 0), Goal: last}, nil
	}
}

func fill(cells [][]uint8, r geom.Rect, v uint8) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cells[y][x] = v
		}
	}
}

func validateMin(method string, a, minA, b, minB int) error {
	if a < minA || b < minB {
		return fmt.Errorf("%s: (%d,%d) below minimum (%d,%d): %w", method, a, b, minA, minB, ErrBadSize)
	}
	return nil
}
