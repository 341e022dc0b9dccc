// SPDX-License-Identifier: MIT
// Package: rectmaze/builder
//
// impl_ascii.go - mazes drawn as text.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/geom"
)

// ASCII parses rows of text: '#' is a wall, '.' is clear, 'S' and 'G' are
// clear cells marking Start and Goal. Each marker must appear exactly once.
func ASCII(rows ...string) Constructor {
	return func(cfg builderConfig) (*Maze, error) {
		if len(rows) == 0 || len(rows[0]) == 0 {
			return nil, fmt.Errorf("ASCII: empty art: %w", ErrBadSize)
		}
		w := len(rows[0])
		cells := cfg.blank(w, len(rows))
		var start, goal *geom.Point
		for y, row := range rows {
			if len(row) != w {
				return nil, fmt.Errorf("ASCII: row %d has width %d, want %d: %w", y, len(row), w, ErrBadASCII)
			}
			for x := 0; x < w; x++ {
				p := geom.Pt(x, y)
				switch row[x] {
				case '#':
				case '.':
					cells[y][x] = cfg.clearValue
				case 'S':
					if start != nil {
						return nil, fmt.Errorf("ASCII: second 'S' at %v: %w", p, ErrBadASCII)
					}
					start = &p
					cells[y][x] = cfg.clearValue
				case 'G':
					if goal != nil {
						return nil, fmt.Errorf("ASCII: second 'G' at %v: %w", p, ErrBadASCII)
					}
					goal = &p
					cells[y][x] = cfg.clearValue
				default:
					return nil, fmt.Errorf("ASCII: symbol %q at %v: %w", row[x], p, ErrBadASCII)
				}
			}
		}
		if start == nil || goal == nil {
			return nil, fmt.Errorf("ASCII: missing 'S' or 'G': %w", ErrBadASCII)
		}
		return &Maze{Cells: cells, Start: *start, Goal: *goal}, nil
	}
}
