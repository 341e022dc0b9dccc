// SPDX-License-Identifier: MIT
// Package: rectmaze/builder
//
// api.go - Maze type and the Build entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rectmaze/geom"
)

// Maze is a pixel grid plus the terminals it was designed around.
type Maze struct {
	// Cells holds pixel values indexed Cells[y][x].
	Cells [][]uint8
	// Start and Goal are clear cells.
	Start, Goal geom.Point
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	if len(m.Cells) == 0 {
		return 0
	}
	return len(m.Cells[0])
}

// Height returns the number of rows.
func (m *Maze) Height() int { return len(m.Cells) }

// Constructor produces a maze from a resolved configuration.
type Constructor func(cfg builderConfig) (*Maze, error)

// Build resolves opts and runs con.
func Build(con Constructor, opts ...BuilderOption) (*Maze, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	m, err := con(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return m, nil
}

// MustBuild is Build that panics on error; meant for tests and examples.
func MustBuild(con Constructor, opts ...BuilderOption) *Maze {
	m, err := Build(con, opts...)
	if err != nil {
		panic(err)
	}
	return m
}
