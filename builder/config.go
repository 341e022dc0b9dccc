// SPDX-License-Identifier: MIT
// Package: rectmaze/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • clearValue = 255 (white)
//   • wallValue  = 0   (black)
//   • rng        = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

const (
	defaultClearValue uint8 = 255
	defaultWallValue  uint8 = 0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	clearValue uint8
	wallValue  uint8
	rng        *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		clearValue: defaultClearValue,
		wallValue:  defaultWallValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// blank returns an h×w grid filled with the wall value.
func (c builderConfig) blank(w, h int) [][]uint8 {
	cells := make([][]uint8, h)
	for y := range cells {
		row := make([]uint8, w)
		for x := range row {
			row[x] = c.wallValue
		}
		cells[y] = row
	}
	return cells
}
