// SPDX-License-Identifier: MIT
// Package: rectmaze/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithClearValue sets the pixel value written for free space.
func WithClearValue(v uint8) BuilderOption {
	return func(c *builderConfig) { c.clearValue = v }
}

// WithWallValue sets the pixel value written for walls.
func WithWallValue(v uint8) BuilderOption {
	return func(c *builderConfig) { c.wallValue = v }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so Random mazes are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
