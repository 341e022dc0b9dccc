// SPDX-License-Identifier: MIT
// Package: rectmaze/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context using %w.

package builder

import "errors"

// ErrBadSize indicates a dimension or count below the constructor minimum.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a wall density outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadASCII indicates malformed ASCII art: ragged rows, unknown symbols, or
// a missing or repeated 'S'/'G' marker.
var ErrBadASCII = errors.New("builder: malformed ascii maze")

// ErrConstructFailed indicates a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
