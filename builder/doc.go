// SPDX-License-Identifier: MIT
// Package builder produces deterministic maze bitmaps for tests, examples and
// benchmarks.
//
// Every constructor returns a *Maze: a [][]uint8 pixel grid (values[y][x])
// plus the start and goal cells it was designed around. Pixel values follow
// the bitmap convention the solver expects: ClearValue (default 255, white)
// for free space and WallValue (default 0, black) for walls.
//
// Constructors:
//
//   - Room(w, h):          one open rectangle; start top-left, goal bottom-right.
//   - Corridor(n):         a 1×n straight corridor.
//   - Staircase(steps):    a diagonal corridor that decomposes into exactly
//     `steps` rectangles chained in a line.
//   - TJunction():         a corridor with a two-rectangle dead-end branch.
//   - Split(w, h):         two rooms separated by a full-height wall.
//   - Serpentine(w, h):    a boustrophedon corridor filling a w×h box.
//   - Random(w, h, p):     random walls with density p; needs WithSeed/WithRand.
//   - ASCII(rows...):      '#' wall, '.' clear, 'S' start, 'G' goal.
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical mazes.
//   - Constructors never panic; they return sentinel errors.
//   - Option constructors panic on meaningless inputs (nil RNG).
package builder
