// Package year2025 holds the solutions to Advent of Code 2025.
package year2025

import "aoc-solver/internal/solver"

// Register adds every 2025 solver to r.
func Register(r *solver.Registry) {
	r.Register(2025, 1, NewDay1)
	r.Register(2025, 2, NewDay2)
	r.Register(2025, 3, NewDay3)
	r.Register(2025, 4, NewDay4)
	r.Register(2025, 5, NewDay5)
	r.Register(2025, 6, NewDay6)
	r.Register(2025, 7, NewDay7)
	r.Register(2025, 8, NewDay8)
	r.Register(2025, 9, NewDay9)
	r.Register(2025, 10, NewDay10)
	r.Register(2025, 11, NewDay11)
	r.Register(2025, 12, NewDay12)
	// <<INSERT MARKER>>
}
