// Package year2024 holds the solutions to Advent of Code 2024.
package year2024

import "aoc-solver/internal/solver"

// Register adds every 2024 solver to r.
func Register(r *solver.Registry) {
	r.Register(2024, 1, NewDay1)
	r.Register(2024, 2, NewDay2)
	r.Register(2024, 3, NewDay3)
	r.Register(2024, 4, NewDay4)
	r.Register(2024, 5, NewDay5)
	r.Register(2024, 6, NewDay6)
	r.Register(2024, 7, NewDay7)
	r.Register(2024, 8, NewDay8)
	r.Register(2024, 9, NewDay9)
	r.Register(2024, 10, NewDay10)
	r.Register(2024, 11, NewDay11)
	r.Register(2024, 12, NewDay12)
	r.Register(2024, 13, NewDay13)
	r.Register(2024, 14, NewDay14)
	r.Register(2024, 15, NewDay15)
	r.Register(2024, 16, NewDay16)
	r.Register(2024, 17, NewDay17)
	r.Register(2024, 18, NewDay18)
	r.Register(2024, 19, NewDay19)
	r.Register(2024, 20, NewDay20)
	r.Register(2024, 21, NewDay21)
	r.Register(2024, 22, NewDay22)
	r.Register(2024, 23, NewDay23)
	r.Register(2024, 24, NewDay24)
	r.Register(2024, 25, NewDay25)
	// <<INSERT MARKER>>
}
