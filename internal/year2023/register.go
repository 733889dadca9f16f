// Package year2023 holds the solutions to Advent of Code 2023.
package year2023

import "aoc-solver/internal/solver"

// Register adds every 2023 solver to r.
func Register(r *solver.Registry) {
	r.Register(2023, 1, NewDay1)
	r.Register(2023, 2, NewDay2)
	r.Register(2023, 3, NewDay3)
	r.Register(2023, 4, NewDay4)
	r.Register(2023, 5, NewDay5)
	r.Register(2023, 6, NewDay6)
	r.Register(2023, 7, NewDay7)
	r.Register(2023, 8, NewDay8)
	r.Register(2023, 9, NewDay9)
	r.Register(2023, 10, NewDay10)
	r.Register(2023, 11, NewDay11)
	r.Register(2023, 12, NewDay12)
	r.Register(2023, 13, NewDay13)
	r.Register(2023, 14, NewDay14)
	r.Register(2023, 15, NewDay15)
	r.Register(2023, 16, NewDay16)
	r.Register(2023, 17, NewDay17)
	r.Register(2023, 18, NewDay18)
	r.Register(2023, 19, NewDay19)
	r.Register(2023, 20, NewDay20)
	r.Register(2023, 21, NewDay21)
	r.Register(2023, 22, NewDay22)
	r.Register(2023, 23, NewDay23)
	r.Register(2023, 24, NewDay24)
	r.Register(2023, 25, NewDay25)
	// <<INSERT MARKER>>
}
