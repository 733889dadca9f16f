package year2024

import (
	"fmt"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day25 struct {
	locks, keys [][]int
	depth       int
}

// NewDay25 solves "Code Chronicle".
func NewDay25(input string) (solver.Solver, error) {
	d := &day25{}
	for _, block := range parse.Blocks(input) {
		g := grid.Parse(block)
		if g.Height() < 2 {
			return nil, fmt.Errorf("schematic too short:\n%s", block)
		}
		d.depth = g.Height() - 2
		heights := make([]int, g.Width())
		for j := range heights {
			for _, b := range g.Col(j) {
				if b == '#' {
					heights[j]++
				}
			}
			heights[j]--
		}
		if g.Row(0)[0] == '#' {
			d.locks = append(d.locks, heights)
		} else {
			d.keys = append(d.keys, heights)
		}
	}
	return d, nil
}

func (d *day25) Part1() (solver.Solution, error) {
	fits := 0
	for _, lock := range d.locks {
	keys:
		for _, key := range d.keys {
			for j := range lock {
				if j >= len(key) || lock[j]+key[j] > d.depth {
					continue keys
				}
			}
			fits++
		}
	}
	return solver.NewSolution("Part 1", fits), nil
}

// Part2 has no puzzle: the last day's second star is free.
func (d *day25) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", "n/a"), nil
}
