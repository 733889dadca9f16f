package year2023

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day11 struct {
	galaxies  []grid.Point
	emptyRows []bool
	emptyCols []bool
}

// NewDay11 solves "Cosmic Expansion".
func NewDay11(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	d := &day11{
		emptyRows: make([]bool, g.Height()),
		emptyCols: make([]bool, g.Width()),
	}
	for i := range d.emptyRows {
		d.emptyRows[i] = true
	}
	for j := range d.emptyCols {
		d.emptyCols[j] = true
	}
	for p, b := range g.All() {
		if b == '#' {
			d.galaxies = append(d.galaxies, p)
			d.emptyRows[p.Row] = false
			d.emptyCols[p.Col] = false
		}
	}
	return d, nil
}

// expanded maps every coordinate to its position once each empty line has
// grown to factor lines.
func expanded(empty []bool, factor int) []int {
	pos := make([]int, len(empty))
	at := 0
	for i, e := range empty {
		pos[i] = at
		if e {
			at += factor
		} else {
			at++
		}
	}
	return pos
}

// distances sums the Manhattan distance between every pair of galaxies.
func (d *day11) distances(factor int) int {
	rows := expanded(d.emptyRows, factor)
	cols := expanded(d.emptyCols, factor)
	sum := 0
	for i, a := range d.galaxies {
		for _, b := range d.galaxies[i+1:] {
			sum += abs(rows[a.Row]-rows[b.Row]) + abs(cols[a.Col]-cols[b.Col])
		}
	}
	return sum
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (d *day11) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.distances(2)), nil
}

func (d *day11) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.distances(1_000_000)), nil
}
