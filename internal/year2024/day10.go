package year2024

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day10 struct {
	g *grid.Grid
}

// NewDay10 solves "Hoof It".
func NewDay10(input string) (solver.Solver, error) {
	return &day10{g: grid.Parse(input)}, nil
}

// trails walks every hiking trail up from p and calls reached at each summit.
func (d *day10) trails(p grid.Point, reached func(grid.Point)) {
	h := d.g.At(p)
	if h == '9' {
		reached(p)
		return
	}
	for _, q := range d.g.Adjacent(p) {
		if d.g.At(q) == h+1 {
			d.trails(q, reached)
		}
	}
}

func (d *day10) Part1() (solver.Solution, error) {
	score := 0
	for p, b := range d.g.All() {
		if b != '0' {
			continue
		}
		summits := map[grid.Point]bool{}
		d.trails(p, func(q grid.Point) { summits[q] = true })
		score += len(summits)
	}
	return solver.NewSolution("Part 1", score), nil
}

func (d *day10) Part2() (solver.Solution, error) {
	rating := 0
	for p, b := range d.g.All() {
		if b == '0' {
			d.trails(p, func(grid.Point) { rating++ })
		}
	}
	return solver.NewSolution("Part 2", rating), nil
}
