package year2025

import (
	"errors"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day7 struct {
	manifold *grid.Grid
	start    grid.Point
}

// NewDay7 solves "Laboratories".
func NewDay7(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	start, ok := g.Find('S')
	if !ok {
		return nil, errors.New("no beam entry point S in manifold")
	}
	return &day7{manifold: g, start: start}, nil
}

// trace sends the beam down row by row. It returns how many splitters the
// beam hit and how many timelines reach the bottom, counting each path a
// single particle could take.
func (d *day7) trace() (splits, timelines int) {
	g := d.manifold
	paths := make([]int, g.Width())
	paths[d.start.Col] = 1
	for r := d.start.Row + 1; r < g.Height(); r++ {
		next := make([]int, g.Width())
		for c, n := range paths {
			if n == 0 {
				continue
			}
			if g.At(grid.Point{Row: r, Col: c}) != '^' {
				next[c] += n
				continue
			}
			splits++
			if c > 0 {
				next[c-1] += n
			}
			if c+1 < g.Width() {
				next[c+1] += n
			}
		}
		paths = next
	}
	for _, n := range paths {
		timelines += n
	}
	return splits, timelines
}

func (d *day7) Part1() (solver.Solution, error) {
	splits, _ := d.trace()
	return solver.NewSolution("Beam splits", splits), nil
}

func (d *day7) Part2() (solver.Solution, error) {
	_, timelines := d.trace()
	return solver.NewSolution("Timelines", timelines), nil
}
