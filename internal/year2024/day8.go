package year2024

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day8 struct {
	g        *grid.Grid
	antennas map[byte][]grid.Point
}

// NewDay8 solves "Resonant Collinearity".
func NewDay8(input string) (solver.Solver, error) {
	d := &day8{g: grid.Parse(input), antennas: map[byte][]grid.Point{}}
	for p, b := range d.g.All() {
		if b != '.' && b != ' ' {
			d.antennas[b] = append(d.antennas[b], p)
		}
	}
	return d, nil
}

// antinodes counts the distinct in-bounds antinodes. Without harmonics only
// the point one step beyond each antenna of a pair counts. With harmonics
// every step along the line does, the antennas included.
func (d *day8) antinodes(harmonics bool) int {
	seen := map[grid.Point]bool{}
	for _, group := range d.antennas {
		for i, a := range group {
			for j, b := range group {
				if i == j {
					continue
				}
				step := a.Sub(b)
				p := a
				if !harmonics {
					p = a.Add(step)
				}
				for d.g.InBounds(p) {
					seen[p] = true
					if !harmonics {
						break
					}
					p = p.Add(step)
				}
			}
		}
	}
	return len(seen)
}

func (d *day8) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.antinodes(false)), nil
}

func (d *day8) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.antinodes(true)), nil
}
