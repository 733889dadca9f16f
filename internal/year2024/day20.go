package year2024

import (
	"errors"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day20 struct {
	track []grid.Point
}

// NewDay20 solves "Race Condition". The racetrack is a single path from S to
// E, so it is stored in order.
func NewDay20(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	start, ok := g.Find('S')
	if !ok {
		return nil, errors.New("no start on the racetrack")
	}
	d := &day20{track: []grid.Point{start}}
	seen := map[grid.Point]bool{start: true}
	for at := start; g.At(at) != 'E'; {
		next, found := grid.Point{}, false
		for _, q := range g.Adjacent(at) {
			if g.At(q) != '#' && !seen[q] {
				next, found = q, true
			}
		}
		if !found {
			return nil, errors.New("racetrack does not reach the end")
		}
		seen[next] = true
		d.track = append(d.track, next)
		at = next
	}
	return d, nil
}

// cheats counts the shortcuts of at most length picoseconds through walls
// that save at least threshold picoseconds.
func (d *day20) cheats(length, threshold int) int {
	count := 0
	for i, a := range d.track {
		for j := i + threshold; j < len(d.track); j++ {
			b := d.track[j]
			dist := abs(a.Row-b.Row) + abs(a.Col-b.Col)
			if dist <= length && j-i-dist >= threshold {
				count++
			}
		}
	}
	return count
}

func (d *day20) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.cheats(2, 100)), nil
}

func (d *day20) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.cheats(20, 100)), nil
}
