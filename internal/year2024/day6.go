package year2024

import (
	"errors"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day6 struct {
	lab   *grid.Grid
	guard grid.Point
}

// NewDay6 solves "Guard Gallivant".
func NewDay6(input string) (solver.Solver, error) {
	lab := grid.Parse(input)
	guard, ok := lab.Find('^')
	if !ok {
		return nil, errors.New("no guard on the map")
	}
	return &day6{lab: lab, guard: guard}, nil
}

type heading struct {
	at   grid.Point
	turn int
}

// patrol walks the guard until it leaves the lab, treating block as an extra
// obstruction. looped reports a patrol that never leaves.
func (d *day6) patrol(block grid.Point) (visited map[grid.Point]bool, looped bool) {
	visited = map[grid.Point]bool{}
	states := map[heading]bool{}
	at, turn := d.guard, 0
	for {
		h := heading{at: at, turn: turn}
		if states[h] {
			return visited, true
		}
		states[h] = true
		visited[at] = true
		next := at.Add(grid.Cardinals[turn])
		switch {
		case !d.lab.InBounds(next):
			return visited, false
		case next == block || d.lab.At(next) == '#':
			turn = (turn + 1) % 4
		default:
			at = next
		}
	}
}

var nowhere = grid.Point{Row: -1, Col: -1}

func (d *day6) Part1() (solver.Solution, error) {
	visited, looped := d.patrol(nowhere)
	if looped {
		return solver.Solution{}, errors.New("guard never leaves the lab")
	}
	return solver.NewSolution("Part 1", len(visited)), nil
}

func (d *day6) Part2() (solver.Solution, error) {
	visited, _ := d.patrol(nowhere)
	loops := 0
	for p := range visited {
		if p == d.guard {
			continue
		}
		if _, looped := d.patrol(p); looped {
			loops++
		}
	}
	return solver.NewSolution("Part 2", loops), nil
}
