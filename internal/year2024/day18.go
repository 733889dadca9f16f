package year2024

import (
	"errors"
	"fmt"
	"sort"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/search"
	"aoc-solver/internal/solver"
)

type day18 struct {
	bytes  []grid.Point
	size   int
	fallen int
}

// NewDay18 solves "RAM Run".
func NewDay18(input string) (solver.Solver, error) {
	d, err := newDay18(input, 71, 1024)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func newDay18(input string, size, fallen int) (*day18, error) {
	d := &day18{size: size, fallen: fallen}
	for _, line := range parse.Lines(input) {
		n, err := parse.IntsSep(line, ",")
		if err != nil || len(n) != 2 {
			return nil, fmt.Errorf("invalid byte position %q", line)
		}
		d.bytes = append(d.bytes, grid.Point{Row: n[1], Col: n[0]})
	}
	return d, nil
}

// steps returns the shortest path to the exit once the first n bytes fell.
func (d *day18) steps(n int) (int, bool) {
	memory := grid.New(d.size, d.size, '.')
	for _, b := range d.bytes[:min(n, len(d.bytes))] {
		if memory.InBounds(b) {
			memory.Set(b, '#')
		}
	}
	next := func(p grid.Point) []grid.Point {
		var open []grid.Point
		for _, q := range memory.Adjacent(p) {
			if memory.At(q) != '#' {
				open = append(open, q)
			}
		}
		return open
	}
	dist := search.BFS(grid.Point{}, next, 0)
	s, ok := dist[grid.Point{Row: d.size - 1, Col: d.size - 1}]
	return s, ok
}

var errNoExit = errors.New("no path to the exit")

func (d *day18) Part1() (solver.Solution, error) {
	s, ok := d.steps(d.fallen)
	if !ok {
		return solver.Solution{}, errNoExit
	}
	return solver.NewSolution("Part 1", s), nil
}

func (d *day18) Part2() (solver.Solution, error) {
	i := sort.Search(len(d.bytes), func(i int) bool {
		_, ok := d.steps(i + 1)
		return !ok
	})
	if i == len(d.bytes) {
		return solver.Solution{}, errors.New("the exit stays reachable")
	}
	b := d.bytes[i]
	return solver.NewSolution("Part 2", fmt.Sprintf("%d,%d", b.Col, b.Row)), nil
}
