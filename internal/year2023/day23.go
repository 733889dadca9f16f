package year2023

import (
	"bytes"
	"errors"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

var slopeDir = map[byte]grid.Point{'^': grid.Up, '>': grid.Right, 'v': grid.Down, '<': grid.Left}

type day23 struct {
	trails     *grid.Grid
	start, end grid.Point
}

// NewDay23 solves "A Long Walk".
func NewDay23(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	if g.Height() < 2 {
		return nil, errors.New("map needs at least two rows")
	}
	first := bytes.IndexByte(g.Row(0), '.')
	last := bytes.IndexByte(g.Row(g.Height()-1), '.')
	if first < 0 || last < 0 {
		return nil, errors.New("no path on the first or last row")
	}
	return &day23{
		trails: g,
		start:  grid.Point{Col: first},
		end:    grid.Point{Row: g.Height() - 1, Col: last},
	}, nil
}

// steps returns where a hiker on p may step next. With icy set slopes only
// allow going downhill.
func (d *day23) steps(p grid.Point, icy bool) []grid.Point {
	var out []grid.Point
	dir, onSlope := slopeDir[d.trails.At(p)]
	for _, q := range d.trails.Adjacent(p) {
		if d.trails.At(q) == '#' || (icy && onSlope && q != p.Add(dir)) {
			continue
		}
		out = append(out, q)
	}
	return out
}

type corridor struct {
	to     grid.Point
	length int
}

// junctions collapses the single-file corridors between forks into weighted
// edges.
func (d *day23) junctions(icy bool) map[grid.Point][]corridor {
	forks := map[grid.Point]bool{d.start: true, d.end: true}
	for p, b := range d.trails.All() {
		if b != '#' && len(d.steps(p, false)) >= 3 {
			forks[p] = true
		}
	}
	graph := make(map[grid.Point][]corridor, len(forks))
	for fork := range forks {
	next:
		for _, q := range d.steps(fork, icy) {
			prev, cur, length := fork, q, 1
			for !forks[cur] {
				var onward []grid.Point
				for _, n := range d.steps(cur, icy) {
					if n != prev {
						onward = append(onward, n)
					}
				}
				if len(onward) == 0 {
					continue next
				}
				prev, cur = cur, onward[0]
				length++
			}
			graph[fork] = append(graph[fork], corridor{to: cur, length: length})
		}
	}
	return graph
}

// longestHike walks every simple path between the forks.
func (d *day23) longestHike(icy bool) (int, bool) {
	graph := d.junctions(icy)
	seen := map[grid.Point]bool{}
	best := -1
	var walk func(p grid.Point, length int)
	walk = func(p grid.Point, length int) {
		if p == d.end {
			best = max(best, length)
			return
		}
		seen[p] = true
		for _, c := range graph[p] {
			if !seen[c.to] {
				walk(c.to, length+c.length)
			}
		}
		seen[p] = false
	}
	walk(d.start, 0)
	return best, best >= 0
}

var errNoHike = errors.New("no hike reaches the bottom row")

func (d *day23) Part1() (solver.Solution, error) {
	n, ok := d.longestHike(true)
	if !ok {
		return solver.Solution{}, errNoHike
	}
	return solver.NewSolution("Longest hike", n), nil
}

func (d *day23) Part2() (solver.Solution, error) {
	n, ok := d.longestHike(false)
	if !ok {
		return solver.Solution{}, errNoHike
	}
	return solver.NewSolution("Longest hike on dry slopes", n), nil
}
