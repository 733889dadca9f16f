package year2024

import (
	"errors"
	"iter"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/search"
	"aoc-solver/internal/solver"
)

type day16 struct {
	maze       *grid.Grid
	start, end grid.Point
}

// NewDay16 solves "Reindeer Maze".
func NewDay16(input string) (solver.Solver, error) {
	maze := grid.Parse(input)
	start, ok := maze.Find('S')
	end, ok2 := maze.Find('E')
	if !ok || !ok2 {
		return nil, errors.New("maze needs a start and an end tile")
	}
	return &day16{maze: maze, start: start, end: end}, nil
}

// reindeer is a search node; facing indexes grid.Cardinals.
type reindeer struct {
	at     grid.Point
	facing int
}

// moves yields the steps a reindeer can take. Backwards runs the maze in
// reverse, for searching from the end tile.
func (d *day16) moves(backwards bool) search.Edges[reindeer] {
	return func(r reindeer) iter.Seq2[reindeer, int] {
		return func(yield func(reindeer, int) bool) {
			dir := grid.Cardinals[r.facing]
			if backwards {
				dir = grid.Cardinals[(r.facing+2)%4]
			}
			if next := r.at.Add(dir); d.maze.InBounds(next) && d.maze.At(next) != '#' {
				if !yield(reindeer{at: next, facing: r.facing}, 1) {
					return
				}
			}
			if !yield(reindeer{at: r.at, facing: (r.facing + 1) % 4}, 1000) {
				return
			}
			yield(reindeer{at: r.at, facing: (r.facing + 3) % 4}, 1000)
		}
	}
}

var errNoPath = errors.New("no path through the maze")

// best returns the lowest score plus the scores of every node from the start
// and to the end.
func (d *day16) best() (int, map[reindeer]int, map[reindeer]int, error) {
	from := search.Distances([]reindeer{{at: d.start, facing: 1}}, d.moves(false))
	var ends []reindeer
	for facing := range grid.Cardinals {
		ends = append(ends, reindeer{at: d.end, facing: facing})
	}
	to := search.Distances(ends, d.moves(true))
	lowest := -1
	for _, e := range ends {
		if s, ok := from[e]; ok && (lowest < 0 || s < lowest) {
			lowest = s
		}
	}
	if lowest < 0 {
		return 0, nil, nil, errNoPath
	}
	return lowest, from, to, nil
}

func (d *day16) Part1() (solver.Solution, error) {
	lowest, _, _, err := d.best()
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Part 1", lowest), nil
}

func (d *day16) Part2() (solver.Solution, error) {
	lowest, from, to, err := d.best()
	if err != nil {
		return solver.Solution{}, err
	}
	tiles := map[grid.Point]bool{}
	for r, s := range from {
		if t, ok := to[r]; ok && s+t == lowest {
			tiles[r.at] = true
		}
	}
	return solver.NewSolution("Part 2", len(tiles)), nil
}
