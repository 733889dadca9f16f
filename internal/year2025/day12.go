package year2025

import (
	"fmt"
	"strings"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type treeRegion struct {
	width, height int
	counts        []int
}

type day12 struct {
	// cells holds how many tiles each present shape covers.
	cells   []int
	regions []treeRegion
}

// NewDay12 solves "Christmas Tree Farm".
func NewDay12(input string) (solver.Solver, error) {
	d := &day12{}
	for _, block := range parse.Blocks(input) {
		header, body, _ := strings.Cut(block, "\n")
		if strings.HasSuffix(header, ":") {
			d.cells = append(d.cells, grid.Parse(body).Count('#'))
			continue
		}
		for _, line := range parse.Lines(block) {
			size, counts, ok := strings.Cut(line, ":")
			w, h, ok2 := strings.Cut(size, "x")
			if !ok || !ok2 {
				return nil, fmt.Errorf("invalid region %q", line)
			}
			dims, err := parse.Ints(w + " " + h)
			if err != nil {
				return nil, err
			}
			r := treeRegion{width: dims[0], height: dims[1]}
			if r.counts, err = parse.Ints(counts); err != nil {
				return nil, err
			}
			if len(r.counts) > len(d.cells) {
				return nil, fmt.Errorf("region %q lists %d shapes, only %d are known", line, len(r.counts), len(d.cells))
			}
			d.regions = append(d.regions, r)
		}
	}
	return d, nil
}

// fits decides a region without packing: presents that each get their own
// 3x3 slot always fit, and presents covering more tiles than the region
// never do. Anything between needs a packing search.
func (d *day12) fits(r treeRegion) (bool, error) {
	presents, tiles := 0, 0
	for i, n := range r.counts {
		presents += n
		tiles += n * d.cells[i]
	}
	switch {
	case presents <= (r.width/3)*(r.height/3):
		return true, nil
	case tiles > r.width*r.height:
		return false, nil
	}
	return false, fmt.Errorf("region %dx%d needs a packing search", r.width, r.height)
}

func (d *day12) Part1() (solver.Solution, error) {
	fitting := 0
	for _, r := range d.regions {
		ok, err := d.fits(r)
		if err != nil {
			return solver.Solution{}, err
		}
		if ok {
			fitting++
		}
	}
	return solver.NewSolution("Part 1", fitting), nil
}

// Part2 has no puzzle: the last day's second star is free.
func (d *day12) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", "n/a"), nil
}
