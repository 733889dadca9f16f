package year2023

import (
	"errors"
	"fmt"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

// pipeEnds maps each pipe tile to the two directions it connects.
var pipeEnds = map[byte][2]grid.Point{
	'|': {grid.Up, grid.Down},
	'-': {grid.Left, grid.Right},
	'L': {grid.Up, grid.Right},
	'J': {grid.Up, grid.Left},
	'7': {grid.Down, grid.Left},
	'F': {grid.Down, grid.Right},
}

type day10 struct {
	field *grid.Grid
	loop  map[grid.Point]bool
}

// NewDay10 solves "Pipe Maze".
func NewDay10(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	start, ok := g.Find('S')
	if !ok {
		return nil, errors.New("start position is required")
	}
	var ends []grid.Point
	for _, d := range grid.Cardinals {
		q := start.Add(d)
		if !g.InBounds(q) {
			continue
		}
		if e, ok := pipeEnds[g.At(q)]; ok && (e[0] == reverse(d) || e[1] == reverse(d)) {
			ends = append(ends, d)
		}
	}
	if len(ends) != 2 {
		return nil, errors.New("start tile must join exactly two pipes")
	}
	for tile, e := range pipeEnds {
		if e == [2]grid.Point(ends) || e == [2]grid.Point{ends[1], ends[0]} {
			g.Set(start, tile)
		}
	}

	d := &day10{field: g, loop: map[grid.Point]bool{start: true}}
	p, dir := start.Add(ends[0]), ends[0]
	for p != start {
		d.loop[p] = true
		e, ok := pipeEnds[g.At(p)]
		if !ok || (e[0] != reverse(dir) && e[1] != reverse(dir)) {
			return nil, fmt.Errorf("loop broken at row %d, column %d", p.Row, p.Col)
		}
		if e[0] == reverse(dir) {
			dir = e[1]
		} else {
			dir = e[0]
		}
		p = p.Add(dir)
	}
	return d, nil
}

func reverse(d grid.Point) grid.Point { return grid.Point{Row: -d.Row, Col: -d.Col} }

func (d *day10) Part1() (solver.Solution, error) {
	return solver.NewSolution("Distance of farthest point from starting position", len(d.loop)/2), nil
}

// Part2 scans each row and flips inside/outside on every loop tile that
// reaches north.
func (d *day10) Part2() (solver.Solution, error) {
	inner := 0
	for r := range d.field.Height() {
		inside := false
		for c := range d.field.Width() {
			p := grid.Point{Row: r, Col: c}
			switch {
			case d.loop[p]:
				if pipeEnds[d.field.At(p)][0] == grid.Up {
					inside = !inside
				}
			case inside:
				inner++
			}
		}
	}
	return solver.NewSolution("Tiles inside the loop", inner), nil
}
