package year2024

import (
	"errors"
	"fmt"
	"strings"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

var moveDir = map[rune]grid.Point{'^': grid.Up, '>': grid.Right, 'v': grid.Down, '<': grid.Left}

type day15 struct {
	warehouse string
	moves     []grid.Point
}

// NewDay15 solves "Warehouse Woes".
func NewDay15(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, errors.New("expected a warehouse map and a move list")
	}
	d := &day15{warehouse: blocks[0]}
	for _, r := range blocks[1] {
		if r == '\n' {
			continue
		}
		dir, ok := moveDir[r]
		if !ok {
			return nil, fmt.Errorf("invalid move %q", r)
		}
		d.moves = append(d.moves, dir)
	}
	return d, nil
}

// push moves the robot at p one step in dir along with every box it pushes.
// Wide boxes moving vertically drag their other half along. Nothing moves if
// any pushed cell would hit a wall.
func push(g *grid.Grid, p, dir grid.Point) grid.Point {
	var moving []grid.Point
	seen := map[grid.Point]bool{}
	front := []grid.Point{p}
	for len(front) > 0 {
		var next []grid.Point
		for _, q := range front {
			if seen[q] {
				continue
			}
			seen[q] = true
			moving = append(moving, q)
			ahead := q.Add(dir)
			switch g.At(ahead) {
			case '#':
				return p
			case 'O':
				next = append(next, ahead)
			case '[':
				next = append(next, ahead)
				if dir.Row != 0 {
					next = append(next, ahead.Add(grid.Right))
				}
			case ']':
				next = append(next, ahead)
				if dir.Row != 0 {
					next = append(next, ahead.Add(grid.Left))
				}
			}
		}
		front = next
	}
	cells := make([]byte, len(moving))
	for i, q := range moving {
		cells[i] = g.At(q)
		g.Set(q, '.')
	}
	for i, q := range moving {
		g.Set(q.Add(dir), cells[i])
	}
	return p.Add(dir)
}

// gps runs every move on the warehouse and sums the coordinates of the boxes.
func (d *day15) gps(warehouse string) (int, error) {
	g := grid.Parse(warehouse)
	bot, ok := g.Find('@')
	if !ok {
		return 0, errors.New("no robot in the warehouse")
	}
	for _, dir := range d.moves {
		bot = push(g, bot, dir)
	}
	sum := 0
	for p, b := range g.All() {
		if b == 'O' || b == '[' {
			sum += 100*p.Row + p.Col
		}
	}
	return sum, nil
}

var widen = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

func (d *day15) Part1() (solver.Solution, error) {
	sum, err := d.gps(d.warehouse)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Part 1", sum), nil
}

func (d *day15) Part2() (solver.Solution, error) {
	sum, err := d.gps(widen.Replace(d.warehouse))
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Part 2", sum), nil
}
