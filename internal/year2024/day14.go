package year2024

import (
	"errors"
	"fmt"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

const (
	bathroomWidth  = 101
	bathroomHeight = 103
)

type robot struct {
	px, py, vx, vy int
}

// after returns the robot's tile after the given seconds in a w x h room.
func (r robot) after(seconds, w, h int) (int, int) {
	x := ((r.px+r.vx*seconds)%w + w) % w
	y := ((r.py+r.vy*seconds)%h + h) % h
	return x, y
}

type day14 struct {
	robots []robot
}

// NewDay14 solves "Restroom Redoubt".
func NewDay14(input string) (solver.Solver, error) {
	d := &day14{}
	for _, line := range parse.Lines(input) {
		n := parse.AllInts(line)
		if len(n) != 4 {
			return nil, fmt.Errorf("invalid robot %q", line)
		}
		d.robots = append(d.robots, robot{n[0], n[1], n[2], n[3]})
	}
	return d, nil
}

// safetyFactor multiplies the robot counts of the four quadrants after 100
// seconds. Robots on the middle lines count for none.
func (d *day14) safetyFactor(w, h int) int {
	var quadrants [4]int
	for _, r := range d.robots {
		x, y := r.after(100, w, h)
		if x == w/2 || y == h/2 {
			continue
		}
		q := 0
		if x > w/2 {
			q++
		}
		if y > h/2 {
			q += 2
		}
		quadrants[q]++
	}
	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]
}

// treeAt returns the first second at which some row holds a run of more than
// ten robots, the frame of the christmas tree picture. Positions repeat after
// w*h seconds, so the search stops there.
func (d *day14) treeAt(w, h int) (int, bool) {
	for s := range w * h {
		occupied := make([]bool, w*h)
		for _, r := range d.robots {
			x, y := r.after(s, w, h)
			occupied[y*w+x] = true
		}
		for y := range h {
			streak := 0
			for x := range w {
				if !occupied[y*w+x] {
					streak = 0
					continue
				}
				if streak++; streak > 10 {
					return s, true
				}
			}
		}
	}
	return 0, false
}

func (d *day14) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.safetyFactor(bathroomWidth, bathroomHeight)), nil
}

func (d *day14) Part2() (solver.Solution, error) {
	s, ok := d.treeAt(bathroomWidth, bathroomHeight)
	if !ok {
		return solver.Solution{}, errors.New("robots never draw a tree")
	}
	return solver.NewSolution("Part 2", s), nil
}
