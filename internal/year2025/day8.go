package year2025

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type junctionBox [3]int

type boxPair struct {
	dist, a, b int
}

type day8 struct {
	boxes []junctionBox
	pairs []boxPair
}

// NewDay8 solves "Playground".
func NewDay8(input string) (solver.Solver, error) {
	d := &day8{}
	for _, line := range parse.Lines(input) {
		n, err := parse.IntsSep(line, ",")
		if err != nil || len(n) != 3 {
			return nil, fmt.Errorf("invalid junction box %q", line)
		}
		d.boxes = append(d.boxes, junctionBox(n))
	}
	if len(d.boxes) < 3 {
		return nil, errors.New("need at least three junction boxes")
	}
	for i, a := range d.boxes {
		for j := i + 1; j < len(d.boxes); j++ {
			b := d.boxes[j]
			dist := 0
			for k := range a {
				dist += (a[k] - b[k]) * (a[k] - b[k])
			}
			d.pairs = append(d.pairs, boxPair{dist: dist, a: i, b: j})
		}
	}
	slices.SortStableFunc(d.pairs, func(x, y boxPair) int { return cmp.Compare(x.dist, y.dist) })
	return d, nil
}

// circuits is a union-find over junction boxes.
type circuits struct {
	parent, size []int
	count        int
}

func newCircuits(n int) *circuits {
	c := &circuits{parent: make([]int, n), size: make([]int, n), count: n}
	for i := range n {
		c.parent[i], c.size[i] = i, 1
	}
	return c
}

func (c *circuits) find(i int) int {
	for c.parent[i] != i {
		c.parent[i] = c.parent[c.parent[i]]
		i = c.parent[i]
	}
	return i
}

// join connects two boxes and reports whether they were in separate circuits.
func (c *circuits) join(a, b int) bool {
	a, b = c.find(a), c.find(b)
	if a == b {
		return false
	}
	if c.size[a] < c.size[b] {
		a, b = b, a
	}
	c.parent[b] = a
	c.size[a] += c.size[b]
	c.count--
	return true
}

// connect wires up the n closest pairs and multiplies the sizes of the three
// largest circuits.
func (d *day8) connect(n int) int {
	c := newCircuits(len(d.boxes))
	for _, p := range d.pairs[:min(n, len(d.pairs))] {
		c.join(p.a, p.b)
	}
	var sizes []int
	for i := range d.boxes {
		if c.find(i) == i {
			sizes = append(sizes, c.size[i])
		}
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	product := 1
	for _, s := range sizes[:min(3, len(sizes))] {
		product *= s
	}
	return product
}

func (d *day8) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.connect(1000)), nil
}

func (d *day8) Part2() (solver.Solution, error) {
	c := newCircuits(len(d.boxes))
	for _, p := range d.pairs {
		if c.join(p.a, p.b) && c.count == 1 {
			return solver.NewSolution("Part 2", d.boxes[p.a][0]*d.boxes[p.b][0]), nil
		}
	}
	return solver.Solution{}, errors.New("junction boxes never form a single circuit")
}
