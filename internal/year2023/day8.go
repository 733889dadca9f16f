package year2023

import (
	"fmt"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day8 struct {
	turns string
	left  map[string]string
	right map[string]string
	nodes []string // in input order
}

// NewDay8 solves "Haunted Wasteland".
func NewDay8(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("expected instructions and network, got %d blocks", len(blocks))
	}
	d := &day8{
		turns: strings.TrimSpace(blocks[0]),
		left:  map[string]string{},
		right: map[string]string{},
	}
	for _, line := range parse.Lines(blocks[1]) {
		node, targets, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		l, r, ok := strings.Cut(strings.Trim(targets, "()"), ", ")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		d.left[node], d.right[node] = l, r
		d.nodes = append(d.nodes, node)
	}
	return d, nil
}

// steps walks from start until done holds, returning the number of steps.
func (d *day8) steps(start string, done func(string) bool) (int, error) {
	node := start
	limit := len(d.turns) * len(d.nodes) * len(d.nodes)
	for n := 0; ; n++ {
		if done(node) {
			return n, nil
		}
		if n > limit {
			return 0, fmt.Errorf("no exit reachable from %s", start)
		}
		next := d.left
		if d.turns[n%len(d.turns)] == 'R' {
			next = d.right
		}
		var ok bool
		if node, ok = next[node]; !ok {
			return 0, fmt.Errorf("unknown node reached from %s", start)
		}
	}
}

func (d *day8) Part1() (solver.Solution, error) {
	n, err := d.steps("AAA", func(s string) bool { return s == "ZZZ" })
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Steps to reach ZZZ", n), nil
}

// Part2 assumes, like the puzzle inputs do, that each ghost loops back to its
// exit after exactly as many steps as it took to first reach it.
func (d *day8) Part2() (solver.Solution, error) {
	result := 1
	for _, node := range d.nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		n, err := d.steps(node, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return solver.Solution{}, err
		}
		result = lcm(result, n)
	}
	return solver.NewSolution("Steps to be only on nodes ending with Z", result), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
