package year2023

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day25 struct {
	names []string
	links [][]int
}

// NewDay25 solves "Snowverload".
func NewDay25(input string) (solver.Solver, error) {
	d := &day25{}
	index := map[string]int{}
	id := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(d.names)
		d.names = append(d.names, name)
		d.links = append(d.links, nil)
		return index[name]
	}
	for _, line := range parse.Lines(input) {
		src, dsts, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid input line %q", line)
		}
		a := id(strings.TrimSpace(src))
		for _, dst := range strings.Fields(dsts) {
			b := id(dst)
			d.links[a] = append(d.links[a], b)
			d.links[b] = append(d.links[b], a)
		}
	}
	return d, nil
}

type wire struct{ from, to int }

// cutSide pushes unit flow from s to t along shortest augmenting paths. When
// exactly three paths exist the wires form a three-cut and the nodes still
// reachable from s are one side of it.
func (d *day25) cutSide(s, t int) (int, bool) {
	used := map[wire]bool{}
	for paths := 0; ; paths++ {
		prev := make([]int, len(d.names))
		for i := range prev {
			prev[i] = -1
		}
		prev[s] = s
		queue := []int{s}
		reached := 1
		for len(queue) > 0 && prev[t] < 0 {
			n := queue[0]
			queue = queue[1:]
			for _, m := range d.links[n] {
				if prev[m] >= 0 || used[wire{n, m}] {
					continue
				}
				prev[m] = n
				reached++
				queue = append(queue, m)
			}
		}
		if prev[t] < 0 {
			return reached, paths == 3
		}
		if paths == 3 {
			return 0, false
		}
		for n := t; n != s; n = prev[n] {
			p := prev[n]
			if used[wire{n, p}] {
				delete(used, wire{n, p})
			} else {
				used[wire{p, n}] = true
			}
		}
	}
}

func (d *day25) Part1() (solver.Solution, error) {
	if len(d.names) < 2 {
		return solver.Solution{}, errors.New("need at least two components")
	}
	order := make([]int, len(d.names))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return strings.Compare(d.names[a], d.names[b]) })
	s := order[0]
	for _, t := range order[1:] {
		if size, ok := d.cutSide(s, t); ok {
			return solver.NewSolution("Group size product", size*(len(d.names)-size)), nil
		}
	}
	return solver.Solution{}, errors.New("no three-wire cut found")
}

func (d *day25) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", "n/a"), nil
}
