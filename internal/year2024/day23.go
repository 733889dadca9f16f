package year2024

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day23 struct {
	links map[string]map[string]bool
}

// NewDay23 solves "LAN Party".
func NewDay23(input string) (solver.Solver, error) {
	d := &day23{links: map[string]map[string]bool{}}
	for _, line := range parse.Lines(input) {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			return nil, fmt.Errorf("invalid connection %q", line)
		}
		d.link(a, b)
		d.link(b, a)
	}
	return d, nil
}

func (d *day23) link(a, b string) {
	if d.links[a] == nil {
		d.links[a] = map[string]bool{}
	}
	d.links[a][b] = true
}

func (d *day23) Part1() (solver.Solution, error) {
	triangles := 0
	names := slices.Sorted(maps.Keys(d.links))
	for i, a := range names {
		for j := i + 1; j < len(names); j++ {
			b := names[j]
			if !d.links[a][b] {
				continue
			}
			for _, c := range names[j+1:] {
				if d.links[a][c] && d.links[b][c] &&
					(a[0] == 't' || b[0] == 't' || c[0] == 't') {
					triangles++
				}
			}
		}
	}
	return solver.NewSolution("Part 1", triangles), nil
}

// largestClique runs Bron-Kerbosch without pivoting; names are visited in
// sorted order so ties resolve the same way every run.
func (d *day23) largestClique(clique []string, candidates, excluded []string, best *[]string) {
	if len(candidates) == 0 && len(excluded) == 0 {
		if len(clique) > len(*best) {
			*best = slices.Clone(clique)
		}
		return
	}
	for len(candidates) > 0 {
		v := candidates[0]
		keep := func(names []string) []string {
			var out []string
			for _, n := range names {
				if d.links[v][n] {
					out = append(out, n)
				}
			}
			return out
		}
		d.largestClique(append(clique, v), keep(candidates), keep(excluded), best)
		candidates = candidates[1:]
		excluded = append(excluded, v)
	}
}

func (d *day23) Part2() (solver.Solution, error) {
	var best []string
	d.largestClique(nil, slices.Sorted(maps.Keys(d.links)), nil, &best)
	slices.Sort(best)
	return solver.NewSolution("Part 2", strings.Join(best, ",")), nil
}
