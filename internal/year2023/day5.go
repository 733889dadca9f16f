package year2023

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

// mapRule sends [src, src+length) to [dst, dst+length).
type mapRule struct {
	dst, src, length int
}

// span is the half-open range [lo, hi).
type span struct {
	lo, hi int
}

type day5 struct {
	seeds  []int
	stages [][]mapRule // each sorted by src
}

// NewDay5 solves "If You Give A Seed A Fertilizer".
func NewDay5(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, errors.New("must define seeds")
	}
	_, seeds, ok := strings.Cut(blocks[0], ":")
	if !ok {
		return nil, errors.New("must define seeds")
	}
	d := &day5{}
	var err error
	if d.seeds, err = parse.Ints(seeds); err != nil {
		return nil, err
	}
	for _, block := range blocks[1:] {
		lines := parse.Lines(block)
		var stage []mapRule
		for _, line := range lines[1:] {
			n, err := parse.Ints(line)
			if err != nil {
				return nil, err
			}
			if len(n) != 3 {
				return nil, fmt.Errorf("malformed mapping %q", line)
			}
			stage = append(stage, mapRule{dst: n[0], src: n[1], length: n[2]})
		}
		slices.SortFunc(stage, func(a, b mapRule) int { return cmp.Compare(a.src, b.src) })
		d.stages = append(d.stages, stage)
	}
	return d, nil
}

func convert(v int, stage []mapRule) int {
	for _, r := range stage {
		if r.src <= v && v < r.src+r.length {
			return r.dst + v - r.src
		}
	}
	return v
}

// convertSpans maps whole ranges through a stage, splitting them where rules
// begin and end.
func convertSpans(in []span, stage []mapRule) []span {
	var out []span
	for _, s := range in {
		pending := []span{s}
		for _, r := range stage {
			var rest []span
			for _, p := range pending {
				lo, hi := max(p.lo, r.src), min(p.hi, r.src+r.length)
				if lo >= hi {
					rest = append(rest, p)
					continue
				}
				out = append(out, span{lo: lo - r.src + r.dst, hi: hi - r.src + r.dst})
				if p.lo < lo {
					rest = append(rest, span{lo: p.lo, hi: lo})
				}
				if hi < p.hi {
					rest = append(rest, span{lo: hi, hi: p.hi})
				}
			}
			pending = rest
		}
		out = append(out, pending...)
	}
	return out
}

func (d *day5) Part1() (solver.Solution, error) {
	if len(d.seeds) == 0 {
		return solver.Solution{}, errors.New("no seeds")
	}
	lowest := -1
	for _, v := range d.seeds {
		for _, stage := range d.stages {
			v = convert(v, stage)
		}
		if lowest < 0 || v < lowest {
			lowest = v
		}
	}
	return solver.NewSolution("Lowest location (part 1)", lowest), nil
}

func (d *day5) Part2() (solver.Solution, error) {
	if len(d.seeds) == 0 || len(d.seeds)%2 != 0 {
		return solver.Solution{}, errors.New("seeds must come in start and length pairs")
	}
	var spans []span
	for i := 0; i < len(d.seeds); i += 2 {
		spans = append(spans, span{lo: d.seeds[i], hi: d.seeds[i] + d.seeds[i+1]})
	}
	for _, stage := range d.stages {
		spans = convertSpans(spans, stage)
	}
	lowest := slices.MinFunc(spans, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })
	return solver.NewSolution("Lowest location (part 2)", lowest.lo), nil
}
