package year2025

import (
	"fmt"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day11 struct {
	outputs map[string][]string
}

// NewDay11 solves "Reactor".
func NewDay11(input string) (solver.Solver, error) {
	d := &day11{outputs: map[string][]string{}}
	for _, line := range parse.Lines(input) {
		device, outs, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid device %q", line)
		}
		d.outputs[device] = strings.Fields(outs)
	}
	return d, nil
}

// paths counts the routes from one device to another. The rack has no loops.
func (d *day11) paths(from, to string) int {
	memo := map[string]int{}
	var count func(string) int
	count = func(n string) int {
		if n == to {
			return 1
		}
		if c, ok := memo[n]; ok {
			return c
		}
		memo[n] = 0
		c := 0
		for _, next := range d.outputs[n] {
			c += count(next)
		}
		memo[n] = c
		return c
	}
	return count(from)
}

func (d *day11) Part1() (solver.Solution, error) {
	return solver.NewSolution("Paths to `out`", d.paths("you", "out")), nil
}

func (d *day11) Part2() (solver.Solution, error) {
	viaDac := d.paths("svr", "dac") * d.paths("dac", "fft") * d.paths("fft", "out")
	viaFft := d.paths("svr", "fft") * d.paths("fft", "dac") * d.paths("dac", "out")
	return solver.NewSolution("Paths with `fft` and `dac`", viaDac+viaFft), nil
}
