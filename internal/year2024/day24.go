package year2024

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type gate struct {
	a, op, b string
}

type day24 struct {
	inputs map[string]int
	gates  map[string]gate
}

// NewDay24 solves "Crossed Wires".
func NewDay24(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, errors.New("expected wire values and gates")
	}
	d := &day24{inputs: map[string]int{}, gates: map[string]gate{}}
	for _, line := range parse.Lines(blocks[0]) {
		wire, value, ok := strings.Cut(line, ": ")
		if !ok || value != "0" && value != "1" {
			return nil, fmt.Errorf("invalid wire value %q", line)
		}
		d.inputs[wire] = int(value[0] - '0')
	}
	for _, line := range parse.Lines(blocks[1]) {
		f := strings.Fields(line)
		if len(f) != 5 || f[3] != "->" {
			return nil, fmt.Errorf("invalid gate %q", line)
		}
		switch f[1] {
		case "AND", "OR", "XOR":
		default:
			return nil, fmt.Errorf("unknown gate %q", f[1])
		}
		d.gates[f[4]] = gate{a: f[0], op: f[1], b: f[2]}
	}
	return d, nil
}

func (d *day24) eval(wire string, values map[string]int) (int, error) {
	if v, ok := values[wire]; ok {
		return v, nil
	}
	g, ok := d.gates[wire]
	if !ok {
		return 0, fmt.Errorf("wire %s has no value", wire)
	}
	values[wire] = -1
	a, err := d.eval(g.a, values)
	if err != nil {
		return 0, err
	}
	b, err := d.eval(g.b, values)
	if err != nil {
		return 0, err
	}
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("wire %s feeds back into itself", wire)
	}
	var v int
	switch g.op {
	case "AND":
		v = a & b
	case "OR":
		v = a | b
	default:
		v = a ^ b
	}
	values[wire] = v
	return v, nil
}

func (d *day24) outputs() []string {
	var zs []string
	for w := range d.gates {
		if strings.HasPrefix(w, "z") {
			zs = append(zs, w)
		}
	}
	slices.Sort(zs)
	return zs
}

func (d *day24) Part1() (solver.Solution, error) {
	values := map[string]int{}
	for w, v := range d.inputs {
		values[w] = v
	}
	zs := d.outputs()
	n := 0
	for i := len(zs) - 1; i >= 0; i-- {
		v, err := d.eval(zs[i], values)
		if err != nil {
			return solver.Solution{}, err
		}
		n = n<<1 | v
	}
	return solver.NewSolution("Part 1", n), nil
}

// swapped checks every gate against the shape of a ripple-carry adder and
// returns the outputs of the gates that break it.
func (d *day24) swapped() []string {
	zs := d.outputs()
	if len(zs) == 0 {
		return nil
	}
	last := zs[len(zs)-1]
	feeds := map[string][]string{}
	for _, g := range d.gates {
		feeds[g.a] = append(feeds[g.a], g.op)
		feeds[g.b] = append(feeds[g.b], g.op)
	}
	isInput := func(w string) bool { return w[0] == 'x' || w[0] == 'y' }
	var wrong []string
	for out, g := range d.gates {
		first := g.a == "x00" || g.a == "y00"
		bad := false
		switch {
		case out[0] == 'z' && out != last && g.op != "XOR":
			bad = true
		case g.op == "XOR" && !isInput(g.a) && out[0] != 'z':
			bad = true
		case g.op == "XOR" && isInput(g.a) && !first && !slices.Contains(feeds[out], "XOR"):
			bad = true
		case g.op == "AND" && !first && !slices.Contains(feeds[out], "OR"):
			bad = true
		}
		if bad {
			wrong = append(wrong, out)
		}
	}
	slices.Sort(wrong)
	return wrong
}

func (d *day24) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", strings.Join(d.swapped(), ",")), nil
}
