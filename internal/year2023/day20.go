package year2023

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type pulseModule struct {
	kind    byte // '%' flip-flop, '&' conjunction, 'b' broadcaster
	outputs []string
	inputs  []string
}

type pulse struct {
	from, to string
	high     bool
}

type day20 struct {
	modules map[string]*pulseModule
}

// NewDay20 solves "Pulse Propagation".
func NewDay20(input string) (solver.Solver, error) {
	d := &day20{modules: map[string]*pulseModule{}}
	for _, line := range parse.Lines(input) {
		src, dst, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, fmt.Errorf("invalid module %q", line)
		}
		m := &pulseModule{kind: 'b'}
		switch {
		case strings.HasPrefix(src, "%"), strings.HasPrefix(src, "&"):
			m.kind, src = src[0], src[1:]
		case src != "broadcaster":
			return nil, fmt.Errorf("unknown module type %q", src)
		}
		for _, o := range strings.Split(dst, ",") {
			m.outputs = append(m.outputs, strings.TrimSpace(o))
		}
		d.modules[src] = m
	}
	if _, ok := d.modules["broadcaster"]; !ok {
		return nil, errors.New("no broadcaster")
	}
	for name, m := range d.modules {
		for _, o := range m.outputs {
			if t, ok := d.modules[o]; ok {
				t.inputs = append(t.inputs, name)
			}
		}
	}
	return d, nil
}

// machine is the mutable state of every module between button presses.
type machine struct {
	modules map[string]*pulseModule
	on      map[string]bool
	memory  map[string]map[string]bool
}

func (d *day20) machine() *machine {
	m := &machine{modules: d.modules, on: map[string]bool{}, memory: map[string]map[string]bool{}}
	for name, mod := range d.modules {
		if mod.kind == '&' {
			m.memory[name] = make(map[string]bool, len(mod.inputs))
			for _, in := range mod.inputs {
				m.memory[name][in] = false
			}
		}
	}
	return m
}

// press pushes the button once and calls seen for every pulse in the order
// they are delivered.
func (m *machine) press(seen func(pulse)) {
	queue := []pulse{{from: "button", to: "broadcaster"}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		seen(p)
		mod, ok := m.modules[p.to]
		if !ok {
			continue
		}
		out := p.high
		switch mod.kind {
		case '%':
			if p.high {
				continue
			}
			m.on[p.to] = !m.on[p.to]
			out = m.on[p.to]
		case '&':
			mem := m.memory[p.to]
			mem[p.from] = p.high
			out = false
			for _, h := range mem {
				if !h {
					out = true
					break
				}
			}
		}
		for _, o := range mod.outputs {
			queue = append(queue, pulse{from: p.to, to: o, high: out})
		}
	}
}

func (d *day20) Part1() (solver.Solution, error) {
	m := d.machine()
	low, high := 0, 0
	for range 1000 {
		m.press(func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}
	return solver.NewSolution("Low times high pulses", low*high), nil
}

// Part2 assumes rx is fed by a single conjunction whose inputs each cycle
// with their own period.
func (d *day20) Part2() (solver.Solution, error) {
	var feeder string
	for name, mod := range d.modules {
		if slices.Contains(mod.outputs, "rx") {
			feeder = name
		}
	}
	if feeder == "" || d.modules[feeder].kind != '&' {
		return solver.Solution{}, errors.New("rx is not fed by a conjunction")
	}
	first := map[string]int{}
	for _, in := range d.modules[feeder].inputs {
		first[in] = 0
	}
	m := d.machine()
	pending := len(first)
	for presses := 1; pending > 0; presses++ {
		if presses > 1_000_000 {
			return solver.Solution{}, errors.New("rx never receives a low pulse")
		}
		m.press(func(p pulse) {
			if n, ok := first[p.from]; ok && p.high && p.to == feeder && n == 0 {
				first[p.from] = presses
				pending--
			}
		})
	}
	result := 1
	for _, n := range first {
		result = lcm(result, n)
	}
	return solver.NewSolution("Button presses until rx gets a low pulse", result), nil
}
