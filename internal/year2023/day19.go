package year2023

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

var (
	reWorkflow = regexp.MustCompile(`^(\w+)\{(.*)\}$`)
	rePart     = regexp.MustCompile(`^\{x=(\d+),m=(\d+),a=(\d+),s=(\d+)\}$`)
	reRule     = regexp.MustCompile(`^([xmas])([<>])(\d+):(\w+)$`)
)

// machinePart holds the x, m, a and s ratings in that order.
type machinePart [4]int

// workflowRule sends a part to target when rating cat compares true. The
// last rule of a workflow has no condition.
type workflowRule struct {
	cat       int // -1 for the fallback
	less      bool
	threshold int
	target    string
}

type day19 struct {
	workflows map[string][]workflowRule
	parts     []machinePart
}

// NewDay19 solves "Aplenty".
func NewDay19(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("expected workflows and parts, got %d blocks", len(blocks))
	}
	d := &day19{workflows: map[string][]workflowRule{}}
	for _, line := range parse.Lines(blocks[0]) {
		m := reWorkflow.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("invalid workflow declaration %q", line)
		}
		var rules []workflowRule
		for _, r := range strings.Split(m[2], ",") {
			if !strings.Contains(r, ":") {
				rules = append(rules, workflowRule{cat: -1, target: r})
				continue
			}
			rm := reRule.FindStringSubmatch(r)
			if rm == nil {
				return nil, fmt.Errorf("invalid rule %q", r)
			}
			threshold, _ := strconv.Atoi(rm[3])
			rules = append(rules, workflowRule{
				cat:       strings.Index("xmas", rm[1]),
				less:      rm[2] == "<",
				threshold: threshold,
				target:    rm[4],
			})
		}
		if len(rules) == 0 || rules[len(rules)-1].cat != -1 {
			return nil, fmt.Errorf("workflow %s has no fallback", m[1])
		}
		d.workflows[m[1]] = rules
	}
	for _, line := range parse.Lines(blocks[1]) {
		m := rePart.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("invalid machine part %q", line)
		}
		var p machinePart
		for i := range p {
			p[i], _ = strconv.Atoi(m[i+1])
		}
		d.parts = append(d.parts, p)
	}
	if _, ok := d.workflows["in"]; !ok {
		return nil, errors.New(`no "in" workflow`)
	}
	return d, nil
}

func (r workflowRule) matches(p machinePart) bool {
	switch {
	case r.cat < 0:
		return true
	case r.less:
		return p[r.cat] < r.threshold
	}
	return p[r.cat] > r.threshold
}

func (d *day19) accepted(p machinePart) (bool, error) {
	name := "in"
	for range len(d.workflows) + 1 {
		switch name {
		case "A":
			return true, nil
		case "R":
			return false, nil
		}
		rules, ok := d.workflows[name]
		if !ok {
			return false, fmt.Errorf("unknown workflow %q", name)
		}
		for _, r := range rules {
			if r.matches(p) {
				name = r.target
				break
			}
		}
	}
	return false, errors.New("workflows loop")
}

func (d *day19) Part1() (solver.Solution, error) {
	total := 0
	for _, p := range d.parts {
		ok, err := d.accepted(p)
		if err != nil {
			return solver.Solution{}, err
		}
		if ok {
			total += p[0] + p[1] + p[2] + p[3]
		}
	}
	return solver.NewSolution("Sum of accepted part ratings", total), nil
}

// partRange holds inclusive rating bounds per category.
type partRange [4][2]int

// combinations counts the parts in r that the workflow name accepts.
func (d *day19) combinations(name string, r partRange, depth int) (int, error) {
	switch {
	case name == "R":
		return 0, nil
	case name == "A":
		n := 1
		for _, b := range r {
			n *= b[1] - b[0] + 1
		}
		return n, nil
	case depth > len(d.workflows):
		return 0, errors.New("workflows loop")
	}
	rules, ok := d.workflows[name]
	if !ok {
		return 0, fmt.Errorf("unknown workflow %q", name)
	}
	total := 0
	for _, rule := range rules {
		if rule.cat < 0 {
			n, err := d.combinations(rule.target, r, depth+1)
			return total + n, err
		}
		lo, hi := r[rule.cat][0], r[rule.cat][1]
		var yes, no [2]int
		if rule.less {
			yes, no = [2]int{lo, min(hi, rule.threshold-1)}, [2]int{max(lo, rule.threshold), hi}
		} else {
			yes, no = [2]int{max(lo, rule.threshold+1), hi}, [2]int{lo, min(hi, rule.threshold)}
		}
		if yes[0] <= yes[1] {
			sub := r
			sub[rule.cat] = yes
			n, err := d.combinations(rule.target, sub, depth+1)
			if err != nil {
				return 0, err
			}
			total += n
		}
		if no[0] > no[1] {
			break
		}
		r[rule.cat] = no
	}
	return total, nil
}

func (d *day19) Part2() (solver.Solution, error) {
	all := partRange{{1, 4000}, {1, 4000}, {1, 4000}, {1, 4000}}
	n, err := d.combinations("in", all, 0)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Accepted rating combinations", n), nil
}
