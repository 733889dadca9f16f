package year2023

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type hailstone struct {
	pos, vel [3]int
}

type day24 struct {
	stones []hailstone
}

// NewDay24 solves "Never Tell Me The Odds".
func NewDay24(input string) (solver.Solver, error) {
	d := &day24{}
	for _, line := range parse.Lines(input) {
		pos, vel, ok := strings.Cut(line, "@")
		if !ok {
			return nil, fmt.Errorf("require position and velocity in %q", line)
		}
		p, err := parse.IntsSep(pos, ",")
		if err != nil {
			return nil, err
		}
		v, err := parse.IntsSep(vel, ",")
		if err != nil {
			return nil, err
		}
		if len(p) != 3 || len(v) != 3 {
			return nil, fmt.Errorf("too few values in %q", line)
		}
		d.stones = append(d.stones, hailstone{pos: [3]int(p), vel: [3]int(v)})
	}
	return d, nil
}

// crossings counts the pairs whose future paths cross inside the square
// [lo, hi] when the z axis is ignored.
func (d *day24) crossings(lo, hi float64) int {
	count := 0
	for i, a := range d.stones {
		for _, b := range d.stones[i+1:] {
			den := float64(a.vel[0]*b.vel[1] - a.vel[1]*b.vel[0])
			if den == 0 {
				continue
			}
			dx, dy := float64(b.pos[0]-a.pos[0]), float64(b.pos[1]-a.pos[1])
			t := (dx*float64(b.vel[1]) - dy*float64(b.vel[0])) / den
			u := (dx*float64(a.vel[1]) - dy*float64(a.vel[0])) / den
			if t < 0 || u < 0 {
				continue
			}
			x := float64(a.pos[0]) + float64(a.vel[0])*t
			y := float64(a.pos[1]) + float64(a.vel[1])*t
			if lo <= x && x <= hi && lo <= y && y <= hi {
				count++
			}
		}
	}
	return count
}

func (d *day24) Part1() (solver.Solution, error) {
	return solver.NewSolution("Intersections", d.crossings(200_000_000_000_000, 400_000_000_000_000)), nil
}

func cross(a, b [3]int) [3]int {
	return [3]int{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

// Part2 finds the rock throw that hits every hailstone. For stones i and j
// the unknown position P and velocity V satisfy
// P×(vj−vi) + (pj−pi)×V = pj×vj − pi×vi, which is linear; two pairs give six
// equations solved exactly over the rationals.
func (d *day24) Part2() (solver.Solution, error) {
	if len(d.stones) < 3 {
		return solver.Solution{}, errors.New("need at least three hailstones")
	}
	var rows [][7]int
	s0 := d.stones[0]
	for _, sj := range d.stones[1:3] {
		var w, u [3]int
		for k := range 3 {
			w[k] = sj.vel[k] - s0.vel[k]
			u[k] = sj.pos[k] - s0.pos[k]
		}
		cj, c0 := cross(sj.pos, sj.vel), cross(s0.pos, s0.vel)
		rows = append(rows,
			[7]int{0, w[2], -w[1], 0, -u[2], u[1], cj[0] - c0[0]},
			[7]int{-w[2], 0, w[0], u[2], 0, -u[0], cj[1] - c0[1]},
			[7]int{w[1], -w[0], 0, -u[1], u[0], 0, cj[2] - c0[2]},
		)
	}
	sol, err := solveLinear(rows)
	if err != nil {
		return solver.Solution{}, err
	}
	sum := new(big.Rat).Add(sol[0], sol[1])
	sum.Add(sum, sol[2])
	if !sum.IsInt() {
		return solver.Solution{}, errors.New("rock position is not integral")
	}
	return solver.NewSolution("Sum of the rock's starting coordinates", sum.Num().String()), nil
}

// solveLinear runs Gauss-Jordan elimination on an augmented 6x7 system.
func solveLinear(rows [][7]int) ([]*big.Rat, error) {
	n := len(rows)
	m := make([][]*big.Rat, n)
	for i, r := range rows {
		m[i] = make([]*big.Rat, len(r))
		for j, v := range r {
			m[i][j] = big.NewRat(int64(v), 1)
		}
	}
	for col := range n {
		pivot := -1
		for r := col; r < n; r++ {
			if m[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, errors.New("hailstones do not determine a single throw")
		}
		m[col], m[pivot] = m[pivot], m[col]
		for r := range n {
			if r == col || m[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(m[r][col], m[col][col])
			for c := col; c <= n; c++ {
				m[r][c] = new(big.Rat).Sub(m[r][c], new(big.Rat).Mul(f, m[col][c]))
			}
		}
	}
	out := make([]*big.Rat, n)
	for i := range n {
		out[i] = new(big.Rat).Quo(m[i][n], m[i][i])
	}
	return out, nil
}
