package year2024

import (
	"fmt"
	"strings"

	"aoc-solver/internal/solver"
)

// span is a run of disk blocks.
type span struct {
	start, size int
}

type day9 struct {
	files, gaps []span
}

// NewDay9 solves "Disk Fragmenter".
func NewDay9(input string) (solver.Solver, error) {
	d := &day9{}
	pos := 0
	for i, r := range strings.TrimSpace(input) {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid disk map digit %q", r)
		}
		size := int(r - '0')
		if i%2 == 0 {
			d.files = append(d.files, span{pos, size})
		} else if size > 0 {
			d.gaps = append(d.gaps, span{pos, size})
		}
		pos += size
	}
	return d, nil
}

func checksum(files []span) int {
	sum := 0
	for id, f := range files {
		for b := f.start; b < f.start+f.size; b++ {
			sum += id * b
		}
	}
	return sum
}

func (d *day9) Part1() (solver.Solution, error) {
	var blocks []int
	for id, f := range d.files {
		for len(blocks) < f.start {
			blocks = append(blocks, -1)
		}
		for range f.size {
			blocks = append(blocks, id)
		}
	}
	i, j := 0, len(blocks)-1
	for {
		for i < len(blocks) && blocks[i] >= 0 {
			i++
		}
		for j >= 0 && blocks[j] < 0 {
			j--
		}
		if i >= j {
			break
		}
		blocks[i], blocks[j] = blocks[j], -1
	}
	sum := 0
	for pos, id := range blocks {
		if id > 0 {
			sum += pos * id
		}
	}
	return solver.NewSolution("Part 1", sum), nil
}

func (d *day9) Part2() (solver.Solution, error) {
	files := append([]span(nil), d.files...)
	gaps := append([]span(nil), d.gaps...)
	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for g := range gaps {
			if gaps[g].start >= f.start {
				break
			}
			if gaps[g].size >= f.size {
				f.start = gaps[g].start
				gaps[g].start += f.size
				gaps[g].size -= f.size
				break
			}
		}
	}
	return solver.NewSolution("Part 2", checksum(files)), nil
}
