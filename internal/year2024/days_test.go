package year2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc-solver/internal/solver"
)

func TestExamples(t *testing.T) {
	tests := []struct {
		name    string
		factory solver.Factory
		example string
		part1   string
		part2   string
	}{
		{"day1", NewDay1, "day1-1", "11", "31"},
		{"day2", NewDay2, "day2-1", "2", "4"},
		{"day3", NewDay3, "day3-1", "161", ""},
		{"day3 conditionals", NewDay3, "day3-2", "", "48"},
		{"day4", NewDay4, "day4-1", "18", "9"},
		{"day5", NewDay5, "day5-1", "143", "123"},
		{"day6", NewDay6, "day6-1", "41", "6"},
		{"day7", NewDay7, "day7-1", "3749", "11387"},
		{"day8", NewDay8, "day8-1", "14", "34"},
		{"day9", NewDay9, "day9-1", "1928", "2858"},
		{"day10", NewDay10, "day10-1", "36", "81"},
		{"day11", NewDay11, "day11-1", "55312", "65601038650482"},
		{"day12", NewDay12, "day12-1", "140", "80"},
		{"day12 larger", NewDay12, "day12-2", "1930", "1206"},
		{"day13", NewDay13, "day13-1", "480", "875318608908"},
		{"day15 small", NewDay15, "day15-1", "2028", ""},
		{"day15", NewDay15, "day15-2", "10092", "9021"},
		{"day16", NewDay16, "day16-1", "7036", "45"},
		{"day16 second maze", NewDay16, "day16-2", "11048", "64"},
		{"day17", NewDay17, "day17-1", "4,6,3,5,6,3,5,2,1,0", ""},
		{"day17 quine", NewDay17, "day17-2", "", "117440"},
		{"day19", NewDay19, "day19-1", "6", "16"},
		{"day21", NewDay21, "day21-1", "126384", "154115708116294"},
		{"day22", NewDay22, "day22-1", "37327623", ""},
		{"day22 bananas", NewDay22, "day22-2", "", "23"},
		{"day23", NewDay23, "day23-1", "7", "co,de,ka,ta"},
		{"day24", NewDay24, "day24-1", "4", ""},
		{"day24 larger", NewDay24, "day24-2", "2024", ""},
		{"day24 crossed adder", NewDay24, "day24-3", "", "dmh,rkt,tjr,z02"},
		{"day25", NewDay25, "day25-1", "3", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.part1 != "" {
				assert.Equal(t, tt.part1, part1(t, tt.factory, tt.example))
			}
			if tt.part2 != "" {
				assert.Equal(t, tt.part2, part2(t, tt.factory, tt.example))
			}
		})
	}
}

func TestRegister(t *testing.T) {
	r := solver.NewRegistry()
	Register(r)
	want := make([]int, 25)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, r.Days(2024))
}

func TestBlink(t *testing.T) {
	s := build(t, NewDay11, "day11-1").(*day11)
	assert.Equal(t, 22, s.blink(6))
	assert.Equal(t, 2, s.blink(0))
}

func TestSafeReport(t *testing.T) {
	assert.True(t, safe([]int{7, 6, 4, 2, 1}, -1))
	assert.False(t, safe([]int{1, 3, 2, 4, 5}, -1))
	assert.True(t, safe([]int{1, 3, 2, 4, 5}, 1))
}

func TestSolvable(t *testing.T) {
	assert.True(t, solvable(190, []int{10, 19}, false))
	assert.False(t, solvable(156, []int{15, 6}, false))
	assert.True(t, solvable(156, []int{15, 6}, true))
	assert.True(t, solvable(7290, []int{6, 8, 6, 15}, true))
}

func TestNextSecret(t *testing.T) {
	want := []int{15887950, 16495136, 527345, 704524, 1553684}
	s := 123
	for _, w := range want {
		s = nextSecret(s)
		assert.Equal(t, w, s)
	}
}

func TestClawMachine(t *testing.T) {
	m := clawMachine{ax: 94, ay: 34, bx: 22, by: 67, px: 8400, py: 5400}
	a, b, ok := m.presses(0)
	require.True(t, ok)
	assert.Equal(t, 80, a)
	assert.Equal(t, 40, b)

	_, _, ok = clawMachine{ax: 26, ay: 66, bx: 67, by: 21, px: 12748, py: 12176}.presses(0)
	assert.False(t, ok)
}

func TestDay13Malformed(t *testing.T) {
	_, err := NewDay13("Button A: X+1\n")
	assert.ErrorContains(t, err, "expected 6 numbers per machine")
}

func TestSafetyFactor(t *testing.T) {
	s := build(t, NewDay14, "day14-1").(*day14)
	assert.Equal(t, 12, s.safetyFactor(11, 7))

	x, y := robot{px: 2, py: 4, vx: 2, vy: -3}.after(5, 11, 7)
	assert.Equal(t, [2]int{1, 3}, [2]int{x, y})
}

func TestTreeAt(t *testing.T) {
	var robots []robot
	for x := range 11 {
		robots = append(robots, robot{px: x, py: 0, vx: 0, vy: 1})
	}
	s, ok := (&day14{robots: robots}).treeAt(20, 10)
	require.True(t, ok)
	assert.Equal(t, 0, s)

	_, ok = (&day14{robots: robots[:5]}).treeAt(20, 10)
	assert.False(t, ok)
}

func TestRAMRun(t *testing.T) {
	d, err := newDay18(example(t, "day18-1"), 7, 12)
	require.NoError(t, err)

	sol, err := d.Part1()
	require.NoError(t, err)
	assert.Equal(t, "22", sol.Value)

	sol, err = d.Part2()
	require.NoError(t, err)
	assert.Equal(t, "6,1", sol.Value)
}

func TestCheats(t *testing.T) {
	s := build(t, NewDay20, "day20-1").(*day20)
	tests := []struct {
		length, threshold, want int
	}{
		{2, 64, 1},
		{2, 40, 2},
		{2, 38, 3},
		{2, 36, 4},
		{2, 20, 5},
		{2, 12, 8},
		{2, 10, 10},
		{2, 8, 14},
		{2, 6, 16},
		{2, 4, 30},
		{2, 2, 44},
		{20, 76, 3},
		{20, 74, 7},
		{20, 72, 29},
		{20, 70, 41},
		{20, 50, 285},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.cheats(tt.length, tt.threshold), "cheats(%d, %d)", tt.length, tt.threshold)
	}
}

func TestGuardLoopsForever(t *testing.T) {
	s, err := NewDay6(".#.\n#^#\n.#.\n")
	require.NoError(t, err)
	_, err = s.Part1()
	assert.EqualError(t, err, "guard never leaves the lab")

	_, err = NewDay6("...\n")
	assert.EqualError(t, err, "no guard on the map")
}

func TestCircuitRejectsLoops(t *testing.T) {
	s, err := NewDay24("x00: 1\n\nx00 AND abc -> z00\nz00 OR x00 -> abc\n")
	require.NoError(t, err)
	_, err = s.Part1()
	assert.ErrorContains(t, err, "feeds back into itself")

	_, err = NewDay24("x00: 1\n\nx00 NAND x00 -> z00\n")
	assert.EqualError(t, err, `unknown gate "NAND"`)
}
