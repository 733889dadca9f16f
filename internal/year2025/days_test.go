package year2025

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc-solver/internal/grid"
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
		{"day1", NewDay1, "day1-1", "3", "6"},
		{"day2", NewDay2, "day2-1", "1227775554", "4174379265"},
		{"day3", NewDay3, "day3-1", "357", "3121910778619"},
		{"day4", NewDay4, "day4-1", "13", "43"},
		{"day5", NewDay5, "day5-1", "3", "14"},
		{"day6", NewDay6, "day6-1", "4277556", "3263827"},
		{"day7", NewDay7, "day7-1", "21", "40"},
		{"day8", NewDay8, "day8-1", "", "25272"},
		{"day9", NewDay9, "day9-1", "50", "24"},
		{"day10", NewDay10, "day10-1", "7", "33"},
		{"day11", NewDay11, "day11-1", "5", ""},
		{"day11 via dac and fft", NewDay11, "day11-2", "", "2"},
		{"day12", NewDay12, "day12-1", "2", "n/a"},
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
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, r.Days(2025))
}

func TestZeroClicks(t *testing.T) {
	tests := []struct {
		dial, turn, want int
	}{
		{50, 1000, 10},
		{50, -68, 1},
		{0, -5, 0},
		{0, -100, 1},
		{5, -5, 1},
		{95, 5, 1},
		{95, 4, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, zeroClicks(tt.dial, tt.turn), "dial %d turn %d", tt.dial, tt.turn)
	}
}

func TestInvalidDirection(t *testing.T) {
	_, err := NewDay1("X10\n")
	assert.ErrorContains(t, err, "invalid direction: X")
}

func TestInvalidIDs(t *testing.T) {
	assert.Equal(t, 11+22, invalidIDs(idRange{11, 22}, true))
	assert.Equal(t, 99+111, invalidIDs(idRange{95, 115}, false))
	assert.Equal(t, 222222, invalidIDs(idRange{222220, 222224}, false))
}

func TestJoltage(t *testing.T) {
	assert.Equal(t, 98, joltage("987654321111111", 2))
	assert.Equal(t, 89, joltage("811111111111119", 2))
	assert.Equal(t, 888911112111, joltage("818181911112111", 12))
}

func TestMergeRanges(t *testing.T) {
	got := mergeRanges([]idRange{{10, 14}, {3, 5}, {16, 20}, {12, 18}, {6, 6}})
	assert.Equal(t, []idRange{{3, 6}, {10, 20}}, got)
}

func TestDay6Operator(t *testing.T) {
	_, err := NewDay6("1 2\n3 4\n- +\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid operator "-"`)
}

func TestDay7NoStart(t *testing.T) {
	_, err := NewDay7("...\n.^.\n")
	assert.ErrorContains(t, err, "no beam entry point")
}

func TestConnectClosestBoxes(t *testing.T) {
	s := build(t, NewDay8, "day8-1").(*day8)
	assert.Equal(t, 40, s.connect(10))
	assert.Equal(t, 1, s.connect(0))
}

func TestCircuits(t *testing.T) {
	c := newCircuits(4)
	assert.True(t, c.join(0, 1))
	assert.False(t, c.join(1, 0))
	assert.True(t, c.join(2, 3))
	assert.Equal(t, 2, c.count)
	assert.True(t, c.join(3, 0))
	assert.Equal(t, c.find(0), c.find(2))
	assert.Equal(t, 1, c.count)
}

func TestRectangleCrossesLoop(t *testing.T) {
	a, b := grid.Point{Row: 0, Col: 0}, grid.Point{Row: 4, Col: 4}
	assert.True(t, crosses(a, b, grid.Point{Row: 2, Col: 2}, grid.Point{Row: 6, Col: 2}))
	assert.False(t, crosses(a, b, grid.Point{Row: 4, Col: 0}, grid.Point{Row: 4, Col: 4}), "edge on the border")
	assert.False(t, crosses(a, b, grid.Point{Row: 2, Col: 5}, grid.Point{Row: 2, Col: 9}))
}

func TestFactoryMachine(t *testing.T) {
	m, err := parseMachine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	require.NoError(t, err)
	assert.Equal(t, uint(0b0110), m.lights)

	n, ok := m.fewestToggles()
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, 10, m.fewestPresses(m.targets, map[string]int{}))

	_, err = parseMachine("[#] (1) {1}")
	assert.ErrorContains(t, err, "wires counter 1 of 1")

	m, err = parseMachine("[#.] (1) {0,1}")
	require.NoError(t, err)
	_, ok = m.fewestToggles()
	assert.False(t, ok)
}

func TestRegionNeedsPacking(t *testing.T) {
	s, err := NewDay12("0:\n###\n##.\n##.\n\n6x5: 4\n")
	require.NoError(t, err)
	_, err = s.Part1()
	assert.EqualError(t, err, "region 6x5 needs a packing search")

	_, err = NewDay12("0:\n###\n\n4x4: 1 1\n")
	assert.ErrorContains(t, err, "only 1 are known")
}
