package year2023

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type hand struct {
	cards string
	bid   int
}

type day7 struct {
	hands []hand
}

// NewDay7 solves "Camel Cards".
func NewDay7(input string) (solver.Solver, error) {
	d := &day7{}
	for _, line := range parse.Lines(input) {
		cards, bid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, fmt.Errorf("malformed hand %q", line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(bid))
		if err != nil {
			return nil, fmt.Errorf("bid in %q: %w", line, err)
		}
		d.hands = append(d.hands, hand{cards: cards, bid: n})
	}
	return d, nil
}

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

// handType ranks a hand from 0 (high card) to 6 (five of a kind). With jokers,
// every J joins the largest group.
func handType(cards string, jokers bool) int {
	counts := map[rune]int{}
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild
	switch {
	case groups[0] == 5:
		return 6
	case groups[0] == 4:
		return 5
	case groups[0] == 3 && groups[1] == 2:
		return 4
	case groups[0] == 3:
		return 3
	case groups[0] == 2 && groups[1] == 2:
		return 2
	case groups[0] == 2:
		return 1
	}
	return 0
}

func (d *day7) winnings(jokers bool) int {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	type ranked struct {
		hand
		kind int
	}
	hands := make([]ranked, len(d.hands))
	for i, h := range d.hands {
		hands[i] = ranked{hand: h, kind: handType(h.cards, jokers)}
	}
	slices.SortFunc(hands, func(a, b ranked) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		for i := range len(a.cards) {
			if c := cmp.Compare(strings.IndexByte(order, a.cards[i]), strings.IndexByte(order, b.cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}

func (d *day7) Part1() (solver.Solution, error) {
	return solver.NewSolution("Total winnings", d.winnings(false)), nil
}

func (d *day7) Part2() (solver.Solution, error) {
	return solver.NewSolution("Total winnings with jokers", d.winnings(true)), nil
}
