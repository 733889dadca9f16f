package year2023

import (
	"fmt"
	"strconv"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

// cubes counts the cubes of each colour in one draw.
type cubes struct {
	red, green, blue int
}

type game struct {
	id    int
	draws []cubes
}

type day2 struct {
	games []game
}

// NewDay2 solves "Cube Conundrum".
func NewDay2(input string) (solver.Solver, error) {
	d := &day2{}
	for _, line := range parse.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		d.games = append(d.games, g)
	}
	return d, nil
}

func parseGame(line string) (game, error) {
	head, body, ok := strings.Cut(line, ": ")
	if !ok {
		return game{}, fmt.Errorf("malformed game %q", line)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return game{}, fmt.Errorf("game id in %q: %w", line, err)
	}
	g := game{id: id}
	for _, draw := range strings.Split(body, "; ") {
		var c cubes
		for _, item := range strings.Split(draw, ", ") {
			var n int
			var colour string
			if _, err := fmt.Sscanf(item, "%d %s", &n, &colour); err != nil {
				return game{}, fmt.Errorf("draw %q: %w", item, err)
			}
			switch colour {
			case "red":
				c.red += n
			case "green":
				c.green += n
			case "blue":
				c.blue += n
			default:
				return game{}, fmt.Errorf("unknown colour %q", colour)
			}
		}
		g.draws = append(g.draws, c)
	}
	return g, nil
}

func (g game) minimum() cubes {
	var m cubes
	for _, c := range g.draws {
		m.red = max(m.red, c.red)
		m.green = max(m.green, c.green)
		m.blue = max(m.blue, c.blue)
	}
	return m
}

func (d *day2) Part1() (solver.Solution, error) {
	sum := 0
	for _, g := range d.games {
		if m := g.minimum(); m.red <= 12 && m.green <= 13 && m.blue <= 14 {
			sum += g.id
		}
	}
	return solver.NewSolution("Sum of IDs of possible games", sum), nil
}

func (d *day2) Part2() (solver.Solution, error) {
	sum := 0
	for _, g := range d.games {
		m := g.minimum()
		sum += m.red * m.green * m.blue
	}
	return solver.NewSolution("Sum of the power", sum), nil
}
