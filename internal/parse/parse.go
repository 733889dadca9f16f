// Package parse holds the small text helpers shared by the puzzle solvers.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Lines splits input into lines. Windows line endings and the trailing
// newline are dropped.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input on blank lines.
func Blocks(input string) []string {
	var blocks []string
	var current []string
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

// Ints parses the whitespace-separated integers in s.
func Ints(s string) ([]int, error) {
	return IntsSep(s, "")
}

// IntsSep parses the integers in s separated by sep. An empty sep splits on
// runs of whitespace.
func IntsSep(s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(strings.TrimSpace(s), sep)
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parse integer %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

var reInt = regexp.MustCompile(`-?\d+`)

// AllInts extracts every integer in s, ignoring surrounding text.
func AllInts(s string) []int {
	matches := reInt.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
