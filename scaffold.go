package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"
)

// Markers the scaffold inserts generated lines in front of.
const (
	insertMarker   = "// <<INSERT MARKER>>"
	importMarker   = "// <<IMPORT MARKER>>"
	registerMarker = "// <<REGISTER MARKER>>"
	solversFile    = "solvers.go"
)

var (
	dayTemplate = template.Must(template.New("day").Parse(`package year{{.Year}}

import "{{.Module}}/internal/solver"

type day{{.Day}} struct {
	input string
}

// NewDay{{.Day}} solves day {{.Day}} of {{.Year}}.
func NewDay{{.Day}}(input string) (solver.Solver, error) {
	return &day{{.Day}}{input: input}, nil
}

func (d *day{{.Day}}) Part1() (solver.Solution, error) {
	return solver.Solution{}, solver.ErrNotImplemented
}

func (d *day{{.Day}}) Part2() (solver.Solution, error) {
	return solver.Solution{}, solver.ErrNotImplemented
}
`))

	dayTestTemplate = template.Must(template.New("daytest").Parse(`package year{{.Year}}

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay{{.Day}}Example(t *testing.T) {
	t.Skip("fill in testdata/day{{.Day}}-1.example and the expected answers")
	assert.Equal(t, "", part1(t, NewDay{{.Day}}, "day{{.Day}}-1"))
	assert.Equal(t, "", part2(t, NewDay{{.Day}}, "day{{.Day}}-1"))
}
`))

	registerTemplate = template.Must(template.New("register").Parse(`// Package year{{.Year}} holds the solutions to Advent of Code {{.Year}}.
package year{{.Year}}

import "{{.Module}}/internal/solver"

// Register adds every {{.Year}} solver to r.
func Register(r *solver.Registry) {
	` + insertMarker + `
}
`))

	helpersTemplate = template.Must(template.New("helpers").Parse(`package year{{.Year}}

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"{{.Module}}/internal/solver"
)

// example reads testdata/<name>.example.
func example(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".example"))
	require.NoError(t, err)
	return string(data)
}

func build(t *testing.T, factory solver.Factory, name string) solver.Solver {
	t.Helper()
	s, err := factory(example(t, name))
	require.NoError(t, err)
	return s
}

func part1(t *testing.T, factory solver.Factory, name string) string {
	t.Helper()
	sol, err := build(t, factory, name).Part1()
	require.NoError(t, err)
	return sol.Value
}

func part2(t *testing.T, factory solver.Factory, name string) string {
	t.Helper()
	sol, err := build(t, factory, name).Part2()
	require.NoError(t, err)
	return sol.Value
}
`))
)

// scaffold generates solver stubs under root.
type scaffold struct {
	root   string
	module string
	warn   io.Writer
	render *renderer
	log    *logger
}

type templateData struct {
	Module string
	Year   int
	Day    int
}

// newScaffold reads the module path from root/go.mod.
func newScaffold(root string, warn io.Writer, log *logger) (*scaffold, error) {
	b, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return nil, fmt.Errorf("read go.mod: %w", err)
	}
	module := modfile.ModulePath(b)
	if module == "" {
		return nil, errors.New("go.mod has no module line")
	}
	return &scaffold{root: root, module: module, warn: warn, render: newRenderer(warn), log: log}, nil
}

// Create writes the stubs for each day and registers them.
func (s *scaffold) Create(year int, days []int) error {
	pkgDir := filepath.Join(s.root, "internal", fmt.Sprintf("year%d", year))
	if err := os.MkdirAll(filepath.Join(pkgDir, "testdata"), 0o755); err != nil {
		return fmt.Errorf("create package dir: %w", err)
	}

	registerPath := filepath.Join(pkgDir, "register.go")
	newYear := false
	if _, err := os.Stat(registerPath); errors.Is(err, os.ErrNotExist) {
		newYear = true
		if err := s.writeTemplate(registerPath, registerTemplate, templateData{Module: s.module, Year: year}); err != nil {
			return err
		}
		if err := s.writeTemplate(filepath.Join(pkgDir, "helpers_test.go"), helpersTemplate, templateData{Module: s.module, Year: year}); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", registerPath, err)
	}

	var lines []string
	for _, day := range days {
		data := templateData{Module: s.module, Year: year, Day: day}
		if err := s.writeTemplate(filepath.Join(pkgDir, fmt.Sprintf("day%d.go", day)), dayTemplate, data); err != nil {
			return err
		}
		if err := s.writeTemplate(filepath.Join(pkgDir, fmt.Sprintf("day%d_test.go", day)), dayTestTemplate, data); err != nil {
			return err
		}
		if err := s.writeFile(filepath.Join(pkgDir, "testdata", fmt.Sprintf("day%d-1.example", day)), nil); err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("r.Register(%d, %d, NewDay%d)", year, day, day))
	}
	if err := insertBeforeMarker(registerPath, insertMarker, lines); err != nil {
		return err
	}

	if newYear {
		pkg := fmt.Sprintf("year%d", year)
		solvers := filepath.Join(s.root, solversFile)
		if err := insertBeforeMarker(solvers, importMarker, []string{fmt.Sprintf("%q", s.module+"/internal/"+pkg)}); err != nil {
			return err
		}
		if err := insertBeforeMarker(solvers, registerMarker, []string{pkg + ".Register(r)"}); err != nil {
			return err
		}
	}
	return nil
}

func (s *scaffold) writeTemplate(path string, tmpl *template.Template, data templateData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return s.writeFile(path, buf.Bytes())
}

// writeFile creates path with content. An existing file is left alone.
func (s *scaffold) writeFile(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		_, _ = io.WriteString(s.warn, s.render.renderWarning(fmt.Sprintf("file '%s' already exists, skipping", path)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.log.debugf("created %s", path)
	return nil
}

// insertBeforeMarker adds each line not already present in front of the
// marker line, indented like the marker.
func insertBeforeMarker(path, marker string, lines []string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	src := strings.Split(string(b), "\n")
	at := -1
	for i, line := range src {
		if strings.TrimSpace(line) == marker {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("%s: marker %q not found", path, marker)
	}
	indent := src[at][:len(src[at])-len(strings.TrimLeft(src[at], " \t"))]

	present := make(map[string]bool, len(src))
	for _, line := range src {
		present[strings.TrimSpace(line)] = true
	}
	var add []string
	for _, line := range lines {
		if present[line] {
			continue
		}
		present[line] = true
		add = append(add, indent+line)
	}
	if len(add) == 0 {
		return nil
	}

	out := make([]string, 0, len(src)+len(add))
	out = append(out, src[:at]...)
	out = append(out, add...)
	out = append(out, src[at:]...)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(out, "\n")), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
