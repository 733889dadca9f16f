// Package grid provides a rectangular byte grid over newline-separated puzzle
// text, the shape most Advent of Code inputs come in.
package grid

import (
	"bytes"
	"iter"
	"strings"
)

// Point addresses a cell by row and column. It doubles as a direction.
type Point struct {
	Row, Col int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Cardinal directions.
var (
	Up    = Point{Row: -1}
	Right = Point{Col: 1}
	Down  = Point{Row: 1}
	Left  = Point{Col: -1}
)

// Cardinals lists the four directions clockwise starting at Up.
var Cardinals = [4]Point{Up, Right, Down, Left}

// Grid is a dense row-major byte grid.
type Grid struct {
	width, height int
	cells         []byte
}

// Parse builds a grid from text. Rows shorter than the longest one are padded
// with spaces.
func Parse(text string) *Grid {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return &Grid{}
	}
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	g := New(len(lines), width, ' ')
	for i, line := range lines {
		copy(g.cells[i*width:], line)
	}
	return g
}

// New returns a height x width grid filled with fill.
func New(height, width int, fill byte) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  bytes.Repeat([]byte{fill}, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at p. It panics when p is out of bounds.
func (g *Grid) At(p Point) byte {
	return g.cells[g.offset(p)]
}

// Set stores b at p. It panics when p is out of bounds.
func (g *Grid) Set(p Point, b byte) {
	g.cells[g.offset(p)] = b
}

func (g *Grid) offset(p Point) int {
	if !g.InBounds(p) {
		panic("grid: index out of range")
	}
	return p.Row*g.width + p.Col
}

// Row returns row i. The slice aliases the grid.
func (g *Grid) Row(i int) []byte {
	if i < 0 || i >= g.height {
		panic("grid: row out of range")
	}
	return g.cells[i*g.width : (i+1)*g.width : (i+1)*g.width]
}

// Col returns a copy of column j.
func (g *Grid) Col(j int) []byte {
	if j < 0 || j >= g.width {
		panic("grid: column out of range")
	}
	col := make([]byte, g.height)
	for i := range col {
		col[i] = g.cells[i*g.width+j]
	}
	return col
}

// Index converts a row-major cell index into a point.
func (g *Grid) Index(n int) Point {
	return Point{Row: n / g.width, Col: n % g.width}
}

// Find returns the first cell holding b in row-major order.
func (g *Grid) Find(b byte) (Point, bool) {
	n := bytes.IndexByte(g.cells, b)
	if n < 0 {
		return Point{}, false
	}
	return g.Index(n), true
}

// All iterates over every cell in row-major order.
func (g *Grid) All() iter.Seq2[Point, byte] {
	return func(yield func(Point, byte) bool) {
		for n, b := range g.cells {
			if !yield(g.Index(n), b) {
				return
			}
		}
	}
}

// Count returns how many cells hold b.
func (g *Grid) Count(b byte) int {
	return bytes.Count(g.cells, []byte{b})
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: bytes.Clone(g.cells)}
}

// Equal reports whether both grids have the same shape and content.
func (g *Grid) Equal(o *Grid) bool {
	return g.width == o.width && g.height == o.height && bytes.Equal(g.cells, o.cells)
}

// String renders the grid back to newline-separated text.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for i := 0; i < g.height; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.Row(i))
	}
	return sb.String()
}

// Surround returns the in-bounds neighbours of p, diagonals included, in
// row-major order.
func (g *Grid) Surround(p Point) []Point {
	out := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			q := Point{Row: p.Row + dr, Col: p.Col + dc}
			if g.InBounds(q) {
				out = append(out, q)
			}
		}
	}
	return out
}

// Adjacent returns the in-bounds cardinal neighbours of p in Cardinals order.
func (g *Grid) Adjacent(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Cardinals {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}
