// internal/grid/grid.go
//
// Sparse, growable 2D letter surface used while laying out a crossword.
// Responsibilities:
//   - Bounds-safe reads: anything outside the grid reads as Empty.
//   - Monotonic growth: Set and EnsureCapacity only ever add rows/cols.
//   - Rectangular invariant: every row has the same length after growth.
//
// Trimming is not done here; the crossword normalizer replaces a grid
// wholesale with a compacted copy.

package grid

import (
	"encoding/json"
	"strings"
)

// Empty is the value of a cell that holds no letter.
const Empty byte = 0

// Grid is a rectangular array of cells addressed by (row, col).
// The zero value is an empty 0x0 grid ready to use.
type Grid struct {
	cells [][]byte
	cols  int
}

// New returns a grid of the given dimensions filled with Empty.
func New(rows, cols int) *Grid {
	g := &Grid{}
	g.EnsureCapacity(rows, cols)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Get returns the cell at (row, col), or Empty when out of range.
func (g *Grid) Get(row, col int) byte {
	if row < 0 || col < 0 || row >= len(g.cells) || col >= g.cols {
		return Empty
	}
	return g.cells[row][col]
}

// Occupied reports whether (row, col) holds a letter.
func (g *Grid) Occupied(row, col int) bool {
	return g.Get(row, col) != Empty
}

// Set writes v at (row, col), growing the grid first when needed.
// Negative coordinates are rejected and nothing is written.
func (g *Grid) Set(row, col int, v byte) bool {
	if row < 0 || col < 0 {
		return false
	}
	g.EnsureCapacity(row+1, col+1)
	g.cells[row][col] = v
	return true
}

// EnsureCapacity grows the grid to at least rows x cols without writing.
func (g *Grid) EnsureCapacity(rows, cols int) {
	if cols > g.cols {
		for i := range g.cells {
			g.cells[i] = append(g.cells[i], make([]byte, cols-g.cols)...)
		}
		g.cols = cols
	}
	for len(g.cells) < rows {
		g.cells = append(g.cells, make([]byte, g.cols))
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cp := &Grid{cells: make([][]byte, len(g.cells)), cols: g.cols}
	for i, row := range g.cells {
		cp.cells[i] = append([]byte(nil), row...)
	}
	return cp
}

// Lines renders each row as a string, using blank for Empty cells.
func (g *Grid) Lines(blank byte) []string {
	lines := make([]string, len(g.cells))
	for i, row := range g.cells {
		b := make([]byte, len(row))
		for j, c := range row {
			if c == Empty {
				b[j] = blank
			} else {
				b[j] = c
			}
		}
		lines[i] = string(b)
	}
	return lines
}

// String renders the grid with '.' for empty cells, one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Lines('.'), "\n")
}

// MarshalJSON encodes the grid as rows of one-letter strings, "" for empty.
func (g *Grid) MarshalJSON() ([]byte, error) {
	out := make([][]string, len(g.cells))
	for i, row := range g.cells {
		out[i] = make([]string, len(row))
		for j, c := range row {
			if c != Empty {
				out[i][j] = string(c)
			}
		}
	}
	return json.Marshal(out)
}
