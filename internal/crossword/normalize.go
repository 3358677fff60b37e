// internal/crossword/normalize.go
//
// Post-processing for an arranged layout.
//   - Normalize shifts every word so the occupied region starts at (0,0)
//     and replaces the grid with one trimmed to that bounding box.
//   - Number assigns clue numbers to word starts in reading order; a cell
//     that starts both an across and a down word gets one shared number.
//
// Both are idempotent.

package crossword

import (
	"cmp"
	"slices"

	"github.com/robalobadob/crossword/apps/go-server/internal/grid"
)

// Normalize moves the layout to the origin and trims the grid.
func Normalize(l *Layout) {
	if len(l.Words) == 0 {
		return
	}

	minRow, minCol := l.Words[0].Row, l.Words[0].Col
	maxRow, maxCol := minRow, minCol
	for _, w := range l.Words {
		er, ec := w.CellAt(w.Len() - 1)
		minRow, minCol = min(minRow, w.Row), min(minCol, w.Col)
		maxRow, maxCol = max(maxRow, er), max(maxCol, ec)
	}

	g := grid.New(maxRow-minRow+1, maxCol-minCol+1)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if v := l.Grid.Get(r, c); v != grid.Empty {
				g.Set(r-minRow, c-minCol, v)
			}
		}
	}
	l.Grid = g

	for i := range l.Words {
		l.Words[i].Row -= minRow
		l.Words[i].Col -= minCol
	}
	for i := range l.Numbered {
		l.Numbered[i].Row -= minRow
		l.Numbered[i].Col -= minCol
	}
}

// Number assigns clue numbers starting at 1 in reading order
// (row ascending, then column ascending) and records the numbered cells.
func Number(l *Layout) {
	order := make([]int, len(l.Words))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		wa, wb := l.Words[a], l.Words[b]
		if c := cmp.Compare(wa.Row, wb.Row); c != 0 {
			return c
		}
		return cmp.Compare(wa.Col, wb.Col)
	})

	l.Numbered = l.Numbered[:0]
	seen := make(map[[2]int]int, len(l.Words))
	next := 1
	for _, i := range order {
		w := &l.Words[i]
		key := [2]int{w.Row, w.Col}
		if n, ok := seen[key]; ok {
			w.Number = n
			continue
		}
		seen[key] = next
		w.Number = next
		l.Numbered = append(l.Numbered, NumberedCell{Row: w.Row, Col: w.Col, Number: next})
		next++
	}
}

// NumberAt returns the clue number shown at (row, col), or 0.
func (l *Layout) NumberAt(row, col int) int {
	for _, nc := range l.Numbered {
		if nc.Row == row && nc.Col == col {
			return nc.Number
		}
	}
	return 0
}
