// internal/crossword/rules.go
//
// Placement rules: pure predicates over (grid, word, row, col, horizontal).
// Together they guarantee that every maximal run of letters along a line
// is exactly one declared word:
//   - Fits:              each target cell is empty or already holds the same letter.
//   - ClearOfNeighbours: a newly filled cell has no occupied perpendicular neighbour.
//   - ClearAtEnds:       the cells just before and after the word are empty.
//   - CrossesOnly:       no two consecutive target cells are already filled,
//                        so a word never runs along part of a parallel word.

package crossword

import "github.com/robalobadob/crossword/apps/go-server/internal/grid"

// CanPlace reports whether word may occupy the given position.
func CanPlace(g *grid.Grid, word string, row, col int, horizontal bool) bool {
	if row < 0 || col < 0 || word == "" {
		return false
	}
	return Fits(g, word, row, col, horizontal) &&
		ClearOfNeighbours(g, word, row, col, horizontal) &&
		ClearAtEnds(g, word, row, col, horizontal) &&
		CrossesOnly(g, word, row, col, horizontal)
}

// Fits reports whether no target cell holds a different letter.
func Fits(g *grid.Grid, word string, row, col int, horizontal bool) bool {
	for i := 0; i < len(word); i++ {
		r, c := step(row, col, horizontal, i)
		if cur := g.Get(r, c); cur != grid.Empty && cur != word[i] {
			return false
		}
	}
	return true
}

// ClearOfNeighbours rejects words running side by side with another word.
// Cells that already hold the crossing letter are exempt: their
// neighbours belong to the word being crossed.
func ClearOfNeighbours(g *grid.Grid, word string, row, col int, horizontal bool) bool {
	for i := 0; i < len(word); i++ {
		r, c := step(row, col, horizontal, i)
		if g.Occupied(r, c) {
			continue
		}
		if horizontal {
			if g.Occupied(r-1, c) || g.Occupied(r+1, c) {
				return false
			}
		} else if g.Occupied(r, c-1) || g.Occupied(r, c+1) {
			return false
		}
	}
	return true
}

// ClearAtEnds reports whether the word would not extend an existing run.
func ClearAtEnds(g *grid.Grid, word string, row, col int, horizontal bool) bool {
	br, bc := step(row, col, horizontal, -1)
	ar, ac := step(row, col, horizontal, len(word))
	return !g.Occupied(br, bc) && !g.Occupied(ar, ac)
}

// CrossesOnly reports whether every already filled target cell is a
// single crossing point rather than part of a collinear overlap.
func CrossesOnly(g *grid.Grid, word string, row, col int, horizontal bool) bool {
	for i := 1; i < len(word); i++ {
		pr, pc := step(row, col, horizontal, i-1)
		r, c := step(row, col, horizontal, i)
		if g.Occupied(pr, pc) && g.Occupied(r, c) {
			return false
		}
	}
	return true
}

// Intersections counts target cells that already hold the word's letter.
func Intersections(g *grid.Grid, word string, row, col int, horizontal bool) int {
	n := 0
	for i := 0; i < len(word); i++ {
		r, c := step(row, col, horizontal, i)
		if g.Get(r, c) == word[i] {
			n++
		}
	}
	return n
}

func step(row, col int, horizontal bool, i int) (int, int) {
	if horizontal {
		return row, col + i
	}
	return row + i, col
}
