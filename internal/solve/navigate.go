package solve

import "github.com/robalobadob/crossword/apps/go-server/internal/crossword"

// WordAt returns the word under the cursor at (row, col). The word in
// direction dir is preferred; when there is none the word in the other
// direction is returned and got reports the switch.
func (s *State) WordAt(row, col int, dir crossword.Direction) (w crossword.PlacedWord, got crossword.Direction, ok bool) {
	var other *crossword.PlacedWord
	for _, cand := range s.layout.WordsAt(row, col) {
		if cand.Direction() == dir {
			return cand, dir, true
		}
		if other == nil {
			c := cand
			other = &c
		}
	}
	if other != nil {
		return *other, dir.Other(), true
	}
	return crossword.PlacedWord{}, dir, false
}

// Next returns the cell after (row, col) within w. ok is false at the
// last letter or when (row, col) is not on w.
func Next(w crossword.PlacedWord, row, col int) (r, c int, ok bool) {
	i := w.IndexOf(row, col)
	if i < 0 || i+1 >= w.Len() {
		return row, col, false
	}
	r, c = w.CellAt(i + 1)
	return r, c, true
}

// Prev returns the cell before (row, col) within w. ok is false at the
// first letter or when (row, col) is not on w.
func Prev(w crossword.PlacedWord, row, col int) (r, c int, ok bool) {
	i := w.IndexOf(row, col)
	if i <= 0 {
		return row, col, false
	}
	r, c = w.CellAt(i - 1)
	return r, c, true
}
