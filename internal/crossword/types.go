// internal/crossword/types.go
//
// Core type definitions for the crossword layout engine.
// Defines:
//   - Entry: one input word with its optional definition.
//   - PlacedWord: a word fixed on the grid with position and orientation.
//   - Layout: the grid plus placed words, produced by Engine.Generate.
//   - NumberedCell: a cell that starts at least one word.

package crossword

import "github.com/robalobadob/crossword/apps/go-server/internal/grid"

// Entry is one word from the word list, as handed over by the caller.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// PlacedWord is a word written on the grid.
// Horizontal words occupy (Row, Col+i); vertical words occupy (Row+i, Col).
type PlacedWord struct {
	Text       string `json:"text"` // upper-case A–Z only
	Clue       string `json:"clue"` // definition, or Text when none was given
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
	Number     int    `json:"number"` // clue number, 0 until numbered
}

// Len returns the number of letters.
func (w PlacedWord) Len() int { return len(w.Text) }

// CellAt returns the grid position of the i-th letter.
func (w PlacedWord) CellAt(i int) (row, col int) {
	if w.Horizontal {
		return w.Row, w.Col + i
	}
	return w.Row + i, w.Col
}

// Contains reports whether (row, col) lies on the word's span.
func (w PlacedWord) Contains(row, col int) bool {
	if w.Horizontal {
		return row == w.Row && col >= w.Col && col < w.Col+len(w.Text)
	}
	return col == w.Col && row >= w.Row && row < w.Row+len(w.Text)
}

// IndexOf returns the letter index of (row, col) within the word, or -1.
func (w PlacedWord) IndexOf(row, col int) int {
	if !w.Contains(row, col) {
		return -1
	}
	if w.Horizontal {
		return col - w.Col
	}
	return row - w.Row
}

// NumberedCell is a cell that begins one or more words.
type NumberedCell struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Number int `json:"number"`
}

// Layout is the result of a generate run.
// Words keep placement order; use Clues for number order.
type Layout struct {
	Grid     *grid.Grid            `json:"grid"`
	Words    []PlacedWord          `json:"words"`
	Numbered []NumberedCell        `json:"numbered"`
	Skipped  []*MalformedWordError `json:"skipped,omitempty"`
}

// Rows returns the grid height.
func (l *Layout) Rows() int { return l.Grid.Rows() }

// Cols returns the grid width.
func (l *Layout) Cols() int { return l.Grid.Cols() }

// WordsAt returns every placed word whose span covers (row, col).
func (l *Layout) WordsAt(row, col int) []PlacedWord {
	var out []PlacedWord
	for _, w := range l.Words {
		if w.Contains(row, col) {
			out = append(out, w)
		}
	}
	return out
}
