// internal/game/engine.go
//
// Puzzle session around the crossword core.
// Responsibilities:
//   - Bind one finalized Layout to a fresh solve.State.
//   - Serialize letter edits, checks and clears behind a mutex.
//   - Track state transitions: playing → solved (edits stay allowed).
//
// Notes:
//   - Answers never leave this package through View or Cursor.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
	"github.com/robalobadob/crossword/apps/go-server/internal/grid"
	"github.com/robalobadob/crossword/apps/go-server/internal/solve"
)

// ErrNoWord is returned by CursorAt for a cell outside every word.
var ErrNoWord = errors.New("game: no word at cell")

// New constructs a session for a finalized layout.
func New(l *crossword.Layout, owner string) *Game {
	return &Game{
		ID:        randomID(),
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
		layout:    l,
		state:     solve.New(l),
	}
}

// ApplyLetter writes value ("" to erase, or one letter) at (row, col) and
// returns the words through that cell that are now correct.
func (g *Game) ApplyLetter(row, col int, value string) ([]crossword.PlacedWord, error) {
	value = strings.TrimSpace(value)
	var v byte
	switch len(value) {
	case 0:
		v = grid.Empty
	case 1:
		v = value[0]
	default:
		return nil, solve.ErrInvalidLetter
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.state.SetCell(row, col, v); err != nil {
		return nil, err
	}
	if v == grid.Empty {
		return nil, nil
	}
	return g.state.CompletedWords(row, col), nil
}

// Check judges the whole puzzle and records the first time it is solved.
// first is true only for the one call that moved the session to solved.
func (g *Game) Check() (res solve.Result, first bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checks++
	res = g.state.CheckPuzzle()
	if res.Status() == solve.StatusSolved && g.solvedAt.IsZero() {
		g.solvedAt = time.Now().UTC()
		first = true
	}
	return res, first
}

// CheckWord judges the word with the given number and direction.
func (g *Game) CheckWord(number int, dir crossword.Direction) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, w := range g.layout.Words {
		if w.Number == number && w.Direction() == dir {
			return g.state.CheckWord(w), nil
		}
	}
	return false, ErrNoWord
}

// Clear erases all entered letters. A solved session stays solved.
func (g *Game) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.Clear()
}

// Solved reports whether a check has found the puzzle solved, and when.
func (g *Game) Solved() (bool, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.solvedAt.IsZero(), g.solvedAt
}

// Checks returns how many times Check was called.
func (g *Game) Checks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.checks
}

// Layout returns the solution layout. Callers must treat it as read-only.
func (g *Game) Layout() *crossword.Layout { return g.layout }

// View returns a snapshot of the session for rendering.
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	across, down := g.layout.Clues()
	return View{
		ID:      g.ID,
		Daily:   g.Daily,
		Rows:    g.state.Rows(),
		Cols:    g.state.Cols(),
		Cells:   g.state.Letters(),
		Numbers: append([]crossword.NumberedCell(nil), g.layout.Numbered...),
		Across:  across,
		Down:    down,
		State:   g.stateName(),
		Checks:  g.checks,
	}
}

// CursorAt returns the word under (row, col), preferring dir.
func (g *Game) CursorAt(row, col int, dir crossword.Direction) (Cursor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	w, got, ok := g.state.WordAt(row, col, dir)
	if !ok {
		return Cursor{}, ErrNoWord
	}
	cur := Cursor{Number: w.Number, Direction: got, Cells: make([][2]int, w.Len())}
	for i := range cur.Cells {
		r, c := w.CellAt(i)
		cur.Cells[i] = [2]int{r, c}
	}
	if r, c, ok := solve.Next(w, row, col); ok {
		cur.Next = &[2]int{r, c}
	}
	if r, c, ok := solve.Prev(w, row, col); ok {
		cur.Prev = &[2]int{r, c}
	}
	return cur, nil
}

// stateName reports the coarse session state; caller holds g.mu.
func (g *Game) stateName() string {
	if !g.solvedAt.IsZero() {
		return StateSolved
	}
	return StatePlaying
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
