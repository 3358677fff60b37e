// internal/solve/state.go
//
// Player-side copy of a finalized crossword layout.
// Responsibilities:
//   - Mirror the solution grid: cells outside every word are blocks,
//     every letter cell starts empty.
//   - Accept one-cell letter edits (wrong letters are allowed).
//   - Judge a single word or the whole puzzle.
//   - Clear answers while keeping blocks and dimensions.
//
// A State is bound to one Layout and is never resized. It is not safe
// for concurrent use; callers serialize access (see internal/game).

package solve

import (
	"encoding/json"
	"errors"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
	"github.com/robalobadob/crossword/apps/go-server/internal/grid"
)

// Block marks a player cell that is not part of any word.
const Block byte = '#'

var (
	ErrOutOfBounds   = errors.New("solve: cell out of bounds")
	ErrBlockedCell   = errors.New("solve: cell is blocked")
	ErrInvalidLetter = errors.New("solve: value must be a single letter A-Z")
)

// Status is the user-facing verdict of a puzzle check.
type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusIncorrect  Status = "incorrect"
	StatusSolved     Status = "solved"
)

// Result is the outcome of CheckPuzzle. The two flags are independent:
// a puzzle can be complete but incorrect.
type Result struct {
	Complete   bool `json:"complete"`
	AllCorrect bool `json:"allCorrect"`
}

// Status folds the result into incomplete, incorrect or solved.
func (r Result) Status() Status {
	switch {
	case !r.Complete:
		return StatusIncomplete
	case !r.AllCorrect:
		return StatusIncorrect
	default:
		return StatusSolved
	}
}

// State holds the letters a player has entered for one layout.
type State struct {
	layout *crossword.Layout
	player [][]byte
}

// New builds the player grid for l: blocks where the solution is empty,
// empty cells where it holds a letter.
func New(l *crossword.Layout) *State {
	rows, cols := l.Rows(), l.Cols()
	s := &State{layout: l, player: make([][]byte, rows)}
	for r := 0; r < rows; r++ {
		s.player[r] = make([]byte, cols)
		for c := 0; c < cols; c++ {
			if !l.Grid.Occupied(r, c) {
				s.player[r][c] = Block
			}
		}
	}
	return s
}

// Layout returns the layout this state is bound to.
func (s *State) Layout() *crossword.Layout { return s.layout }

func (s *State) Rows() int { return len(s.player) }

func (s *State) Cols() int {
	if len(s.player) == 0 {
		return 0
	}
	return len(s.player[0])
}

func (s *State) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < s.Rows() && col < s.Cols()
}

// Cell returns the player's value at (row, col): Block, grid.Empty or a
// letter. Out-of-range cells read as Block.
func (s *State) Cell(row, col int) byte {
	if !s.inBounds(row, col) {
		return Block
	}
	return s.player[row][col]
}

// Blocked reports whether (row, col) is outside every word.
func (s *State) Blocked(row, col int) bool { return s.Cell(row, col) == Block }

// SetCell writes one cell. v is grid.Empty to erase, or a letter;
// lower case is folded to upper. The value is not compared with the
// solution.
func (s *State) SetCell(row, col int, v byte) error {
	if !s.inBounds(row, col) {
		return ErrOutOfBounds
	}
	if s.player[row][col] == Block {
		return ErrBlockedCell
	}
	if v >= 'a' && v <= 'z' {
		v -= 'a' - 'A'
	}
	if v != grid.Empty && (v < 'A' || v > 'Z') {
		return ErrInvalidLetter
	}
	s.player[row][col] = v
	return nil
}

// CheckWord reports whether every cell of w is filled with the
// solution letter.
func (s *State) CheckWord(w crossword.PlacedWord) bool {
	for i := 0; i < w.Len(); i++ {
		r, c := w.CellAt(i)
		v := s.Cell(r, c)
		if v == grid.Empty || v == Block || v != s.layout.Grid.Get(r, c) {
			return false
		}
	}
	return true
}

// CheckPuzzle checks every solution cell. Complete is true when no
// letter cell is empty; AllCorrect when every letter cell matches.
func (s *State) CheckPuzzle() Result {
	res := Result{Complete: true, AllCorrect: true}
	for r, row := range s.player {
		for c, v := range row {
			if v == Block {
				continue
			}
			if v == grid.Empty {
				res.Complete = false
				res.AllCorrect = false
				continue
			}
			if v != s.layout.Grid.Get(r, c) {
				res.AllCorrect = false
			}
		}
	}
	return res
}

// Clear erases every entered letter. Blocks stay in place.
func (s *State) Clear() {
	for _, row := range s.player {
		for c, v := range row {
			if v != Block {
				row[c] = grid.Empty
			}
		}
	}
}

// CompletedWords returns the words running through (row, col) that are
// now filled correctly, in layout order.
func (s *State) CompletedWords(row, col int) []crossword.PlacedWord {
	var out []crossword.PlacedWord
	for _, w := range s.layout.WordsAt(row, col) {
		if s.CheckWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// Letters returns a copy of the player grid, one string per cell:
// "#" for blocks, "" for empty cells, otherwise the letter.
func (s *State) Letters() [][]string {
	out := make([][]string, len(s.player))
	for r, row := range s.player {
		out[r] = make([]string, len(row))
		for c, v := range row {
			if v != grid.Empty {
				out[r][c] = string(v)
			}
		}
	}
	return out
}

// MarshalJSON encodes the player grid as returned by Letters.
func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Letters())
}
