// internal/game/types.go
//
// Type definitions for a puzzle session.
// Defines:
//   - Game: one generated layout bound to one player solve state.
//   - View: a snapshot safe to hand to a renderer (no answers).
//   - Cursor: the word under a cell plus its neighbouring cells.

package game

import (
	"sync"
	"time"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
	"github.com/robalobadob/crossword/apps/go-server/internal/solve"
)

// Session states reported in View.State.
const (
	StatePlaying = "playing"
	StateSolved  = "solved"
)

// Game is a puzzle session. All methods are safe for concurrent use.
type Game struct {
	ID        string    // random hex identifier
	Owner     string    // user or anonymous id that generated it
	Daily     string    // date key for daily puzzles, "" otherwise
	CreatedAt time.Time // generation time

	mu       sync.Mutex
	layout   *crossword.Layout
	state    *solve.State
	checks   int
	solvedAt time.Time
}

// View is what the renderer needs to draw the puzzle.
type View struct {
	ID      string                   `json:"id"`
	Daily   string                   `json:"daily,omitempty"`
	Rows    int                      `json:"rows"`
	Cols    int                      `json:"cols"`
	Cells   [][]string               `json:"cells"` // "#" block, "" empty, else letter
	Numbers []crossword.NumberedCell `json:"numbers"`
	Across  []crossword.Clue         `json:"across"`
	Down    []crossword.Clue         `json:"down"`
	State   string                   `json:"state"`
	Checks  int                      `json:"checks"`
}

// Cursor describes the word under a cell.
type Cursor struct {
	Number    int                 `json:"number"`
	Direction crossword.Direction `json:"direction"`
	Cells     [][2]int            `json:"cells"`
	Next      *[2]int             `json:"next,omitempty"`
	Prev      *[2]int             `json:"prev,omitempty"`
}
