// internal/crossword/engine.go
//
// Greedy layout engine.
// Responsibilities:
//   - Clean the input entries (trim, upper-case, skip malformed ones).
//   - Seed the longest word horizontally at (1,1).
//   - Place every other word across an already placed word, perpendicular
//     to it, at the first (or best, see Strategy) valid intersection.
//   - Fall back to a fresh row below the layout when nothing intersects.
//
// Words are never moved once placed. Generate runs Arrange and then the
// normalizer and numberer to produce a finalized Layout.

package crossword

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/internal/grid"
)

const (
	seedRow = 1
	seedCol = 1
)

// Strategy selects how an intersection candidate is chosen.
type Strategy int

const (
	// FirstFit accepts the first valid candidate in discovery order.
	FirstFit Strategy = iota
	// BestFit accepts the valid candidate with the most shared letters.
	BestFit
)

func (s Strategy) String() string {
	switch s {
	case BestFit:
		return "best-fit"
	default:
		return "first-fit"
	}
}

// ParseStrategy maps "first-fit"/"best-fit" (or "" for the default) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-fit", "firstfit", "first":
		return FirstFit, nil
	case "best-fit", "bestfit", "best":
		return BestFit, nil
	}
	return FirstFit, fmt.Errorf("crossword: unknown strategy %q", s)
}

// Engine lays out word lists. It holds no per-run state and may be reused.
type Engine struct {
	strategy Strategy
	log      zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy sets the candidate selection strategy.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithLogger sets the logger used for skipped entries and fallbacks.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns an engine using FirstFit and the global logger.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{strategy: FirstFit, log: log.Logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strategy reports the configured strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Generate lays out entries and returns a normalized, numbered Layout.
// It returns ErrEmptyWordList when there is no usable entry.
func (e *Engine) Generate(entries []Entry) (*Layout, error) {
	l, err := e.Arrange(entries)
	if err != nil {
		return nil, err
	}
	Normalize(l)
	Number(l)
	return l, nil
}

// Arrange places the entries without normalizing or numbering, so the
// coordinates are those used during placement (seed at row 1, col 1).
func (e *Engine) Arrange(entries []Entry) (*Layout, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyWordList
	}

	l := &Layout{Grid: &grid.Grid{}}
	words := make([]PlacedWord, 0, len(entries))
	for i, en := range entries {
		text := strings.ToUpper(strings.TrimSpace(en.Word))
		if reason := malformed(text); reason != "" {
			werr := &MalformedWordError{Index: i, Word: en.Word, Reason: reason}
			e.log.Warn().Err(werr).Int("index", i).Msg("skipping malformed word")
			l.Skipped = append(l.Skipped, werr)
			continue
		}
		clue := strings.TrimSpace(en.Definition)
		if clue == "" {
			clue = text
		}
		words = append(words, PlacedWord{Text: text, Clue: clue})
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: all %d entries malformed", ErrEmptyWordList, len(entries))
	}

	// Longest first; equal lengths keep input order.
	slices.SortStableFunc(words, func(a, b PlacedWord) int {
		return cmp.Compare(b.Len(), a.Len())
	})

	place(l, words[0], seedRow, seedCol, true)
	for _, w := range words[1:] {
		row, col, horizontal, ok := e.findCrossing(l, w.Text)
		if !ok {
			row, col = e.fallback(l, w.Text)
			horizontal = true
		}
		place(l, w, row, col, horizontal)
	}
	return l, nil
}

// findCrossing searches placed words (in placement order) and letter
// pairs (in index order) for a perpendicular position sharing a letter.
func (e *Engine) findCrossing(l *Layout, word string) (row, col int, horizontal, ok bool) {
	best := -1
	for _, pw := range l.Words {
		for ci := 0; ci < len(word); ci++ {
			for pi := 0; pi < len(pw.Text); pi++ {
				if word[ci] != pw.Text[pi] {
					continue
				}
				r, c := pw.Row-ci, pw.Col+pi
				if !pw.Horizontal {
					r, c = pw.Row+pi, pw.Col-ci
				}
				h := !pw.Horizontal
				if !CanPlace(l.Grid, word, r, c, h) {
					continue
				}
				shared := Intersections(l.Grid, word, r, c, h)
				if shared == len(word) {
					// Would only retrace letters already on the grid.
					continue
				}
				if e.strategy == FirstFit {
					return r, c, h, true
				}
				if shared > best {
					best = shared
					row, col, horizontal, ok = r, c, h, true
				}
			}
		}
	}
	return row, col, horizontal, ok
}

// fallback puts the word on its own row below the most recently placed
// word. If that row is not clear it moves below the lowest occupied row,
// which is always free.
func (e *Engine) fallback(l *Layout, word string) (row, col int) {
	last := l.Words[len(l.Words)-1]
	row = last.Row + 2
	if !last.Horizontal {
		row = last.Row + last.Len() + 1
	}
	if CanPlace(l.Grid, word, row, seedCol, true) {
		e.log.Debug().Str("word", word).Int("row", row).Msg("no crossing found, placed below")
		return row, seedCol
	}
	lowest := 0
	for _, w := range l.Words {
		r, _ := w.CellAt(w.Len() - 1)
		lowest = max(lowest, r)
	}
	e.log.Debug().Str("word", word).Int("row", lowest+2).Msg("fallback row blocked, placed below layout")
	return lowest + 2, seedCol
}

// place writes the word's letters and records it. Capacity is reserved
// first so the write never partially fails.
func place(l *Layout, w PlacedWord, row, col int, horizontal bool) {
	n := w.Len()
	if horizontal {
		l.Grid.EnsureCapacity(row+2, col+n+1)
	} else {
		l.Grid.EnsureCapacity(row+n+1, col+2)
	}
	for i := 0; i < n; i++ {
		r, c := step(row, col, horizontal, i)
		l.Grid.Set(r, c, w.Text[i])
	}
	w.Row, w.Col, w.Horizontal = row, col, horizontal
	l.Words = append(l.Words, w)
}

// malformed returns why text cannot be placed, or "" if it can.
func malformed(text string) string {
	if text == "" {
		return "missing word text"
	}
	for i := 0; i < len(text); i++ {
		if text[i] < 'A' || text[i] > 'Z' {
			return "contains characters outside A-Z"
		}
	}
	return ""
}
