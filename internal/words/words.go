// internal/words/words.go
//
// Word-list entries and the rules a word must pass before it is saved.
//
// Rules:
//   • 3 to 15 letters after trimming.
//   • Letters A–Z only (case-insensitive; stored upper-case).
//   • No duplicates within one owner's list (case-insensitive).
//
// The crossword core only sees the result of ToCrossword.

package words

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
)

const (
	MinLen = 3
	MaxLen = 15
)

var (
	ErrTooShort   = fmt.Errorf("words: word must be at least %d letters", MinLen)
	ErrTooLong    = fmt.Errorf("words: word must be at most %d letters", MaxLen)
	ErrNotLetters = errors.New("words: word must contain letters only")
	ErrDuplicate  = errors.New("words: word already in list")
	ErrNotFound   = errors.New("words: entry not found")
)

// Entry is one saved word with its usage bookkeeping.
type Entry struct {
	ID         int64      `json:"id"`
	Word       string     `json:"word"`
	Definition string     `json:"definition"`
	DateAdded  time.Time  `json:"dateAdded"`
	TimesUsed  int        `json:"timesUsed"`
	LastUsed   *time.Time `json:"lastUsed,omitempty"`
}

// Normalize trims and upper-cases a word.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// Validate checks a normalized word against the length and charset rules.
func Validate(w string) error {
	switch {
	case len(w) < MinLen:
		return ErrTooShort
	case len(w) > MaxLen:
		return ErrTooLong
	case !isAlpha(w):
		return ErrNotLetters
	}
	return nil
}

// ToCrossword converts saved entries into layout engine input, keeping order.
func ToCrossword(list []Entry) []crossword.Entry {
	out := make([]crossword.Entry, len(list))
	for i, e := range list {
		out[i] = crossword.Entry{Word: e.Word, Definition: e.Definition}
	}
	return out
}

// isAlpha reports whether s is all upper-case ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
