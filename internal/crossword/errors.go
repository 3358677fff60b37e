package crossword

import (
	"errors"
	"fmt"
)

// ErrEmptyWordList is returned by Generate when there is nothing to place.
var ErrEmptyWordList = errors.New("crossword: word list is empty")

// MalformedWordError describes an entry that was skipped during generation.
type MalformedWordError struct {
	Index  int    `json:"index"`
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

func (e *MalformedWordError) Error() string {
	return fmt.Sprintf("crossword: entry %d (%q) skipped: %s", e.Index, e.Word, e.Reason)
}
