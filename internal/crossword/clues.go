package crossword

import (
	"cmp"
	"fmt"
	"slices"
)

// Direction is the orientation of a word: Across or Down.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Other returns the perpendicular direction.
func (d Direction) Other() Direction {
	if d == Down {
		return Across
	}
	return Down
}

// MarshalText encodes the direction as "across" or "down".
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts "across"/"horizontal"/"h" and "down"/"vertical"/"v".
func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "across", "horizontal", "h", "":
		*d = Across
	case "down", "vertical", "v":
		*d = Down
	default:
		return fmt.Errorf("crossword: unknown direction %q", b)
	}
	return nil
}

// Direction returns Across for horizontal words and Down otherwise.
func (w PlacedWord) Direction() Direction {
	if w.Horizontal {
		return Across
	}
	return Down
}

// Clue is one line of the across or down clue list.
type Clue struct {
	Number    int       `json:"number"`
	Direction Direction `json:"direction"`
	Text      string    `json:"text"`
	Answer    string    `json:"-"`
	Length    int       `json:"length"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
}

// String formats the clue as "N. text (length)".
func (c Clue) String() string {
	return fmt.Sprintf("%d. %s (%d)", c.Number, c.Text, c.Length)
}

// Clues returns the across and down clue lists, each sorted by number.
// Words that have not been numbered are left out.
func (l *Layout) Clues() (across, down []Clue) {
	for _, w := range l.Words {
		if w.Number == 0 {
			continue
		}
		c := Clue{
			Number:    w.Number,
			Direction: w.Direction(),
			Text:      w.Clue,
			Answer:    w.Text,
			Length:    w.Len(),
			Row:       w.Row,
			Col:       w.Col,
		}
		if w.Horizontal {
			across = append(across, c)
		} else {
			down = append(down, c)
		}
	}
	byNumber := func(a, b Clue) int { return cmp.Compare(a.Number, b.Number) }
	slices.SortStableFunc(across, byNumber)
	slices.SortStableFunc(down, byNumber)
	return across, down
}
