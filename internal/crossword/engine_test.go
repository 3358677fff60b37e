package crossword

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/robalobadob/crossword/apps/go-server/internal/grid"
)

func newTestEngine(opts ...Option) *Engine {
	return NewEngine(append([]Option{WithLogger(zerolog.Nop())}, opts...)...)
}

func entries(words ...string) []Entry {
	out := make([]Entry, len(words))
	for i, w := range words {
		out[i] = Entry{Word: w}
	}
	return out
}

// position is the comparable part of a PlacedWord.
type position struct {
	Text       string
	Row, Col   int
	Horizontal bool
}

func positions(words []PlacedWord) []position {
	out := make([]position, len(words))
	for i, w := range words {
		out[i] = position{w.Text, w.Row, w.Col, w.Horizontal}
	}
	return out
}

func TestArrangeCatCarArt(t *testing.T) {
	l, err := newTestEngine().Arrange(entries("cat", "car", "art"))
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	want := []position{
		{"CAT", 1, 1, true},
		{"CAR", 1, 1, false},
		{"ART", 3, 0, true},
	}
	if diff := cmp.Diff(want, positions(l.Words)); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateCatCarArt(t *testing.T) {
	l, err := newTestEngine().Generate(entries("cat", "car", "art"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []position{
		{"CAT", 0, 1, true},
		{"CAR", 0, 1, false},
		{"ART", 2, 0, true},
	}
	if diff := cmp.Diff(want, positions(l.Words)); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(".CAT\n.A..\nART.", l.Grid.String()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	wantNumbers := []NumberedCell{{Row: 0, Col: 1, Number: 1}, {Row: 2, Col: 0, Number: 2}}
	if diff := cmp.Diff(wantNumbers, l.Numbered); diff != "" {
		t.Errorf("numbering mismatch (-want +got):\n%s", diff)
	}
	if l.Words[0].Number != 1 || l.Words[1].Number != 1 || l.Words[2].Number != 2 {
		t.Errorf("word numbers = %d,%d,%d, want 1,1,2", l.Words[0].Number, l.Words[1].Number, l.Words[2].Number)
	}
	checkLayout(t, l)
}

func TestGenerateSingleWord(t *testing.T) {
	e := newTestEngine()

	raw, err := e.Arrange(entries("hello"))
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	if w := raw.Words[0]; w.Row != 1 || w.Col != 1 || !w.Horizontal {
		t.Fatalf("seed word at (%d,%d,%v), want (1,1,horizontal)", w.Row, w.Col, w.Horizontal)
	}

	l, err := e.Generate(entries("hello"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if l.Rows() != 1 || l.Cols() != 5 {
		t.Fatalf("expected 1x5 grid, got %dx%d", l.Rows(), l.Cols())
	}
	if w := l.Words[0]; w.Row != 0 || w.Col != 0 || w.Number != 1 {
		t.Fatalf("word at (%d,%d) #%d, want (0,0) #1", w.Row, w.Col, w.Number)
	}
	if len(l.Numbered) != 1 {
		t.Fatalf("expected one numbered cell, got %d", len(l.Numbered))
	}
	if l.Words[0].Clue != "HELLO" {
		t.Fatalf("missing definition should fall back to the word, got %q", l.Words[0].Clue)
	}
}

func TestGenerateEmptyList(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Generate(nil); !errors.Is(err, ErrEmptyWordList) {
		t.Fatalf("expected ErrEmptyWordList, got %v", err)
	}
	if _, err := e.Generate(entries("", "  ", "no-way")); !errors.Is(err, ErrEmptyWordList) {
		t.Fatalf("all-malformed list should be ErrEmptyWordList, got %v", err)
	}
}

func TestGenerateSkipsMalformed(t *testing.T) {
	l, err := newTestEngine().Generate([]Entry{
		{Word: "apple", Definition: "A fruit"},
		{Word: ""},
		{Word: "pe4r"},
		{Word: " Lemon ", Definition: " Sour "},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(l.Words) != 2 {
		t.Fatalf("expected 2 placed words, got %d", len(l.Words))
	}
	if len(l.Skipped) != 2 {
		t.Fatalf("expected 2 skipped entries, got %d", len(l.Skipped))
	}
	var mw *MalformedWordError
	if !errors.As(l.Skipped[1], &mw) || mw.Index != 2 {
		t.Fatalf("expected malformed entry index 2, got %+v", l.Skipped[1])
	}
	for _, w := range l.Words {
		if w.Text == "LEMON" && w.Clue != "Sour" {
			t.Fatalf("definition should be trimmed, got %q", w.Clue)
		}
	}
}

func TestSortKeepsInputOrderForTies(t *testing.T) {
	l, err := newTestEngine().Arrange(entries("dog", "elephant", "cat"))
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	got := []string{l.Words[0].Text, l.Words[1].Text, l.Words[2].Text}
	if diff := cmp.Diff([]string{"ELEPHANT", "DOG", "CAT"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbackBelowLastWord(t *testing.T) {
	l, err := newTestEngine().Arrange(entries("abc", "xyz"))
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	want := []position{{"ABC", 1, 1, true}, {"XYZ", 3, 1, true}}
	if diff := cmp.Diff(want, positions(l.Words)); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbackAvoidsTallWord(t *testing.T) {
	// GNO ends up vertical and short; the row below it runs into the
	// tall AHIJKLM column, so XYZ must go below the whole layout.
	l, err := newTestEngine().Arrange(entries("abcdefg", "ahijklm", "gno", "xyz"))
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	want := []position{
		{"ABCDEFG", 1, 1, true},
		{"AHIJKLM", 1, 1, false},
		{"GNO", 1, 7, false},
		{"XYZ", 9, 1, true},
	}
	if diff := cmp.Diff(want, positions(l.Words)); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
	checkLayout(t, l)
}

func TestStrategies(t *testing.T) {
	build := func() *Layout {
		l := &Layout{Grid: &grid.Grid{}}
		place(l, PlacedWord{Text: "UMP"}, 8, 1, true)
		place(l, PlacedWord{Text: "CAT"}, 1, 1, true)
		place(l, PlacedWord{Text: "TOE"}, 3, 1, true)
		return l
	}

	for _, tc := range []struct {
		strategy Strategy
		want     position
	}{
		{FirstFit, position{"CUT", 7, 1, false}},
		{BestFit, position{"CUT", 1, 1, false}},
	} {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			e := newTestEngine(WithStrategy(tc.strategy))
			r, c, h, ok := e.findCrossing(build(), "CUT")
			if !ok {
				t.Fatal("expected a crossing")
			}
			if got := (position{"CUT", r, c, h}); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": FirstFit, "first-fit": FirstFit, "BEST": BestFit, "best-fit": BestFit} {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseStrategy("random"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

var propertyLists = [][]string{
	{"crossword", "puzzle", "grid", "letter", "clue", "answer", "across", "down", "number", "solve"},
	{"apple", "banana", "cherry", "grape", "lemon", "mango", "peach", "pear", "plum", "kiwi"},
	{"abc", "xyz", "def", "ghi", "jkl"},
	{"tree", "tree", "reed", "deer", "rete", "tee"},
	{"go", "gopher", "channel", "goroutine", "select", "interface", "struct", "slice", "map"},
}

func TestLayoutProperties(t *testing.T) {
	for _, strategy := range []Strategy{FirstFit, BestFit} {
		for i, words := range propertyLists {
			t.Run(fmt.Sprintf("%s/list%d", strategy, i), func(t *testing.T) {
				l, err := newTestEngine(WithStrategy(strategy)).Generate(entries(words...))
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if len(l.Words) != len(words) {
					t.Fatalf("placed %d words, want %d", len(l.Words), len(words))
				}
				checkLayout(t, l)
				checkNumbering(t, l)
			})
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	l, err := newTestEngine().Generate(entries(propertyLists[0]...))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	before := positions(l.Words)
	grid := l.Grid.String()
	numbered := append([]NumberedCell(nil), l.Numbered...)

	Normalize(l)
	Number(l)

	if diff := cmp.Diff(before, positions(l.Words)); diff != "" {
		t.Errorf("words moved (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid, l.Grid.String()); diff != "" {
		t.Errorf("grid changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(numbered, l.Numbered); diff != "" {
		t.Errorf("numbering changed (-want +got):\n%s", diff)
	}
}

func TestClues(t *testing.T) {
	l, err := newTestEngine().Generate([]Entry{
		{Word: "cat", Definition: "Feline"},
		{Word: "car", Definition: "Vehicle"},
		{Word: "art"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	across, down := l.Clues()

	var got []string
	for _, c := range across {
		got = append(got, c.Direction.String()+" "+c.String())
	}
	for _, c := range down {
		got = append(got, c.Direction.String()+" "+c.String())
	}
	want := []string{"across 1. Feline (3)", "across 2. ART (3)", "down 1. Vehicle (3)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clues mismatch (-want +got):\n%s", diff)
	}
	if n := l.NumberAt(2, 0); n != 2 {
		t.Errorf("NumberAt(2,0) = %d, want 2", n)
	}
}

// checkLayout verifies that every word matches the grid and that every
// maximal run of two or more letters is exactly one declared word.
func checkLayout(t *testing.T, l *Layout) {
	t.Helper()

	for _, w := range l.Words {
		for i := 0; i < w.Len(); i++ {
			r, c := w.CellAt(i)
			if got := l.Grid.Get(r, c); got != w.Text[i] {
				t.Fatalf("word %s letter %d at (%d,%d): grid has %q", w.Text, i, r, c, got)
			}
		}
	}

	type span struct {
		row, col, n int
		horizontal  bool
	}
	declared := make(map[span]int)
	for _, w := range l.Words {
		declared[span{w.Row, w.Col, w.Len(), w.Horizontal}]++
	}

	rows, cols := l.Grid.Rows()+2, l.Grid.Cols()+2
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !l.Grid.Occupied(r, c) {
				continue
			}
			if !l.Grid.Occupied(r, c-1) {
				n := 0
				for l.Grid.Occupied(r, c+n) {
					n++
				}
				if n > 1 && declared[span{r, c, n, true}] != 1 {
					t.Fatalf("horizontal run at (%d,%d) length %d is not exactly one word\n%s", r, c, n, l.Grid)
				}
			}
			if !l.Grid.Occupied(r-1, c) {
				n := 0
				for l.Grid.Occupied(r+n, c) {
					n++
				}
				if n > 1 && declared[span{r, c, n, false}] != 1 {
					t.Fatalf("vertical run at (%d,%d) length %d is not exactly one word\n%s", r, c, n, l.Grid)
				}
			}
		}
	}
}

func checkNumbering(t *testing.T, l *Layout) {
	t.Helper()
	for i, nc := range l.Numbered {
		if nc.Number != i+1 {
			t.Fatalf("numbered cell %d has number %d", i, nc.Number)
		}
		if i > 0 {
			prev := l.Numbered[i-1]
			if nc.Row < prev.Row || (nc.Row == prev.Row && nc.Col <= prev.Col) {
				t.Fatalf("numbers not in reading order at %d", i)
			}
		}
	}
	for _, w := range l.Words {
		if w.Number == 0 || l.NumberAt(w.Row, w.Col) != w.Number {
			t.Fatalf("word %s has number %d, cell has %d", w.Text, w.Number, l.NumberAt(w.Row, w.Col))
		}
	}
	if l.Rows() > 0 && (l.Grid.Rows() == 0 || l.Words[0].Row < 0) {
		t.Fatal("layout not normalized")
	}
	minRow, minCol := l.Rows(), l.Cols()
	for _, w := range l.Words {
		minRow, minCol = min(minRow, w.Row), min(minCol, w.Col)
	}
	if minRow != 0 || minCol != 0 {
		t.Fatalf("layout starts at (%d,%d), want (0,0)", minRow, minCol)
	}
}
