package crossword

import (
	"testing"

	"github.com/robalobadob/crossword/apps/go-server/internal/grid"
)

// gridFrom builds a grid from rows where '.' is an empty cell.
func gridFrom(rows ...string) *grid.Grid {
	g := &grid.Grid{}
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			if line[c] != '.' {
				g.Set(r, c, line[c])
			}
		}
	}
	return g
}

func TestCanPlace(t *testing.T) {
	g := gridFrom(
		".....",
		".CAT.",
		".....",
		".....",
	)

	tests := []struct {
		name       string
		word       string
		row, col   int
		horizontal bool
		want       bool
	}{
		{"crosses on shared letter", "CAR", 1, 1, false, true},
		{"letter mismatch", "DOG", 1, 2, false, false},
		{"runs alongside above", "DOG", 0, 1, true, false},
		{"runs alongside below", "DOG", 2, 2, true, false},
		{"extends existing word", "SO", 1, 4, true, false},
		{"touches start of word", "DOG", 1, 0, false, false},
		{"isolated row", "DOG", 3, 1, true, true},
		{"negative row", "ACE", -1, 2, false, false},
		{"empty word", "", 3, 1, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlace(g, tt.word, tt.row, tt.col, tt.horizontal); got != tt.want {
				t.Errorf("CanPlace(%q, %d, %d, %v) = %v, want %v", tt.word, tt.row, tt.col, tt.horizontal, got, tt.want)
			}
		})
	}
}

func TestFits(t *testing.T) {
	g := gridFrom(".CAT.")
	if !Fits(g, "CAT", 0, 1, true) {
		t.Error("identical letters should fit")
	}
	if Fits(g, "COT", 0, 1, true) {
		t.Error("mismatched middle letter should not fit")
	}
	if !Fits(g, "ZZZ", 3, 3, true) {
		t.Error("cells outside the grid are empty and should fit")
	}
}

func TestClearOfNeighboursIgnoresCrossingCells(t *testing.T) {
	// The shared 'A' has horizontal neighbours C and T, which must not
	// count against a vertical word crossing there.
	g := gridFrom(
		".....",
		".CAT.",
		".....",
	)
	if !ClearOfNeighbours(g, "BAD", 0, 2, false) {
		t.Fatal("crossing cell neighbours should be ignored")
	}
	if ClearOfNeighbours(g, "ODE", 2, 1, true) {
		t.Fatal("word directly under CAT should be rejected")
	}
}

func TestClearAtEnds(t *testing.T) {
	g := gridFrom(
		"CAT..",
		".....",
	)
	if ClearAtEnds(g, "S", 0, 3, true) {
		t.Error("cell right after CAT is occupied before S")
	}
	if !ClearAtEnds(g, "DO", 0, 4, false) {
		t.Error("vertical word at col 4 has clear ends")
	}
	if ClearAtEnds(g, "AX", 1, 0, false) {
		t.Error("vertical word starting right below C would extend it")
	}
}

func TestCrossesOnly(t *testing.T) {
	g := gridFrom(
		".C...",
		".A...",
		".T...",
	)
	if CrossesOnly(g, "SCAT", -1, 1, false) {
		t.Error("word covering CA collinearly should be rejected")
	}
	if !CrossesOnly(g, "BAD", 1, 0, true) {
		t.Error("single crossing cell should be accepted")
	}
}

func TestIntersections(t *testing.T) {
	g := gridFrom(
		"C.T",
		"...",
		"T.E",
	)
	if n := Intersections(g, "CUT", 0, 0, false); n != 2 {
		t.Errorf("expected 2 shared letters, got %d", n)
	}
	if n := Intersections(g, "DOG", 1, 0, true); n != 0 {
		t.Errorf("expected 0 shared letters, got %d", n)
	}
}
