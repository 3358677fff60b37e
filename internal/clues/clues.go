// internal/clues/clues.go
//
// Optional clue suggestions for entries saved without a definition.
// Without a suggester the layout engine falls back to the word itself.

package clues

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
)

// Suggester proposes a short clue for each word. The returned map is
// keyed by the upper-case word; words it cannot clue are omitted.
type Suggester interface {
	Suggest(ctx context.Context, words []string) (map[string]string, error)
}

// FillMissing returns a copy of entries where empty definitions are
// replaced by suggestions. A failing suggester leaves entries unchanged.
func FillMissing(ctx context.Context, s Suggester, entries []crossword.Entry) []crossword.Entry {
	out := append([]crossword.Entry(nil), entries...)
	if s == nil {
		return out
	}

	var missing []string
	for _, e := range out {
		if strings.TrimSpace(e.Definition) == "" && strings.TrimSpace(e.Word) != "" {
			missing = append(missing, strings.ToUpper(strings.TrimSpace(e.Word)))
		}
	}
	if len(missing) == 0 {
		return out
	}

	got, err := s.Suggest(ctx, missing)
	if err != nil {
		log.Warn().Err(err).Int("words", len(missing)).Msg("clue suggestion failed")
		return out
	}
	for i, e := range out {
		if strings.TrimSpace(e.Definition) != "" {
			continue
		}
		if clue := strings.TrimSpace(got[strings.ToUpper(strings.TrimSpace(e.Word))]); clue != "" {
			out[i].Definition = clue
		}
	}
	return out
}
