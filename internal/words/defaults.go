// internal/words/defaults.go
//
// Embedded default word list (assets/words.txt), parsed once.
// Lines are "word,definition"; invalid lines are logged and dropped.

package words

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/assets"
)

var (
	defaultsOnce sync.Once
	defaults     []Entry
	defaultsErr  error
)

// Defaults returns the embedded default entries. Callers must not modify
// the returned slice.
func Defaults() ([]Entry, error) {
	defaultsOnce.Do(func() {
		lines, err := assets.WordLines()
		if err != nil {
			defaultsErr = err
			return
		}
		defaults = parseLines(lines)
	})
	return defaults, defaultsErr
}

// parseLines turns "word,definition" lines into entries, dropping
// invalid words and duplicates.
func parseLines(lines []string) []Entry {
	seen := make(map[string]struct{}, len(lines))
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		w, def, _ := strings.Cut(line, ",")
		w = Normalize(w)
		if err := Validate(w); err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping default word")
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, Entry{Word: w, Definition: strings.TrimSpace(def)})
	}
	return out
}
