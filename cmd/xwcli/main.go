// cmd/xwcli/main.go
//
// Command-line layout tool: reads "word,definition" lines, lays them out
// and prints the grid and clue lists. Without -file the built-in list is used.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
	"github.com/robalobadob/crossword/apps/go-server/internal/words"
)

func main() {
	file := flag.String("file", "", "The file to load \"word,definition\" lines from")
	strategy := flag.String("strategy", "first-fit", "Intersection strategy: first-fit or best-fit")
	answers := flag.Bool("answers", false, "Print the solution instead of an empty grid")
	verbose := flag.Bool("v", false, "Log skipped words and placement decisions")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	st, err := crossword.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -strategy")
	}

	var entries []crossword.Entry
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal().Err(err).Msg("open word file")
		}
		entries, err = readEntries(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("read word file")
		}
	} else {
		defs, err := words.Defaults()
		if err != nil {
			log.Fatal().Err(err).Msg("load default words")
		}
		entries = words.ToCrossword(defs)
	}

	layout, err := crossword.NewEngine(crossword.WithStrategy(st)).Generate(entries)
	if err != nil {
		log.Fatal().Err(err).Msg("generate")
	}
	render(os.Stdout, layout, *answers)
}

// readEntries parses one entry per line; blank lines and "#" comments are ignored.
func readEntries(r io.Reader) ([]crossword.Entry, error) {
	var out []crossword.Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, def, _ := strings.Cut(line, ",")
		out = append(out, crossword.Entry{Word: word, Definition: strings.TrimSpace(def)})
	}
	return out, sc.Err()
}

// render prints the grid ('#' for blocks, '_' or the letter for open cells)
// followed by the across and down clues.
func render(w io.Writer, l *crossword.Layout, answers bool) {
	for _, line := range l.Grid.Lines('#') {
		if !answers {
			line = strings.Map(func(r rune) rune {
				if r == '#' {
					return r
				}
				return '_'
			}, line)
		}
		fmt.Fprintln(w, strings.Join(strings.Split(line, ""), " "))
	}

	across, down := l.Clues()
	fmt.Fprintln(w, "\nAcross")
	for _, c := range across {
		fmt.Fprintln(w, " ", c)
	}
	fmt.Fprintln(w, "\nDown")
	for _, c := range down {
		fmt.Fprintln(w, " ", c)
	}
	for _, sk := range l.Skipped {
		fmt.Fprintf(w, "\nskipped %q: %s", sk.Word, sk.Reason)
	}
	if len(l.Skipped) > 0 {
		fmt.Fprintln(w)
	}
}
