// internal/httpserver/routes_puzzle.go
//
// Puzzle endpoints: the renderer's event source for the crossword core.
//   - POST /puzzles                 → generate (explicit entries or the caller's word list)
//   - GET  /puzzles                 → the caller's puzzles, newest first
//   - GET  /puzzles/{id}            → layout view + player grid
//   - PUT  /puzzles/{id}/cells      → one-letter cell edit
//   - POST /puzzles/{id}/check      → check solution (?number=&dir= checks one word)
//   - POST /puzzles/{id}/clear      → clear answers
//   - GET  /puzzles/{id}/word       → word under the cursor (?row=&col=&dir=)
//
// Puzzles are visible only to the owner that generated them.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/internal/clues"
	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
	"github.com/robalobadob/crossword/apps/go-server/internal/game"
	"github.com/robalobadob/crossword/apps/go-server/internal/solve"
	"github.com/robalobadob/crossword/apps/go-server/internal/words"
)

func (s *Server) mountPuzzles(r chi.Router) {
	r.Route("/puzzles", func(r chi.Router) {
		r.Post("/", s.handleGenerate)
		r.Get("/", s.handleListPuzzles)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.withGame(s.handleGetPuzzle))
			r.Put("/cells", s.withGame(s.handleSetCell))
			r.Post("/check", s.withGame(s.handleCheck))
			r.Post("/clear", s.withGame(s.handleClear))
			r.Get("/word", s.withGame(s.handleWordAt))
		})
	})
}

// gameHandler is a handler that has already resolved the caller's puzzle.
type gameHandler func(w http.ResponseWriter, r *http.Request, g *game.Game)

// withGame loads the {id} puzzle and checks the caller owns it.
func (s *Server) withGame(h gameHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := s.games.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil || g.Owner != s.ownerID(w, r) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		h(w, r, g)
	}
}

// -----------------------------------------------------------------------------
// POST /puzzles

type generateReq struct {
	Entries  []crossword.Entry `json:"entries"`  // optional; defaults to the saved word list
	Strategy string            `json:"strategy"` // optional "first-fit" | "best-fit"
}

type generateRes struct {
	game.View
	Skipped []*crossword.MalformedWordError `json:"skipped,omitempty"`
}

// handleGenerate lays out a new puzzle and stores the session.
// Without explicit entries the caller's saved list is used, or the
// embedded defaults when that list is empty.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	owner := s.ownerID(w, r)

	engine := s.engine
	if req.Strategy != "" {
		st, err := crossword.ParseStrategy(req.Strategy)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_strategy")
			return
		}
		engine = crossword.NewEngine(crossword.WithStrategy(st))
	}

	entries := req.Entries
	fromList := false
	if len(entries) == 0 {
		saved, err := s.words.List(r.Context(), owner)
		if err != nil {
			log.Error().Err(err).Msg("list words")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		if len(saved) == 0 {
			if saved, err = words.Defaults(); err != nil {
				writeError(w, http.StatusInternalServerError, "defaults_unavailable")
				return
			}
		} else {
			fromList = true
		}
		entries = words.ToCrossword(saved)
	}
	entries = clues.FillMissing(r.Context(), s.clues, entries)

	layout, err := engine.Generate(entries)
	if errors.Is(err, crossword.ErrEmptyWordList) {
		writeError(w, http.StatusBadRequest, "empty_word_list")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("generate layout")
		writeError(w, http.StatusInternalServerError, "generate_failed")
		return
	}

	g := game.New(layout, owner)
	if err := s.games.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save puzzle")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	if fromList {
		placed := make([]string, len(layout.Words))
		for i, pw := range layout.Words {
			placed[i] = pw.Text
		}
		if err := s.words.MarkUsed(r.Context(), owner, placed, time.Now()); err != nil {
			log.Warn().Err(err).Str("puzzle", g.ID).Msg("mark words used")
		}
	}

	res := generateRes{View: g.View(), Skipped: layout.Skipped}
	log.Info().Str("puzzle", g.ID).Int("words", len(layout.Words)).
		Int("rows", layout.Rows()).Int("cols", layout.Cols()).Msg("puzzle generated")
	writeJSON(w, http.StatusCreated, res)
}

// -----------------------------------------------------------------------------
// GET /puzzles, GET /puzzles/{id}

type puzzleSummary struct {
	ID        string    `json:"id"`
	Daily     string    `json:"daily,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Solved    bool      `json:"solved"`
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	list, err := s.games.ListByOwner(r.Context(), s.ownerID(w, r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	out := make([]puzzleSummary, 0, len(list))
	for _, g := range list {
		solved, _ := g.Solved()
		out = append(out, puzzleSummary{ID: g.ID, Daily: g.Daily, CreatedAt: g.CreatedAt, Solved: solved})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request, g *game.Game) {
	writeJSON(w, http.StatusOK, g.View())
}

// -----------------------------------------------------------------------------
// PUT /puzzles/{id}/cells

type setCellReq struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"` // "" erases
}

type wordRef struct {
	Number    int                 `json:"number"`
	Direction crossword.Direction `json:"direction"`
}

type setCellRes struct {
	Completed []wordRef `json:"completed"`
}

func (s *Server) handleSetCell(w http.ResponseWriter, r *http.Request, g *game.Game) {
	var req setCellReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	done, err := g.ApplyLetter(req.Row, req.Col, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, cellErrorCode(err))
		return
	}
	res := setCellRes{Completed: []wordRef{}}
	for _, pw := range done {
		res.Completed = append(res.Completed, wordRef{Number: pw.Number, Direction: pw.Direction()})
	}
	writeJSON(w, http.StatusOK, res)
}

func cellErrorCode(err error) string {
	switch {
	case errors.Is(err, solve.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, solve.ErrBlockedCell):
		return "blocked_cell"
	case errors.Is(err, solve.ErrInvalidLetter):
		return "invalid_letter"
	}
	return "invalid"
}

// -----------------------------------------------------------------------------
// POST /puzzles/{id}/check, POST /puzzles/{id}/clear

type checkRes struct {
	solve.Result
	Status solve.Status `json:"status"`
}

// handleCheck judges the puzzle, or one word when ?number=&dir= is given.
// The first solve of a signed-in user's regular puzzle bumps their solved
// counter.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request, g *game.Game) {
	if r.URL.Query().Has("number") {
		s.handleCheckWord(w, r, g)
		return
	}
	res, first := g.Check()
	if first && g.Daily == "" {
		if me := userFrom(r.Context()); me != nil {
			if err := s.bumpSolved(r.Context(), me.ID); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump solved")
			}
		}
	}
	writeJSON(w, http.StatusOK, checkRes{Result: res, Status: res.Status()})
}

type checkWordRes struct {
	Number    int                 `json:"number"`
	Direction crossword.Direction `json:"direction"`
	Correct   bool                `json:"correct"`
}

// handleCheckWord judges the word named by ?number=&dir=.
func (s *Server) handleCheckWord(w http.ResponseWriter, r *http.Request, g *game.Game) {
	q := r.URL.Query()
	number, err := strconv.Atoi(q.Get("number"))
	var dir crossword.Direction
	if err != nil || dir.UnmarshalText([]byte(q.Get("dir"))) != nil {
		writeError(w, http.StatusBadRequest, "bad_query")
		return
	}
	ok, err := g.CheckWord(number, dir)
	if err != nil {
		writeError(w, http.StatusNotFound, "no_word")
		return
	}
	writeJSON(w, http.StatusOK, checkWordRes{Number: number, Direction: dir, Correct: ok})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request, g *game.Game) {
	g.Clear()
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// GET /puzzles/{id}/word?row=&col=&dir=

func (s *Server) handleWordAt(w http.ResponseWriter, r *http.Request, g *game.Game) {
	q := r.URL.Query()
	row, errR := strconv.Atoi(q.Get("row"))
	col, errC := strconv.Atoi(q.Get("col"))
	var dir crossword.Direction
	if errR != nil || errC != nil || dir.UnmarshalText([]byte(q.Get("dir"))) != nil {
		writeError(w, http.StatusBadRequest, "bad_query")
		return
	}
	cur, err := g.CursorAt(row, col, dir)
	if err != nil {
		writeError(w, http.StatusNotFound, "no_word")
		return
	}
	writeJSON(w, http.StatusOK, cur)
}
