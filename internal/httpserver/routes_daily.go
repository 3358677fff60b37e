// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
// Exposes three endpoints under /daily:
//   - POST /daily/new          → start today's puzzle (creates or reuses session)
//   - POST /daily/{id}/finish  → record a solved daily puzzle
//   - GET  /daily/leaderboard  → top 20 results for today (or ?date=)
//
// Every player gets the same words for a UTC date, picked from the
// built-in list with daily.Pick. Each player can record one result per day
// (enforced by DB + in-memory session).

package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
	"github.com/robalobadob/crossword/apps/go-server/internal/daily"
	"github.com/robalobadob/crossword/apps/go-server/internal/game"
	"github.com/robalobadob/crossword/apps/go-server/internal/words"
)

// dailyServer holds today's sessions on top of the Server.
type dailyServer struct {
	srv      *Server
	now      func() time.Time
	sessions map[string]string // userID|date → game ID
	mu       sync.Mutex        // guards sessions
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		now:      time.Now,
		sessions: make(map[string]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/{id}/finish", dd.handleFinish)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// todaysEntries returns the date key and the words picked for it.
func (d *dailyServer) todaysEntries() (string, []crossword.Entry, error) {
	now := d.now().UTC()
	pool, err := words.Defaults()
	if err != nil {
		return "", nil, err
	}
	idx := daily.Pick(now, d.srv.cfg.DailySalt, len(pool), d.srv.cfg.DailyWords)
	picked := make([]words.Entry, len(idx))
	for i, j := range idx {
		picked[i] = pool[j]
	}
	return daily.DateKey(now), words.ToCrossword(picked), nil
}

// -----------------------------------------------------------------------------
// /daily/new

type dailyNewRes struct {
	Date   string     `json:"date"`
	Played bool       `json:"played"`
	Puzzle *game.View `json:"puzzle,omitempty"`
}

// handleNew creates or reuses today's puzzle session.
//   - If the player already has a DB row for today → Played=true.
//   - Otherwise reuse the live session or generate a new one.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.srv.ownerID(w, r)
	date, entries, err := d.todaysEntries()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "defaults_unavailable")
		return
	}

	if played, err := d.srv.daily.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	defer d.mu.Unlock()
	if id, ok := d.sessions[key]; ok {
		if g, err := d.srv.games.Get(r.Context(), id); err == nil {
			v := g.View()
			writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Puzzle: &v})
			return
		}
	}

	// The daily layout always uses first-fit so every player sees the same grid.
	layout, err := crossword.NewEngine().Generate(entries)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("generate daily")
		writeError(w, http.StatusInternalServerError, "generate_failed")
		return
	}
	g := game.New(layout, uid)
	g.Daily = date
	if err := d.srv.games.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	d.sessions[key] = g.ID
	v := g.View()
	writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Puzzle: &v})
}

// -----------------------------------------------------------------------------
// /daily/{id}/finish

type dailyFinishRes struct {
	Recorded  bool `json:"recorded"`
	Checks    int  `json:"checks"`
	ElapsedMs int  `json:"elapsedMs"`
}

// handleFinish records the caller's result once the daily puzzle has been
// checked as solved.
func (d *dailyServer) handleFinish(w http.ResponseWriter, r *http.Request) {
	uid := d.srv.ownerID(w, r)
	g, err := d.srv.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil || g.Owner != uid || g.Daily == "" {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	solved, at := g.Solved()
	if !solved {
		writeError(w, http.StatusConflict, "not_solved")
		return
	}

	res := daily.Result{
		UserID:    uid,
		Date:      g.Daily,
		Checks:    g.Checks(),
		ElapsedMs: int(at.Sub(g.CreatedAt).Milliseconds()),
	}
	if err := d.srv.daily.InsertResult(r.Context(), res); err != nil {
		log.Error().Err(err).Str("user", uid).Msg("insert daily result")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	d.mu.Lock()
	delete(d.sessions, uid+"|"+g.Daily)
	d.mu.Unlock()
	writeJSON(w, http.StatusOK, dailyFinishRes{Recorded: true, Checks: res.Checks, ElapsedMs: res.ElapsedMs})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	rows, err := d.srv.daily.Leaderboard(r.Context(), date, 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
