// internal/httpserver/routes_words.go
//
// Word-list endpoints (per owner):
//   - GET    /words           → list entries
//   - POST   /words           → add one word (validated)
//   - PATCH  /words/{id}      → change a definition
//   - DELETE /words/{id}      → remove one entry
//   - DELETE /words           → clear the list
//   - POST   /words/defaults  → fill an empty list with the built-in words

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/internal/words"
)

func (s *Server) mountWords(r chi.Router) {
	r.Route("/words", func(r chi.Router) {
		r.Get("/", s.handleListWords)
		r.Post("/", s.handleAddWord)
		r.Delete("/", s.handleClearWords)
		r.Post("/defaults", s.handleSeedWords)
		r.Patch("/{id}", s.handleSetDefinition)
		r.Delete("/{id}", s.handleRemoveWord)
	})
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	list, err := s.words.List(r.Context(), s.ownerID(w, r))
	if err != nil {
		log.Error().Err(err).Msg("list words")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type addWordReq struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req addWordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	e, err := s.words.Add(r.Context(), s.ownerID(w, r), req.Word, req.Definition)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, e)
	case errors.Is(err, words.ErrDuplicate):
		writeError(w, http.StatusConflict, "duplicate")
	case errors.Is(err, words.ErrTooShort):
		writeError(w, http.StatusBadRequest, "too_short")
	case errors.Is(err, words.ErrTooLong):
		writeError(w, http.StatusBadRequest, "too_long")
	case errors.Is(err, words.ErrNotLetters):
		writeError(w, http.StatusBadRequest, "not_letters")
	default:
		log.Error().Err(err).Msg("add word")
		writeError(w, http.StatusInternalServerError, "db_error")
	}
}

func (s *Server) handleSetDefinition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_id")
		return
	}
	var req addWordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := s.words.SetDefinition(r.Context(), s.ownerID(w, r), id, req.Definition); err != nil {
		s.wordStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_id")
		return
	}
	if err := s.words.Remove(r.Context(), s.ownerID(w, r), id); err != nil {
		s.wordStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearWords(w http.ResponseWriter, r *http.Request) {
	n, err := s.words.Clear(r.Context(), s.ownerID(w, r))
	if err != nil {
		s.wordStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

func (s *Server) handleSeedWords(w http.ResponseWriter, r *http.Request) {
	defs, err := words.Defaults()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "defaults_unavailable")
		return
	}
	n, err := s.words.Seed(r.Context(), s.ownerID(w, r), defs)
	if err != nil {
		s.wordStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"inserted": n})
}

func (s *Server) wordStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, words.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	log.Error().Err(err).Msg("word store")
	writeError(w, http.StatusInternalServerError, "db_error")
}
