// internal/words/store.go
//
// SQLite persistence for per-owner word lists (table "words").
// Owners are user ids or anonymous cookie ids; Claim moves an anonymous
// list to an account after login.

package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store reads and writes word lists.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// List returns the owner's entries in insertion order.
func (s *Store) List(ctx context.Context, owner string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word, definition, date_added, times_used, COALESCE(last_used,'')
		 FROM words WHERE owner=? ORDER BY id ASC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		var added, used string
		if err := rows.Scan(&e.ID, &e.Word, &e.Definition, &added, &e.TimesUsed, &used); err != nil {
			return nil, err
		}
		e.DateAdded = parseTime(added)
		if used != "" {
			t := parseTime(used)
			e.LastUsed = &t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Add validates and saves one word. The word is normalized first.
func (s *Store) Add(ctx context.Context, owner, word, definition string) (Entry, error) {
	w := Normalize(word)
	if err := Validate(w); err != nil {
		return Entry{}, err
	}
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM words WHERE owner=? AND word=?`, owner, w).Scan(&exists)
	if err == nil {
		return Entry{}, ErrDuplicate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Entry{}, err
	}

	now := time.Now().UTC()
	def := strings.TrimSpace(definition)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO words (owner, word, definition, date_added) VALUES (?,?,?,?)`,
		owner, w, def, now.Format(time.RFC3339))
	if err != nil {
		return Entry{}, fmt.Errorf("insert word: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Word: w, Definition: def, DateAdded: now.Truncate(time.Second)}, nil
}

// Remove deletes one entry. It returns ErrNotFound if the owner has no
// entry with that id.
func (s *Store) Remove(ctx context.Context, owner string, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE owner=? AND id=?`, owner, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear deletes the owner's whole list and returns how many entries went.
func (s *Store) Clear(ctx context.Context, owner string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE owner=?`, owner)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SetDefinition replaces the definition of an entry.
func (s *Store) SetDefinition(ctx context.Context, owner string, id int64, definition string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE words SET definition=? WHERE owner=? AND id=?`, strings.TrimSpace(definition), owner, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkUsed bumps times_used and last_used for the given words of one
// owner, in a single transaction.
func (s *Store) MarkUsed(ctx context.Context, owner string, words []string, at time.Time) error {
	if len(words) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	ts := at.UTC().Format(time.RFC3339)
	for _, w := range words {
		if _, err := tx.ExecContext(ctx,
			`UPDATE words SET times_used = times_used + 1, last_used=? WHERE owner=? AND word=?`,
			ts, owner, Normalize(w)); err != nil {
			return fmt.Errorf("mark %s used: %w", w, err)
		}
	}
	return tx.Commit()
}

// Seed fills an empty list with the given entries. A list that already
// has words is left alone. It returns how many entries were inserted.
func (s *Store) Seed(ctx context.Context, owner string, entries []Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM words WHERE owner=?`, owner).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	now := time.Now().UTC().Format(time.RFC3339)
	inserted := 0
	for _, e := range entries {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO words (owner, word, definition, date_added) VALUES (?,?,?,?)`,
			owner, Normalize(e.Word), e.Definition, now)
		if err != nil {
			return 0, fmt.Errorf("seed %s: %w", e.Word, err)
		}
		if k, _ := res.RowsAffected(); k > 0 {
			inserted++
		}
	}
	return inserted, tx.Commit()
}

// Claim moves from's entries to to. Words to already has are dropped.
func (s *Store) Claim(ctx context.Context, from, to string) error {
	if from == "" || to == "" || from == to {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE OR IGNORE words SET owner=? WHERE owner=?`, to, from); err != nil {
		return fmt.Errorf("claim words: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE owner=?`, from); err != nil {
		return fmt.Errorf("drop claimed duplicates: %w", err)
	}
	return tx.Commit()
}

// parseTime parses RFC3339 timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
