package words

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/crossword/apps/go-server/assets"
	"github.com/robalobadob/crossword/apps/go-server/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "words.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.Migrate(context.Background(), db, assets.Migrations()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(db)
}

func wordsOf(list []Entry) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Word
	}
	return out
}

func TestStoreAddListRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cat, err := s.Add(ctx, "u1", " cat ", " Feline ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if cat.Word != "CAT" || cat.Definition != "Feline" || cat.ID == 0 {
		t.Fatalf("unexpected entry %+v", cat)
	}
	if _, err := s.Add(ctx, "u1", "Cat", ""); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate: got %v", err)
	}
	if _, err := s.Add(ctx, "u1", "ox", ""); !errors.Is(err, ErrTooShort) {
		t.Fatalf("short: got %v", err)
	}
	if _, err := s.Add(ctx, "u2", "cat", ""); err != nil {
		t.Fatalf("other owner may add the same word: %v", err)
	}
	if _, err := s.Add(ctx, "u1", "dog", ""); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"CAT", "DOG"}, wordsOf(list)); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if list[0].DateAdded.IsZero() || list[0].LastUsed != nil {
		t.Errorf("bookkeeping not initialised: %+v", list[0])
	}

	if err := s.Remove(ctx, "u2", cat.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove other owner's entry: got %v", err)
	}
	if err := s.Remove(ctx, "u1", cat.ID); err != nil {
		t.Fatal(err)
	}
	n, err := s.Clear(ctx, "u1")
	if err != nil || n != 1 {
		t.Fatalf("Clear = %d, %v", n, err)
	}
	if list, _ := s.List(ctx, "u1"); len(list) != 0 {
		t.Fatalf("list not empty after clear: %v", wordsOf(list))
	}
}

func TestStoreMarkUsed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, _ = s.Add(ctx, "u1", "cat", "")
	_, _ = s.Add(ctx, "u1", "dog", "")

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if err := s.MarkUsed(ctx, "u1", []string{"cat"}, at); err != nil {
			t.Fatal(err)
		}
	}
	list, _ := s.List(ctx, "u1")
	if list[0].TimesUsed != 2 || list[0].LastUsed == nil || !list[0].LastUsed.Equal(at) {
		t.Fatalf("CAT usage = %+v", list[0])
	}
	if list[1].TimesUsed != 0 {
		t.Fatalf("DOG should be unused, got %d", list[1].TimesUsed)
	}
}

func TestStoreSeedAndClaim(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	defs := []Entry{{Word: "apple", Definition: "Fruit"}, {Word: "pear"}}
	if n, err := s.Seed(ctx, "anon", defs); err != nil || n != 2 {
		t.Fatalf("Seed = %d, %v", n, err)
	}
	if n, _ := s.Seed(ctx, "anon", defs); n != 0 {
		t.Fatalf("second seed inserted %d", n)
	}

	_, _ = s.Add(ctx, "user", "pear", "Mine")
	if err := s.Claim(ctx, "anon", "user"); err != nil {
		t.Fatal(err)
	}
	list, _ := s.List(ctx, "user")
	if diff := cmp.Diff([]string{"APPLE", "PEAR"}, wordsOf(list)); diff != "" {
		t.Errorf("claimed list mismatch (-want +got):\n%s", diff)
	}
	for _, e := range list {
		if e.Word == "PEAR" && e.Definition != "Mine" {
			t.Errorf("existing entry overwritten: %+v", e)
		}
	}
	if list, _ := s.List(ctx, "anon"); len(list) != 0 {
		t.Errorf("anonymous list should be empty, got %v", wordsOf(list))
	}
}
