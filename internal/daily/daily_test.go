package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/crossword/apps/go-server/assets"
	"github.com/robalobadob/crossword/apps/go-server/internal/database"
)

func TestDateKeyUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2026, 5, 2, 3, 0, 0, 0, loc)
	if got := DateKey(d); got != "2026-05-01" {
		t.Fatalf("DateKey = %s, want 2026-05-01", got)
	}
}

func TestPickDeterministicAndDistinct(t *testing.T) {
	day := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	a := Pick(day, "salt", 40, 8)
	b := Pick(day.Add(10*time.Hour), "salt", 40, 8)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same day differs (-first +second):\n%s", diff)
	}
	if len(a) != 8 {
		t.Fatalf("got %d indices, want 8", len(a))
	}
	seen := map[int]bool{}
	for _, i := range a {
		if i < 0 || i >= 40 || seen[i] {
			t.Fatalf("bad or repeated index %d in %v", i, a)
		}
		seen[i] = true
	}

	if cmp.Equal(a, Pick(day, "other", 40, 8)) {
		t.Error("different salt should change the pick")
	}
	if cmp.Equal(a, Pick(day.AddDate(0, 0, 1), "salt", 40, 8)) {
		t.Error("next day should change the pick")
	}
}

func TestPickBounds(t *testing.T) {
	day := time.Now()
	if got := Pick(day, "s", 3, 10); len(got) != 3 {
		t.Fatalf("count above pool: got %v", got)
	}
	if got := Pick(day, "s", 0, 5); got != nil {
		t.Fatalf("empty pool: got %v", got)
	}
}

func TestStoreLeaderboard(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(filepath.Join(t.TempDir(), "daily.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db, assets.Migrations()); err != nil {
		t.Fatal(err)
	}
	s := NewStore(db)

	for _, r := range []Result{
		{UserID: "slow", Date: "2026-05-01", Checks: 1, ElapsedMs: 90000},
		{UserID: "fast", Date: "2026-05-01", Checks: 3, ElapsedMs: 30000},
		{UserID: "tied", Date: "2026-05-01", Checks: 1, ElapsedMs: 30000},
		{UserID: "fast", Date: "2026-05-01", Checks: 1, ElapsedMs: 1},
		{UserID: "other-day", Date: "2026-05-02", Checks: 1, ElapsedMs: 10},
	} {
		if err := s.InsertResult(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	played, err := s.AlreadyPlayed(ctx, "fast", "2026-05-01")
	if err != nil || !played {
		t.Fatalf("AlreadyPlayed = %v, %v", played, err)
	}
	if played, _ := s.AlreadyPlayed(ctx, "fast", "2026-05-02"); played {
		t.Fatal("fast did not play on 05-02")
	}

	rows, err := s.Leaderboard(ctx, "2026-05-01", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []LBRow{
		{UserID: "tied", Checks: 1, ElapsedMs: 30000},
		{UserID: "fast", Checks: 3, ElapsedMs: 30000},
		{UserID: "slow", Checks: 1, ElapsedMs: 90000},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("leaderboard mismatch (-want +got):\n%s", diff)
	}
}
