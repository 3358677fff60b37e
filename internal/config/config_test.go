package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "JWT_EXPIRES_DAYS", "LAYOUT_STRATEGY", "NODE_ENV", "DAILY_WORDS", "SESSION_TTL_HOURS"} {
		t.Setenv(k, "")
	}
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != "5175" || c.LogLevel != zerolog.InfoLevel || c.JWTTTL != 14*24*time.Hour ||
		c.Strategy != crossword.FirstFit || c.Production || c.DailyWords != 12 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LAYOUT_STRATEGY", "best-fit")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("JWT_EXPIRES_DAYS", "2")
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != "9000" || c.LogLevel != zerolog.DebugLevel || c.Strategy != crossword.BestFit ||
		!c.Production || c.JWTTTL != 48*time.Hour {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestInvalidValues(t *testing.T) {
	for k, v := range map[string]string{
		"LOG_LEVEL":        "loud",
		"JWT_EXPIRES_DAYS": "soon",
		"DAILY_WORDS":      "-3",
		"LAYOUT_STRATEGY":  "random",
	} {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("%s=%s should fail", k, v)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("DAILY_SALT", "")
	os.Unsetenv("DAILY_SALT")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DAILY_SALT=from_file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DAILY_SALT") })

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.DailySalt != "from_file" {
		t.Fatalf("DailySalt = %q, want from_file", c.DailySalt)
	}
}
