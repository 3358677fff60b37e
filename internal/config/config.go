// internal/config/config.go
//
// Environment configuration for the crossword server.
// .env is loaded first (if present) via godotenv; real environment
// variables win over values from the file.
//
// Variables (defaults in brackets):
//   PORT [5175]                 LOG_LEVEL [info]
//   DB_PATH [./data/app.db]     NODE_ENV [development]
//   JWT_SECRET [dev_secret_change_me]
//   JWT_EXPIRES_DAYS [14]       COOKIE_NAME [crossword_token]
//   CLIENT_ORIGIN [http://localhost:5173]
//   DAILY_SALT [local_dev_salt] DAILY_WORDS [12]
//   LAYOUT_STRATEGY [first-fit]
//   SESSION_TTL_HOURS [24]
//   GCP_PROJECT_ID []           GCP_REGION [europe-west1]

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/crossword/apps/go-server/internal/crossword"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port         string
	LogLevel     zerolog.Level
	DBPath       string
	Production   bool
	JWTSecret    string
	JWTTTL       time.Duration
	CookieName   string
	ClientOrigin string
	DailySalt    string
	DailyWords   int
	Strategy     crossword.Strategy
	SessionTTL   time.Duration
	GCPProject   string
	GCPRegion    string
}

// Load reads .env files (missing files are ignored) and the environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	c := Config{
		Port:         getEnv("PORT", "5175"),
		DBPath:       getEnv("DB_PATH", "./data/app.db"),
		Production:   os.Getenv("NODE_ENV") == "production",
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		CookieName:   getEnv("COOKIE_NAME", "crossword_token"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		GCPProject:   os.Getenv("GCP_PROJECT_ID"),
		GCPRegion:    getEnv("GCP_REGION", "europe-west1"),
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return c, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	days, err := getInt("JWT_EXPIRES_DAYS", 14)
	if err != nil {
		return c, err
	}
	c.JWTTTL = time.Duration(days) * 24 * time.Hour

	if c.DailyWords, err = getInt("DAILY_WORDS", 12); err != nil {
		return c, err
	}

	hours, err := getInt("SESSION_TTL_HOURS", 24)
	if err != nil {
		return c, err
	}
	c.SessionTTL = time.Duration(hours) * time.Hour

	if c.Strategy, err = crossword.ParseStrategy(os.Getenv("LAYOUT_STRATEGY")); err != nil {
		return c, fmt.Errorf("LAYOUT_STRATEGY: %w", err)
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def, fmt.Errorf("%s: want a positive integer, got %q", k, v)
	}
	return n, nil
}
