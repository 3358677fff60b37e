// main.go
//
// Entry point for the crossword server.
//   - Loads configuration (.env + environment) and sets the zerolog level.
//   - Opens SQLite and applies the embedded migrations.
//   - Enables Gemini clue suggestions when GCP_PROJECT_ID is set.
//   - Sweeps idle puzzle sessions in the background.
//   - SIGINT/SIGTERM stop the sweeper and shut the server down gracefully.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossword/apps/go-server/assets"
	"github.com/robalobadob/crossword/apps/go-server/internal/clues"
	"github.com/robalobadob/crossword/apps/go-server/internal/config"
	"github.com/robalobadob/crossword/apps/go-server/internal/database"
	"github.com/robalobadob/crossword/apps/go-server/internal/httpserver"
	"github.com/robalobadob/crossword/apps/go-server/internal/store"
	"github.com/robalobadob/crossword/apps/go-server/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if !cfg.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := words.Defaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load default words")
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := database.Migrate(ctx, db, assets.Migrations()); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	var opts []httpserver.Option
	if cfg.GCPProject != "" {
		g, err := clues.NewGemini(ctx, cfg.GCPProject, cfg.GCPRegion)
		if err != nil {
			log.Warn().Err(err).Msg("clue suggestions disabled")
		} else {
			opts = append(opts, httpserver.WithSuggester(g))
			log.Info().Str("project", cfg.GCPProject).Msg("clue suggestions enabled")
		}
	}

	srv := httpserver.New(cfg, store.NewMemoryStore(), db, opts...)
	go srv.SweepSessions(ctx, 10*time.Minute)

	log.Info().Str("port", cfg.Port).Str("strategy", cfg.Strategy.String()).Msg("starting go-server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
