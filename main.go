// main.go
//
// Entry point for the solver server.
// Responsibilities:
//   - Load .env and configure logging.
//   - Load word lists and build the shared dictionary.
//   - Open the SQLite database and run migrations.
//   - Wire the HTTP server and serve.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver-server/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver-server/internal/store"
	"github.com/robalobadob/wordle/apps/solver-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g, f := words.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Int("weighted", f).Msg("word lists loaded")

	db, err := openDB(getEnv("DB_PATH", "./data/solver.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, words.Dictionary(), words.PastAnswers())
	port := getEnv("PORT", "5180")
	log.Info().Str("port", port).Msg("starting solver-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
