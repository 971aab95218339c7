package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"guessquest/internal/console"
	"guessquest/internal/game"
	"guessquest/internal/messages"
)

// Config holds process-level settings. Gameplay itself is not configurable.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Colours  bool   `envconfig:"GAME_COLOURS" default:"true"`
}

func main() {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	// Logs go to stderr so they never interleave with game output on stdout.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := messages.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load message pools")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewSession(rng, -1)

	loop := console.New(os.Stdin, os.Stdout, rng, session, cfg.Colours)
	if err := loop.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}
