package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	publisher "github.com/kurakura967/go-searchindex-publisher"
)

func main() {
	cfg, err := publisher.LoadConfig()
	if err != nil {
		setupLogging("info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("Publishing failed")
		os.Exit(1)
	}
}

func run(cfg publisher.Config) error {
	indexer, err := publisher.NewIndexer(cfg)
	if err != nil {
		return err
	}

	p, err := publisher.New(indexer, cfg,
		publisher.WithLogger(log.Logger),
		publisher.DryRun(cfg.DryRun),
	)
	if err != nil {
		return err
	}

	log.Info().
		Str("backend", cfg.Backend).
		Str("index", cfg.IndexName).
		Strs("languages", cfg.Languages).
		Msg("Publishing search indices")

	return p.Publish()
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if lvl <= zerolog.DebugLevel {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
