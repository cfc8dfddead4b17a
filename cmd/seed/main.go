package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-laundry-console/internal/config"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/storage"
	"go-laundry-console/internal/store"
)

// Seeds the default collections into the configured substrate. With -force,
// existing collections are overwritten, including users, so every default
// password comes back.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	force := flag.Bool("force", false, "overwrite collections that already exist")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	substrate, err := storage.Open(cfg.StorageDriver, storage.Options{
		DataDir:     cfg.DataDir,
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}

	st := store.New(substrate)
	if err := repository.SeedDefaults(st, *force); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Bool("force", *force).Str("driver", cfg.StorageDriver).Msg("seeding complete")
}
