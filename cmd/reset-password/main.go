package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"go-laundry-console/internal/config"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/storage"
	"go-laundry-console/internal/store"
)

// Operator tool: reset a console user's password directly in the store,
// for when nobody with the users feature can log in anymore.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	username := flag.String("username", "admin", "username of the account to reset")
	password := flag.String("password", "admin123", "new password")
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

	userRepo := repository.NewUserRepo(store.New(substrate))
	user, err := userRepo.FindByUsername(*username)
	if err != nil {
		log.Fatal().Str("username", *username).Msg("user not found in store")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	if err := userRepo.UpdatePassword(user.ID, string(hashed)); err != nil {
		log.Fatal().Err(err).Msg("failed to update password")
	}

	log.Info().Str("username", *username).Msg("password has been reset")
}
