// Package config reads the optional .env file and environment variables
// that provide the defaults for the blackjack flags.
package config // import "fortio.org/blackjack/config"

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"fortio.org/log"
	"github.com/joho/godotenv"
)

const (
	EnvAssets  = "BLACKJACK_ASSETS"
	EnvDB      = "BLACKJACK_DB"
	EnvHistory = "BLACKJACK_HISTORY"
	EnvSeed    = "BLACKJACK_SEED"
)

// Config holds the flag defaults. Empty/0 means not set.
type Config struct {
	AssetsDir   string
	DBPath      string
	HistoryFile string
	Seed        uint64
}

// Load loads envFile (a missing file is fine, "" skips it) into the
// environment, without overriding variables already set, then reads Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.LogVf("No %s env file", envFile)
		case err != nil:
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		default:
			log.LogVf("Loaded env file %s", envFile)
		}
	}
	cfg := &Config{
		AssetsDir:   os.Getenv(EnvAssets),
		DBPath:      os.Getenv(EnvDB),
		HistoryFile: os.Getenv(EnvHistory),
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvSeed, s, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}
