package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	EnvStage      = "STAGE"
	EnvDifficulty = "BATTLESHIP_DIFFICULTY"
	EnvSeed       = "BATTLESHIP_SEED"
	EnvLogFile    = "BATTLESHIP_LOG_FILE"
	EnvFleetFile  = "BATTLESHIP_FLEET_FILE"
)

type Config struct {
	Stage      string
	Difficulty int
	Seed       int64
	LogFile    string
	FleetFile  string
}

// Load reads the .env files (".env" when none are given) outside of prod,
// then builds the config from the process environment. Missing .env files
// are fine; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd {
		if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Stage:     getenv(EnvStage),
		LogFile:   getenv(EnvLogFile),
		FleetFile: getenv(EnvFleetFile),
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	difficulty, err := mb.ParseDifficulty(getenv(EnvDifficulty))
	if err != nil {
		return Config{}, err
	}
	cfg.Difficulty = difficulty

	cfg.Seed = time.Now().UnixNano()
	if seedEnv := getenv(EnvSeed); seedEnv != "" {
		seed, err := strconv.ParseInt(seedEnv, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// Fleet returns the fleet from FleetFile, or the default fleet when no
// file is configured.
func (c Config) Fleet() ([]mb.ShipSpec, error) {
	if c.FleetFile == "" {
		return mb.DefaultFleet(), nil
	}
	return mb.LoadFleet(c.FleetFile)
}
