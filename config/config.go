// Package config loads process settings for the CLI and the HTTP server
// from the environment, after reading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridsearch"
	"github.com/katalvlaran/gridsearch/logging"
)

// ErrInvalidValue wraps every malformed variable.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvSize      = "GRIDSEARCH_SIZE"
	EnvAlgorithm = "GRIDSEARCH_ALGORITHM"
	EnvStepDelay = "GRIDSEARCH_STEP_DELAY"
	EnvHTTPAddr  = "GRIDSEARCH_HTTP_ADDR"
	EnvBaseURL   = "GRIDSEARCH_BASE_URL"
	EnvGinMode   = "GIN_MODE"
	EnvLogLevel  = "GRIDSEARCH_LOG_LEVEL"
	EnvMaxCells  = "GRIDSEARCH_MAX_CELLS"
)

// Config holds the application's configuration values.
type Config struct {
	Size      int                  // Default grid side for generated grids
	Algorithm gridsearch.Algorithm // Default algorithm
	StepDelay time.Duration        // Pause between animation frames
	HTTPAddr  string               // Address the API listens on
	BaseURL   string               // Prefix for API routes
	GinMode   string               // Mode for the Gin framework (release, debug, test)
	LogLevel  logging.Level        // Minimum level written by the logger
	MaxCells  int                  // Largest grid (cells) the API accepts
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Size:      50,
		Algorithm: gridsearch.AStar,
		StepDelay: 10 * time.Millisecond,
		HTTPAddr:  ":8080",
		BaseURL:   "/api",
		GinMode:   "release",
		LogLevel:  logging.LevelInfo,
		MaxCells:  40000,
	}
}

// Load reads the given .env files (".env" when none are named), ignoring
// missing ones, then overlays environment variables on Default. All bad
// values are reported together.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var errs *multierror.Error

	if v, ok := os.LookupEnv(EnvSize); ok {
		n, err := positiveInt(EnvSize, v)
		errs = multierror.Append(errs, err)
		if err == nil {
			cfg.Size = n
		}
	}
	if v, ok := os.LookupEnv(EnvAlgorithm); ok {
		a, err := gridsearch.ParseAlgorithm(v)
		if err != nil {
			errs = multierror.Append(errs, invalid(EnvAlgorithm, v, err))
		} else {
			cfg.Algorithm = a
		}
	}
	if v, ok := os.LookupEnv(EnvStepDelay); ok {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			errs = multierror.Append(errs, invalid(EnvStepDelay, v, err))
		case d < 0:
			errs = multierror.Append(errs, invalid(EnvStepDelay, v, errors.New("negative duration")))
		default:
			cfg.StepDelay = d
		}
	}
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.BaseURL = getEnvWithDefault(EnvBaseURL, cfg.BaseURL)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		errs = multierror.Append(errs, invalid(EnvGinMode, cfg.GinMode, errors.New("want debug, release or test")))
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		l, err := logging.ParseLevel(v)
		if err != nil {
			errs = multierror.Append(errs, invalid(EnvLogLevel, v, err))
		} else {
			cfg.LogLevel = l
		}
	}
	if v, ok := os.LookupEnv(EnvMaxCells); ok {
		n, err := positiveInt(EnvMaxCells, v)
		errs = multierror.Append(errs, err)
		if err == nil {
			cfg.MaxCells = n
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func positiveInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(key, v, err)
	}
	if n <= 0 {
		return 0, invalid(key, v, errors.New("must be positive"))
	}
	return n, nil
}

func invalid(key, v string, cause error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, v, cause)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
