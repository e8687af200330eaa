package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	APIBase      string
	DatabaseType string
	DatabaseURL  string
	HTTPTimeout  time.Duration
	Port         int
	LogLevel     string
}

var ErrAPIBaseRequired = errors.New("API base URL required (use --api-base or API_BASE env)")

// LoadDotEnv loads .env from the working directory if there is one.
// Variables already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.APIBase, "api-base", "a", "", "Tracking API base URL")
	fs.StringVarP(&cfg.DatabaseType, "db-type", "t", "", "Settings database type (sqlite or postgres)")
	fs.StringVarP(&cfg.DatabaseURL, "db-url", "d", "", "Settings database URL or sqlite path")
	fs.DurationVar(&cfg.HTTPTimeout, "timeout", 0, "HTTP timeout for API calls")
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Console port")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// ParseFlags parses args and fills anything left unset from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("imbtrack", pflag.ContinueOnError)
	BindFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve falls back to environment variables, then defaults, for every
// field the flags left empty. CLI flags take precedence.
func (cfg *Config) Resolve() error {
	if cfg.APIBase == "" {
		cfg.APIBase = os.Getenv("API_BASE")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "imbtrack.db"
	}

	if cfg.HTTPTimeout == 0 {
		if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return errors.New("invalid HTTP_TIMEOUT env variable")
			}
			cfg.HTTPTimeout = d
		} else {
			cfg.HTTPTimeout = 30 * time.Second
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// RequireAPI is checked by commands that talk to the tracking API.
func (cfg Config) RequireAPI() error {
	if cfg.APIBase == "" {
		return ErrAPIBaseRequired
	}
	return nil
}

func (cfg Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return level, nil
}
