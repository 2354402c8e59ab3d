// Package config holds process-wide configuration, read once at startup
// from flags with environment-variable fallback. A .env file in the
// working directory is loaded first if present.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Deployment modes. Production enables long-lived image cache headers
// and suppresses error details in responses; development is the default.
// The mode is its own setting and is never inferred from the database
// DSN or any other variable.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config is the resolved runtime configuration.
type Config struct {
	Addr    string // listen address
	Driver  string // database driver: sqlite or postgres
	DSN     string // database path (sqlite) or connection string (postgres)
	BaseURL string // public base URL for derived image links (production)
	Mode    string // deployment mode
	LogPath string // optional log file, stdout/stderr only when empty
}

// Parse resolves configuration from args and the environment.
func Parse(args []string) (Config, error) {
	// Missing .env is fine; flags and real env still apply.
	godotenv.Load()

	var cfg Config
	fs := flag.NewFlagSet("trgovina", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", "", "listen address (env ADDR or PORT)")
	fs.StringVar(&cfg.Driver, "driver", "", "database driver: sqlite or postgres (env DATABASE_DRIVER)")
	fs.StringVar(&cfg.DSN, "dsn", "", "database path or connection string (env DATABASE_URL)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "public base URL for image links (env APP_URL)")
	fs.StringVar(&cfg.Mode, "mode", "", "deployment mode: development or production (env MODE)")
	fs.StringVar(&cfg.LogPath, "log", "", "log file path (default: stdout/stderr only)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	// Fall back to environment variables, then defaults.
	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("ADDR")
	}
	if cfg.Addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Addr = ":" + port
		} else {
			cfg.Addr = ":3000"
		}
	}
	if cfg.Driver == "" {
		cfg.Driver = os.Getenv("DATABASE_DRIVER")
	}
	if cfg.Driver == "" {
		cfg.Driver = "sqlite"
	}
	if cfg.Driver != "sqlite" && cfg.Driver != "postgres" {
		return Config{}, fmt.Errorf("invalid database driver %q (want sqlite or postgres)", cfg.Driver)
	}
	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("DATABASE_URL")
	}
	if cfg.DSN == "" {
		if cfg.Driver == "postgres" {
			return Config{}, errors.New("database URL required (use -dsn or DATABASE_URL)")
		}
		cfg.DSN = "trgovina.sqlite3"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("APP_URL")
	}
	if cfg.Mode == "" {
		cfg.Mode = os.Getenv("MODE")
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeDevelopment
	}
	if cfg.Mode != ModeDevelopment && cfg.Mode != ModeProduction {
		return Config{}, fmt.Errorf("invalid mode %q (want development or production)", cfg.Mode)
	}
	if cfg.Mode == ModeProduction && cfg.BaseURL == "" {
		return Config{}, errors.New("public base URL required in production (use -base-url or APP_URL)")
	}

	return cfg, nil
}

// Production reports whether the service runs in production mode.
func (c Config) Production() bool {
	return c.Mode == ModeProduction
}
