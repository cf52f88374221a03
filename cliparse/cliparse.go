package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           int    `env:"PORT" envDefault:"8000"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"multimedia.db"`
	DatabaseType   string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseName   string `env:"DATABASE_NAME" envDefault:"multimedia_db"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

// SeedConfig is Config plus the seed tool's own switches.
type SeedConfig struct {
	Config
	DryRun bool
}

var databaseTypes = []string{"sqlite", "postgres", "mongo"}

// ParseFlags reads .env, then the environment, then flags (highest precedence).
func ParseFlags(args []string) (Config, error) {
	return parse("multimedia-db", args, nil)
}

// ParseSeedFlags is ParseFlags for the seed tool.
func ParseSeedFlags(args []string) (SeedConfig, error) {
	var dryRun bool
	cfg, err := parse("multimedia-seed", args, func(flags *flag.FlagSet) {
		flags.BoolVar(&dryRun, "dry-run", false, "Print the seed steps without touching the database")
	})
	if err != nil {
		return SeedConfig{}, err
	}
	return SeedConfig{Config: cfg, DryRun: dryRun}, nil
}

func parse(name string, args []string, extra func(*flag.FlagSet)) (Config, error) {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	// Env values become the flag defaults so flags override them
	flags.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (sqlite path, postgres or mongodb URL)")
	flags.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite, postgres or mongo)")
	flags.StringVar(&cfg.DatabaseName, "n", cfg.DatabaseName, "Database name (mongo only)")
	flags.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Maximum upload size in bytes")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if extra != nil {
		extra(flags)
	}

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if !slices.Contains(databaseTypes, c.DatabaseType) {
		return fmt.Errorf("invalid database type %q (use sqlite, postgres or mongo)", c.DatabaseType)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if c.DatabaseType == "mongo" && c.DatabaseName == "" {
		return errors.New("database name required for mongo (use -n or DATABASE_NAME env)")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("max upload size must be positive")
	}
	return nil
}
