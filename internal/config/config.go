// Package config loads binary configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when parsed values are out of range
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the settings shared by the binaries.
type Config struct {
	TickRate           time.Duration `env:"STATESTACK_TICK_RATE" envDefault:"16667us"`
	MaxCommandsPerTick int           `env:"STATESTACK_MAX_COMMANDS_PER_TICK" envDefault:"1000"`
	RunFor             time.Duration `env:"STATESTACK_RUN_FOR" envDefault:"5s"`

	LogLevel  string `env:"STATESTACK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"STATESTACK_LOG_FORMAT" envDefault:"text"`

	// DumpFormat selects the snapshot encoding printed on exit: yaml, json, dot or mermaid.
	DumpFormat string `env:"STATESTACK_DUMP_FORMAT" envDefault:"yaml"`

	OTelEndpoint string `env:"STATESTACK_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"STATESTACK_OTEL_ENABLED" envDefault:"true"`
}

var dotenvLoaded sync.Once

// Load reads an optional .env file from the working directory once per
// process and parses the environment into a Config.
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	return parse()
}

// LoadFiles loads the given env files, which must exist, and then parses the
// environment. Variables already set in the environment win over the files.
func LoadFiles(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}
	return parse()
}

func parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %s", ErrInvalidConfig, c.TickRate)
	}
	if c.MaxCommandsPerTick <= 0 {
		return fmt.Errorf("%w: max commands per tick must be positive, got %d", ErrInvalidConfig, c.MaxCommandsPerTick)
	}
	switch c.DumpFormat {
	case "yaml", "json", "dot", "mermaid":
	default:
		return fmt.Errorf("%w: unknown dump format %q", ErrInvalidConfig, c.DumpFormat)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
