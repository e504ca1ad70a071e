package useragent

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the parser settings that can be supplied through the environment.
type Config struct {
	MaxLength    int           `env:"USERAGENT_MAX_LENGTH" envDefault:"1024"`    // MaxLength is the number of leading input bytes classified; 0 disables truncation.
	MatchTimeout time.Duration `env:"USERAGENT_MATCH_TIMEOUT" envDefault:"100ms"` // MatchTimeout bounds a single pattern search; 0 disables the bound.
	CacheSize    int           `env:"USERAGENT_CACHE_SIZE" envDefault:"0"`        // CacheSize is the LRU capacity for parse results; 0 disables caching.
}

// LoadConfig reads Config from the environment. Given env files are loaded
// first and must exist; without arguments a .env file in the working
// directory is loaded if present. Variables already set in the environment
// take precedence over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	} else {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects negative settings.
func (c Config) Validate() error {
	switch {
	case c.MaxLength < 0:
		return fmt.Errorf("%w: max length %d", ErrInvalidConfig, c.MaxLength)
	case c.MatchTimeout < 0:
		return fmt.Errorf("%w: match timeout %s", ErrInvalidConfig, c.MatchTimeout)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: cache size %d", ErrInvalidConfig, c.CacheSize)
	}
	return nil
}

// Options converts the config into parser options.
func (c Config) Options() []Option {
	return []Option{
		WithMaxLength(c.MaxLength),
		WithMatchTimeout(c.MatchTimeout),
		WithCacheSize(c.CacheSize),
	}
}

// NewFromConfig builds a Parser from cfg. Extra options are applied after the
// config and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(append(cfg.Options(), opts...)...)
}
