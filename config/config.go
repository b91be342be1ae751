package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/andyle182810/censys/censys"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	CensysID      string        `env:"CENSYS_ID"`
	CensysSecret  string        `env:"CENSYS_SECRET"`
	CensysBaseURL string        `env:"CENSYS_BASE_URL"`
	CensysTimeout time.Duration `env:"CENSYS_TIMEOUT"  envDefault:"30s"`

	HTTPSProxy string `env:"HTTPS_PROXY"`
}

// New reads the environment. Missing credentials are not an error here;
// censys.New rejects them.
func New() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Load applies the given .env files, without overriding variables that are
// already set, and then reads the environment. Missing files are skipped.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		if file == "" {
			continue
		}

		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return New()
}

func (c *Config) Censys() censys.Config {
	cfg := censys.NewConfig(c.CensysID, c.CensysSecret)
	cfg.BaseURL = c.CensysBaseURL
	cfg.ProxyURL = c.HTTPSProxy
	cfg.Timeout = c.CensysTimeout

	return cfg
}
