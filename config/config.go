package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Domain string `env:"PB_DOMAIN" envDefault:"http://localhost:8080"`
	Host   string `env:"PB_HOST" envDefault:"localhost:8080"`

	// Storage selects the record store backend: memory, valkey or postgres.
	Storage     string `env:"PB_STORAGE" envDefault:"memory"`
	DB          string `env:"PB_DB" envDefault:"localhost:6379"`
	PostgresDSN string `env:"PB_POSTGRES_DSN"`

	// SecretKey enables at-rest encryption of stored blobs when set (16/24/32 bytes).
	SecretKey string `env:"PB_SECRET_KEY"`

	// TestMode enables the deterministic clock, letting requests carry an
	// x-test-now-ms override. Never enable in production.
	TestMode bool `env:"PB_TEST_MODE" envDefault:"false"`

	UI     bool `env:"PB_UI" envDefault:"true"`
	IsProd bool `env:"PB_PROD" envDefault:"false"`
}

func (c *Config) Load() error {
	return env.Parse(c)
}
