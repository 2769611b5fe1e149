// Package config содержит логику чтения конфигурации сервиса.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config параметры запуска сервиса
type Config struct {
	RunAddress string `env:"RUN_ADDRESS"`
	SeedDemo   bool   `env:"SEED_DEMO_DATA"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения; переменные окружения имеют приоритет.
func Parse() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port for HTTP server")
	flag.BoolVar(&cfg.SeedDemo, "seed", true, "populate the store with demo data on startup")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = ":8080"
	}

	return cfg, nil
}
