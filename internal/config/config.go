// Package config reads playoracle defaults from the environment.
//
// Command-line flags always win; environment values only fill in flags
// the user did not set.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds defaults for the CLI's global and per-command flags.
type Env struct {
	Format   string `env:"PLAYORACLE_FORMAT" envDefault:"text"`
	Verbose  bool   `env:"PLAYORACLE_VERBOSE"`
	Database string `env:"PLAYORACLE_DB"`
}

// Load parses Env from the process environment.
func Load() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
