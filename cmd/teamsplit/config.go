package main

import (
	"fmt"

	"github.com/lox/teamsplit/internal/config"
)

// ConfigFlags select the HCL file that tunes rules and messages.
type ConfigFlags struct {
	Config string `short:"c" type:"path" default:"teamsplit.hcl" help:"HCL config file (defaults apply when missing)"`
	Seed   *int64 `help:"Deterministic RNG seed for team draws (optional)"`
}

func (f ConfigFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", f.Config, err)
	}
	return cfg, nil
}
