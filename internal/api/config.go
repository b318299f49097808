package api

import "github.com/storyvest/storyvest/internal/sim"

type Config struct {
	// Addr is the listen address.
	Addr string

	// Sim configures the simulation runs started by the API.
	Sim sim.Config

	// MaxStrategies caps the strategy list of one batch request.
	MaxStrategies int
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.MaxStrategies <= 0 {
		c.MaxStrategies = 10
	}
	return c
}
