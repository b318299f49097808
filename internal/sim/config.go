package sim

// Config holds configuration for simulation runs.
type Config struct {
	// InitialCapital is the cash a run starts with.
	InitialCapital float64
	// Seed seeds the random source when the caller does not supply one.
	Seed int64
}

// DefaultConfig returns a Config with the game's standard defaults.
func DefaultConfig() Config {
	return Config{
		InitialCapital: 1000,
	}
}

func (c Config) withDefaults() Config {
	if c.InitialCapital <= 0 {
		c.InitialCapital = DefaultConfig().InitialCapital
	}
	return c
}
