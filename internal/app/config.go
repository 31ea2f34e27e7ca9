package app

import "github.com/spf13/pflag"

// Config holds the window settings of the GUI player. The sim, seed and
// grid size come from the shared scenario flags, and TPS is filled from the
// scenario before Run.
type Config struct {
	Scale int
	TPS   int
}

// NewConfig returns the default window settings.
func NewConfig() *Config {
	return &Config{Scale: 3, TPS: 60}
}

// Bind registers the window flags on fs.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Scale, "scale", "x", c.Scale, "pixels per cell")
}
