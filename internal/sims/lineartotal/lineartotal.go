// Package lineartotal runs two-state linear totalistic rules: the next
// state of a cell is bit s of the code, where s is the sum over the cell
// and its radius r neighbors on a bounded line.
package lineartotal

import (
	"strconv"

	"cage/internal/core"
	"cage/internal/initializer"
	"cage/pkg/cage"
)

// Config holds parameters for a linear totalistic automaton.
type Config struct {
	Width  int
	Radius int
	Code   uint64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 79, Radius: 2, Code: 20}
}

// Codes is the number of distinct codes for radius r.
func Codes(r int) uint64 {
	return 1 << uint(2*r+2)
}

// FromMap populates a Config from a string map. Codes with bits beyond the
// largest possible sum are rejected.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntFrom(cfg, "w", c.Width, 1)
	if r := core.IntFrom(cfg, "radius", c.Radius, 1); r <= 30 {
		c.Radius = r
	}
	if v, ok := cfg["code"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil && parsed < Codes(c.Radius) {
			c.Code = parsed
		}
	}
	return c
}

// Build returns a randomly seeded automaton that stops after half the line
// length.
func Build(c Config, rng *cage.RNG) (*cage.Automaton, error) {
	m := cage.NewLineMap(c.Width, c.Radius)
	a, err := cage.NewSynchronous(m, 2, cage.LinearTotalistic{Code: c.Code}, cage.WithRunning(cage.RunningForHalfLength))
	if err != nil {
		return nil, err
	}
	return a, initializer.Random{RNG: rng}.Initialize(a)
}

// New creates the sim for the configuration.
func New(c Config) *core.Engine {
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		core.GridParams(c.Width, 1),
		{Name: "Rule", Params: []core.Parameter{
			core.IntParam("radius", "Radius", c.Radius),
			core.StringParam("code", "Code", strconv.FormatUint(c.Code, 10)),
		}},
	}}
	return core.NewEngine("lineartotal", params, func(rng *cage.RNG) (*cage.Automaton, error) {
		return Build(c, rng)
	})
}

func init() {
	core.Register("lineartotal", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}
