package core

import (
	"fmt"
	"sort"

	"cage/pkg/cage"
)

// Size describes the dimensions of a simulation grid. One-dimensional
// sims report H == 1.
type Size struct {
	W int
	H int
}

// Sim is what players and drivers need from a runnable automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step() error
	Running() bool
	Generation() int
	States() int
	Cells() []uint8
	Agents() []cage.Agent
	Parameters() ParameterSnapshot
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered sim names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up a sim by name and constructs it.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return f(cfg)
}
