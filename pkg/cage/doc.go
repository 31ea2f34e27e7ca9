// Package cage is a generic cellular automaton engine.
//
// A Map joins one Topology (shape, bounds and wraparound) with one
// Neighborhood (adjacency) and owns the cell buffer. An Automaton owns a
// Map, a Rule and an ordered set of Agents and advances them one
// generation per Step under a synchronous, asynchronous or agent-only
// discipline.
//
// The package is single threaded. Randomness is always drawn from an
// explicit *RNG so runs are reproducible from a seed.
package cage
