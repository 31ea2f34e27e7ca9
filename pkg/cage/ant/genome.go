// Package ant implements finite-state agents that walk a map and repaint
// the cells under them.
//
// An Ant perceives only the low bits of a cell (its color), selected by
// the genome's color count. Each update it looks up a new color, a new
// internal state and an action in its Genome, keyed by the perceived
// color and its current state.
package ant

import (
	"errors"
	"fmt"

	"cage/pkg/cage"
)

var (
	// ErrNotPowerOfTwo is returned for genome sizes that cannot be masked.
	ErrNotPowerOfTwo = errors.New("count must be a power of two")
	// ErrGenomeTooLarge is returned for counts that do not fit a cell.
	ErrGenomeTooLarge = errors.New("count exceeds 256")
	// ErrUnknownAction is returned when a genome yields an action outside
	// the known set.
	ErrUnknownAction = errors.New("unknown action")
	// ErrGeneRange is returned for gene lookups outside the table.
	ErrGeneRange = errors.New("gene index out of range")
)

// Action is what an ant does after repainting its cell.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionAdvance

	// Actions is the number of defined actions.
	Actions = 4
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionAdvance:
		return "advance"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Gene maps (color, state) to a value.
type Gene struct {
	colors, states int
	data           []uint8
}

func newGene(colors, states int) *Gene {
	return &Gene{colors: colors, states: states, data: make([]uint8, colors*states)}
}

// Get returns the value for a color and state.
func (g *Gene) Get(color, state int) (uint8, error) {
	if color < 0 || color >= g.colors || state < 0 || state >= g.states {
		return 0, fmt.Errorf("get (%d,%d): %w", color, state, ErrGeneRange)
	}
	return g.data[color*g.states+state], nil
}

// Set stores the value for a color and state.
func (g *Gene) Set(color, state int, value uint8) error {
	if color < 0 || color >= g.colors || state < 0 || state >= g.states {
		return fmt.Errorf("set (%d,%d): %w", color, state, ErrGeneRange)
	}
	g.data[color*g.states+state] = value
	return nil
}

// Randomize fills the gene with values in [0, n).
func (g *Gene) Randomize(rng *cage.RNG, n int) {
	for i := range g.data {
		g.data[i] = uint8(rng.IntN(n))
	}
}

// Genome is the three genes that determine an ant's behavior.
type Genome struct {
	colors, states int

	Color  *Gene
	State  *Gene
	Action *Gene
}

// maxCount is the most colors or states a uint8 cell can tell apart.
const maxCount = 256

// NewGenome allocates a zeroed genome. Both counts must be powers of two
// no larger than 256.
func NewGenome(colors, states int) (*Genome, error) {
	if colors > maxCount {
		return nil, fmt.Errorf("genome colors %d: %w", colors, ErrGenomeTooLarge)
	}
	if states > maxCount {
		return nil, fmt.Errorf("genome states %d: %w", states, ErrGenomeTooLarge)
	}
	if !powerOfTwo(colors) {
		return nil, fmt.Errorf("genome colors %d: %w", colors, ErrNotPowerOfTwo)
	}
	if !powerOfTwo(states) {
		return nil, fmt.Errorf("genome states %d: %w", states, ErrNotPowerOfTwo)
	}
	return &Genome{
		colors: colors,
		states: states,
		Color:  newGene(colors, states),
		State:  newGene(colors, states),
		Action: newGene(colors, states),
	}, nil
}

// Colors is the number of perceivable colors.
func (g *Genome) Colors() int { return g.colors }

// States is the number of internal states.
func (g *Genome) States() int { return g.states }

// Mask selects the color bits of a cell.
func (g *Genome) Mask() uint8 { return uint8(g.colors - 1) }

// Randomize fills all three genes with valid values.
func (g *Genome) Randomize(rng *cage.RNG) {
	g.Color.Randomize(rng, g.colors)
	g.State.Randomize(rng, g.states)
	g.Action.Randomize(rng, Actions)
}

func powerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
