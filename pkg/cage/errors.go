package cage

import "errors"

var (
	// ErrOutOfBounds is returned when writing outside a bounded topology.
	ErrOutOfBounds = errors.New("address out of bounds")
	// ErrDuplicateAgent is returned when an agent is registered twice.
	ErrDuplicateAgent = errors.New("agent already registered")
	// ErrUnknownAgent is returned when removing an agent that is not registered.
	ErrUnknownAgent = errors.New("agent not registered")
	// ErrRuleSyntax is returned for malformed totalistic rule strings.
	ErrRuleSyntax = errors.New("malformed rule string")
	// ErrTotalTooLarge is returned when a rule total exceeds the neighborhood size.
	ErrTotalTooLarge = errors.New("rule total exceeds neighborhood size")
	// ErrNullNeighborhood is returned when a rule needs neighbors but the map has none.
	ErrNullNeighborhood = errors.New("rule requires a non-empty neighborhood")
	// ErrUnsupportedMap is returned when a rule cannot operate on the map's shape.
	ErrUnsupportedMap = errors.New("rule does not support this map")
)
