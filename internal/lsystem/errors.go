package lsystem

import "errors"

// Rewriting itself is total: unmapped symbols pass through unchanged and
// never fail. Only construction can reject input.
var (
	// ErrEmptyAxiom indicates a rule set with no starting sequence.
	ErrEmptyAxiom = errors.New("lsystem: empty axiom")
)
