// Package fuzzyerr defines the error taxonomy shared by every stage of the
// fuzzy matcher: parsing, desugaring, solving, and trace reconstruction.
// It follows the same shape as the teacher package's nfa/error.go: sentinel
// errors for conditions with no useful payload, and wrapping structs with
// Error/Unwrap for the ones that carry one.
package fuzzyerr

import (
	"errors"
	"fmt"
	"regexp/syntax"
)

// Sentinel errors for conditions that carry no extra payload.
var (
	// ErrRegexBoundTooLarge is returned when a bounded repetition's count
	// exceeds what the solver can expand without risking runaway memory.
	ErrRegexBoundTooLarge = errors.New("fuzzyerr: repetition bound too large")

	// ErrIncompleteFinalState is returned when the solver's walk ends without
	// the start node resolving to Done, or when trace reconstruction meets a
	// node on the winning path that is not Done. Running out of the MaxSteps
	// budget is reported as a *MaxStepsError instead.
	ErrIncompleteFinalState = errors.New("fuzzyerr: final state never resolved")

	// ErrNoMatch signals that no hit was found. No function in this module
	// returns it: the core solver always returns a score.
	ErrNoMatch = errors.New("fuzzyerr: no match")
)

// ParseError wraps a failure to parse a pattern as a regular expression.
type ParseError struct {
	Pattern string
	Err     *syntax.Error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fuzzyerr: pattern %q is not a valid regular expression: %v", e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedError wraps a syntactically valid pattern that uses a
// construct the lattice has no meaning for (anchors, word boundaries, and
// the like).
type UnsupportedError struct {
	Detail string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("fuzzyerr: pattern construct unsupported: %s", e.Detail)
}

// MaxStepsError is returned when the solver's work-queue drains its
// configured step budget before completing.
type MaxStepsError struct {
	Steps int
}

func (e *MaxStepsError) Error() string {
	return fmt.Sprintf("fuzzyerr: exceeded maximum of %d solver steps", e.Steps)
}

// InternalError covers the lattice-bookkeeping failures that should never
// happen if the solver's invariants hold: a node queried before it has a
// score, a node of the wrong kind for the operation requested, or a node
// that can't be initialised or updated at a given index. These five kinds
// collapse into one struct distinguished by Op, since a caller's only
// useful response to any of them is to report the bug.
type InternalError struct {
	Op    string
	Index fmt.Stringer
}

func (e *InternalError) Error() string {
	if e.Index == nil {
		return fmt.Sprintf("fuzzyerr: internal error during %s", e.Op)
	}
	return fmt.Sprintf("fuzzyerr: internal error during %s at %s", e.Op, e.Index)
}
