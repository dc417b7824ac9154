// Package lattice addresses the (pattern-position, text-position) search
// space the solver explores and defines the transition table between
// positions: which moves are legal from a given position, what each costs,
// and what step (if any) it leaves in the trace.
package lattice

import (
	"fmt"

	"github.com/samroberts/fuzzygo/flatpattern"
	"github.com/samroberts/fuzzygo/pattern"
)

// Index addresses one node of the lattice: a pattern instruction position,
// a text position, and RepOff, a small counter that makes the lattice
// acyclic despite zero-or-more repetitions looping back on themselves.
//
// RepOff counts whether a repetition's loop-back edge (RepEnd to its
// RepStart) has already been taken once since TI last advanced. It only
// ever takes the values 0 and 1: the transition table allows the loop-back
// edge only when RepOff is 0, and taking it sets RepOff to 1, so a second
// zero-width pass around the same loop at the same text position is never
// offered. Any move that advances TI resets RepOff to 0, since real
// progress through the text makes the loop-prevention bookkeeping moot
// until the next zero-width stretch.
type Index struct {
	PI     int
	TI     int
	RepOff int
}

func (ix Index) String() string {
	return fmt.Sprintf("(pi=%d,ti=%d,rep_off=%d)", ix.PI, ix.TI, ix.RepOff)
}

// StepKind identifies the kind of a trace step. StepStructural never
// appears in a Result's public trace; it marks the epsilon routing moves
// (entering a capture, choosing an alternative branch, entering or leaving
// a repetition) that carry no literal text or pattern content to render.
type StepKind uint8

const (
	// StepHit aligns one pattern atom with one text atom that matches it.
	StepHit StepKind = iota
	// StepSkipPattern consumes one pattern atom without consuming text.
	StepSkipPattern
	// StepSkipText consumes one text atom without consuming pattern.
	StepSkipText
	// StepStartCapture marks the start of a capture group.
	StepStartCapture
	// StepStopCapture marks the end of a capture group.
	StepStopCapture
	// StepStructural is an internal-only epsilon routing move.
	StepStructural
)

func (k StepKind) String() string {
	switch k {
	case StepHit:
		return "Hit"
	case StepSkipPattern:
		return "SkipPattern"
	case StepSkipText:
		return "SkipText"
	case StepStartCapture:
		return "StartCapture"
	case StepStopCapture:
		return "StopCapture"
	case StepStructural:
		return "Structural"
	default:
		return "StepKind(?)"
	}
}

// IsVisible reports whether k belongs in a reconstructed trace.
func (k StepKind) IsVisible() bool {
	return k <= StepStopCapture
}

// Next is one outgoing edge of the lattice: moving to To costs Cost and, if
// Step.IsVisible(), contributes Step to the trace.
type Next struct {
	Cost int
	To   Index
	Step StepKind
}

// Table computes the outgoing edges of any Index over a fixed flattened
// pattern and input text.
type Table struct {
	Flat *flatpattern.Flat
	Text pattern.Atoms
}

// NewTable builds a Table over a flattened pattern and decoded text.
func NewTable(flat *flatpattern.Flat, text pattern.Atoms) *Table {
	return &Table{Flat: flat, Text: text}
}

// Start returns the lattice's entry node.
func (t *Table) Start() Index {
	return Index{PI: 0, TI: 0, RepOff: 0}
}

// IsEnd reports whether ix is the lattice's single accepting node: the
// pattern's End sentinel reached with every text atom consumed.
func (t *Table) IsEnd(ix Index) bool {
	return ix.PI == len(t.Flat.Instrs)-1 && ix.TI == len(t.Text.Runes)
}

// Moves returns every legal outgoing edge from ix, in the fixed priority
// order ties are broken by: first-listed wins when two edges give the same
// total cost.
func (t *Table) Moves(ix Index) []Next {
	instr := t.Flat.Instrs[ix.PI]
	var moves []Next

	switch instr.Op {
	case flatpattern.OpLit:
		if ix.TI < len(t.Text.Runes) && t.Text.Runes[ix.TI] == instr.Lit {
			moves = append(moves, Next{Cost: 0, To: Index{PI: ix.PI + 1, TI: ix.TI + 1, RepOff: 0}, Step: StepHit})
		}
		moves = append(moves, Next{Cost: 1, To: Index{PI: ix.PI + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepSkipPattern})

	case flatpattern.OpClass:
		if ix.TI < len(t.Text.Runes) && instr.Class.Matches(t.Text.Runes[ix.TI]) {
			moves = append(moves, Next{Cost: 0, To: Index{PI: ix.PI + 1, TI: ix.TI + 1, RepOff: 0}, Step: StepHit})
		}
		moves = append(moves, Next{Cost: 1, To: Index{PI: ix.PI + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepSkipPattern})

	case flatpattern.OpGroupStart:
		moves = append(moves, Next{Cost: 0, To: Index{PI: ix.PI + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStartCapture})

	case flatpattern.OpGroupEnd:
		moves = append(moves, Next{Cost: 0, To: Index{PI: ix.PI + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStopCapture})

	case flatpattern.OpAltLeft:
		moves = append(moves,
			Next{Cost: 0, To: Index{PI: ix.PI + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStructural},
			Next{Cost: 0, To: Index{PI: instr.Offset + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStructural},
		)

	case flatpattern.OpAltRight:
		// Reached only after completing the left branch: skip over the
		// right branch entirely.
		moves = append(moves, Next{Cost: 0, To: Index{PI: instr.Offset, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStructural})

	case flatpattern.OpRepStart:
		moves = append(moves,
			Next{Cost: 0, To: Index{PI: ix.PI + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStructural},
			Next{Cost: 0, To: Index{PI: instr.Offset, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStructural},
		)

	case flatpattern.OpRepEnd:
		moves = append(moves, Next{Cost: 0, To: Index{PI: ix.PI + 1, TI: ix.TI, RepOff: ix.RepOff}, Step: StepStructural})
		if ix.RepOff == 0 {
			moves = append(moves, Next{Cost: 0, To: Index{PI: instr.Offset, TI: ix.TI, RepOff: 1}, Step: StepStructural})
		}

	case flatpattern.OpEnd:
		// No pattern-side move; SkipText below is still available.
	}

	if ix.TI < len(t.Text.Runes) {
		moves = append(moves, Next{Cost: 1, To: Index{PI: ix.PI, TI: ix.TI + 1, RepOff: 0}, Step: StepSkipText})
	}

	return moves
}
