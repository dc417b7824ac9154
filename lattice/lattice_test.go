package lattice

import (
	"testing"

	"github.com/samroberts/fuzzygo/flatpattern"
	"github.com/samroberts/fuzzygo/pattern"
)

// repFlat builds the flat instruction array for a CoreRepetition wrapping a
// single literal 'a': RepStart, Lit 'a', RepEnd, End.
func repFlat() *flatpattern.Flat {
	return &flatpattern.Flat{Instrs: []flatpattern.Instr{
		{Op: flatpattern.OpRepStart, Offset: 2},
		{Op: flatpattern.OpLit, Lit: 'a'},
		{Op: flatpattern.OpRepEnd, Offset: 0},
		{Op: flatpattern.OpEnd},
	}}
}

// altFlat builds the flat instruction array for an Alternative of literals
// 'a' and 'b': AltLeft, Lit 'a', AltRight, Lit 'b', End.
func altFlat() *flatpattern.Flat {
	return &flatpattern.Flat{Instrs: []flatpattern.Instr{
		{Op: flatpattern.OpAltLeft, Offset: 2},
		{Op: flatpattern.OpLit, Lit: 'a'},
		{Op: flatpattern.OpAltRight, Offset: 4},
		{Op: flatpattern.OpLit, Lit: 'b'},
		{Op: flatpattern.OpEnd},
	}}
}

func hasMove(moves []Next, want Next) bool {
	for _, m := range moves {
		if m == want {
			return true
		}
	}
	return false
}

func TestMovesRepStartOffersEnterAndSkip(t *testing.T) {
	table := NewTable(repFlat(), pattern.NewAtoms(""))
	moves := table.Moves(Index{PI: 0, TI: 0, RepOff: 0})

	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2: %+v", len(moves), moves)
	}
	if !hasMove(moves, Next{Cost: 0, To: Index{PI: 1, TI: 0, RepOff: 0}, Step: StepStructural}) {
		t.Errorf("missing move entering the repetition body: %+v", moves)
	}
	if !hasMove(moves, Next{Cost: 0, To: Index{PI: 2, TI: 0, RepOff: 0}, Step: StepStructural}) {
		t.Errorf("missing move skipping straight to RepEnd (zero iterations): %+v", moves)
	}
}

func TestMovesRepEndOffersPassAndRestartWhenRepOffZero(t *testing.T) {
	table := NewTable(repFlat(), pattern.NewAtoms(""))
	moves := table.Moves(Index{PI: 2, TI: 0, RepOff: 0})

	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2: %+v", len(moves), moves)
	}
	if !hasMove(moves, Next{Cost: 0, To: Index{PI: 3, TI: 0, RepOff: 0}, Step: StepStructural}) {
		t.Errorf("missing pass-through move to the instruction after the repetition: %+v", moves)
	}
	if !hasMove(moves, Next{Cost: 0, To: Index{PI: 0, TI: 0, RepOff: 1}, Step: StepStructural}) {
		t.Errorf("missing restart move back to RepStart with RepOff set to 1: %+v", moves)
	}
}

func TestMovesRepEndForbidsRestartWhenRepOffOne(t *testing.T) {
	table := NewTable(repFlat(), pattern.NewAtoms(""))
	moves := table.Moves(Index{PI: 2, TI: 0, RepOff: 1})

	if len(moves) != 1 {
		t.Fatalf("got %d moves, want 1 (no zero-width restart a second time): %+v", len(moves), moves)
	}
	if moves[0] != (Next{Cost: 0, To: Index{PI: 3, TI: 0, RepOff: 1}, Step: StepStructural}) {
		t.Errorf("got %+v, want the pass-through move only", moves[0])
	}
}

func TestMovesRepEndRestartUnblockedAfterTextProgress(t *testing.T) {
	// Any TI-advancing move resets RepOff to 0, so at a later text position
	// the restart edge is offered again even though it was taken once before.
	table := NewTable(repFlat(), pattern.NewAtoms("x"))
	moves := table.Moves(Index{PI: 2, TI: 1, RepOff: 0})

	if !hasMove(moves, Next{Cost: 0, To: Index{PI: 0, TI: 1, RepOff: 1}, Step: StepStructural}) {
		t.Errorf("missing restart move at a fresh text position: %+v", moves)
	}
}

func TestMovesAltLeftOffersBothBranches(t *testing.T) {
	table := NewTable(altFlat(), pattern.NewAtoms(""))
	moves := table.Moves(Index{PI: 0, TI: 0, RepOff: 0})

	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2: %+v", len(moves), moves)
	}
	if !hasMove(moves, Next{Cost: 0, To: Index{PI: 1, TI: 0, RepOff: 0}, Step: StepStructural}) {
		t.Errorf("missing move entering the left branch: %+v", moves)
	}
	if !hasMove(moves, Next{Cost: 0, To: Index{PI: 3, TI: 0, RepOff: 0}, Step: StepStructural}) {
		t.Errorf("missing move jumping straight into the right branch: %+v", moves)
	}
}

func TestMovesAltRightSkipsToEnd(t *testing.T) {
	table := NewTable(altFlat(), pattern.NewAtoms(""))
	moves := table.Moves(Index{PI: 2, TI: 0, RepOff: 0})

	if len(moves) != 1 {
		t.Fatalf("got %d moves, want 1: %+v", len(moves), moves)
	}
	if moves[0] != (Next{Cost: 0, To: Index{PI: 4, TI: 0, RepOff: 0}, Step: StepStructural}) {
		t.Errorf("got %+v, want the move past the whole alternative", moves[0])
	}
}

func TestMovesAlwaysOffersSkipTextWhenTextRemains(t *testing.T) {
	table := NewTable(altFlat(), pattern.NewAtoms("z"))
	moves := table.Moves(Index{PI: 0, TI: 0, RepOff: 0})

	if !hasMove(moves, Next{Cost: 1, To: Index{PI: 0, TI: 1, RepOff: 0}, Step: StepSkipText}) {
		t.Errorf("missing SkipText move: %+v", moves)
	}
}
