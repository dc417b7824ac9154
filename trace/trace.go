// Package trace reconstructs the sequence of alignment steps that achieves
// a solved lattice's optimal score, by walking the winning edge recorded at
// each Done node from the start index to the accepting node.
package trace

import (
	"github.com/samroberts/fuzzygo/flatpattern"
	"github.com/samroberts/fuzzygo/fuzzyerr"
	"github.com/samroberts/fuzzygo/lattice"
	"github.com/samroberts/fuzzygo/nodestore"
	"github.com/samroberts/fuzzygo/pattern"
)

// Step is one visible alignment step. Rune holds the literal involved: the
// text atom for Hit and SkipText, the pattern atom for SkipPattern. It is
// the zero rune for StartCapture/StopCapture, which carry no literal.
type Step struct {
	Kind lattice.StepKind
	Rune rune
}

// Reconstruct walks the Done nodes from start to the lattice's accepting
// node and returns the visible steps along the winning path. It requires
// every node on that path to already be nodestore.Done, i.e. that
// solver.Solve has already run to completion over store; a node on the path
// that is not Done fails the walk with fuzzyerr.ErrIncompleteFinalState.
func Reconstruct(table *lattice.Table, flat *flatpattern.Flat, text pattern.Atoms, store nodestore.Store, start lattice.Index) ([]Step, error) {
	var steps []Step
	cur := start

	for !table.IsEnd(cur) {
		node := store.Get(cur)
		if node.State != nodestore.Done {
			return nil, fuzzyerr.ErrIncompleteFinalState
		}
		edge := node.Edge

		if edge.Step.IsVisible() {
			var r rune
			switch edge.Step {
			case lattice.StepHit, lattice.StepSkipText:
				if cur.TI < len(text.Runes) {
					r = text.Runes[cur.TI]
				}
			case lattice.StepSkipPattern:
				r = flat.Instrs[cur.PI].Lit
			}
			steps = append(steps, Step{Kind: edge.Step, Rune: r})
		}

		cur = edge.To
	}

	return steps, nil
}
