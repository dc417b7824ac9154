// Package solver computes the minimum-cost alignment score between a
// flattened pattern and text by walking the lattice (package lattice) to
// completion.
//
// The lattice is a DAG (lattice.Index's RepOff field exists precisely to
// keep it acyclic), so the natural way to score it is the textbook
// memoized postorder walk: score(ix) is 0 at the accepting node and
// otherwise the minimum, over ix's outgoing edges, of edge.Cost +
// score(edge.To). An earlier recursive formulation of that walk exhausted
// the Go call stack on moderately sized inputs, so this solver runs the
// same postorder walk with an explicit stack instead of recursion: each
// stack frame is a lattice.Index whose Node cursor sits in nodestore.Ready,
// nodestore.Working (mid-comparison of its outgoing edges) or
// nodestore.Done. Pushing the frame of a Working node's next dependency is a
// "Down" step; popping a frame once it is Done, which returns to the Working
// frame beneath it, is a "Back" step.
package solver

import (
	"math"

	"github.com/samroberts/fuzzygo/fuzzyerr"
	"github.com/samroberts/fuzzygo/lattice"
	"github.com/samroberts/fuzzygo/nodestore"
)

// unreachable stands in for "no path to the end exists from here" without
// overflowing when summed with further edge costs.
const unreachable = math.MaxInt / 2

// Solve walks the lattice from start to its accepting node and returns the
// minimum total edit cost. maxSteps bounds the number of Working-frame
// advances the walk may make before giving up with a *fuzzyerr.MaxStepsError.
// fuzzyerr.ErrIncompleteFinalState is returned if the walk ends without the
// start node being Done.
func Solve(table *lattice.Table, store nodestore.Store, start lattice.Index, maxSteps int) (int, error) {
	stack := []lattice.Index{start}
	steps := 0

	for len(stack) > 0 {
		ix := stack[len(stack)-1]
		node := store.Get(ix)

		switch node.State {
		case nodestore.Ready:
			if table.IsEnd(ix) {
				store.Set(ix, nodestore.Node{State: nodestore.Done, Score: 0})
				stack = stack[:len(stack)-1]
				continue
			}
			moves := table.Moves(ix)
			if len(moves) == 0 {
				store.Set(ix, nodestore.Node{State: nodestore.Done, Score: unreachable})
				stack = stack[:len(stack)-1]
				continue
			}
			store.Set(ix, nodestore.Node{
				State: nodestore.Working,
				Moves: moves,
				Pos:   0,
				Best:  unreachable,
			})
			stack = append(stack, moves[0].To) // Down

		case nodestore.Working:
			steps++
			if steps > maxSteps {
				return 0, &fuzzyerr.MaxStepsError{Steps: maxSteps}
			}

			edge := node.Moves[node.Pos]
			dep := store.Get(edge.To)
			if dep.State != nodestore.Done {
				// A dependency was popped without resolving; this should not
				// happen given the lattice's acyclicity, but re-descend
				// rather than trust stale state.
				stack = append(stack, edge.To)
				continue
			}

			if cand := edge.Cost + dep.Score; cand < node.Best {
				node.Best = cand
				node.Edge = edge
			}
			node.Pos++

			if node.Pos < len(node.Moves) {
				store.Set(ix, node)
				stack = append(stack, node.Moves[node.Pos].To) // Down
			} else {
				store.Set(ix, nodestore.Node{State: nodestore.Done, Score: node.Best, Edge: node.Edge})
				stack = stack[:len(stack)-1] // Back
			}

		case nodestore.Done:
			stack = stack[:len(stack)-1]
		}
	}

	final := store.Get(start)
	if final.State != nodestore.Done {
		return 0, fuzzyerr.ErrIncompleteFinalState
	}
	return final.Score, nil
}
