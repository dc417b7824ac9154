// Package nodestore holds the per-lattice-node state the solver (package
// solver) accumulates while walking the lattice: whether a node's best
// score is known yet, and if so what it is and which outgoing edge achieves
// it.
package nodestore

import "github.com/samroberts/fuzzygo/lattice"

// State is a node's position in its Ready -> Working -> Done lifecycle.
type State uint8

const (
	// Ready means the node has not been visited yet.
	Ready State = iota
	// Working means the node's outgoing edges are partway evaluated; Moves,
	// Pos and Best hold the in-progress cursor.
	Working
	// Done means the node's best score and edge are final.
	Done
)

// Node is the stored state of one lattice index.
type Node struct {
	State State

	// Working cursor fields: which edges are being compared and how far
	// through them the solver has got.
	Moves []lattice.Next
	Pos   int
	Best  int
	Edge  lattice.Next // the best edge found so far (or, once Done, the winner)

	// Done fields.
	Score int
}

// Store addresses Nodes by lattice.Index. Dense and Sparse are the two
// provided backings; both satisfy this interface.
type Store interface {
	Get(ix lattice.Index) Node
	Set(ix lattice.Index, n Node)
}
