package nodestore

import "github.com/samroberts/fuzzygo/lattice"

// Sparse is a Store backed by a hash map, for inputs large enough that a
// Dense store's num_pi * num_ti * 2 slice would waste memory the solver
// never touches.
type Sparse struct {
	nodes map[lattice.Index]Node
}

// NewSparse allocates an empty Sparse store.
func NewSparse() *Sparse {
	return &Sparse{nodes: make(map[lattice.Index]Node)}
}

// Get returns the stored Node for ix, or a zero-value Ready Node if unset.
func (s *Sparse) Get(ix lattice.Index) Node {
	if n, ok := s.nodes[ix]; ok {
		return n
	}
	return Node{State: Ready}
}

// Set stores n at ix.
func (s *Sparse) Set(ix lattice.Index, n Node) {
	s.nodes[ix] = n
}
