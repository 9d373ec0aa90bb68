package discretiser

import "github.com/segmetric/hpm/node"

// Chain is a finite sequence of nodes of one variant, depth(chain[i]) = i.
type Chain []node.Node

// Discretiser applies a single node variant to a window across its
// configured depths, coarse to fine.
type Discretiser interface {
	Discretise(window []float64) (Chain, error)
}
