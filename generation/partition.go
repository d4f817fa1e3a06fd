package generation

import (
	"fmt"

	"dangian/geometry"
)

// Rect is the float rectangle used throughout generation
type Rect = geometry.Rectangle[float64]

// Vec is the float point used throughout generation
type Vec = geometry.Point[float64]

// PartitionNode represents a node in the binary space partitioning tree.
// A node owns its children exclusively and has either zero or two of them.
type PartitionNode struct {
	Rect        Rect
	Left, Right *PartitionNode
}

// IsLeaf reports whether the node has no children
func (n *PartitionNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves collects the leaf rectangles from left to right
func (n *PartitionNode) Leaves() []Rect {
	var leaves []Rect
	n.collectLeaves(&leaves)
	return leaves
}

func (n *PartitionNode) collectLeaves(leaves *[]Rect) {
	if n.IsLeaf() {
		*leaves = append(*leaves, n.Rect)
		return
	}
	if n.Left != nil {
		n.Left.collectLeaves(leaves)
	}
	if n.Right != nil {
		n.Right.collectLeaves(leaves)
	}
}

// Height returns the number of edges on the longest root-to-leaf path
func (n *PartitionNode) Height() int {
	if n.IsLeaf() {
		return 0
	}
	h := 0
	if n.Left != nil {
		h = n.Left.Height()
	}
	if n.Right != nil {
		h = max(h, n.Right.Height())
	}
	return h + 1
}

// Walk visits the tree in pre-order and stops descending where fn returns false
func (n *PartitionNode) Walk(fn func(node *PartitionNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *PartitionNode) walk(fn func(*PartitionNode, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	if n.Left != nil {
		n.Left.walk(fn, depth+1)
	}
	if n.Right != nil {
		n.Right.walk(fn, depth+1)
	}
}

// CountNodes returns the total number of nodes in the tree
func (n *PartitionNode) CountNodes() int {
	count := 0
	n.Walk(func(*PartitionNode, int) bool {
		count++
		return true
	})
	return count
}

// Partitioner splits rectangles with the aspect-ratio rejection rule
type Partitioner struct {
	rng            RandomSource
	ratioToDiscard Vec
	maxAttempts    int
}

// NewPartitioner creates a partitioner. A zero ratio disables rejection and
// maxAttempts below 1 is treated as 1.
func NewPartitioner(rng RandomSource, ratioToDiscard Vec, maxAttempts int) *Partitioner {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Partitioner{
		rng:            rng,
		ratioToDiscard: ratioToDiscard,
		maxAttempts:    maxAttempts,
	}
}

// SplitRectangle recursively splits container into a tree of the given depth
func (p *Partitioner) SplitRectangle(container Rect, iterations int) (*PartitionNode, error) {
	node := &PartitionNode{Rect: container}
	if iterations <= 0 {
		return node, nil
	}

	first, second, err := p.SplitRandom(container)
	if err != nil {
		return nil, err
	}

	if node.Left, err = p.SplitRectangle(first, iterations-1); err != nil {
		return nil, err
	}
	if node.Right, err = p.SplitRectangle(second, iterations-1); err != nil {
		return nil, err
	}
	return node, nil
}

// SplitRandom cuts rect in two along a random axis. The pieces are adjacent
// and together cover rect exactly.
func (p *Partitioner) SplitRandom(rect Rect) (Rect, Rect, error) {
	if rect.W <= 1 && rect.H <= 1 {
		return degenerateSplit(rect, DiscardableFloat(p.rng, 0, 1) != 0)
	}

	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		vertical := DiscardableFloat(p.rng, 0, 1) != 0

		var first, second Rect
		if vertical {
			w := DiscardableFloat(p.rng, 1, rect.W)
			first = geometry.Rect(rect.X, rect.Y, w, rect.H)
			second = geometry.Rect(rect.X+w, rect.Y, rect.W-w, rect.H)
		} else {
			h := DiscardableFloat(p.rng, 1, rect.H)
			first = geometry.Rect(rect.X, rect.Y, rect.W, h)
			second = geometry.Rect(rect.X, rect.Y+h, rect.W, rect.H-h)
		}

		if first.Empty() || second.Empty() {
			continue
		}
		if p.rejected(first, second, vertical) {
			continue
		}
		return first, second, nil
	}

	return Rect{}, Rect{}, fmt.Errorf("%w: no split of %v satisfied ratio %v after %d attempts",
		ErrGenerationFailed, rect, p.ratioToDiscard, p.maxAttempts)
}

// rejected applies the aspect-ratio rule: w/h for vertical cuts, h/w for horizontal ones
func (p *Partitioner) rejected(first, second Rect, vertical bool) bool {
	if p.ratioToDiscard.IsZero() {
		return false
	}
	if vertical {
		return first.W/first.H < p.ratioToDiscard.X || second.W/second.H < p.ratioToDiscard.X
	}
	return first.H/first.W < p.ratioToDiscard.Y || second.H/second.W < p.ratioToDiscard.Y
}

// degenerateSplit keeps rect whole and appends a zero-size sliver on its far edge.
// Used when rect is too small to hold two non-empty parts.
func degenerateSplit(rect Rect, vertical bool) (Rect, Rect, error) {
	if vertical {
		return rect, geometry.Rect(rect.Right(), rect.Y, 0, rect.H), nil
	}
	return rect, geometry.Rect(rect.X, rect.Bottom(), rect.W, 0), nil
}
