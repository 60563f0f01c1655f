package tree

/*
None is the sentinel index used where a node reference is absent: the
feature of a leaf node, the parent of the root, or the root of an
empty tree.
*/
const None = -1

/*
Node is a vertex of a decision tree. Nodes live in the flat arena of
their Tree and reference each other through integer indices, so a tree
can be copied, serialized and dropped without cyclic-ownership
concerns.

For internal nodes, Feature is the column the node splits on and
Branches maps each branch value to the arena index of the child grown
for it. Categorical splits use the raw column value as branch value;
continuous splits use branch 0 for values at or below Threshold and
branch 1 for values above it. Branch values with no usable split have
no entry at all: prediction falls back to the node's majority class
when it needs one of them.
*/
type Node struct {
	// Feature is the column index the node splits on, or None for leaves.
	Feature int `json:"feature"`
	// Gain is the information gain recorded when the node was created.
	// It is what the pruner ranks collapse candidates by.
	Gain float64 `json:"gain"`
	// Freq holds per-class counts of the training rows that reached the node.
	Freq []int `json:"freq"`
	// Parent is the arena index of the parent node, None for the root.
	Parent int `json:"parent"`
	// Branches maps branch values to child arena indices. Nil for leaves.
	Branches map[int]int `json:"branches,omitempty"`
	// Leaf marks the node as terminal.
	Leaf bool `json:"leaf"`
	// Continuous marks a binary threshold split; Threshold is only
	// meaningful when it is set.
	Continuous bool    `json:"continuous,omitempty"`
	Threshold  float64 `json:"threshold,omitempty"`
}

/*
Majority returns the class with the highest count on the node's
frequency vector. Ties go to the lowest class index.
*/
func (n *Node) Majority() int {
	best := 0
	for class, count := range n.Freq {
		if count > n.Freq[best] {
			best = class
		}
	}
	return best
}

// Count returns the number of training rows that reached the node
func (n *Node) Count() int {
	total := 0
	for _, c := range n.Freq {
		total += c
	}
	return total
}
