/*
Package tree implements the decision-tree structure shared by the ID3
and C4.5 inducers: an arena of nodes addressed by integer index, with
operations to grow, traverse, predict from, measure and collapse
subtrees.
*/
package tree

import (
	"fmt"
	"sort"
	"strings"
)

/*
Tree holds a decision tree as a flat arena of nodes. The zero index is
not special: Root records which node prediction starts from, None for
a tree that has not been grown. Nodes detached by pruning stay in the
arena but are no longer reachable from the root; every traversal
works on the reachable subset only.
*/
type Tree struct {
	Nodes   []Node `json:"nodes"`
	Root    int    `json:"root"`
	Classes int    `json:"classes"`
}

// New returns an empty tree for a k-class problem
func New(classes int) *Tree {
	return &Tree{Root: None, Classes: classes}
}

/*
Add appends a node to the arena, linking it to the given parent index
(None makes it the root), and returns its index. Attaching the node
under a branch of its parent is a separate step, see Attach.
*/
func (t *Tree) Add(parent int, n Node) int {
	n.Parent = parent
	id := len(t.Nodes)
	t.Nodes = append(t.Nodes, n)
	if parent == None {
		t.Root = id
	}
	return id
}

/*
Attach registers child as the subtree of parent for the given branch
value, allocating the parent's branch map if needed.
*/
func (t *Tree) Attach(parent, branch, child int) {
	p := &t.Nodes[parent]
	if p.Branches == nil {
		p.Branches = make(map[int]int)
	}
	p.Branches[branch] = child
}

// Node returns a pointer to the node at the given arena index
func (t *Tree) Node(id int) *Node {
	return &t.Nodes[id]
}

/*
Predict takes a feature vector and descends from the root following
the branch matching the vector's value at each node's split feature:
equality on the branch value for categorical splits, comparison
against the stored threshold for continuous ones. At a leaf it returns
the leaf's majority class. If the branch a vector requires is absent,
an unseen categorical value or a branch with no usable split, or if
the vector is too short to hold the node's split feature, it returns
the current node's majority class instead of failing.
*/
func (t *Tree) Predict(z []float64) int {
	if t.Root == None {
		return 0
	}
	n := t.Node(t.Root)
	for !n.Leaf {
		if n.Feature >= len(z) {
			return n.Majority()
		}
		branch := 0
		if n.Continuous {
			if z[n.Feature] > n.Threshold {
				branch = 1
			}
		} else {
			branch = int(z[n.Feature])
		}
		child, ok := n.Branches[branch]
		if !ok {
			return n.Majority()
		}
		n = t.Node(child)
	}
	return n.Majority()
}

/*
Leaves returns the arena indices of all leaf nodes reachable from the
root, in deterministic depth-first order.
*/
func (t *Tree) Leaves() []int {
	var leaves []int
	t.walk(t.Root, func(id int) {
		if t.Nodes[id].Leaf {
			leaves = append(leaves, id)
		}
	})
	return leaves
}

/*
CalcEntropy returns the size-weighted mean entropy of the given nodes,
defaulting to all current leaves when called with no arguments:
sum(count_i * H(freq_i)) / sum(count_i). A freshly grown tree's value
is at most the entropy of the full training label vector; pure trees
report 0.
*/
func (t *Tree) CalcEntropy(ids ...int) float64 {
	if ids == nil {
		ids = t.Leaves()
	}
	var weighted, total float64
	for _, id := range ids {
		n := t.Node(id)
		count := float64(n.Count())
		weighted += count * Entropy(n.Freq)
		total += count
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

/*
PruneCandidates returns the arena indices of the internal nodes whose
every child is a leaf, the only nodes a pruning pass may collapse. The
result is recomputed from the current tree on every call; there is no
incremental bookkeeping to go stale.
*/
func (t *Tree) PruneCandidates() []int {
	var candidates []int
	t.walk(t.Root, func(id int) {
		n := t.Node(id)
		if n.Leaf || len(n.Branches) == 0 {
			return
		}
		for _, child := range n.Branches {
			if !t.Nodes[child].Leaf {
				return
			}
		}
		candidates = append(candidates, id)
	})
	return candidates
}

/*
Collapse converts the internal node at the given index into a leaf,
clearing its branch map and thereby detaching its descendants from the
tree. The node keeps its frequency vector, so its majority class keeps
predicting for the rows that used to flow into the collapsed subtree.
*/
func (t *Tree) Collapse(id int) {
	n := t.Node(id)
	n.Branches = nil
	n.Feature = None
	n.Continuous = false
	n.Threshold = 0
	n.Leaf = true
}

// Height returns the maximum root-to-leaf edge count
func (t *Tree) Height() int {
	if t.Root == None {
		return 0
	}
	return t.height(t.Root)
}

func (t *Tree) height(id int) int {
	n := t.Node(id)
	max := 0
	for _, child := range n.Branches {
		if h := t.height(child) + 1; h > max {
			max = h
		}
	}
	return max
}

// Size returns the number of nodes reachable from the root
func (t *Tree) Size() int {
	count := 0
	t.walk(t.Root, func(int) { count++ })
	return count
}

// walk visits reachable nodes depth-first, branches in ascending value order
func (t *Tree) walk(id int, visit func(int)) {
	if id == None {
		return
	}
	visit(id)
	for _, branch := range sortedBranches(t.Nodes[id].Branches) {
		t.walk(t.Nodes[id].Branches[branch], visit)
	}
}

func sortedBranches(branches map[int]int) []int {
	keys := make([]int, 0, len(branches))
	for b := range branches {
		keys = append(keys, b)
	}
	sort.Ints(keys)
	return keys
}

/*
String renders the structure of the tree, one node per line, indented
by depth: the branch value and split condition that leads to each
node, its class-frequency vector and, for leaves, the majority class.
It is a diagnostic dump, not a serialization format.
*/
func (t *Tree) String() string {
	if t.Root == None {
		return "(empty tree)\n"
	}
	var sb strings.Builder
	t.dump(&sb, t.Root, None, 0)
	return sb.String()
}

func (t *Tree) dump(sb *strings.Builder, id, branch, depth int) {
	n := t.Node(id)
	indent := strings.Repeat("|  ", depth)
	var label string
	if n.Parent != None {
		p := t.Node(n.Parent)
		if p.Continuous {
			op := "<="
			if branch == 1 {
				op = ">"
			}
			label = fmt.Sprintf("[x%d %s %g] ", p.Feature, op, p.Threshold)
		} else {
			label = fmt.Sprintf("[x%d = %d] ", p.Feature, branch)
		}
	}
	if n.Leaf {
		fmt.Fprintf(sb, "%s%s%v -> class %d\n", indent, label, n.Freq, n.Majority())
		return
	}
	fmt.Fprintf(sb, "%s%s%v split x%d (gain %.4f)\n", indent, label, n.Freq, n.Feature, n.Gain)
	for _, b := range sortedBranches(n.Branches) {
		t.dump(sb, n.Branches[b], b, depth+1)
	}
}
