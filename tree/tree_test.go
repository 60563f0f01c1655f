package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
stumpTree builds a two-level tree by hand: a categorical root splitting
on feature 0 with branches for values 0 and 1, the second of which is a
continuous split on feature 1 at threshold 3.
*/
func stumpTree() *Tree {
	t := New(2)
	root := t.Add(None, Node{Feature: 0, Gain: 0.5, Freq: []int{4, 4}})
	left := t.Add(root, Node{Feature: None, Freq: []int{3, 1}, Leaf: true})
	t.Attach(root, 0, left)
	mid := t.Add(root, Node{Feature: 1, Gain: 0.3, Freq: []int{1, 3}, Continuous: true, Threshold: 3})
	t.Attach(root, 1, mid)
	low := t.Add(mid, Node{Feature: None, Freq: []int{1, 0}, Leaf: true})
	t.Attach(mid, 0, low)
	high := t.Add(mid, Node{Feature: None, Freq: []int{0, 3}, Leaf: true})
	t.Attach(mid, 1, high)
	return t
}

func TestAddAndAttach(t *testing.T) {
	tr := stumpTree()
	assert.Equal(t, 0, tr.Root)
	assert.Equal(t, 5, tr.Size())
	assert.Equal(t, 2, tr.Height())
	assert.Equal(t, None, tr.Node(tr.Root).Parent)
	assert.Equal(t, tr.Root, tr.Node(1).Parent)
}

func TestPredictDescends(t *testing.T) {
	tr := stumpTree()
	assert.Equal(t, 0, tr.Predict([]float64{0, 0}), "value 0 leads to the majority-no leaf")
	assert.Equal(t, 0, tr.Predict([]float64{1, 2}), "below the threshold")
	assert.Equal(t, 0, tr.Predict([]float64{1, 3}), "the threshold itself goes to the low branch")
	assert.Equal(t, 1, tr.Predict([]float64{1, 7}), "above the threshold")
}

func TestPredictMissingBranchFallsBack(t *testing.T) {
	tr := stumpTree()
	// value 2 has no branch on the root: answer with the root majority
	assert.Equal(t, 0, tr.Predict([]float64{2, 0}))
}

func TestPredictShortVectorFallsBack(t *testing.T) {
	tr := stumpTree()
	// feature 1 is out of range for a one-column vector: answer with
	// the majority of the node that needed it
	assert.Equal(t, 1, tr.Predict([]float64{1}))
	assert.NotPanics(t, func() { tr.Predict(nil) })
	assert.Equal(t, 0, tr.Predict(nil), "an empty vector gets the root majority")
}

func TestPredictEmptyTree(t *testing.T) {
	assert.Equal(t, 0, New(2).Predict([]float64{1}))
}

func TestLeavesDeterministicOrder(t *testing.T) {
	tr := stumpTree()
	assert.Equal(t, []int{1, 3, 4}, tr.Leaves())
}

func TestCalcEntropy(t *testing.T) {
	tr := stumpTree()
	// leaves: [3 1] over 4 rows, [1 0] over 1, [0 3] over 3
	want := (4*Entropy([]int{3, 1}) + 1*0 + 3*0) / 8
	assert.InDelta(t, want, tr.CalcEntropy(), 1e-9)
	assert.Equal(t, 0.0, tr.CalcEntropy(3, 4), "pure leaves only")
	assert.Equal(t, 0.0, New(2).CalcEntropy())
}

func TestPruneCandidates(t *testing.T) {
	tr := stumpTree()
	// only the continuous node has all-leaf children
	assert.Equal(t, []int{2}, tr.PruneCandidates())
}

func TestCollapse(t *testing.T) {
	tr := stumpTree()
	tr.Collapse(2)
	n := tr.Node(2)
	assert.True(t, n.Leaf)
	assert.Equal(t, None, n.Feature)
	assert.Empty(t, n.Branches)
	assert.Equal(t, []int{1, 3}, n.Freq, "the frequency vector survives the collapse")
	assert.Equal(t, 3, tr.Size(), "descendants drop out of the reachable set")
	assert.Equal(t, 1, tr.Predict([]float64{1, 0}), "the collapsed node predicts its majority")

	// with the continuous node gone the root becomes the only candidate
	assert.Equal(t, []int{0}, tr.PruneCandidates())
}

func TestMajorityBreaksTiesLow(t *testing.T) {
	n := Node{Freq: []int{2, 2}}
	assert.Equal(t, 0, n.Majority())
	n = Node{Freq: []int{0, 3, 3}}
	assert.Equal(t, 1, n.Majority())
}

func TestNodeCount(t *testing.T) {
	n := Node{Freq: []int{2, 5}}
	assert.Equal(t, 7, n.Count())
}

func TestStringDump(t *testing.T) {
	tr := stumpTree()
	s := tr.String()
	assert.Contains(t, s, "split x0")
	assert.Contains(t, s, "[x1 <= 3]")
	assert.Contains(t, s, "[x1 > 3]")
	assert.Contains(t, s, "-> class")
	assert.Equal(t, 5, strings.Count(s, "\n"), "one line per reachable node")

	assert.Equal(t, "(empty tree)\n", New(2).String())
}

func TestHeightOfEmptyTree(t *testing.T) {
	require.Equal(t, 0, New(3).Height())
}
