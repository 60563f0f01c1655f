package sylva

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedPlayTennisC45(t *testing.T) *C45 {
	t.Helper()
	c := NewC45(DefaultConfig())
	require.NoError(t, c.Train(context.Background(), playTennisDataset(t)))
	return c
}

func TestPruneCollapsesLowGainNodes(t *testing.T) {
	c := trainedPlayTennisC45(t)
	before := c.Tree().Size()
	beforeEntropy := c.CalcEntropy()

	pruned := c.Prune(1, 2.0)
	assert.Equal(t, 1, pruned)
	assert.Less(t, c.Tree().Size(), before)
	assert.GreaterOrEqual(t, c.CalcEntropy(), beforeEntropy, "pruning never makes leaves purer")
}

func TestPruneStopsAtThreshold(t *testing.T) {
	c := trainedPlayTennisC45(t)
	before := c.Tree().Size()

	// every recorded gain is strictly positive, nothing clears a zero threshold
	pruned := c.Prune(10, 0)
	assert.Equal(t, 0, pruned)
	assert.Equal(t, before, c.Tree().Size())
}

func TestPruneToTheRoot(t *testing.T) {
	c := trainedPlayTennisC45(t)
	pruned := c.Prune(100, 2.0)
	assert.Greater(t, pruned, 1)

	tr := c.Tree()
	root := tr.Node(tr.Root)
	assert.True(t, root.Leaf)
	assert.Equal(t, 1, tr.Size())
	assert.Equal(t, 1, root.Majority(), "the collapsed root predicts the dataset majority")
}

func TestPrunePicksMinimumGainFirst(t *testing.T) {
	c := trainedPlayTennisC45(t)
	tr := c.Tree()

	candidates := tr.PruneCandidates()
	require.NotEmpty(t, candidates)
	min := candidates[0]
	for _, id := range candidates[1:] {
		if tr.Node(id).Gain < tr.Node(min).Gain {
			min = id
		}
	}

	require.Equal(t, 1, c.Prune(1, 2.0))
	assert.True(t, tr.Node(min).Leaf, "the minimum-gain candidate goes first")
}

func TestPruneUntrainedClassifier(t *testing.T) {
	c := NewC45(DefaultConfig())
	assert.Equal(t, 0, c.Prune(10, 2.0))
}
