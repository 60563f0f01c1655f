package sylva

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sylvaml/sylva/dataset"
	"github.com/sylvaml/sylva/feature"
)

/*
playTennisDataset returns the classic 14-sample weather dataset. Its
best split properties are well known: outlook has the highest
information gain at the root (about 0.2467 bits), overcast days are
all positive, and the full tree needs height 2.
*/
func playTennisDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	features := []feature.Feature{
		feature.NewCategorical("outlook", []string{"sunny", "overcast", "rain"}),
		feature.NewCategorical("temperature", []string{"hot", "mild", "cool"}),
		feature.NewCategorical("humidity", []string{"high", "normal"}),
		feature.NewCategorical("wind", []string{"weak", "strong"}),
		feature.NewCategorical("play", []string{"no", "yes"}),
	}
	schema, err := feature.NewSchema(features, "play")
	require.NoError(t, err)
	x := [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{2, 1, 0, 0},
		{2, 2, 1, 0},
		{2, 2, 1, 1},
		{1, 2, 1, 1},
		{0, 1, 0, 0},
		{0, 2, 1, 0},
		{2, 1, 1, 0},
		{0, 1, 1, 1},
		{1, 1, 0, 1},
		{1, 0, 1, 0},
		{2, 1, 0, 1},
	}
	y := []int{0, 0, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0}
	ds, err := dataset.New(x, y, schema)
	require.NoError(t, err)
	return ds
}

/*
twoClusterDataset returns six samples over a single continuous feature
forming two well-separated clusters, one per class. The only sensible
binary split is the midpoint between the clusters, 6.5.
*/
func twoClusterDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	features := []feature.Feature{
		feature.NewContinuous("x"),
		feature.NewCategorical("cluster", []string{"low", "high"}),
	}
	schema, err := feature.NewSchema(features, "cluster")
	require.NoError(t, err)
	x := [][]float64{{1}, {2}, {3}, {10}, {11}, {12}}
	y := []int{0, 0, 0, 1, 1, 1}
	ds, err := dataset.New(x, y, schema)
	require.NoError(t, err)
	return ds
}
