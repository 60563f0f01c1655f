package sylva

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedForest(t *testing.T, cfg Config) *RandomForest {
	t.Helper()
	f, err := NewRandomForest(cfg)
	require.NoError(t, err)
	require.NoError(t, f.Train(context.Background(), playTennisDataset(t)))
	return f
}

func TestForestTrainsOnSubspaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NTrees = 5
	cfg.FBRatio = 0.5
	f := trainedForest(t, cfg)

	for l, cols := range f.Cols() {
		if cols == nil {
			continue
		}
		assert.Len(t, cols, 2, "tree %d should see half of the four features", l)
		for i, c := range cols {
			assert.GreaterOrEqual(t, c, 0)
			assert.Less(t, c, 4)
			if i > 0 {
				assert.Greater(t, c, cols[i-1], "column subsets are sorted and duplicate-free")
			}
		}
	}
}

func TestForestPredictsFullWidthQueries(t *testing.T) {
	ds := playTennisDataset(t)
	cfg := DefaultConfig()
	cfg.NTrees = 9
	f := trainedForest(t, cfg)

	predictions, err := f.PredictBatch(ds.X)
	require.NoError(t, err)
	require.Len(t, predictions, ds.NumRows())
	for _, p := range predictions {
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, ds.Classes())
	}
}

func TestForestRejectsWrongWidth(t *testing.T) {
	f := trainedForest(t, DefaultConfig())
	_, err := f.Predict([]float64{0, 0, 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestForestDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NTrees = 7
	a := trainedForest(t, cfg)
	b := trainedForest(t, cfg)

	assert.Equal(t, b.Cols(), a.Cols(), "column streams are seeded by tree index")

	ds := playTennisDataset(t)
	got, err := a.PredictBatch(ds.X)
	require.NoError(t, err)
	want, err := b.PredictBatch(ds.X)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestForestValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FBRatio = 0
	_, err := NewRandomForest(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.FBRatio = 1.2
	_, err = NewRandomForest(cfg)
	assert.Error(t, err)
}

func TestForestUntrainedPredict(t *testing.T) {
	f, err := NewRandomForest(DefaultConfig())
	require.NoError(t, err)
	_, err = f.Predict([]float64{0, 0, 0, 0})
	assert.Error(t, err)
}
