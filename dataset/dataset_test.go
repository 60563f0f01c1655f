package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sylvaml/sylva/feature"
)

func testSchema(t *testing.T) *feature.Schema {
	t.Helper()
	features := []feature.Feature{
		feature.NewCategorical("color", []string{"red", "green", "blue"}),
		feature.NewContinuous("weight"),
		feature.NewCategorical("ripe", []string{"no", "yes"}),
	}
	s, err := feature.NewSchema(features, "ripe")
	require.NoError(t, err)
	return s
}

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New([][]float64{
		{0, 1.5},
		{1, 2.5},
		{2, 0.5},
		{1, 4.0},
	}, []int{0, 1, 0, 1}, testSchema(t))
	require.NoError(t, err)
	return ds
}

func TestNewValidatesDimensions(t *testing.T) {
	s := testSchema(t)

	_, err := New([][]float64{{0, 1}}, []int{0, 1}, s)
	assert.Error(t, err, "row/label count mismatch")

	_, err = New([][]float64{{0}}, []int{0}, s)
	assert.Error(t, err, "row width mismatch")

	_, err = New([][]float64{{0, 1}}, []int{2}, s)
	assert.Error(t, err, "label out of range")

	_, err = New([][]float64{{0, 1}}, []int{-1}, s)
	assert.Error(t, err)
}

func TestAccessors(t *testing.T) {
	ds := testDataset(t)
	assert.Equal(t, 4, ds.NumRows())
	assert.Equal(t, 2, ds.NumCols())
	assert.Equal(t, 2, ds.Classes())
}

func TestDistinctValuesSorted(t *testing.T) {
	ds := testDataset(t)
	assert.Equal(t, []float64{0, 1, 2}, ds.DistinctValues(0, Index(4)))
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 4.0}, ds.DistinctValues(1, Index(4)))
	assert.Equal(t, []float64{1}, ds.DistinctValues(0, []int{1, 3}))
}

func TestSelectRows(t *testing.T) {
	ds := testDataset(t)
	sub := ds.Select([]int{2, 0, 2}, nil)
	assert.Equal(t, [][]float64{{2, 0.5}, {0, 1.5}, {2, 0.5}}, sub.X)
	assert.Equal(t, []int{0, 0, 0}, sub.Y)
	assert.Same(t, ds.Schema, sub.Schema)

	// the selection is a copy, not a view
	sub.X[0][0] = 99
	assert.Equal(t, 2.0, ds.X[2][0])
}

func TestSelectColumns(t *testing.T) {
	ds := testDataset(t)
	sub := ds.Select(nil, []int{1})
	assert.Equal(t, [][]float64{{1.5}, {2.5}, {0.5}, {4.0}}, sub.X)
	assert.Equal(t, ds.Y, sub.Y)
	assert.Equal(t, 1, sub.NumCols())
	assert.Equal(t, "weight", sub.Schema.Inputs[0].Name())
	assert.True(t, sub.Schema.Continuous(0))
}

func TestSelectEmptyRows(t *testing.T) {
	ds := testDataset(t)
	sub := ds.Select([]int{}, nil)
	assert.Equal(t, 0, sub.NumRows())
}

func TestShiftToZero(t *testing.T) {
	s := testSchema(t)
	ds, err := New([][]float64{
		{1, 1.5},
		{2, 2.5},
	}, []int{0, 1}, s)
	require.NoError(t, err)

	ds.ShiftToZero()
	assert.Equal(t, [][]float64{{0, 1.5}, {1, 2.5}}, ds.X, "categorical columns shift, continuous ones do not")
}

func TestIndex(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Index(3))
	assert.Empty(t, Index(0))
}
