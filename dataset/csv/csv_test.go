package csv

import (
	"strings"
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

func TestRead(t *testing.T) {
	csv := "color,weight,ripe\n" +
		"red,1.5,no\n" +
		"blue,2.25,yes\n"
	ds, err := Read(strings.NewReader(csv), testSchema(t))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1.5}, {2, 2.25}}, ds.X)
	assert.Equal(t, []int{0, 1}, ds.Y)
}

func TestReadReordersColumns(t *testing.T) {
	csv := "ripe,weight,color\n" +
		"yes,3.5,green\n"
	ds, err := Read(strings.NewReader(csv), testSchema(t))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3.5}}, ds.X)
	assert.Equal(t, []int{1}, ds.Y)
}

func TestReadMissingColumn(t *testing.T) {
	csv := "color,ripe\nred,no\n"
	_, err := Read(strings.NewReader(csv), testSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}

func TestReadMissingLabelColumn(t *testing.T) {
	csv := "color,weight\nred,1.5\n"
	_, err := Read(strings.NewReader(csv), testSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ripe")
}

func TestReadUnknownCategoricalValue(t *testing.T) {
	csv := "color,weight,ripe\npurple,1.5,no\n"
	_, err := Read(strings.NewReader(csv), testSchema(t))
	assert.Error(t, err)
}

func TestReadRowNumbersCountTheHeader(t *testing.T) {
	// the header is row 1, so the first data row is row 2 in every error
	malformed := "color,weight,ripe\nred,1.5\n"
	_, err := Read(strings.NewReader(malformed), testSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	badValue := "color,weight,ripe\npurple,1.5,no\n"
	_, err = Read(strings.NewReader(badValue), testSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	_, err = ReadUnlabeled(strings.NewReader("color,weight\nred\n"), testSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadNonNumericContinuousValue(t *testing.T) {
	csv := "color,weight,ripe\nred,heavy,no\n"
	_, err := Read(strings.NewReader(csv), testSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}

func TestReadUnlabeled(t *testing.T) {
	csv := "color,weight\n" +
		"green,0.5\n" +
		"red,1.25\n"
	x, err := ReadUnlabeled(strings.NewReader(csv), testSchema(t))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0.5}, {0, 1.25}}, x)
}

func TestReadUnlabeledIgnoresLabelColumn(t *testing.T) {
	csv := "color,weight,ripe\nblue,9,yes\n"
	x, err := ReadUnlabeled(strings.NewReader(csv), testSchema(t))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 9}}, x)
}
