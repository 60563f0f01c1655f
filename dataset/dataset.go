/*
Package dataset holds the numeric containers trees are induced from:
an instance matrix of float64 values together with an integer label
vector and the feature schema describing its columns.

Categorical features are stored as the zero-based index of their value
in the feature's value set; continuous features are stored as raw real
values. Labels are integers in [0, k) where k is the number of classes
of the schema's label feature.
*/
package dataset

import (
	"fmt"
	"sort"

	"github.com/sylvaml/sylva/feature"
)

/*
Dataset is an instance matrix with m rows and n columns, an m-length
label vector and the schema of its columns. Induction treats it as
read-only: subsetting for recursion is done through row/column index
slices, never by mutating the matrix.
*/
type Dataset struct {
	X      [][]float64
	Y      []int
	Schema *feature.Schema
}

/*
New takes an instance matrix, a label vector and a schema and returns
a dataset with them, or an error if the dimensions are inconsistent or
a label falls outside [0, k).
*/
func New(x [][]float64, y []int, s *feature.Schema) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("instance matrix has %d rows but label vector has %d entries", len(x), len(y))
	}
	n := s.NumFeatures()
	k := s.ClassCount()
	for i, row := range x {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, schema defines %d features", i, len(row), n)
		}
		if y[i] < 0 || y[i] >= k {
			return nil, fmt.Errorf("label %d at row %d outside [0, %d)", y[i], i, k)
		}
	}
	return &Dataset{X: x, Y: y, Schema: s}, nil
}

// NumRows returns the number of samples in the dataset
func (d *Dataset) NumRows() int {
	return len(d.X)
}

// NumCols returns the number of input features in the dataset
func (d *Dataset) NumCols() int {
	return d.Schema.NumFeatures()
}

// Classes returns the number of classes of the label feature
func (d *Dataset) Classes() int {
	return d.Schema.ClassCount()
}

/*
DistinctValues takes a column index and a row index slice and returns
the sorted distinct values the column takes over those rows.
*/
func (d *Dataset) DistinctValues(col int, rows []int) []float64 {
	seen := make(map[float64]bool)
	var values []float64
	for _, r := range rows {
		v := d.X[r][col]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	return values
}

/*
Select takes a row index slice and a column index slice and returns a
new dataset holding copies of the selected cells, with the schema
restricted to the selected columns. A nil rows slice selects all rows;
a nil cols slice selects all columns. Rows may contain duplicates, as
produced by bootstrap resampling.
*/
func (d *Dataset) Select(rows, cols []int) *Dataset {
	if rows == nil {
		rows = Index(d.NumRows())
	}
	schema := d.Schema
	if cols != nil {
		schema = d.Schema.Select(cols)
	}
	x := make([][]float64, len(rows))
	y := make([]int, len(rows))
	for i, r := range rows {
		if cols == nil {
			row := make([]float64, len(d.X[r]))
			copy(row, d.X[r])
			x[i] = row
		} else {
			row := make([]float64, len(cols))
			for j, c := range cols {
				row[j] = d.X[r][c]
			}
			x[i] = row
		}
		y[i] = d.Y[r]
	}
	return &Dataset{X: x, Y: y, Schema: schema}
}

/*
ShiftToZero normalizes every categorical column in place by
subtracting its minimum value, so that value encodings are zero-based.
It is the only mutation the package performs on an instance matrix and
is meant to be applied once, before induction, on data ingested from
sources that use one-based or otherwise offset encodings.
*/
func (d *Dataset) ShiftToZero() {
	for c := 0; c < d.NumCols(); c++ {
		if d.Schema.Continuous(c) {
			continue
		}
		if len(d.X) == 0 {
			continue
		}
		min := d.X[0][c]
		for _, row := range d.X {
			if row[c] < min {
				min = row[c]
			}
		}
		if min == 0 {
			continue
		}
		for _, row := range d.X {
			row[c] -= min
		}
	}
}

/*
Index returns the identity index [0, 1, ... n-1], the starting row or
column index slice for induction over a full dataset.
*/
func Index(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
