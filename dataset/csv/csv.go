/*
Package csv reads instance matrices from CSV streams against a feature
schema.

The header or first row of the CSV content is expected to consist of
the names of the schema's features: all input features, in order, plus
the label feature for labeled data. The remaining rows must hold valid
values for every feature: a member of the value set for categorical
features, a real number for continuous ones.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sylvaml/sylva/dataset"
	"github.com/sylvaml/sylva/feature"
)

/*
Read takes an io.Reader for a CSV stream and a schema and returns a
labeled dataset parsed from it or an error. The stream must contain a
column for every input feature and for the label feature.
*/
func Read(reader io.Reader, s *feature.Schema) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %v", err)
	}
	cols, err := headerColumns(header, s.Inputs)
	if err != nil {
		return nil, err
	}
	labelCol := -1
	for i, name := range header {
		if name == s.Label.Name() {
			labelCol = i
			break
		}
	}
	if labelCol < 0 {
		return nil, fmt.Errorf("csv header has no column for label feature %s", s.Label.Name())
	}
	var x [][]float64
	var y []int
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %v", line, err)
		}
		row, err := encodeRow(record, cols, s.Inputs)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %v", line, err)
		}
		label, err := s.Label.Encode(record[labelCol])
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %v", line, err)
		}
		x = append(x, row)
		y = append(y, label)
	}
	return dataset.New(x, y, s)
}

/*
ReadUnlabeled takes an io.Reader for a CSV stream and a schema and
returns the instance matrix parsed from it or an error. The label
column may be absent; if present it is ignored. Use it to load query
samples for prediction.
*/
func ReadUnlabeled(reader io.Reader, s *feature.Schema) ([][]float64, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %v", err)
	}
	cols, err := headerColumns(header, s.Inputs)
	if err != nil {
		return nil, err
	}
	var x [][]float64
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %v", line, err)
		}
		row, err := encodeRow(record, cols, s.Inputs)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %v", line, err)
		}
		x = append(x, row)
	}
	return x, nil
}

// headerColumns maps every input feature to its csv column position
func headerColumns(header []string, inputs []feature.Feature) ([]int, error) {
	cols := make([]int, len(inputs))
	for i, f := range inputs {
		cols[i] = -1
		for j, name := range header {
			if name == f.Name() {
				cols[i] = j
				break
			}
		}
		if cols[i] < 0 {
			return nil, fmt.Errorf("csv header has no column for feature %s", f.Name())
		}
	}
	return cols, nil
}

func encodeRow(record []string, cols []int, inputs []feature.Feature) ([]float64, error) {
	row := make([]float64, len(inputs))
	for i, f := range inputs {
		raw := record[cols[i]]
		switch ft := f.(type) {
		case *feature.CategoricalFeature:
			v, err := ft.Encode(raw)
			if err != nil {
				return nil, err
			}
			row[i] = float64(v)
		case *feature.ContinuousFeature:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("continuous feature %s got non-numeric value %q", f.Name(), raw)
			}
			row[i] = v
		default:
			return nil, fmt.Errorf("unknown feature type %T for feature %s", f, f.Name())
		}
	}
	return row, nil
}
