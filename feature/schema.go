package feature

import "fmt"

/*
Schema describes the columns of an instance matrix: an ordered slice
of input features plus the label feature the induced trees predict.
The label feature is always categorical and its value set is the set
of class names, so class i on a label vector is Label.Values()[i].
*/
type Schema struct {
	Inputs []Feature
	Label  *CategoricalFeature
}

/*
NewSchema takes a slice of features and the name of the label feature,
which must belong to the slice and be categorical. It returns a schema
with the label singled out and the remaining features as inputs, in
their original order, or an error if the label cannot be found or is
continuous.
*/
func NewSchema(features []Feature, labelName string) (*Schema, error) {
	s := &Schema{}
	for _, f := range features {
		if f.Name() != labelName {
			s.Inputs = append(s.Inputs, f)
			continue
		}
		cf, ok := f.(*CategoricalFeature)
		if !ok {
			return nil, fmt.Errorf("label feature %s must be categorical", labelName)
		}
		s.Label = cf
	}
	if s.Label == nil {
		return nil, fmt.Errorf("label feature %s is not defined", labelName)
	}
	return s, nil
}

// NumFeatures returns the number of input features (matrix columns)
func (s *Schema) NumFeatures() int {
	return len(s.Inputs)
}

// ClassCount returns the number of classes the label feature can take
func (s *Schema) ClassCount() int {
	return s.Label.ValueCount()
}

// ClassNames returns the value set of the label feature
func (s *Schema) ClassNames() []string {
	return s.Label.Values()
}

/*
Continuous takes a column index and returns whether the corresponding
input feature takes real values.
*/
func (s *Schema) Continuous(col int) bool {
	return s.Inputs[col].Continuous()
}

/*
ValueCount takes a column index and returns the number of distinct
values of the corresponding input feature, or 0 when the feature is
continuous and the notion does not apply.
*/
func (s *Schema) ValueCount(col int) int {
	if cf, ok := s.Inputs[col].(*CategoricalFeature); ok {
		return cf.ValueCount()
	}
	return 0
}

/*
Select takes a slice of column indices and returns a schema whose
inputs are restricted to those columns, in the given order, sharing
the label feature. It is used to project a schema onto the feature
subspace a tree of a random forest is trained on.
*/
func (s *Schema) Select(cols []int) *Schema {
	inputs := make([]Feature, 0, len(cols))
	for _, c := range cols {
		inputs = append(inputs, s.Inputs[c])
	}
	return &Schema{Inputs: inputs, Label: s.Label}
}
