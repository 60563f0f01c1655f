package feature

import "fmt"

/*
Feature represents a column of an instance matrix: a property
that can be observed on every sample.
*/
type Feature interface {
	Name() string
	// Continuous indicates whether the feature takes real values
	// (true) or values from a finite categorical set (false).
	Continuous() bool
}

/*
CategoricalFeature represents a property that can only take a value
among a finite set. Values are stored as strings; on the instance
matrix they are encoded as their zero-based index in the value set.
*/
type CategoricalFeature struct {
	name   string
	values []string
}

/*
ContinuousFeature represents a property that takes real values.
*/
type ContinuousFeature struct {
	name string
}

/*
NewCategorical takes a name string and a slice of available value
strings and returns a categorical feature with them.
*/
func NewCategorical(name string, values []string) *CategoricalFeature {
	return &CategoricalFeature{name, values}
}

/*
NewContinuous takes a name string and returns a continuous feature
with the given name.
*/
func NewContinuous(name string) *ContinuousFeature {
	return &ContinuousFeature{name}
}

// Name returns the name of the feature
func (cf *CategoricalFeature) Name() string {
	return cf.name
}

// Continuous returns false: the feature takes categorical values
func (cf *CategoricalFeature) Continuous() bool {
	return false
}

/*
Values returns the value set of the feature. The position of a value
in the returned slice is its encoding on the instance matrix.
*/
func (cf *CategoricalFeature) Values() []string {
	return cf.values
}

// ValueCount returns the number of distinct values the feature can take
func (cf *CategoricalFeature) ValueCount() int {
	return len(cf.values)
}

/*
Encode takes a value string and returns its zero-based index in the
feature's value set, or an error if the value does not belong to it.
*/
func (cf *CategoricalFeature) Encode(value string) (int, error) {
	for i, v := range cf.values {
		if v == value {
			return i, nil
		}
	}
	return 0, fmt.Errorf("categorical feature %s got unknown value %q", cf.name, value)
}

/*
Decode takes a zero-based value index and returns the value string it
encodes, or an error if the index is out of range.
*/
func (cf *CategoricalFeature) Decode(index int) (string, error) {
	if index < 0 || index >= len(cf.values) {
		return "", fmt.Errorf("categorical feature %s has no value with index %d", cf.name, index)
	}
	return cf.values[index], nil
}

func (cf *CategoricalFeature) String() string {
	return cf.name
}

// Name returns the name of the feature
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

// Continuous returns true: the feature takes real values
func (cf *ContinuousFeature) Continuous() bool {
	return true
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}
