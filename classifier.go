package sylva

import (
	"encoding/json"
	"fmt"

	"github.com/sylvaml/sylva/tree"
)

/*
singleTree carries the state shared by the ID3 and C4.5 classifiers:
the hyperparameters and, after Train, the induced tree. The embedding
types provide Train; everything downstream of a grown tree, including
prediction, pruning, entropy reporting and serialization, lives here.
*/
type singleTree struct {
	cfg Config
	t   *tree.Tree
}

/*
Predict takes a feature vector and returns the class the tree assigns
to it, or an error if the classifier has not been trained. A vector
too short for some split falls back to that node's majority class
rather than failing.
*/
func (c *singleTree) Predict(z []float64) (int, error) {
	if c.t == nil {
		return 0, fmt.Errorf("classifier has not been trained")
	}
	return c.t.Predict(z), nil
}

// PredictBatch classifies every row of an instance matrix
func (c *singleTree) PredictBatch(x [][]float64) ([]int, error) {
	if c.t == nil {
		return nil, fmt.Errorf("classifier has not been trained")
	}
	classes := make([]int, len(x))
	for i, z := range x {
		classes[i] = c.t.Predict(z)
	}
	return classes, nil
}

/*
Prune runs up to nPrune minimal-gain pruning iterations on the trained
tree (see Prune) and returns the number of nodes collapsed. It is a
no-op on an untrained classifier.
*/
func (c *singleTree) Prune(nPrune int, threshold float64) int {
	if c.t == nil {
		return 0
	}
	return Prune(c.t, nPrune, threshold)
}

/*
CalcEntropy returns the size-weighted mean entropy of the tree's
current leaves, 0 for an untrained classifier. Use it to compare tree
health before and after pruning.
*/
func (c *singleTree) CalcEntropy() float64 {
	if c.t == nil {
		return 0
	}
	return c.t.CalcEntropy()
}

// Tree exposes the induced tree, nil before Train
func (c *singleTree) Tree() *tree.Tree {
	return c.t
}

// String renders the structural dump of the induced tree
func (c *singleTree) String() string {
	if c.t == nil {
		return "(untrained)\n"
	}
	return c.t.String()
}

type singleTreeJSON struct {
	Config Config     `json:"config"`
	Tree   *tree.Tree `json:"tree"`
}

// MarshalJSON serializes the hyperparameters and the induced tree
func (c *singleTree) MarshalJSON() ([]byte, error) {
	return json.Marshal(singleTreeJSON{Config: c.cfg, Tree: c.t})
}

// UnmarshalJSON restores a classifier serialized with MarshalJSON
func (c *singleTree) UnmarshalJSON(data []byte) error {
	var sj singleTreeJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	c.cfg = sj.Config
	c.t = sj.Tree
	return nil
}
