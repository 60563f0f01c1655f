package sylva

import (
	"context"
	"fmt"

	"github.com/sylvaml/sylva/dataset"
)

/*
ID3 is the categorical-only decision-tree classifier. Every column of
its training data must be a categorical feature; splitting produces
one branch per distinct value the feature takes among the rows
reaching the node. For data with continuous columns use C45.
*/
type ID3 struct {
	singleTree
}

// NewID3 returns an ID3 classifier with the given hyperparameters
func NewID3(cfg Config) *ID3 {
	return &ID3{singleTree{cfg: cfg}}
}

/*
Train induces a new tree from the dataset, discarding any previously
trained one. It returns an error if the hyperparameters are invalid,
the dataset is empty or the schema declares a continuous column.
*/
func (c *ID3) Train(ctx context.Context, ds *dataset.Dataset) error {
	if err := c.cfg.validateTree(); err != nil {
		return fmt.Errorf("id3: %v", err)
	}
	if ds.NumRows() == 0 {
		return fmt.Errorf("id3: training dataset is empty")
	}
	for col := 0; col < ds.NumCols(); col++ {
		if ds.Schema.Continuous(col) {
			return fmt.Errorf("id3: feature %s is continuous; use the c4.5 inducer", ds.Schema.Inputs[col].Name())
		}
	}
	t, err := induce(ctx, ds, c.cfg)
	if err != nil {
		return fmt.Errorf("id3: %v", err)
	}
	c.t = t
	return nil
}
