package sylva

import (
	"context"
	"fmt"

	"github.com/sylvaml/sylva/dataset"
)

/*
C45 is the decision-tree classifier for mixed categorical and
continuous data. Categorical columns split exactly as under ID3;
continuous columns split into two branches around the best threshold
found among the midpoints of the column's sorted distinct values,
re-searched at every node. Either way a feature is used at most once
along any root-to-leaf path.
*/
type C45 struct {
	singleTree
}

// NewC45 returns a C4.5 classifier with the given hyperparameters
func NewC45(cfg Config) *C45 {
	return &C45{singleTree{cfg: cfg}}
}

/*
Train induces a new tree from the dataset, discarding any previously
trained one. It returns an error if the hyperparameters are invalid or
the dataset is empty.
*/
func (c *C45) Train(ctx context.Context, ds *dataset.Dataset) error {
	if err := c.cfg.validateTree(); err != nil {
		return fmt.Errorf("c4.5: %v", err)
	}
	if ds.NumRows() == 0 {
		return fmt.Errorf("c4.5: training dataset is empty")
	}
	t, err := induce(ctx, ds, c.cfg)
	if err != nil {
		return fmt.Errorf("c4.5: %v", err)
	}
	c.t = t
	return nil
}
