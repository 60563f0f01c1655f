package sylva

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sylvaml/sylva/dataset"
)

/*
Bagging builds NTrees independent C4.5 trees, each on a bootstrap
row-sample of the training data, and classifies by majority vote.
Tree l samples its rows from a stream seeded with l, so two trainings
over the same data produce identical ensembles whether the trees are
built sequentially or concurrently.
*/
type Bagging struct {
	cfg     Config
	trees   []*C45
	classes int
}

/*
NewBagging validates the ensemble hyperparameters, NTrees at least 1
and BRatio inside (0, 1], and returns a bagging classifier or a
configuration error.
*/
func NewBagging(cfg Config) (*Bagging, error) {
	if err := cfg.validateEnsemble(); err != nil {
		return nil, fmt.Errorf("bagging: %v", err)
	}
	return &Bagging{cfg: cfg}, nil
}

/*
Train builds the ensemble as a fork-join over NTrees independent
seeded builds, each writing into its pre-sized slot. A tree whose
build fails is logged and its slot left empty; the rest of the
ensemble trains on. Train fails only if the dataset is empty, the
context is cancelled, or not a single tree could be built.
*/
func (b *Bagging) Train(ctx context.Context, ds *dataset.Dataset) error {
	if ds.NumRows() == 0 {
		return fmt.Errorf("bagging: training dataset is empty")
	}
	b.classes = ds.Classes()
	b.trees = make([]*C45, b.cfg.NTrees)
	var wg sync.WaitGroup
	for l := range b.trees {
		wg.Add(1)
		go func(l int) {
			defer wg.Done()
			b.trees[l] = b.buildTree(ctx, ds, l)
		}(l)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("bagging: %v", err)
	}
	built := 0
	for _, t := range b.trees {
		if t != nil {
			built++
		}
	}
	if built == 0 {
		return fmt.Errorf("bagging: no tree could be built")
	}
	log.Debugf("bagging: built %d/%d trees", built, b.cfg.NTrees)
	return nil
}

func (b *Bagging) buildTree(ctx context.Context, ds *dataset.Dataset, l int) *C45 {
	rows := bootstrapRows(l, ds.NumRows(), b.cfg.BRatio)
	t := NewC45(b.cfg)
	if err := t.Train(ctx, ds.Select(rows, nil)); err != nil {
		log.Warnf("bagging: tree %d: %v", l, err)
		return nil
	}
	return t
}

/*
Predict evaluates every tree on the query vector, tallies the votes
into a length-k counter and returns the argmax class. Ties break to
the lowest class index.
*/
func (b *Bagging) Predict(z []float64) (int, error) {
	if b.trees == nil {
		return 0, fmt.Errorf("bagging: ensemble has not been trained")
	}
	votes := make([]int, b.classes)
	for _, t := range b.trees {
		if t == nil {
			continue
		}
		class, err := t.Predict(z)
		if err != nil {
			return 0, fmt.Errorf("bagging: %v", err)
		}
		votes[class]++
	}
	return argmax(votes), nil
}

// PredictBatch classifies every row of an instance matrix
func (b *Bagging) PredictBatch(x [][]float64) ([]int, error) {
	classes := make([]int, len(x))
	for i, z := range x {
		class, err := b.Predict(z)
		if err != nil {
			return nil, err
		}
		classes[i] = class
	}
	return classes, nil
}

// Trees exposes the trained ensemble members; failed slots are nil
func (b *Bagging) Trees() []*C45 {
	return b.trees
}

func argmax(votes []int) int {
	best := 0
	for class, count := range votes {
		if count > votes[best] {
			best = class
		}
	}
	return best
}

type baggingJSON struct {
	Config  Config `json:"config"`
	Classes int    `json:"classes"`
	Trees   []*C45 `json:"trees"`
}

// MarshalJSON serializes the hyperparameters and every trained tree
func (b *Bagging) MarshalJSON() ([]byte, error) {
	return json.Marshal(baggingJSON{Config: b.cfg, Classes: b.classes, Trees: b.trees})
}

// UnmarshalJSON restores an ensemble serialized with MarshalJSON
func (b *Bagging) UnmarshalJSON(data []byte) error {
	var bj baggingJSON
	if err := json.Unmarshal(data, &bj); err != nil {
		return err
	}
	b.cfg = bj.Config
	b.classes = bj.Classes
	b.trees = bj.Trees
	return nil
}
