package sylva

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sylvaml/sylva/dataset"
)

/*
RandomForest extends bagging with per-tree feature subspaces: besides
its bootstrap row-sample, tree l trains on FBRatio*n columns drawn
without replacement, with feature names and continuous flags
restricted accordingly. The selected column index is recorded per
tree, because each tree lives in its own reduced-dimensional
coordinate system: queries arrive full-width and are projected onto a
tree's recorded columns before that tree votes.
*/
type RandomForest struct {
	cfg     Config
	trees   []*C45
	cols    [][]int
	classes int
	width   int
}

/*
NewRandomForest validates the forest hyperparameters, NTrees at least
1 and both BRatio and FBRatio inside (0, 1], and returns a random
forest classifier or a configuration error.
*/
func NewRandomForest(cfg Config) (*RandomForest, error) {
	if err := cfg.validateForest(); err != nil {
		return nil, fmt.Errorf("random forest: %v", err)
	}
	return &RandomForest{cfg: cfg}, nil
}

/*
Train builds the forest as a fork-join over NTrees independent seeded
builds. Row and column samples for tree l come from two deterministic
streams derived from l, independent of each other, so sequential and
concurrent builds produce identical forests. A failing tree is logged
and skipped at vote time rather than aborting the ensemble.
*/
func (f *RandomForest) Train(ctx context.Context, ds *dataset.Dataset) error {
	if ds.NumRows() == 0 {
		return fmt.Errorf("random forest: training dataset is empty")
	}
	f.classes = ds.Classes()
	f.width = ds.NumCols()
	f.trees = make([]*C45, f.cfg.NTrees)
	f.cols = make([][]int, f.cfg.NTrees)
	var wg sync.WaitGroup
	for l := range f.trees {
		wg.Add(1)
		go func(l int) {
			defer wg.Done()
			cols := subspaceCols(l, ds.NumCols(), f.cfg.FBRatio)
			rows := bootstrapRows(l, ds.NumRows(), f.cfg.BRatio)
			t := NewC45(f.cfg)
			if err := t.Train(ctx, ds.Select(rows, cols)); err != nil {
				log.Warnf("random forest: tree %d: %v", l, err)
				return
			}
			f.trees[l] = t
			f.cols[l] = cols
		}(l)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("random forest: %v", err)
	}
	built := 0
	for _, t := range f.trees {
		if t != nil {
			built++
		}
	}
	if built == 0 {
		return fmt.Errorf("random forest: no tree could be built")
	}
	log.Debugf("random forest: built %d/%d trees", built, f.cfg.NTrees)
	return nil
}

/*
Predict projects the full-width query vector onto every tree's
recorded column subset, collects the trees' votes and returns the
argmax class, ties breaking to the lowest class index. It returns an
error if the forest is untrained or the vector's width differs from
the training data's.
*/
func (f *RandomForest) Predict(z []float64) (int, error) {
	if f.trees == nil {
		return 0, fmt.Errorf("random forest: ensemble has not been trained")
	}
	if len(z) != f.width {
		return 0, fmt.Errorf("random forest: query vector has %d columns, trained on %d", len(z), f.width)
	}
	votes := make([]int, f.classes)
	projected := make([]float64, f.width)
	for l, t := range f.trees {
		if t == nil {
			continue
		}
		sub := projected[:len(f.cols[l])]
		for j, c := range f.cols[l] {
			sub[j] = z[c]
		}
		class, err := t.Predict(sub)
		if err != nil {
			return 0, fmt.Errorf("random forest: %v", err)
		}
		votes[class]++
	}
	return argmax(votes), nil
}

// PredictBatch classifies every row of an instance matrix
func (f *RandomForest) PredictBatch(x [][]float64) ([]int, error) {
	classes := make([]int, len(x))
	for i, z := range x {
		class, err := f.Predict(z)
		if err != nil {
			return nil, err
		}
		classes[i] = class
	}
	return classes, nil
}

// Cols exposes the per-tree selected-column indices; failed slots are nil
func (f *RandomForest) Cols() [][]int {
	return f.cols
}

type forestJSON struct {
	Config  Config  `json:"config"`
	Classes int     `json:"classes"`
	Width   int     `json:"width"`
	Trees   []*C45  `json:"trees"`
	Cols    [][]int `json:"cols"`
}

// MarshalJSON serializes the hyperparameters, the trees and their column subsets
func (f *RandomForest) MarshalJSON() ([]byte, error) {
	return json.Marshal(forestJSON{Config: f.cfg, Classes: f.classes, Width: f.width, Trees: f.trees, Cols: f.cols})
}

// UnmarshalJSON restores a forest serialized with MarshalJSON
func (f *RandomForest) UnmarshalJSON(data []byte) error {
	var fj forestJSON
	if err := json.Unmarshal(data, &fj); err != nil {
		return err
	}
	f.cfg = fj.Config
	f.classes = fj.Classes
	f.width = fj.Width
	f.trees = fj.Trees
	f.cols = fj.Cols
	return nil
}
