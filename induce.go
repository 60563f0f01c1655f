package sylva

import (
	"context"

	"github.com/sylvaml/sylva/dataset"
	"github.com/sylvaml/sylva/tree"
)

/*
inducer is the recursive top-down tree builder shared by ID3 and C4.5.
Each recursive call owns a disjoint row index and a column index one
entry shorter than its parent's, so no state is shared across calls
and the recursion is bounded by both the column count and the
configured height.
*/
type inducer struct {
	cfg Config
	ds  *dataset.Dataset
	t   *tree.Tree
}

/*
induce grows a decision tree over the full dataset. If not even the
root admits a usable split, the result is a single-leaf tree holding
the full class-frequency vector, so prediction still answers with the
dataset's majority class.
*/
func induce(ctx context.Context, ds *dataset.Dataset, cfg Config) (*tree.Tree, error) {
	b := &inducer{cfg: cfg, ds: ds, t: tree.New(ds.Classes())}
	rows := dataset.Index(ds.NumRows())
	cols := dataset.Index(ds.NumCols())
	root, err := b.build(ctx, rows, cols, tree.None, 0)
	if err != nil {
		return nil, err
	}
	if root == tree.None {
		b.t.Add(tree.None, tree.Node{
			Feature: tree.None,
			Freq:    classCounts(ds, rows),
			Leaf:    true,
		})
	}
	return b.t, nil
}

/*
build develops one node for the given row and column indices and
returns its arena index.

A node terminates, as a leaf carrying the majority class of its rows,
when the rows' entropy is at or below the cutoff, when the depth limit
is reached, or when no columns are left to split on. Otherwise the
best-feature search runs over cols; if no column yields strictly
positive gain, build returns tree.None and the caller attaches no
child for the branch value that led here, leaving prediction to fall
back to the caller's majority class.
*/
func (b *inducer) build(ctx context.Context, rows, cols []int, parent, depth int) (int, error) {
	if err := ctx.Err(); err != nil {
		return tree.None, err
	}
	freq := classCounts(b.ds, rows)
	if len(cols) == 0 || depth >= b.cfg.Height || tree.Entropy(freq) <= b.cfg.Cutoff {
		return b.t.Add(parent, tree.Node{Feature: tree.None, Freq: freq, Leaf: true}), nil
	}
	sp := bestSplit(b.ds, rows, cols)
	if sp.feature == tree.None {
		return tree.None, nil
	}
	id := b.t.Add(parent, tree.Node{
		Feature:    sp.feature,
		Gain:       sp.gain,
		Freq:       freq,
		Continuous: sp.continuous,
		Threshold:  sp.threshold,
	})
	childCols := without(cols, sp.feature)
	if sp.continuous {
		for branch := 0; branch <= 1; branch++ {
			sub := b.trimContinuous(rows, sp.feature, sp.threshold, branch)
			if err := b.branch(ctx, sub, childCols, id, branch, depth); err != nil {
				return tree.None, err
			}
		}
	} else {
		for _, v := range b.ds.DistinctValues(sp.feature, rows) {
			sub := b.trimCategorical(rows, sp.feature, v)
			if err := b.branch(ctx, sub, childCols, id, int(v), depth); err != nil {
				return tree.None, err
			}
		}
	}
	// every branch came back without a usable split: terminal after all
	if len(b.t.Node(id).Branches) == 0 {
		b.t.Collapse(id)
	}
	return id, nil
}

func (b *inducer) branch(ctx context.Context, rows, cols []int, parent, value, depth int) error {
	if len(rows) == 0 {
		return nil
	}
	child, err := b.build(ctx, rows, cols, parent, depth+1)
	if err != nil {
		return err
	}
	if child != tree.None {
		b.t.Attach(parent, value, child)
	}
	return nil
}

// trimCategorical narrows rows to those whose col value equals v
func (b *inducer) trimCategorical(rows []int, col int, v float64) []int {
	var sub []int
	for _, r := range rows {
		if b.ds.X[r][col] == v {
			sub = append(sub, r)
		}
	}
	return sub
}

// trimContinuous narrows rows to the side of the threshold the branch selects
func (b *inducer) trimContinuous(rows []int, col int, threshold float64, branch int) []int {
	var sub []int
	for _, r := range rows {
		if (b.ds.X[r][col] <= threshold) == (branch == 0) {
			sub = append(sub, r)
		}
	}
	return sub
}

// without returns cols with the given column removed
func without(cols []int, col int) []int {
	out := make([]int, 0, len(cols)-1)
	for _, c := range cols {
		if c != col {
			out = append(out, c)
		}
	}
	return out
}
