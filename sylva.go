/*
Package sylva implements supervised decision-tree induction (ID3 and
C4.5 variants), post-hoc minimal-gain pruning and two bootstrap
ensemble wrappers, bagging and random forest, for classifying tabular
instances into one of k discrete classes.

Training data is a numeric instance matrix with an integer label
vector (see the dataset package); categorical columns hold zero-based
value encodings and continuous columns hold raw real values. Induced
trees are arenas of nodes (see the tree package) that can be dumped,
serialized and pruned after training.
*/
package sylva

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sylvaml/sylva/dataset"
)

/*
Classifier is the contract shared by single trees and ensembles: Train
induces a model from a labeled dataset, Predict classifies one feature
vector and PredictBatch classifies every row of an instance matrix.
Train rebuilds the model from scratch on every call; there are no
incremental updates.
*/
type Classifier interface {
	Train(ctx context.Context, ds *dataset.Dataset) error
	Predict(z []float64) (int, error)
	PredictBatch(x [][]float64) ([]int, error)
}

// log is the package logger; callers can silence or redirect it
// through logrus configuration.
var log = logrus.WithField("pkg", "sylva")
