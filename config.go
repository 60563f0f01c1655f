package sylva

import "fmt"

/*
Config carries the hyperparameters of the inducers and ensembles. It
is an immutable value: constructors copy it and induction never writes
to it, so concurrent tree builds can share one Config safely.
*/
type Config struct {
	// Height is the maximum tree depth (root-to-leaf edge count).
	// It bounds recursion and guarantees termination on any data.
	Height int
	// Cutoff is the entropy at or below which a node stops splitting
	// and becomes a leaf. 0 grows nodes until they are pure.
	Cutoff float64
	// NTrees is the ensemble size. Odd values avoid voting ties.
	NTrees int
	// BRatio is the bootstrap row-sample fraction in (0, 1].
	// Exactly 1 keeps the training rows as they are, so a single-tree
	// ensemble degenerates to the underlying tree.
	BRatio float64
	// FBRatio is the random-forest column-sample fraction in (0, 1].
	FBRatio float64
}

/*
DefaultConfig returns the hyperparameters used when a caller has no
opinion: trees of height 5 grown to purity, ensembles of 51 trees over
70% row and column samples.
*/
func DefaultConfig() Config {
	return Config{
		Height:  5,
		Cutoff:  0,
		NTrees:  51,
		BRatio:  0.7,
		FBRatio: 0.7,
	}
}

func (c Config) validateTree() error {
	if c.Height < 1 {
		return fmt.Errorf("height must be at least 1, got %d", c.Height)
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("cutoff must not be negative, got %g", c.Cutoff)
	}
	return nil
}

func (c Config) validateEnsemble() error {
	if err := c.validateTree(); err != nil {
		return err
	}
	if c.NTrees < 1 {
		return fmt.Errorf("nTrees must be at least 1, got %d", c.NTrees)
	}
	if c.BRatio <= 0 || c.BRatio > 1 {
		return fmt.Errorf("bRatio must be in (0, 1], got %g", c.BRatio)
	}
	return nil
}

func (c Config) validateForest() error {
	if err := c.validateEnsemble(); err != nil {
		return err
	}
	if c.FBRatio <= 0 || c.FBRatio > 1 {
		return fmt.Errorf("fbRatio must be in (0, 1], got %g", c.FBRatio)
	}
	return nil
}
