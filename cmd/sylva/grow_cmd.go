package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sylvaml/sylva"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput      string
	metadataInput  string
	output         string
	label          string
	table          string
	model          string
	height         int
	cutoff         float64
	trees          int
	bagRatio       float64
	colRatio       float64
	pruneCount     int
	pruneThreshold float64
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	defaults := sylva.DefaultConfig()
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a classifier from a set of data",
		Long:  `Grow a decision tree or tree ensemble from a set of data to predict a certain feature.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			schema, err := loadSchema(config.metadataInput, config.label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ds, err := loadDataset(ctx, rootConfig, config.dataInput, config.table, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			classifier, err := config.classifier()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Growing %s classifier from a set with %d samples and %d features to predict %s ...", config.model, ds.NumRows(), ds.NumCols(), config.label)
			err = classifier.Train(ctx, ds)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the classifier: %v\n", err)
				os.Exit(5)
			}
			config.prune(classifier)
			config.Logf("Done")
			err = outputModel(config.output, classifier)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with data to use to grow the classifier (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown classifier will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.label), "label", "l", "", "name of the feature the classifier should predict (required)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "samples", "name of the table with the data when the input is a DB")
	cmd.PersistentFlags().StringVar(&(config.model), "model", "c45", "kind of classifier to grow, the following are valid: id3, c45, bagging, forest")
	cmd.PersistentFlags().IntVar(&(config.height), "height", defaults.Height, "maximum height of the grown trees")
	cmd.PersistentFlags().Float64Var(&(config.cutoff), "cutoff", defaults.Cutoff, "entropy at or below which a node is kept as a leaf")
	cmd.PersistentFlags().IntVar(&(config.trees), "trees", defaults.NTrees, "number of trees in bagging and forest ensembles")
	cmd.PersistentFlags().Float64Var(&(config.bagRatio), "bag-ratio", defaults.BRatio, "fraction of the training samples drawn with replacement for each ensemble tree")
	cmd.PersistentFlags().Float64Var(&(config.colRatio), "col-ratio", defaults.FBRatio, "fraction of the features sampled for each forest tree")
	cmd.PersistentFlags().IntVar(&(config.pruneCount), "prune", 0, "maximum number of nodes to prune from a grown id3 or c45 tree (defaults to 0: no pruning)")
	cmd.PersistentFlags().Float64Var(&(config.pruneThreshold), "prune-threshold", 0.98, "information gain below which a node is considered prunable")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if gcc.label == "" {
		return fmt.Errorf("required label flag was not set")
	}
	switch gcc.model {
	case "id3", "c45", "bagging", "forest":
	default:
		return fmt.Errorf("unknown model kind %q", gcc.model)
	}
	if gcc.pruneCount > 0 && (gcc.model == "bagging" || gcc.model == "forest") {
		return fmt.Errorf("pruning is only available for id3 and c45 classifiers")
	}
	return nil
}

func (gcc *growCmdConfig) config() sylva.Config {
	cfg := sylva.DefaultConfig()
	cfg.Height = gcc.height
	cfg.Cutoff = gcc.cutoff
	cfg.NTrees = gcc.trees
	cfg.BRatio = gcc.bagRatio
	cfg.FBRatio = gcc.colRatio
	return cfg
}

func (gcc *growCmdConfig) classifier() (sylva.Classifier, error) {
	cfg := gcc.config()
	switch gcc.model {
	case "id3":
		return sylva.NewID3(cfg), nil
	case "c45":
		return sylva.NewC45(cfg), nil
	case "bagging":
		return sylva.NewBagging(cfg)
	case "forest":
		return sylva.NewRandomForest(cfg)
	}
	return nil, fmt.Errorf("unknown model kind %q", gcc.model)
}

func (gcc *growCmdConfig) prune(c sylva.Classifier) {
	if gcc.pruneCount <= 0 {
		return
	}
	type pruner interface {
		Prune(nPrune int, threshold float64) int
	}
	p, ok := c.(pruner)
	if !ok {
		return
	}
	pruned := p.Prune(gcc.pruneCount, gcc.pruneThreshold)
	gcc.Logf("Pruned %d nodes", pruned)
}

func outputModel(outputPath string, c sylva.Classifier) error {
	data, err := sylva.EncodeModel(c)
	if err != nil {
		return err
	}
	var f *os.File
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
	}
	defer f.Close()
	_, err = f.Write(append(data, '\n'))
	return err
}
