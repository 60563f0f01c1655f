package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sylvaml/sylva/eval"
)

type testCmdConfig struct {
	*rootCmdConfig
	modelInput    string
	dataInput     string
	metadataInput string
	label         string
	table         string
	matrix        bool
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a classifier",
		Long:  `Test the performance of a classifier against a labeled test data set`,
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
			classifier, err := loadModel(config.modelInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing classifier against a set with %d samples...", ds.NumRows())
			predictions, err := classifier.PredictBatch(ds.X)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing classifier: %v\n", err)
				os.Exit(5)
			}
			accuracy, err := eval.Accuracy(ds.Y, predictions)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing classifier: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			fmt.Printf("%f accuracy over %d samples\n", accuracy, ds.NumRows())
			if config.matrix {
				cm, err := eval.NewConfusionMatrix(schema.ClassNames(), ds.Y, predictions)
				if err != nil {
					fmt.Fprintf(os.Stderr, "building confusion matrix: %v\n", err)
					os.Exit(6)
				}
				fmt.Println(cm)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with data to test against (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.modelInput), "classifier", "c", "", "path to a file from which the classifier to test will be read and parsed as JSON (required)")
	cmd.PersistentFlags().StringVarP(&(config.label), "label", "l", "", "name of the feature the classifier predicts (required)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "samples", "name of the table with the data when the input is a DB")
	cmd.PersistentFlags().BoolVar(&(config.matrix), "confusion-matrix", false, "print a confusion matrix along with the accuracy")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.modelInput == "" {
		return fmt.Errorf("required classifier flag was not set")
	}
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tcc.label == "" {
		return fmt.Errorf("required label flag was not set")
	}
	return nil
}
