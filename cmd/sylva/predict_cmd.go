package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sylvaml/sylva"
	"github.com/sylvaml/sylva/dataset/csv"
	"github.com/sylvaml/sylva/feature"
)

type predictCmdConfig struct {
	*rootCmdConfig
	modelInput    string
	dataInput     string
	metadataInput string
	label         string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict labels for a set of samples",
		Long:  `Apply a previously grown classifier to a set of samples and print the predicted label for each, one per line.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			schema, err := loadSchema(config.metadataInput, config.label)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			classifier, err := loadModel(config.modelInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			x, err := config.querySamples(schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Predicting %s for %d samples...", config.label, len(x))
			predictions, err := classifier.PredictBatch(x)
			if err != nil {
				fmt.Fprintf(os.Stderr, "predicting: %v\n", err)
				os.Exit(5)
			}
			for _, p := range predictions {
				class, err := schema.Label.Decode(p)
				if err != nil {
					fmt.Fprintf(os.Stderr, "decoding predicted class %d: %v\n", p, err)
					os.Exit(6)
				}
				fmt.Println(class)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the samples to predict (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.modelInput), "classifier", "c", "", "path to a file from which the classifier to apply will be read and parsed as JSON (required)")
	cmd.PersistentFlags().StringVarP(&(config.label), "label", "l", "", "name of the feature the classifier predicts (required)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.modelInput == "" {
		return fmt.Errorf("required classifier flag was not set")
	}
	if pcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if pcc.label == "" {
		return fmt.Errorf("required label flag was not set")
	}
	return nil
}

func (pcc *predictCmdConfig) querySamples(schema *feature.Schema) ([][]float64, error) {
	var f *os.File
	if pcc.dataInput == "" {
		pcc.Logf("Reading query samples from STDIN...")
		f = os.Stdin
	} else {
		pcc.Logf("Opening %s to read query samples...", pcc.dataInput)
		var err error
		f, err = os.Open(pcc.dataInput)
		if err != nil {
			return nil, fmt.Errorf("opening query samples at %s: %v", pcc.dataInput, err)
		}
		defer f.Close()
	}
	x, err := csv.ReadUnlabeled(f, schema)
	if err != nil {
		return nil, fmt.Errorf("reading query samples: %v", err)
	}
	return x, nil
}

func loadModel(filepath string) (sylva.Classifier, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading classifier in JSON from %s: %v", filepath, err)
	}
	c, err := sylva.DecodeModel(data)
	if err != nil {
		err = fmt.Errorf("parsing classifier in JSON from %s: %v", filepath, err)
	}
	return c, err
}
