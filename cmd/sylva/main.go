package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sylva",
		Short: "sylva is a tool to induce decision-tree classifiers",
		Long:  `A tool to grow decision trees and tree ensembles from your data, test them, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		if config.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), testCmd(config))
	return rootCmd
}
