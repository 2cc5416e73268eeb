// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command scram analyzes fault-tree models: it computes minimal cut sets,
// top-event probabilities and importance measures, and renders models as
// GraphViz DOT graphs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var (
	logger   *zap.Logger
	debugLog bool
)

var rootCmd = &cobra.Command{
	Use:   "scram",
	Short: "Probabilistic risk analysis over static fault trees",
	Long: `scram computes the minimal cut sets of a fault-tree model and, on
request, the probability of the top event and the importance of every basic
event. Models are described in YAML files; results are reported as XML.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debugLog {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(graphCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scram: %v\n", err)
		os.Exit(1)
	}
}
