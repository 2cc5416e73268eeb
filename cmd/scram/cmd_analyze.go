// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dalzilio/scram"
)

var (
	flagProbability bool
	flagApprox      string
	flagLimitOrder  int
	flagNumSums     int
	flagCutOff      float64
	flagOutput      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze MODEL",
	Short: "Compute the minimal cut sets of a fault-tree model",
	Long: `Analyze reads a YAML model file, computes the minimal cut sets of every
fault tree in it and writes an XML report. Flags override the settings block
of the model file. The analysis can be interrupted with SIGINT.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&flagProbability, "probability", false, "compute probabilities and importance measures")
	analyzeCmd.Flags().StringVar(&flagApprox, "approximation", "", `probability policy: "none", "rare-event" or "mcub"`)
	analyzeCmd.Flags().IntVar(&flagLimitOrder, "limit-order", 0, "maximum order of minimal cut sets")
	analyzeCmd.Flags().IntVar(&flagNumSums, "num-sums", 0, "number of sums in the exact probability series")
	analyzeCmd.Flags().Float64Var(&flagCutOff, "cut-off", 0, "cut-off probability for the total")
	analyzeCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", "report destination, - for stdout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	model, set, err := loadModel(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("probability") {
		set.Probability = flagProbability
	}
	if flagApprox != "" {
		set.Approximation = flagApprox
	}
	if flagLimitOrder != 0 {
		set.LimitOrder = flagLimitOrder
	}
	if flagNumSums != 0 {
		set.NumSums = flagNumSums
	}
	if cmd.Flags().Changed("cut-off") {
		set.CutOff = flagCutOff
	}

	analyzer, err := scram.New(set, scram.Logger(logger), scram.Progress(100000))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("analyzing model",
		zap.String("model", model.Name),
		zap.Int("fault-trees", len(model.FaultTrees())))
	results, err := analyzer.AnalyzeModel(ctx, model)
	if err != nil {
		return err
	}

	// Report the results in a stable order.
	tops := make([]string, 0, len(results))
	for top := range results {
		tops = append(tops, top)
	}
	sort.Strings(tops)
	ordered := make([]*scram.Result, len(tops))
	for i, top := range tops {
		ordered[i] = results[top]
	}

	out := os.Stdout
	if flagOutput != "-" {
		out, err = os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	rep := scram.Reporter{Software: "SCRAM", Version: version}
	if err := rep.Report(out, ordered...); err != nil {
		return err
	}
	for _, res := range ordered {
		logger.Info("analysis done",
			zap.String("top", res.Top),
			zap.Int("mcs", len(res.MCS)),
			zap.Duration("cut-sets", res.Timings.CutSets),
			zap.Duration("minimization", res.Timings.Minimization))
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}
	return nil
}
