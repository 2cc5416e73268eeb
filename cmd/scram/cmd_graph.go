// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dalzilio/scram"
)

var flagGraphDir string

var graphCmd = &cobra.Command{
	Use:   "graph MODEL",
	Short: "Render the fault trees of a model as GraphViz DOT files",
	Long: `Graph reads a YAML model file and writes one DOT digraph per fault tree,
named after the tree, into the output directory (or to stdout with -d -).`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().StringVarP(&flagGraphDir, "dir", "d", ".", "output directory, - for stdout")
}

func runGraph(cmd *cobra.Command, args []string) error {
	model, _, err := loadModel(args[0])
	if err != nil {
		return err
	}
	for _, tree := range model.FaultTrees() {
		if flagGraphDir == "-" {
			if err := scram.Graphing(os.Stdout, tree); err != nil {
				return err
			}
			continue
		}
		path := filepath.Join(flagGraphDir, tree.Name+".dot")
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := scram.Graphing(out, tree); err != nil {
			out.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		logger.Info("graph written", zap.String("path", path))
	}
	return nil
}
