// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vinascreen",
	Short: "Batch molecular docking with AutoDock Vina",
	Long: "vinascreen docks every ligand file in a directory against a fixed receptor,\n" +
		"extracts the best binding affinity from the engine's console output, and\n" +
		"aggregates the scores into a CSV table. Raw console output and a debug log\n" +
		"are persisted per run.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
