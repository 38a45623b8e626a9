// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"vinascreen/pkg/screen"
)

// DefaultConfigFile is the screening config looked up next to the receptor.
const DefaultConfigFile = "screening.yaml"

var (
	runCmdConfigFile     string
	runCmdReceptor       string
	runCmdLigandDir      string
	runCmdOutputDir      string
	runCmdVinaBin        string
	runCmdExhaustiveness int

	runCmdCenterX float64
	runCmdCenterY float64
	runCmdCenterZ float64
	runCmdSizeX   float64
	runCmdSizeY   float64
	runCmdSizeZ   float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Dock every ligand in the ligand directory and collect best affinities",
	Long: "Runs the screening batch: each .pdbqt file in the ligand directory is docked\n" +
		"against the receptor with the given grid box, the best-mode affinity is scraped\n" +
		"from the engine output, and one CSV row is appended per ligand.\n\n" +
		"Grid box values may come from flags, a " + DefaultConfigFile + " file, or interactive\n" +
		"prompts at startup (blank answers default to 0.0). Settings such as the engine\n" +
		"binary can also be supplied via environment variables or a .env file\n" +
		"(VINA_BIN, VINA_RECEPTOR, VINA_LIGAND_DIR, VINA_OUTPUT_DIR, VINA_EXHAUSTIVENESS).",
	RunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; real env vars still apply.
		_ = godotenv.Load()

		cfg, err := loadRunConfig(cmd)
		if err != nil {
			return err
		}

		screen.PrintBanner(cmd.OutOrStdout())

		logger, closeLog, err := screen.NewRunLogger(cfg.DebugLog)
		if err != nil {
			return err
		}
		defer closeLog()

		box, err := screen.ResolveGridBox(cfg.Grid, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			logger.WithError(err).Error("collecting grid box parameters")
			return err
		}

		s := screen.New(cfg, screen.NewVinaEngine(cfg.VinaBin), logger)
		if _, err := s.Run(box); err != nil {
			logger.WithError(err).Error("screening run failed")
			return err
		}
		return nil
	},
}

// loadRunConfig resolves the run configuration with the precedence
// defaults < config file < environment < flags.
func loadRunConfig(cmd *cobra.Command) (screen.Config, error) {
	cfg := screen.DefaultConfig()

	path := runCmdConfigFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		loaded, err := screen.LoadConfig(path)
		if err != nil {
			return screen.Config{}, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("receptor") {
		cfg.Receptor = runCmdReceptor
	}
	if flags.Changed("ligand-dir") {
		cfg.LigandDir = runCmdLigandDir
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = runCmdOutputDir
	}
	if flags.Changed("vina-bin") {
		cfg.VinaBin = runCmdVinaBin
	}
	if flags.Changed("exhaustiveness") {
		cfg.Exhaustiveness = runCmdExhaustiveness
	}

	gridFlags := []struct {
		name string
		val  *float64
		dst  **float64
	}{
		{"center_x", &runCmdCenterX, &cfg.Grid.CenterX},
		{"center_y", &runCmdCenterY, &cfg.Grid.CenterY},
		{"center_z", &runCmdCenterZ, &cfg.Grid.CenterZ},
		{"size_x", &runCmdSizeX, &cfg.Grid.SizeX},
		{"size_y", &runCmdSizeY, &cfg.Grid.SizeY},
		{"size_z", &runCmdSizeZ, &cfg.Grid.SizeZ},
	}
	for _, f := range gridFlags {
		if flags.Changed(f.name) {
			*f.dst = f.val
		}
	}

	return cfg, nil
}

func init() {
	runCmd.Flags().StringVarP(&runCmdConfigFile, "config", "c", "", "path to a screening config file (default "+DefaultConfigFile+" if present)")
	runCmd.Flags().StringVar(&runCmdReceptor, "receptor", "", "receptor .pdbqt file")
	runCmd.Flags().StringVar(&runCmdLigandDir, "ligand-dir", "", "directory of ligand .pdbqt files")
	runCmd.Flags().StringVar(&runCmdOutputDir, "output-dir", "", "directory for docked pose files")
	runCmd.Flags().StringVar(&runCmdVinaBin, "vina-bin", "", "docking engine binary")
	runCmd.Flags().IntVar(&runCmdExhaustiveness, "exhaustiveness", 0, "engine exhaustiveness")

	runCmd.Flags().Float64Var(&runCmdCenterX, "center_x", 0, "grid box center X")
	runCmd.Flags().Float64Var(&runCmdCenterY, "center_y", 0, "grid box center Y")
	runCmd.Flags().Float64Var(&runCmdCenterZ, "center_z", 0, "grid box center Z")
	runCmd.Flags().Float64Var(&runCmdSizeX, "size_x", 0, "grid box size X")
	runCmd.Flags().Float64Var(&runCmdSizeY, "size_y", 0, "grid box size Y")
	runCmd.Flags().Float64Var(&runCmdSizeZ, "size_z", 0, "grid box size Z")
}
