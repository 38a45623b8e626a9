// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by ApplyEnv. A .env file loaded
// by the CLI (godotenv) feeds the same variables.
const (
	VinaBinEnvVar        = "VINA_BIN"
	ReceptorEnvVar       = "VINA_RECEPTOR"
	LigandDirEnvVar      = "VINA_LIGAND_DIR"
	OutputDirEnvVar      = "VINA_OUTPUT_DIR"
	ExhaustivenessEnvVar = "VINA_EXHAUSTIVENESS"
)

// Config holds all screening-run settings. Callers either construct a
// Config in Go code, or place a screening.yaml next to the receptor and
// call LoadConfig. Zero values are filled in by applyDefaults, so an
// empty file (or no file at all) yields the conventional layout:
// receptor.pdbqt, ./ligands, ./docked_ligands, docking_scores.csv.
type Config struct {
	// Receptor is the path to the fixed receptor structure.
	Receptor string `yaml:"receptor"`

	// LigandDir is the directory scanned for .pdbqt ligand files.
	LigandDir string `yaml:"ligand_dir"`

	// OutputDir receives one docked-pose file per ligand.
	OutputDir string `yaml:"output_dir"`

	// ScoresCSV is the aggregated results table (Ligand, Best Affinity).
	ScoresCSV string `yaml:"scores_csv"`

	// ConsoleLog collects the raw engine output for every ligand.
	ConsoleLog string `yaml:"console_log"`

	// DebugLog receives status lines, mirrored to stdout.
	DebugLog string `yaml:"debug_log"`

	// Manifest is the YAML run summary written when a batch finishes.
	Manifest string `yaml:"manifest"`

	// VinaBin is the docking engine binary, resolved via PATH.
	VinaBin string `yaml:"vina_bin"`

	// Exhaustiveness is passed through to the engine (default 8).
	Exhaustiveness int `yaml:"exhaustiveness"`

	// Grid holds pre-supplied grid-box values. Values left nil are
	// prompted for interactively at run start.
	Grid GridConfig `yaml:"grid"`
}

// GridConfig mirrors GridBox with optional fields so the run can tell
// a configured 0.0 apart from "not set, prompt for it".
type GridConfig struct {
	CenterX *float64 `yaml:"center_x"`
	CenterY *float64 `yaml:"center_y"`
	CenterZ *float64 `yaml:"center_z"`
	SizeX   *float64 `yaml:"size_x"`
	SizeY   *float64 `yaml:"size_y"`
	SizeZ   *float64 `yaml:"size_z"`
}

func (c *Config) applyDefaults() {
	if c.Receptor == "" {
		c.Receptor = "receptor.pdbqt"
	}
	if c.LigandDir == "" {
		c.LigandDir = "ligands"
	}
	if c.OutputDir == "" {
		c.OutputDir = "docked_ligands"
	}
	if c.ScoresCSV == "" {
		c.ScoresCSV = "docking_scores.csv"
	}
	if c.ConsoleLog == "" {
		c.ConsoleLog = "docking_console_output.txt"
	}
	if c.DebugLog == "" {
		c.DebugLog = "debug_log.txt"
	}
	if c.Manifest == "" {
		c.Manifest = "screening_run.yaml"
	}
	if c.VinaBin == "" {
		c.VinaBin = binVina
	}
	if c.Exhaustiveness == 0 {
		c.Exhaustiveness = 8
	}
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// ApplyEnv overlays environment variables onto the Config. Real
// environment variables win over file-supplied values; unset variables
// leave the Config untouched.
func (c *Config) ApplyEnv() {
	c.VinaBin = getEnv(VinaBinEnvVar, c.VinaBin)
	c.Receptor = getEnv(ReceptorEnvVar, c.Receptor)
	c.LigandDir = getEnv(LigandDirEnvVar, c.LigandDir)
	c.OutputDir = getEnv(OutputDirEnvVar, c.OutputDir)
	c.Exhaustiveness = getEnvInt(ExhaustivenessEnvVar, c.Exhaustiveness)
}

// LoadConfig reads a screening YAML file and returns a Config with
// defaults applied.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
