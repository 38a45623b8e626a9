// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const ligandExt = ".pdbqt"

// Screener runs one screening batch: every ligand in the configured
// directory is docked against the fixed receptor, scored, and recorded.
// The whole run is a single forward pass with exactly one writer per
// output file.
type Screener struct {
	cfg    Config
	engine Engine
	logger *logrus.Entry
}

// New returns a Screener over the given engine. The logger is the
// run-scoped entry from NewRunLogger.
func New(cfg Config, engine Engine, logger *logrus.Entry) *Screener {
	return &Screener{cfg: cfg, engine: engine, logger: logger}
}

// Run executes the batch for the given grid box and returns the ordered
// result table. The table is also written incrementally to the scores
// CSV, so partial results survive an aborted run. Per-ligand engine
// failures are recorded and skipped; any other error halts the run.
func (s *Screener) Run(box GridBox) ([]Result, error) {
	started := time.Now()

	if _, err := os.Stat(s.cfg.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
		s.logger.Infof("Created output directory: %s", s.cfg.OutputDir)
	}

	console, err := NewConsoleLog(s.cfg.ConsoleLog)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Grid box settings: %s", box)

	table, err := NewScoreTable(s.cfg.ScoresCSV)
	if err != nil {
		return nil, err
	}
	defer table.Close()
	s.logger.Info("CSV file opened and header written")

	ligands, err := listLigands(s.cfg.LigandDir)
	if err != nil {
		s.logger.WithError(err).Errorf("Docking directory does not exist: %s", s.cfg.LigandDir)
		return nil, err
	}

	for _, ligand := range ligands {
		result, err := s.dockOne(ligand, box, console)
		if err != nil {
			return table.Rows(), err
		}
		if err := table.Append(result); err != nil {
			return table.Rows(), err
		}
	}

	s.logger.Infof("Processed %d ligands", len(ligands))

	if err := s.writeManifest(box, table.Rows(), started); err != nil {
		s.logger.WithError(err).Warn("could not write run manifest")
	}

	s.logger.Infof("Screening completed. Check %s for results.", s.cfg.ScoresCSV)
	return table.Rows(), nil
}

// dockOne docks a single ligand file and builds its result row. A nil
// error with Failed set means the engine exited non-zero and the batch
// should continue; a non-nil error halts the run.
func (s *Screener) dockOne(ligand string, box GridBox, console *ConsoleLog) (Result, error) {
	name := ligandName(ligand)
	logger := s.logger.WithField("ligand", name)
	logger.Info("Processing ligand")

	job := DockJob{
		Receptor:       s.cfg.Receptor,
		Ligand:         filepath.Join(s.cfg.LigandDir, ligand),
		Out:            filepath.Join(s.cfg.OutputDir, name+"_docked"+ligandExt),
		Box:            box,
		Exhaustiveness: s.cfg.Exhaustiveness,
	}

	output, err := s.engine.Dock(job)
	if err != nil {
		if !engineExited(err) {
			return Result{}, fmt.Errorf("docking %s: %w", name, err)
		}
		logger.WithError(err).Error("Error occurred while docking")
		if logErr := console.WriteError(name, err); logErr != nil {
			return Result{}, logErr
		}
		return Result{Ligand: name, Failed: true}, nil
	}

	if err := console.WriteResult(name, output); err != nil {
		return Result{}, err
	}

	affinity, ok := ExtractBestAffinity(output)
	if !ok {
		logger.Warn("Could not find best affinity score")
		return Result{Ligand: name}, nil
	}

	logger.WithField("affinity", affinity).Info("Docking finished")
	return Result{Ligand: name, Affinity: affinity, HasScore: true}, nil
}

// listLigands returns the ligand file names to process, in directory
// listing order. Only .pdbqt files count, and already-docked poses
// (names containing "_docked") are skipped.
func listLigands(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ligand directory: %w", err)
	}
	var ligands []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ligandExt) || strings.Contains(name, "_docked") {
			continue
		}
		ligands = append(ligands, name)
	}
	return ligands, nil
}

// ligandName strips the directory and extension from a ligand file name.
func ligandName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}
