// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// RunManifest is the YAML summary written when a batch finishes. It
// captures the inputs and counts needed to account for a run after the
// fact without re-reading the logs.
type RunManifest struct {
	RunID      string    `yaml:"run_id"`
	Receptor   string    `yaml:"receptor"`
	LigandDir  string    `yaml:"ligand_dir"`
	Grid       GridBox   `yaml:"grid"`
	Ligands    int       `yaml:"ligands"`
	Scored     int       `yaml:"scored"`
	Unscored   int       `yaml:"unscored"`
	Failed     int       `yaml:"failed"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
}

// writeManifest summarizes the finished run into the manifest file.
func (s *Screener) writeManifest(box GridBox, rows []Result, started time.Time) error {
	m := RunManifest{
		RunID:      runID(s.logger.Data),
		Receptor:   s.cfg.Receptor,
		LigandDir:  s.cfg.LigandDir,
		Grid:       box,
		Ligands:    len(rows),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	for _, r := range rows {
		switch {
		case r.Failed:
			m.Failed++
		case r.HasScore:
			m.Scored++
		default:
			m.Unscored++
		}
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling run manifest: %w", err)
	}
	if err := os.WriteFile(s.cfg.Manifest, data, 0o644); err != nil {
		return fmt.Errorf("writing run manifest: %w", err)
	}
	return nil
}

// runID extracts the run field set by NewRunLogger.
func runID(fields logrus.Fields) string {
	if id, ok := fields["run"].(string); ok {
		return id
	}
	return ""
}
