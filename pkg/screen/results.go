// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Sentinel cells written to the affinity column when no score exists.
const (
	scoreMissing = "N/A"
	scoreError   = "Error"
)

var csvHeader = []string{"Ligand", "Best Affinity"}

// Result is one row of the result table: a ligand and its best affinity,
// or a sentinel when the score could not be obtained.
type Result struct {
	// Ligand is the ligand file name without its extension.
	Ligand string

	// Affinity is the best-mode score; meaningful only when HasScore is set.
	Affinity float64

	// HasScore is true when the engine output yielded a parseable score.
	HasScore bool

	// Failed is true when the engine ran but exited non-zero.
	Failed bool
}

// affinityCell renders the second CSV column for this result.
func (r Result) affinityCell() string {
	switch {
	case r.Failed:
		return scoreError
	case !r.HasScore:
		return scoreMissing
	default:
		return strconv.FormatFloat(r.Affinity, 'g', -1, 64)
	}
}

// ScoreTable accumulates results in memory and mirrors each row to a CSV
// file as it arrives, so a partial table survives an aborted run. There is
// exactly one writer per run; no locking is needed.
type ScoreTable struct {
	f    *os.File
	w    *csv.Writer
	rows []Result
}

// NewScoreTable creates (or truncates) the CSV file and writes the header.
func NewScoreTable(path string) (*ScoreTable, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating score table: %w", err)
	}
	t := &ScoreTable{f: f, w: csv.NewWriter(f)}
	if err := t.w.Write(csvHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing score table header: %w", err)
	}
	if err := t.flush(); err != nil {
		f.Close()
		return nil, err
	}
	return t, nil
}

// Append records one result and flushes it to disk immediately.
func (t *ScoreTable) Append(r Result) error {
	t.rows = append(t.rows, r)
	if err := t.w.Write([]string{r.Ligand, r.affinityCell()}); err != nil {
		return fmt.Errorf("writing score row for %s: %w", r.Ligand, err)
	}
	return t.flush()
}

// Rows returns the accumulated results in processing order.
func (t *ScoreTable) Rows() []Result {
	return t.rows
}

// Close flushes and closes the underlying CSV file.
func (t *ScoreTable) Close() error {
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		t.f.Close()
		return err
	}
	return t.f.Close()
}

func (t *ScoreTable) flush() error {
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		return fmt.Errorf("flushing score table: %w", err)
	}
	// Every row is synced so a killed run leaves a complete partial
	// table behind.
	if err := t.f.Sync(); err != nil {
		return fmt.Errorf("syncing score table: %w", err)
	}
	return nil
}

// ConsoleLog collects the raw engine console output for every ligand in a
// single text file. The file is truncated when the log is created and
// opened in append mode per write, mirroring the single-writer run model.
type ConsoleLog struct {
	path string
}

// NewConsoleLog truncates (or creates) the console output file.
func NewConsoleLog(path string) (*ConsoleLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating console log: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("creating console log: %w", err)
	}
	return &ConsoleLog{path: path}, nil
}

// WriteResult appends the engine output block for one ligand.
func (l *ConsoleLog) WriteResult(ligand, output string) error {
	return l.append(fmt.Sprintf("Docking results for %s:\n%s\n\n", ligand, output))
}

// WriteError appends an error block for a ligand whose docking failed.
func (l *ConsoleLog) WriteError(ligand string, err error) error {
	return l.append(fmt.Sprintf("Error docking %s: %v\n\n", ligand, err))
}

func (l *ConsoleLog) append(block string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening console log: %w", err)
	}
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return fmt.Errorf("appending console log: %w", err)
	}
	return f.Close()
}
