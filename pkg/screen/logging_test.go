// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRunLogger_AppendsToDebugLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug_log.txt")
	if err := os.WriteFile(path, []byte("previous run line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger, closeLog, err := NewRunLogger(path)
	if err != nil {
		t.Fatalf("NewRunLogger: %v", err)
	}
	logger.Info("Processing ligand")
	if err := closeLog(); err != nil {
		t.Fatalf("closing debug log: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "previous run line") {
		t.Error("debug log was truncated instead of appended to")
	}
	if !strings.Contains(text, "Processing ligand") {
		t.Error("debug log missing new status line")
	}
	if !strings.Contains(text, "run=") {
		t.Error("debug log line missing run ID field")
	}
}

func TestNewRunLogger_DistinctRunIDs(t *testing.T) {
	dir := t.TempDir()

	a, closeA, err := NewRunLogger(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatalf("NewRunLogger: %v", err)
	}
	defer closeA()
	b, closeB, err := NewRunLogger(filepath.Join(dir, "b.txt"))
	if err != nil {
		t.Fatalf("NewRunLogger: %v", err)
	}
	defer closeB()

	idA, _ := a.Data["run"].(string)
	idB, _ := b.Data["run"].(string)
	if idA == "" || idA == idB {
		t.Errorf("run IDs not distinct: %q vs %q", idA, idB)
	}
}
