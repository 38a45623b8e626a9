// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// binVina is the default docking engine binary, resolved via PATH.
const binVina = "vina"

// DockJob describes one docking invocation: a fixed receptor, one ligand,
// the pose output path, and the search parameters.
type DockJob struct {
	Receptor       string
	Ligand         string
	Out            string
	Box            GridBox
	Exhaustiveness int
}

// Args builds the engine's argument vector. It is a pure function of the
// job, so identical inputs always produce the identical invocation.
func (j DockJob) Args() []string {
	return []string{
		"--receptor", j.Receptor,
		"--ligand", j.Ligand,
		"--out", j.Out,
		"--center_x", formatCoordinate(j.Box.CenterX),
		"--center_y", formatCoordinate(j.Box.CenterY),
		"--center_z", formatCoordinate(j.Box.CenterZ),
		"--size_x", formatCoordinate(j.Box.SizeX),
		"--size_y", formatCoordinate(j.Box.SizeY),
		"--size_z", formatCoordinate(j.Box.SizeZ),
		"--exhaustiveness", strconv.Itoa(j.Exhaustiveness),
	}
}

// Engine runs one docking job and returns the engine's combined
// stdout/stderr text. The batch runner depends only on this interface so
// the console-scraping integration stays swappable.
type Engine interface {
	Dock(job DockJob) (string, error)
}

// EngineError reports an engine process that started but exited non-zero.
// The batch runner records such ligands and moves on; any other Dock error
// (e.g. the binary is missing from PATH) halts the whole run.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("docking engine: %v", e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// engineExited reports whether err is a per-ligand engine failure.
func engineExited(err error) bool {
	var engineErr *EngineError
	return errors.As(err, &engineErr)
}

// VinaEngine shells out to an AutoDock Vina binary. Execution is
// synchronous with no timeout; a hung engine blocks the batch.
type VinaEngine struct {
	// Bin is the engine binary name or path.
	Bin string
}

// NewVinaEngine returns a VinaEngine for the given binary, defaulting to
// "vina" on PATH when bin is empty.
func NewVinaEngine(bin string) *VinaEngine {
	if bin == "" {
		bin = binVina
	}
	return &VinaEngine{Bin: bin}
}

// Dock runs the engine for one job and captures its combined output. The
// output text is returned even when the engine fails, so the raw console
// log stays complete.
func (e *VinaEngine) Dock(job DockJob) (string, error) {
	cmd := exec.Command(e.Bin, job.Args()...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), &EngineError{Err: err}
		}
		return string(out), fmt.Errorf("launching %s: %w", e.Bin, err)
	}
	return string(out), nil
}
