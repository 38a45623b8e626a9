// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GridBox is the 3D search region the docking engine explores: a center
// point and an extent along each axis, in angstroms. Collected once per
// run and passed verbatim into every docking invocation.
type GridBox struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	CenterZ float64 `yaml:"center_z"`
	SizeX   float64 `yaml:"size_x"`
	SizeY   float64 `yaml:"size_y"`
	SizeZ   float64 `yaml:"size_z"`
}

// String renders the box the way it appears in the debug log.
func (g GridBox) String() string {
	return fmt.Sprintf("center_x=%s, center_y=%s, center_z=%s, size_x=%s, size_y=%s, size_z=%s",
		formatCoordinate(g.CenterX), formatCoordinate(g.CenterY), formatCoordinate(g.CenterZ),
		formatCoordinate(g.SizeX), formatCoordinate(g.SizeY), formatCoordinate(g.SizeZ))
}

// formatCoordinate renders a grid value for command-line args and logs.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseCoordinate converts one line of user input into a grid value.
// Blank input silently defaults to 0.0.
func parseCoordinate(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0.0, nil
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input %q: please enter a numeric value", input)
	}
	return v, nil
}

// ResolveGridBox produces the grid box for a run. Values already present
// in cfg (from the config file, flags, or env) are taken as-is; the
// remaining fields are prompted for on w and read from r, in the fixed
// center-then-size order. A non-numeric answer or exhausted input is an
// error that halts the run.
func ResolveGridBox(cfg GridConfig, r io.Reader, w io.Writer) (GridBox, error) {
	var box GridBox
	fields := []struct {
		label string
		cfg   *float64
		dst   *float64
	}{
		{"center_x", cfg.CenterX, &box.CenterX},
		{"center_y", cfg.CenterY, &box.CenterY},
		{"center_z", cfg.CenterZ, &box.CenterZ},
		{"size_x", cfg.SizeX, &box.SizeX},
		{"size_y", cfg.SizeY, &box.SizeY},
		{"size_z", cfg.SizeZ, &box.SizeZ},
	}

	scanner := bufio.NewScanner(r)
	prompted := false
	for _, f := range fields {
		if f.cfg != nil {
			*f.dst = *f.cfg
			continue
		}
		if !prompted {
			fmt.Fprintln(w, "Please enter the grid box coordinates and sizes for AutoDock Vina.")
			prompted = true
		}
		fmt.Fprintf(w, "Enter %s: ", f.label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return GridBox{}, fmt.Errorf("reading %s: %w", f.label, err)
			}
			return GridBox{}, fmt.Errorf("reading %s: unexpected end of input", f.label)
		}
		v, err := parseCoordinate(scanner.Text())
		if err != nil {
			return GridBox{}, fmt.Errorf("reading %s: %w", f.label, err)
		}
		*f.dst = v
	}
	return box, nil
}
