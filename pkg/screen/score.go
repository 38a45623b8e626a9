// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"regexp"
	"strconv"
)

// bestModeRe matches the top-ranked row of the engine's result table,
// a line of the form "<mode> <affinity> <rmsd-lower> <rmsd-upper>".
// The engine sorts the table by rank, so mode 1 is the best pose.
var bestModeRe = regexp.MustCompile(`(?m)^\s*1\s+([-0-9.]+)`)

// ExtractBestAffinity scans captured engine output for the best-mode
// affinity (kcal/mol; lower is better). The second return is false when
// the output contains no parseable best-mode line, in which case the
// ligand is recorded with the N/A sentinel rather than a score.
func ExtractBestAffinity(output string) (float64, bool) {
	m := bestModeRe.FindStringSubmatch(output)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
