// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"fmt"
	"io"
)

const asciiArt = `
____   ____ __                  _________
\   \ /   /|__| ____ _____     /   _____/ ___________   ____   ____   ____
 \   Y   / |  |/    \\__  \    \_____  \_/ ___\_  __ \_/ __ \_/ __ \ /    \
  \     /  |  |   |  \/ __ \_  /        \  \___|  | \/\  ___/\  ___/|   |  \
   \___/   |__|___|  (____  / /_______  /\___  >__|    \___  >\___  >___|  /
                   \/     \/          \/     \/            \/     \/     \/
`

const bannerDescription = `VinaScreen automates the docking of multiple ligands using AutoDock Vina.
It processes ligand files in the specified directory, runs docking
simulations, extracts the best binding affinity scores, and writes the
results to a CSV file. Debug logs and console outputs are saved for
reference. Grid box coordinates and sizes are prompted at startup, making
the run adaptable to different proteins without script changes.

Thank you for using VinaScreen.
`

// PrintBanner writes the startup banner and program description.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, asciiArt, "\n")
	fmt.Fprint(w, bannerDescription, "\n")
}
