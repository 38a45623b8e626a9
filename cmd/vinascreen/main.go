// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
