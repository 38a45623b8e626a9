// Copyright (c) 2026 VinaScreen Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package screen

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewRunLogger builds the run-scoped logger: every line carries a fresh
// run ID and is written both to stdout and appended to the debug log
// file. The returned func closes the log file.
func NewRunLogger(debugPath string) (*logrus.Entry, func() error, error) {
	f, err := os.OpenFile(debugPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.MultiWriter(os.Stdout, f))
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return logger.WithField("run", uuid.NewString()), f.Close, nil
}
