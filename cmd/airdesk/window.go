// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/toeirei/airdesk/internal/export"
	"github.com/toeirei/airdesk/internal/logging"
	"github.com/toeirei/airdesk/internal/tui"
)

// debugLogName is written to the temp dir while the window runs with debug
// logging on. The window owns the terminal, so logs never go to stderr.
const debugLogName = "airdesk-debug.log"

func (a *app) runWindow(cmd *cobra.Command, args []string) error {
	var sink io.Writer = io.Discard
	if a.cfg.Debug {
		f, err := os.OpenFile(filepath.Join(os.TempDir(), debugLogName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			defer func() { _ = f.Close() }()
			sink = f
		}
	}
	logging.SetOutput(sink)
	defer logging.SetOutput(os.Stderr)

	return tui.Run(cmd.Context(), a.store, export.NewExcel(a.cfg.Export.Sheet), tui.Options{
		ExportPath: a.cfg.Export.Path,
	})
}
