// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/airdesk/internal/archive"
	"github.com/toeirei/airdesk/internal/i18n"
)

func (a *app) dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write both tables to a compressed (zstd) YAML archive",
		Long: `Dumps every flight and passenger, matched or not, into a single
Zstandard-compressed YAML file. The file can be loaded into another
database with "airdesk load", e.g. to move from SQLite to PostgreSQL.

If --output is not given, 'airdesk-dump-YYYY-MM-DD.yaml.zst' is used.
'.zst' is appended when missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = fmt.Sprintf("airdesk-dump-%s.yaml.zst", time.Now().Format("2006-01-02"))
			} else if !strings.HasSuffix(output, ".zst") {
				output += ".zst"
			}

			snap, err := archive.Capture(cmd.Context(), a.store)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("could not create directory %s: %w", dir, err)
				}
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			if err := archive.Write(f, snap); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("could not close %s: %w", output, err)
			}
			_, _ = fmt.Fprintln(a.out, i18n.T("cli.dump_done", len(snap.Flights), len(snap.Passengers), output))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Archive file to write")
	return cmd
}

func (a *app) loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Append the rows of an archive to the database",
		Long: `Reads an archive written by "airdesk dump" and adds its flights and
passengers to the database. Existing rows are kept and new ids are
assigned. Run "airdesk reset" first for an exact copy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("could not open file: %w", err)
			}
			defer func() { _ = f.Close() }()

			snap, err := archive.Read(f)
			if err != nil {
				return err
			}
			if err := archive.Apply(cmd.Context(), a.store, snap); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(a.out, i18n.T("cli.load_done", len(snap.Flights), len(snap.Passengers), input))
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "Archive file to read")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
