// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/airdesk/internal/config"
	"github.com/toeirei/airdesk/internal/i18n"
)

func (a *app) maintenanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maintenance",
		Short: "Run database maintenance (VACUUM/OPTIMIZE) for the configured DB",
		Long:  `Runs engine-specific maintenance tasks (VACUUM, OPTIMIZE TABLE, PRAGMA optimize).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Maintain(cmd.Context()); err != nil {
				return fmt.Errorf("maintenance failed: %w", err)
			}
			_, _ = fmt.Fprintln(a.out, i18n.T("cli.maintenance_done"))
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Writes the current settings (defaults merged with any existing file,
environment variables and flags) to airdesk.yaml in the user config
directory, or with --system to the system-wide location.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			system, _ := cmd.Flags().GetBool("system")
			path, err := config.WriteConfigFile(&a.cfg, system)
			if err != nil {
				return fmt.Errorf("could not write config file: %w", err)
			}
			_, _ = fmt.Fprintln(a.out, i18n.T("cli.config_written", path))
			return nil
		},
	}
	initCmd.Flags().Bool("system", false, "Write the system-wide config file")
	cmd.AddCommand(initCmd)
	return cmd
}
