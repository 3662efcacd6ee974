// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/airdesk/internal/desk"
	"github.com/toeirei/airdesk/internal/i18n"
)

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the passenger roster to an Excel workbook",
		Long: `Writes the roster (passenger name, flight number, departure, destination)
to an .xlsx file. The path defaults to export.path from the configuration.
A path that does not end in a workbook extension gets ".xlsx" appended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("output")
			if path == "" {
				path = a.cfg.Export.Path
			}
			err := a.desk().RequestSave(cmd.Context(), desk.StaticPath(path))
			if errors.Is(err, desk.ErrNothingToSave) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default from export.path)")
	return cmd
}

func (a *app) resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove all flights and passengers",
		Long: `Deletes every flight and every passenger. Asks for confirmation on a
terminal; without a terminal --yes is required.
WARNING: this is not reversible. Consider "airdesk dump" first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			var confirmer desk.Confirmer = desk.Answer(true)
			if !yes {
				if !a.isTerminal() {
					return errors.New(i18n.T("cli.reset_refused"))
				}
				confirmer = desk.ConfirmFunc(a.promptForConfirmation)
			}
			return a.desk().RequestReset(cmd.Context(), confirmer)
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// promptForConfirmation asks question on the output and reads one line of
// input. English and German affirmatives count as yes.
func (a *app) promptForConfirmation(question string) bool {
	_, _ = fmt.Fprint(a.out, i18n.T("cli.confirm_prompt", question))
	answer, _ := bufio.NewReader(a.in).ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(answer)) {
	case "y", "yes", "j", "ja":
		return true
	}
	return false
}
