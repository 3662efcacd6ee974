// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/airdesk/internal/desk"
	"github.com/toeirei/airdesk/internal/i18n"
	"github.com/toeirei/airdesk/internal/model"
)

// passengerCmd groups the passenger operations.
func (a *app) passengerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passenger",
		Short: "Add passengers and show the roster",
	}

	add := &cobra.Command{
		Use:   "add <name> <flight-number>",
		Short: "Add a passenger to a flight",
		Long: `Add a passenger booked on the given flight number. The flight does not
have to exist yet; until it does the passenger is left out of the roster.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.desk().SubmitPassenger(cmd.Context(), desk.PassengerForm{
				PassengerName: args[0],
				FlightNumber:  args[1],
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the passenger roster",
		Long: `Show every passenger joined with their flight, in the order the
passengers were added. With --all, list the stored passenger rows instead,
including those whose flight is unknown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				ps, err := a.store.GetAllPassengers(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list passengers: %w", err)
				}
				return a.printPassengers(ps, i18n.T("cli.no_passengers"))
			}

			records, err := a.desk().RefreshView(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(a.out, i18n.T("cli.no_passengers"))
				return nil
			}
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, strings.ToUpper(strings.Join(model.RosterHeader, "\t")))
			for _, r := range records {
				_, _ = fmt.Fprintln(w, strings.Join(r.Row(), "\t"))
			}
			return w.Flush()
		},
	}
	list.Flags().Bool("all", false, "List stored passenger rows, matched or not")

	orphans := &cobra.Command{
		Use:   "orphans",
		Short: "List passengers whose flight number matches no flight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.desk().Unmatched(cmd.Context())
			if err != nil {
				return err
			}
			return a.printPassengers(ps, i18n.T("cli.no_orphans"))
		},
	}

	cmd.AddCommand(add, list, orphans)
	return cmd
}

func (a *app) printPassengers(ps []model.Passenger, empty string) error {
	if len(ps) == 0 {
		_, _ = fmt.Fprintln(a.out, empty)
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tPASSENGER NAME\tFLIGHT NUMBER")
	for _, p := range ps {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.PassengerName, p.FlightNumber)
	}
	return w.Flush()
}
