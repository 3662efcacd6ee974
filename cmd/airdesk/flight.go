// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/airdesk/internal/desk"
	"github.com/toeirei/airdesk/internal/i18n"
)

// flightCmd groups the flight operations.
func (a *app) flightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flight",
		Short: "Add and list flights",
	}

	add := &cobra.Command{
		Use:   "add <number> <departure> <destination>",
		Short: "Add a flight",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.desk().SubmitFlight(cmd.Context(), desk.FlightForm{
				FlightNumber: args[0],
				Departure:    args[1],
				Destination:  args[2],
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all flights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flights, err := a.store.GetFlights(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list flights: %w", err)
			}
			if len(flights) == 0 {
				_, _ = fmt.Fprintln(a.out, i18n.T("cli.no_flights"))
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tFLIGHT NUMBER\tDEPARTURE\tDESTINATION")
			for _, f := range flights {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", f.ID, f.FlightNumber, f.Departure, f.Destination)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
