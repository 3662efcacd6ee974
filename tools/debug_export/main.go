// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// debug_export seeds an in-memory database with sample flights and
// passengers, prints the resulting roster and the unmatched passengers, and
// writes the roster to the workbook named by the first argument, if any.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/toeirei/airdesk/internal/db"
	"github.com/toeirei/airdesk/internal/export"
	"github.com/toeirei/airdesk/internal/i18n"
)

var sampleFlights = [][3]string{
	{"AA100", "NYC", "LAX"},
	{"BA200", "LHR", "JFK"},
	{"LH300", "FRA", "MUC"},
}

var samplePassengers = [][2]string{
	{"John Doe", "AA100"},
	{"Jane Roe", "BA200"},
	{"Max Mustermann", "LH300"},
	{"Erika Musterfrau", "LH300"},
	{"Ghost Rider", "ZZ999"},
}

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := run(context.Background(), os.Stdout, path); err != nil {
		fmt.Fprintf(os.Stderr, "debug_export: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, path string) error {
	i18n.Init("en")
	store, err := db.New(ctx, "sqlite", "file:debug_export?mode=memory&cache=shared")
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for _, f := range sampleFlights {
		if _, err := store.AddFlight(ctx, f[0], f[1], f[2]); err != nil {
			return err
		}
	}
	for _, p := range samplePassengers {
		if _, err := store.AddPassenger(ctx, p[0], p[1]); err != nil {
			return err
		}
	}

	records, err := store.GetPassengers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "roster rows: %d\n", len(records))
	for _, r := range records {
		fmt.Fprintf(out, "roster: %+v\n", r)
	}

	orphans, err := store.GetUnmatchedPassengers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "unmatched passengers: %d\n", len(orphans))
	for _, p := range orphans {
		fmt.Fprintf(out, "unmatched: %s\n", p)
	}

	if path == "" {
		return nil
	}
	if err := export.NewExcel("").SaveToExcel(records, path); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", export.WithExtension(path))
	return nil
}
