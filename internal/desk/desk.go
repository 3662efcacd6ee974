// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// Package desk is the toolkit-free presenter behind every airdesk front end.
// It validates form input, writes the user-visible log lines and drives the
// store and the exporter. Front ends (the window and the CLI) only collect
// input and render results.
package desk

import (
	"context"
	"errors"
	"fmt"

	"github.com/toeirei/airdesk/internal/export"
	"github.com/toeirei/airdesk/internal/i18n"
	"github.com/toeirei/airdesk/internal/logging"
	"github.com/toeirei/airdesk/internal/model"
)

var (
	// ErrMissingFields is returned when a required form field is empty.
	// Nothing was inserted.
	ErrMissingFields = errors.New("required field is empty")
	// ErrNothingToSave is returned by RequestSave when the roster is empty.
	ErrNothingToSave = errors.New("no passenger info to save")
	// ErrExport marks a failure to write the export file. The store is
	// untouched when it occurs.
	ErrExport = errors.New("export failed")
)

// Store is the storage the desk needs.
type Store interface {
	AddFlight(ctx context.Context, number, departure, destination string) (int64, error)
	AddPassenger(ctx context.Context, name, flightNumber string) (int64, error)
	FlightExists(ctx context.Context, number string) (bool, error)
	GetPassengers(ctx context.Context) ([]model.PassengerRecord, error)
	GetUnmatchedPassengers(ctx context.Context) ([]model.Passenger, error)
	ResetDatabase(ctx context.Context) error
}

// FlightForm is the content of the flight inputs.
type FlightForm struct {
	FlightNumber string
	Departure    string
	Destination  string
}

// Complete reports whether every field is non-empty.
func (f FlightForm) Complete() bool {
	return f.FlightNumber != "" && f.Departure != "" && f.Destination != ""
}

// PassengerForm is the content of the passenger inputs.
type PassengerForm struct {
	PassengerName string
	FlightNumber  string
}

// Complete reports whether every field is non-empty.
func (f PassengerForm) Complete() bool {
	return f.PassengerName != "" && f.FlightNumber != ""
}

// Desk implements the five user operations on top of a Store.
type Desk struct {
	store    Store
	exporter export.Exporter
	journal  Journal
}

// New returns a Desk. A nil journal discards log lines.
func New(store Store, exporter export.Exporter, journal Journal) *Desk {
	if journal == nil {
		journal = discardJournal{}
	}
	return &Desk{store: store, exporter: exporter, journal: journal}
}

func (d *Desk) logf(id string, args ...any) {
	line := i18n.T(id, args...)
	d.journal.Append(line)
	logging.Debugf("desk: %s", line)
}

// SubmitFlight stores a flight when all three fields are filled in.
func (d *Desk) SubmitFlight(ctx context.Context, f FlightForm) error {
	if !f.Complete() {
		d.logf("log.flight_invalid")
		return ErrMissingFields
	}
	if _, err := d.store.AddFlight(ctx, f.FlightNumber, f.Departure, f.Destination); err != nil {
		return fmt.Errorf("add flight: %w", err)
	}
	d.logf("log.flight_added", f.FlightNumber, f.Departure, f.Destination)
	return nil
}

// SubmitPassenger stores a passenger when both fields are filled in. The
// flight number is not required to exist; when it does not, a second line
// warns that the passenger will be missing from the roster.
func (d *Desk) SubmitPassenger(ctx context.Context, p PassengerForm) error {
	if !p.Complete() {
		d.logf("log.passenger_invalid")
		return ErrMissingFields
	}
	if _, err := d.store.AddPassenger(ctx, p.PassengerName, p.FlightNumber); err != nil {
		return fmt.Errorf("add passenger: %w", err)
	}
	d.logf("log.passenger_added", p.PassengerName, p.FlightNumber)

	ok, err := d.store.FlightExists(ctx, p.FlightNumber)
	if err != nil {
		return fmt.Errorf("check flight %s: %w", p.FlightNumber, err)
	}
	if !ok {
		d.logf("log.passenger_unmatched", p.FlightNumber, p.PassengerName)
	}
	return nil
}

// RefreshView returns the current roster.
func (d *Desk) RefreshView(ctx context.Context) ([]model.PassengerRecord, error) {
	records, err := d.store.GetPassengers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	return records, nil
}

// Unmatched returns the passengers the roster leaves out because their
// flight number matches no flight.
func (d *Desk) Unmatched(ctx context.Context) ([]model.Passenger, error) {
	ps, err := d.store.GetUnmatchedPassengers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load unmatched passengers: %w", err)
	}
	return ps, nil
}

// RequestSave exports the roster to a path supplied by chooser. An empty
// roster is reported without consulting the chooser. A cancelled choice
// does nothing and logs nothing.
func (d *Desk) RequestSave(ctx context.Context, chooser PathChooser) error {
	records, err := d.RefreshView(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		d.logf("log.nothing_to_save")
		return ErrNothingToSave
	}
	if chooser == nil {
		return nil
	}
	path, ok := chooser.ChooseSavePath()
	if !ok || path == "" {
		return nil
	}
	if err := d.exporter.SaveToExcel(records, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	d.logf("log.saved")
	return nil
}

// RequestReset deletes every flight and passenger once confirmer agrees.
func (d *Desk) RequestReset(ctx context.Context, confirmer Confirmer) error {
	if confirmer == nil || !confirmer.Confirm(i18n.T("confirm.question")) {
		d.logf("log.removal_canceled")
		return nil
	}
	if err := d.store.ResetDatabase(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	d.logf("log.removed")
	return nil
}
