// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// Package archive dumps and loads the raw flights and passengers tables as
// zstd-compressed YAML. Ids are not kept; loading appends rows through the
// normal insert operations.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/airdesk/internal/model"
	"github.com/toeirei/airdesk/util/slicest"
	"gopkg.in/yaml.v3"
)

// FormatVersion is written into every snapshot.
const FormatVersion = 1

// ErrUnknownVersion is returned by Read for a snapshot written by a newer
// format.
var ErrUnknownVersion = errors.New("archive: unknown snapshot version")

// FlightEntry is the archived form of a flight.
type FlightEntry struct {
	FlightNumber string `yaml:"flight_number"`
	Departure    string `yaml:"departure"`
	Destination  string `yaml:"destination"`
}

// PassengerEntry is the archived form of a passenger.
type PassengerEntry struct {
	PassengerName string `yaml:"passenger_name"`
	FlightNumber  string `yaml:"flight_number"`
}

// Snapshot is the full content of both tables.
type Snapshot struct {
	Version    int              `yaml:"version"`
	Flights    []FlightEntry    `yaml:"flights"`
	Passengers []PassengerEntry `yaml:"passengers"`
}

// Source is the part of the store a dump reads from.
type Source interface {
	GetFlights(ctx context.Context) ([]model.Flight, error)
	GetAllPassengers(ctx context.Context) ([]model.Passenger, error)
}

// Sink is the part of the store a load writes to.
type Sink interface {
	AddFlight(ctx context.Context, number, departure, destination string) (int64, error)
	AddPassenger(ctx context.Context, name, flightNumber string) (int64, error)
}

// Capture reads both tables from src.
func Capture(ctx context.Context, src Source) (Snapshot, error) {
	flights, err := src.GetFlights(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("archive: read flights: %w", err)
	}
	passengers, err := src.GetAllPassengers(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("archive: read passengers: %w", err)
	}

	return Snapshot{
		Version: FormatVersion,
		Flights: slicest.Map(flights, func(f model.Flight) FlightEntry {
			return FlightEntry{FlightNumber: f.FlightNumber, Departure: f.Departure, Destination: f.Destination}
		}),
		Passengers: slicest.Map(passengers, func(p model.Passenger) PassengerEntry {
			return PassengerEntry{PassengerName: p.PassengerName, FlightNumber: p.FlightNumber}
		}),
	}, nil
}

// Apply inserts every flight, then every passenger, one statement each.
// A failure stops the load; rows inserted before it stay.
func Apply(ctx context.Context, dst Sink, snap Snapshot) error {
	err := slicest.EachX(snap.Flights, func(f FlightEntry) error {
		if _, err := dst.AddFlight(ctx, f.FlightNumber, f.Departure, f.Destination); err != nil {
			return fmt.Errorf("archive: load flight %s: %w", f.FlightNumber, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return slicest.EachX(snap.Passengers, func(p PassengerEntry) error {
		if _, err := dst.AddPassenger(ctx, p.PassengerName, p.FlightNumber); err != nil {
			return fmt.Errorf("archive: load passenger %s: %w", p.PassengerName, err)
		}
		return nil
	})
}

// Write encodes snap as YAML and compresses it to w.
func Write(w io.Writer, snap Snapshot) error {
	if snap.Version == 0 {
		snap.Version = FormatVersion
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("archive: create compressor: %w", err)
	}
	enc := yaml.NewEncoder(zw)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		_ = zw.Close()
		return fmt.Errorf("archive: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = zw.Close()
		return fmt.Errorf("archive: encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive: flush: %w", err)
	}
	return nil
}

// Read decompresses and decodes a snapshot written by Write.
func Read(r io.Reader) (Snapshot, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("archive: open: %w", err)
	}
	defer zr.Close()

	var snap Snapshot
	if err := yaml.NewDecoder(zr).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("archive: decode: %w", err)
	}
	if snap.Version > FormatVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnknownVersion, snap.Version)
	}
	return snap, nil
}
