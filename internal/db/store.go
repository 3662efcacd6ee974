// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/toeirei/airdesk/internal/model"
)

// Store defines every database operation airdesk performs.
type Store interface {
	// Flight methods
	AddFlight(ctx context.Context, number, departure, destination string) (int64, error)
	GetFlights(ctx context.Context) ([]model.Flight, error)
	CountFlights(ctx context.Context) (int, error)
	FlightExists(ctx context.Context, number string) (bool, error)

	// Passenger methods
	AddPassenger(ctx context.Context, name, flightNumber string) (int64, error)
	GetAllPassengers(ctx context.Context) ([]model.Passenger, error)
	GetUnmatchedPassengers(ctx context.Context) ([]model.Passenger, error)

	// GetPassengers returns passengers joined with their flight. Passengers
	// whose flight number matches no flight are not returned.
	GetPassengers(ctx context.Context) ([]model.PassengerRecord, error)

	// ResetDatabase deletes every flight and passenger.
	ResetDatabase(ctx context.Context) error

	// Maintain runs engine-specific housekeeping (VACUUM and friends).
	Maintain(ctx context.Context) error

	Close() error
}
