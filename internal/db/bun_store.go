// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/toeirei/airdesk/internal/model"
	"github.com/uptrace/bun"
)

// FlightModel maps the `flights` table for Bun queries.
type FlightModel struct {
	bun.BaseModel `bun:"table:flights,alias:f"`
	ID            int64  `bun:"id,pk,autoincrement"`
	FlightNumber  string `bun:"flight_number"`
	Departure     string `bun:"departure"`
	Destination   string `bun:"destination"`
}

// PassengerModel maps the `passengers` table for Bun queries.
type PassengerModel struct {
	bun.BaseModel `bun:"table:passengers,alias:p"`
	ID            int64  `bun:"id,pk,autoincrement"`
	PassengerName string `bun:"passenger_name"`
	FlightNumber  string `bun:"flight_number"`
}

// passengerRecordRow is the scan target of the roster join.
type passengerRecordRow struct {
	PassengerName string `bun:"passenger_name"`
	FlightNumber  string `bun:"flight_number"`
	Departure     string `bun:"departure"`
	Destination   string `bun:"destination"`
}

// BunStore implements Store on top of a long-lived *bun.DB.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

var _ Store = (*BunStore)(nil)

func newBunStore(sqlDB *sql.DB, dbType string) *BunStore {
	return &BunStore{bun: createBunDB(sqlDB, dbType), dbType: dbType}
}

// rawExecer is satisfied by both *bun.DB and bun.Tx.
type rawExecer interface {
	NewRaw(query string, args ...any) *bun.RawQuery
}

// execRaw runs a statement Bun's query builders refuse, such as a DELETE
// without WHERE.
func execRaw(ctx context.Context, exec rawExecer, query string, args ...any) (sql.Result, error) {
	return exec.NewRaw(query, args...).Exec(ctx)
}

func (s *BunStore) createTables(ctx context.Context) error {
	models := []any{(*FlightModel)(nil), (*PassengerModel)(nil)}
	for _, m := range models {
		if _, err := s.bun.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	dbLogf("db: tables ready for %s", s.dbType)
	return nil
}

// AddFlight inserts a flight. Nothing is validated.
func (s *BunStore) AddFlight(ctx context.Context, number, departure, destination string) (int64, error) {
	m := &FlightModel{FlightNumber: number, Departure: departure, Destination: destination}
	if _, err := s.bun.NewInsert().Model(m).Exec(ctx); err != nil {
		return 0, wrapOp("add flight", err)
	}
	dbLogf("db: added flight %d (%s)", m.ID, number)
	return m.ID, nil
}

// GetFlights returns every flight in insertion order.
func (s *BunStore) GetFlights(ctx context.Context) ([]model.Flight, error) {
	var rows []FlightModel
	if err := s.bun.NewSelect().Model(&rows).OrderExpr("f.id ASC").Scan(ctx); err != nil {
		return nil, wrapOp("get flights", err)
	}
	out := make([]model.Flight, 0, len(rows))
	for _, r := range rows {
		out = append(out, flightModelToModel(r))
	}
	return out, nil
}

// CountFlights returns the number of stored flights.
func (s *BunStore) CountFlights(ctx context.Context) (int, error) {
	n, err := s.bun.NewSelect().Model((*FlightModel)(nil)).Count(ctx)
	if err != nil {
		return 0, wrapOp("count flights", err)
	}
	return n, nil
}

// FlightExists reports whether any flight carries the given number.
func (s *BunStore) FlightExists(ctx context.Context, number string) (bool, error) {
	ok, err := s.bun.NewSelect().Model((*FlightModel)(nil)).Where("f.flight_number = ?", number).Exists(ctx)
	if err != nil {
		return false, wrapOp("flight exists", err)
	}
	return ok, nil
}

// AddPassenger inserts a passenger. The flight number is not checked.
func (s *BunStore) AddPassenger(ctx context.Context, name, flightNumber string) (int64, error) {
	m := &PassengerModel{PassengerName: name, FlightNumber: flightNumber}
	if _, err := s.bun.NewInsert().Model(m).Exec(ctx); err != nil {
		return 0, wrapOp("add passenger", err)
	}
	dbLogf("db: added passenger %d (%s on %s)", m.ID, name, flightNumber)
	return m.ID, nil
}

// GetAllPassengers returns every passenger row, matched or not.
func (s *BunStore) GetAllPassengers(ctx context.Context) ([]model.Passenger, error) {
	var rows []PassengerModel
	if err := s.bun.NewSelect().Model(&rows).OrderExpr("p.id ASC").Scan(ctx); err != nil {
		return nil, wrapOp("get all passengers", err)
	}
	return passengerModelsToModel(rows), nil
}

// GetUnmatchedPassengers returns the passengers GetPassengers leaves out.
func (s *BunStore) GetUnmatchedPassengers(ctx context.Context) ([]model.Passenger, error) {
	var rows []PassengerModel
	err := s.bun.NewSelect().
		Model(&rows).
		Where("NOT EXISTS (SELECT 1 FROM flights AS f WHERE f.flight_number = p.flight_number)").
		OrderExpr("p.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrapOp("get unmatched passengers", err)
	}
	return passengerModelsToModel(rows), nil
}

// GetPassengers returns the inner join of passengers and flights on flight
// number, in insertion order.
func (s *BunStore) GetPassengers(ctx context.Context) ([]model.PassengerRecord, error) {
	var rows []passengerRecordRow
	err := s.bun.NewSelect().
		TableExpr("passengers AS p").
		Join("JOIN flights AS f ON p.flight_number = f.flight_number").
		ColumnExpr("p.passenger_name, f.flight_number, f.departure, f.destination").
		OrderExpr("p.id ASC, f.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, wrapOp("get passengers", err)
	}
	out := make([]model.PassengerRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.PassengerRecord{
			PassengerName: r.PassengerName,
			FlightNumber:  r.FlightNumber,
			Departure:     r.Departure,
			Destination:   r.Destination,
		})
	}
	return out, nil
}

// ResetDatabase deletes all flights, then all passengers. The two deletes
// are independent statements.
func (s *BunStore) ResetDatabase(ctx context.Context) error {
	if _, err := execRaw(ctx, s.bun, "DELETE FROM flights"); err != nil {
		return wrapOp("reset flights", err)
	}
	if _, err := execRaw(ctx, s.bun, "DELETE FROM passengers"); err != nil {
		return wrapOp("reset passengers", err)
	}
	dbLogf("db: reset %s database", s.dbType)
	return nil
}

// Close releases the underlying connection pool.
func (s *BunStore) Close() error {
	if err := s.bun.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func flightModelToModel(m FlightModel) model.Flight {
	return model.Flight{
		ID:           m.ID,
		FlightNumber: m.FlightNumber,
		Departure:    m.Departure,
		Destination:  m.Destination,
	}
}

func passengerModelsToModel(rows []PassengerModel) []model.Passenger {
	out := make([]model.Passenger, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Passenger{
			ID:            r.ID,
			PassengerName: r.PassengerName,
			FlightNumber:  r.FlightNumber,
		})
	}
	return out
}
