// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/toeirei/airdesk/internal/model"
)

func TestNew_CreatesTables(t *testing.T) {
	s := newTestStore(t)

	wantColumns := map[string][]string{
		"flights":    {"id", "flight_number", "departure", "destination"},
		"passengers": {"id", "passenger_name", "flight_number"},
	}
	for table, want := range wantColumns {
		rows, err := s.bun.DB.Query("PRAGMA table_info(" + table + ")")
		if err != nil {
			t.Fatalf("table_info(%s): %v", table, err)
		}
		var got []string
		for rows.Next() {
			var cid, notnull, pk int
			var name, typ string
			var dflt sql.NullString
			if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &pk); err != nil {
				_ = rows.Close()
				t.Fatalf("failed scanning pragma row: %v", err)
			}
			got = append(got, name)
		}
		_ = rows.Close()
		if len(got) != len(want) {
			t.Fatalf("%s columns: got %v want %v", table, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s column %d: got %q want %q", table, i, got[i], want[i])
			}
		}
	}
}

func TestNew_UnsupportedType(t *testing.T) {
	_, err := New(context.Background(), "oracle", "whatever")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestNew_OpenFailurePropagates(t *testing.T) {
	orig := sqlOpenFunc
	sqlOpenFunc = func(driverName, dsn string) (*sql.DB, error) { return nil, errors.New("disk gone") }
	defer func() { sqlOpenFunc = orig }()

	if _, err := New(context.Background(), "sqlite", "ignored.db"); err == nil {
		t.Fatalf("expected open failure to propagate")
	}
}

func TestAddFlight_IncreasesCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.CountFlights(ctx)
	if err != nil {
		t.Fatalf("CountFlights: %v", err)
	}
	id := mustAddFlight(t, s, "AA100", "NYC", "LAX")
	if id <= 0 {
		t.Fatalf("expected an assigned id, got %d", id)
	}
	after, err := s.CountFlights(ctx)
	if err != nil {
		t.Fatalf("CountFlights: %v", err)
	}
	if after != before+1 {
		t.Fatalf("expected count %d, got %d", before+1, after)
	}

	flights, err := s.GetFlights(ctx)
	if err != nil {
		t.Fatalf("GetFlights: %v", err)
	}
	want := model.Flight{ID: id, FlightNumber: "AA100", Departure: "NYC", Destination: "LAX"}
	if len(flights) != 1 || flights[0] != want {
		t.Fatalf("unexpected flights: %+v", flights)
	}
}

func TestAddFlight_DuplicateNumbersAllowed(t *testing.T) {
	s := newTestStore(t)
	mustAddFlight(t, s, "AA100", "NYC", "LAX")
	mustAddFlight(t, s, "AA100", "NYC", "LAX")

	n, err := s.CountFlights(context.Background())
	if err != nil {
		t.Fatalf("CountFlights: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 flights, got %d", n)
	}
}

func TestGetPassengers_Example(t *testing.T) {
	s := newTestStore(t)
	mustAddFlight(t, s, "AA100", "NYC", "LAX")
	mustAddPassenger(t, s, "John Doe", "AA100")

	got, err := s.GetPassengers(context.Background())
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	want := []model.PassengerRecord{{PassengerName: "John Doe", FlightNumber: "AA100", Departure: "NYC", Destination: "LAX"}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestGetPassengers_DropsUnmatched(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustAddFlight(t, s, "AA100", "NYC", "LAX")
	mustAddPassenger(t, s, "John Doe", "AA100")
	mustAddPassenger(t, s, "Jane Roe", "ZZ999")

	got, err := s.GetPassengers(ctx)
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	for _, r := range got {
		if r.PassengerName == "Jane Roe" {
			t.Fatalf("unmatched passenger present in join: %+v", got)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one record, got %+v", got)
	}

	orphans, err := s.GetUnmatchedPassengers(ctx)
	if err != nil {
		t.Fatalf("GetUnmatchedPassengers: %v", err)
	}
	if len(orphans) != 1 || orphans[0].PassengerName != "Jane Roe" || orphans[0].FlightNumber != "ZZ999" {
		t.Fatalf("unexpected orphans: %+v", orphans)
	}

	all, err := s.GetAllPassengers(ctx)
	if err != nil {
		t.Fatalf("GetAllPassengers: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both raw passengers, got %+v", all)
	}
}

func TestGetPassengers_LaterFlightRevealsPassenger(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustAddPassenger(t, s, "Jane Roe", "BA200")

	got, err := s.GetPassengers(ctx)
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty roster, got %+v", got)
	}

	mustAddFlight(t, s, "BA200", "LHR", "JFK")
	got, err = s.GetPassengers(ctx)
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	if len(got) != 1 || got[0].Departure != "LHR" {
		t.Fatalf("expected passenger after flight add, got %+v", got)
	}
}

func TestGetPassengers_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	mustAddFlight(t, s, "AA100", "NYC", "LAX")
	mustAddFlight(t, s, "BA200", "LHR", "JFK")
	names := []string{"Carol", "Alice", "Bob"}
	flights := []string{"BA200", "AA100", "BA200"}
	for i := range names {
		mustAddPassenger(t, s, names[i], flights[i])
	}

	got, err := s.GetPassengers(context.Background())
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	if len(got) != len(names) {
		t.Fatalf("expected %d records, got %+v", len(names), got)
	}
	for i := range names {
		if got[i].PassengerName != names[i] || got[i].FlightNumber != flights[i] {
			t.Fatalf("record %d: got %+v", i, got[i])
		}
	}
}

func TestGetPassengers_DuplicateFlightNumbersRepeatPassenger(t *testing.T) {
	s := newTestStore(t)
	mustAddFlight(t, s, "AA100", "NYC", "LAX")
	mustAddFlight(t, s, "AA100", "NYC", "SFO")
	mustAddPassenger(t, s, "John Doe", "AA100")

	got, err := s.GetPassengers(context.Background())
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected one row per matching flight, got %+v", got)
	}
	if got[0].Destination != "LAX" || got[1].Destination != "SFO" {
		t.Fatalf("expected flight insertion order, got %+v", got)
	}
}

func TestFlightExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustAddFlight(t, s, "AA100", "NYC", "LAX")

	ok, err := s.FlightExists(ctx, "AA100")
	if err != nil || !ok {
		t.Fatalf("expected AA100 to exist, got %v %v", ok, err)
	}
	ok, err = s.FlightExists(ctx, "aa100")
	if err != nil || ok {
		t.Fatalf("expected exact match only, got %v %v", ok, err)
	}
}

func TestResetDatabase_ClearsAndAllowsFreshAdds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustAddFlight(t, s, "AA100", "NYC", "LAX")
	mustAddPassenger(t, s, "John Doe", "AA100")
	mustAddPassenger(t, s, "Jane Roe", "ZZ999")

	if err := s.ResetDatabase(ctx); err != nil {
		t.Fatalf("ResetDatabase: %v", err)
	}
	got, err := s.GetPassengers(ctx)
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty roster after reset, got %+v", got)
	}
	all, err := s.GetAllPassengers(ctx)
	if err != nil {
		t.Fatalf("GetAllPassengers: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no passenger rows after reset, got %+v", all)
	}
	if n, _ := s.CountFlights(ctx); n != 0 {
		t.Fatalf("expected no flights after reset, got %d", n)
	}

	mustAddFlight(t, s, "CC300", "CDG", "FRA")
	mustAddPassenger(t, s, "Max Muster", "CC300")
	got, err = s.GetPassengers(ctx)
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	if len(got) != 1 || got[0].PassengerName != "Max Muster" {
		t.Fatalf("expected fresh data after reset, got %+v", got)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "airport.db")

	s, err := New(ctx, "sqlite", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mustAddFlight(t, s, "AA100", "NYC", "LAX")
	mustAddPassenger(t, s, "John Doe", "AA100")
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = New(ctx, "sqlite", path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s.Close() }()
	got, err := s.GetPassengers(ctx)
	if err != nil {
		t.Fatalf("GetPassengers: %v", err)
	}
	if len(got) != 1 || got[0].PassengerName != "John Doe" {
		t.Fatalf("expected persisted record, got %+v", got)
	}
}
