// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain data types shared by the store, the
// presenter and the exporters.
package model

import "fmt"

// RosterHeader is the column header of the passenger roster, in export order.
var RosterHeader = []string{"Passenger Name", "Flight Number", "Departure", "Destination"}

// Flight is a scheduled connection identified by its flight number.
// Flight numbers are not unique; nothing enforces it.
type Flight struct {
	ID           int64
	FlightNumber string
	Departure    string
	Destination  string
}

// String returns "AA100 (NYC -> LAX)".
func (f Flight) String() string {
	return fmt.Sprintf("%s (%s -> %s)", f.FlightNumber, f.Departure, f.Destination)
}

// Passenger is a booking of a person on a flight number. The flight number
// is only informally tied to a Flight.
type Passenger struct {
	ID            int64
	PassengerName string
	FlightNumber  string
}

// String returns "John Doe on AA100".
func (p Passenger) String() string {
	return fmt.Sprintf("%s on %s", p.PassengerName, p.FlightNumber)
}

// PassengerRecord is one row of the passengers/flights join.
type PassengerRecord struct {
	PassengerName string
	FlightNumber  string
	Departure     string
	Destination   string
}

// Row returns the record's values in RosterHeader order.
func (r PassengerRecord) Row() []string {
	return []string{r.PassengerName, r.FlightNumber, r.Departure, r.Destination}
}
