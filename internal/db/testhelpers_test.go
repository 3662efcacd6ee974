// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"strings"
	"testing"
)

// memoryDSN returns a shared-cache in-memory DSN unique to the test.
func memoryDSN(t *testing.T) string {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return "file:" + name + "?mode=memory&cache=shared"
}

// newTestStore opens an in-memory sqlite Store and closes it when the test
// ends.
func newTestStore(t *testing.T) *BunStore {
	t.Helper()
	s, err := New(context.Background(), "sqlite", memoryDSN(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	bs, ok := s.(*BunStore)
	if !ok {
		t.Fatalf("store is not *BunStore")
	}
	return bs
}

func mustAddFlight(t *testing.T, s Store, number, departure, destination string) int64 {
	t.Helper()
	id, err := s.AddFlight(context.Background(), number, departure, destination)
	if err != nil {
		t.Fatalf("AddFlight(%s) failed: %v", number, err)
	}
	return id
}

func mustAddPassenger(t *testing.T, s Store, name, flightNumber string) int64 {
	t.Helper()
	id, err := s.AddPassenger(context.Background(), name, flightNumber)
	if err != nil {
		t.Fatalf("AddPassenger(%s) failed: %v", name, err)
	}
	return id
}
