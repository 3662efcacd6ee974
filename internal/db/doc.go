// Package db is the storage layer of airdesk.
//
// A Store is opened with New and owned by the caller, who must Close it at
// shutdown; there is no package-level store. Every backend (sqlite,
// postgres, mysql) is served by the same bun-backed implementation, only the
// driver and the bun dialect differ.
//
// Tables are created with CREATE TABLE IF NOT EXISTS when the store opens.
// There is no migration history.
//
// Testing notes
//   - Use New(ctx, "sqlite", "file:<name>?mode=memory&cache=shared") for
//     tests that need real SQL semantics.
//   - Tests above this package should depend on the Store interface and
//     inject a fake.
package db
