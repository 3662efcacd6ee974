// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
	"time"
)

const maintenanceTimeout = 2 * time.Minute

// Maintain performs engine-specific maintenance. For SQLite this runs
// PRAGMA optimize, VACUUM and an integrity check. For Postgres it runs
// VACUUM ANALYZE. For MySQL it runs OPTIMIZE TABLE on both tables.
func (s *BunStore) Maintain(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()

	switch s.dbType {
	case "sqlite":
		// PRAGMA optimize is advisory; a failure is not worth aborting for.
		if _, err := execRaw(ctx, s.bun, "PRAGMA optimize"); err != nil {
			dbLogf("db: sqlite optimize failed (ignored): %v", err)
		}
		if _, err := execRaw(ctx, s.bun, "VACUUM"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", err)
		}
		var res string
		if err := s.bun.NewRaw("PRAGMA integrity_check").Scan(ctx, &res); err != nil {
			return fmt.Errorf("sqlite integrity_check failed: %w", err)
		}
		if res != "ok" {
			return fmt.Errorf("sqlite integrity_check failed: %s", res)
		}
	case "postgres":
		if _, err := execRaw(ctx, s.bun, "VACUUM ANALYZE"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case "mysql":
		var lastErr error
		for _, table := range []string{"flights", "passengers"} {
			if _, err := execRaw(ctx, s.bun, "OPTIMIZE TABLE "+table); err != nil {
				dbLogf("db: mysql optimize table %s failed: %v", table, err)
				lastErr = err
			}
		}
		if lastErr != nil {
			return fmt.Errorf("mysql optimize encountered errors: %w", lastErr)
		}
	default:
		return fmt.Errorf("%w for maintenance: %s", ErrUnsupportedType, s.dbType)
	}
	dbLogf("db: maintenance for %s finished", s.dbType)
	return nil
}
