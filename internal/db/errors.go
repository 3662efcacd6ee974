// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned for a database type other than sqlite,
// postgres or mysql.
var ErrUnsupportedType = errors.New("unsupported database type")

// wrapOp annotates a driver error with the store operation that produced it.
func wrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("db: %s: %w", op, err)
}
