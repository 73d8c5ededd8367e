// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
)

// insertReturningID executes an INSERT built by returningID and reports the
// id of the new row.
func (db *DB) insertReturningID(ctx context.Context, query string, args []any) (int64, error) {
	if db.dialect == DialectSQLite {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return id, nil
	}

	var id int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
