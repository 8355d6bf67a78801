package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// EnsureDatabase creates database name if it does not exist yet. conn must point at a
// maintenance database such as postgres. It reports whether the database was created.
func EnsureDatabase(ctx context.Context, conn *pgx.Conn, name string) (bool, error) {
	if name == "" {
		return false, errors.New("repository: ensure database: empty database name")
	}

	var exists bool
	err := conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, wrapErr("ensure database: lookup", err)
	}
	if exists {
		return false, nil
	}

	// CREATE DATABASE takes no bind parameters.
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return false, wrapErr(fmt.Sprintf("ensure database: create %s", name), err)
	}
	return true, nil
}
