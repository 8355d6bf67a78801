package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"clientmap-api/internal/models"
	"clientmap-api/internal/search"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the client record store on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const selectClients = `
	SELECT
		id,
		cliente,
		COALESCE(razon_social, ''),
		COALESCE(domicilio, ''),
		coord_x::float8,
		coord_y::float8,
		COALESCE(identificador, ''),
		anulado,
		fecha_creacion,
		fecha_actualizacion
	FROM clientes
`

const mappableClause = `
	coord_x IS NOT NULL
	AND coord_y IS NOT NULL
	AND coord_x <> 0
	AND coord_y <> 0
`

const orderByName = ` ORDER BY lower(cliente), id`

var copyColumns = []string{"cliente", "razon_social", "domicilio", "coord_x", "coord_y", "identificador", "anulado"}

// ListAll returns every record ordered by name
func (r *Repository) ListAll(ctx context.Context) ([]models.Client, error) {
	return r.queryClients(ctx, "list all", selectClients+orderByName)
}

// ListMappable returns records with both coordinates present and non-zero
func (r *Repository) ListMappable(ctx context.Context) ([]models.Client, error) {
	return r.queryClients(ctx, "list mappable", selectClients+" WHERE "+mappableClause+orderByName)
}

// SearchAll matches term against name, legal name and identifier, restricted to mappable records
func (r *Repository) SearchAll(ctx context.Context, term string) ([]models.Client, error) {
	term, err := search.NormalizeTerm(term)
	if err != nil {
		return nil, err
	}

	sql := selectClients + `
		WHERE (cliente ILIKE $1 ESCAPE '\'
			OR razon_social ILIKE $1 ESCAPE '\'
			OR identificador ILIKE $1 ESCAPE '\')
		AND ` + mappableClause + orderByName

	return r.queryClients(ctx, "search all", sql, likePattern(term))
}

// SearchRanked matches term against name and legal name only and orders the hits by relevance tier
func (r *Repository) SearchRanked(ctx context.Context, term string) ([]models.Client, error) {
	term, err := search.NormalizeTerm(term)
	if err != nil {
		return nil, err
	}

	sql := selectClients + `
		WHERE (cliente ILIKE $1 ESCAPE '\'
			OR razon_social ILIKE $1 ESCAPE '\')
		AND ` + mappableClause

	candidates, err := r.queryClients(ctx, "search ranked", sql, likePattern(term))
	if err != nil {
		return nil, err
	}
	return search.Rank(candidates, term)
}

// Stats aggregates record counters
func (r *Repository) Stats(ctx context.Context) (*models.Stats, error) {
	sql := `
		SELECT
			count(*),
			count(*) FILTER (WHERE NOT anulado),
			count(*) FILTER (WHERE anulado),
			count(*) FILTER (WHERE coord_x IS NOT NULL AND coord_y IS NOT NULL),
			count(*) FILTER (WHERE ` + mappableClause + `),
			max(fecha_creacion)
		FROM clientes
	`

	var stats models.Stats
	var latest *time.Time
	err := r.db.QueryRow(ctx, sql).Scan(
		&stats.Total,
		&stats.Active,
		&stats.Voided,
		&stats.WithCoordinates,
		&stats.Mappable,
		&latest,
	)
	if err != nil {
		return nil, wrapErr("stats", err)
	}
	stats.LatestCreatedAt = latest
	return &stats, nil
}

// Count returns the number of stored records
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM clientes").Scan(&count); err != nil {
		return 0, wrapErr("count", err)
	}
	return count, nil
}

// ClearAll deletes every record. Clearing an empty table is not an error.
func (r *Repository) ClearAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM clientes"); err != nil {
		return wrapErr("clear all", err)
	}
	return nil
}

// InsertBatch appends records in a single transaction. Either every record is stored or none is.
func (r *Repository) InsertBatch(ctx context.Context, records []models.Client) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, wrapErr("insert batch: begin tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n, err := copyClients(ctx, tx, records)
	if err != nil {
		return 0, wrapErr("insert batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, wrapErr("insert batch: commit tx", err)
	}
	return n, nil
}

// ReplaceAll deletes every record and inserts records as one transaction.
// The table lock serializes concurrent replaces; plain readers keep seeing the previous generation
// until commit.
func (r *Repository) ReplaceAll(ctx context.Context, records []models.Client) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, wrapErr("replace all: begin tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "LOCK TABLE clientes IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		return 0, wrapErr("replace all: lock table", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM clientes"); err != nil {
		return 0, wrapErr("replace all: delete", err)
	}

	n := 0
	if len(records) > 0 {
		n, err = copyClients(ctx, tx, records)
		if err != nil {
			return 0, wrapErr("replace all", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, wrapErr("replace all: commit tx", err)
	}
	return n, nil
}

func copyClients(ctx context.Context, tx pgx.Tx, records []models.Client) (int, error) {
	// Use CopyFrom for bulk insert
	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"clientes"},
		copyColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			c := records[i]
			return []any{c.Name, c.LegalName, c.Address, c.CoordX, c.CoordY, c.Identifier, c.Voided}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy clients: %w", err)
	}
	if int(copied) != len(records) {
		return 0, fmt.Errorf("copy clients: copied %d of %d records", copied, len(records))
	}
	return int(copied), nil
}

func (r *Repository) queryClients(ctx context.Context, op, sql string, args ...any) ([]models.Client, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(op+": execute query", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var c models.Client
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.LegalName,
			&c.Address,
			&c.CoordX,
			&c.CoordY,
			&c.Identifier,
			&c.Voided,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: %s: failed to scan client: %w", op, err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(op+": iterating rows", err)
	}

	return clients, nil
}

// likePattern builds a substring ILIKE pattern that matches term literally.
func likePattern(term string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(term) + "%"
}

// wrapErr turns unreachable-store failures into *models.ConnectionError and prefixes the rest.
func wrapErr(op string, err error) error {
	if isConnectionError(err) {
		return &models.ConnectionError{Op: op, Err: err}
	}
	return fmt.Errorf("repository: %s: %w", op, err)
}

func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	// context.DeadlineExceeded also satisfies net.Error.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
