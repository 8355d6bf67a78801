package repository

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`SELECT pg_advisory_xact_lock(hashtext('clientes_schema'))`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id BIGSERIAL PRIMARY KEY,
		cliente VARCHAR(255) NOT NULL,
		razon_social VARCHAR(255),
		domicilio TEXT,
		coord_x NUMERIC(11, 8),
		coord_y NUMERIC(10, 8),
		identificador VARCHAR(100),
		anulado BOOLEAN NOT NULL DEFAULT FALSE,
		fecha_creacion TIMESTAMPTZ NOT NULL DEFAULT now(),
		fecha_actualizacion TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clientes_cliente ON clientes (cliente)`,
	`CREATE INDEX IF NOT EXISTS idx_clientes_identificador ON clientes (identificador)`,
	`CREATE INDEX IF NOT EXISTS idx_clientes_anulado ON clientes (anulado)`,
	`CREATE OR REPLACE FUNCTION clientes_touch_updated() RETURNS trigger AS $$
	BEGIN
		NEW.fecha_actualizacion = now();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS clientes_touch_updated ON clientes`,
	`CREATE TRIGGER clientes_touch_updated
		BEFORE UPDATE ON clientes
		FOR EACH ROW EXECUTE FUNCTION clientes_touch_updated()`,
}

// EnsureSchema creates the clientes table, its indexes and the update trigger.
// It is safe to run against an existing schema.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapErr("ensure schema: begin tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return wrapErr(fmt.Sprintf("ensure schema: exec statement #%d", i+1), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr("ensure schema: commit tx", err)
	}
	return nil
}
