package postgres

import (
	"context"
	"fmt"
)

// DDL idempotente de los cuatro mapeos durables. Sin versionado de esquema: los
// mapeos se inicializan una vez y nunca se re-inicializan mientras existan datos.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		principal             TEXT PRIMARY KEY,
		email                 TEXT NOT NULL,
		first_name            TEXT NOT NULL,
		last_name             TEXT NOT NULL,
		company               TEXT NOT NULL,
		role                  TEXT NOT NULL,
		created_at            TIMESTAMPTZ NOT NULL,
		is_verified           BOOLEAN NOT NULL DEFAULT FALSE,
		can_register_products  BOOLEAN NOT NULL DEFAULT FALSE,
		can_update_supply_chain BOOLEAN NOT NULL DEFAULT FALSE,
		can_manage_partners    BOOLEAN NOT NULL DEFAULT FALSE,
		can_view_analytics     BOOLEAN NOT NULL DEFAULT FALSE,
		can_verify_users       BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		category             TEXT NOT NULL,
		description          TEXT,
		manufacturer         TEXT NOT NULL,
		manufacturer_id      TEXT NOT NULL,
		batch_number         TEXT,
		production_date      TIMESTAMPTZ NOT NULL,
		raw_materials        TEXT[] NOT NULL DEFAULT '{}',
		certifications       TEXT[] NOT NULL DEFAULT '{}',
		sustainability_score DOUBLE PRECISION,
		estimated_value      NUMERIC,
		current_status       TEXT NOT NULL,
		current_location     TEXT NOT NULL,
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,
	// seq BIGSERIAL preserva el orden de append por producto: el ledger se lee
	// ORDER BY seq, nunca por timestamp.
	`CREATE TABLE IF NOT EXISTS supply_chain_events (
		seq               BIGSERIAL PRIMARY KEY,
		id                TEXT NOT NULL,
		product_id        TEXT NOT NULL REFERENCES products(id),
		stage             TEXT NOT NULL,
		location          TEXT NOT NULL,
		ts                TIMESTAMPTZ NOT NULL,
		actor             TEXT NOT NULL,
		actor_id          TEXT NOT NULL,
		status            TEXT NOT NULL,
		details           TEXT NOT NULL DEFAULT '',
		certifications    TEXT[] NOT NULL DEFAULT '{}',
		estimated_arrival TIMESTAMPTZ,
		metadata          JSONB NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_product ON supply_chain_events (product_id, seq)`,
	`CREATE TABLE IF NOT EXISTS partners (
		principal        TEXT PRIMARY KEY,
		company_name     TEXT NOT NULL,
		partner_type     TEXT NOT NULL,
		contact_email    TEXT NOT NULL,
		contact_person   TEXT NOT NULL,
		certifications   TEXT[] NOT NULL DEFAULT '{}',
		verified         BOOLEAN NOT NULL DEFAULT FALSE,
		created_at       TIMESTAMPTZ NOT NULL,
		reputation_score INTEGER NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema crea las tablas si no existen. Seguro de ejecutar en cada arranque.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
