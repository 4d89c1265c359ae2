package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Statements are idempotent so restarts are safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			phone         TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			email          TEXT,
			phone          TEXT NOT NULL,
			source         TEXT NOT NULL,
			status         TEXT NOT NULL DEFAULT 'New',
			rating         TEXT NOT NULL DEFAULT 'High',
			assigned_to    TEXT REFERENCES users (id) ON DELETE SET NULL,
			assigned_by    TEXT REFERENCES users (id) ON DELETE SET NULL,
			follow_up_date TIMESTAMPTZ,
			notes          TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			location    TEXT NOT NULL,
			total_plots INTEGER NOT NULL,
			description TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS plots (
			id          TEXT PRIMARY KEY,
			project_id  TEXT NOT NULL REFERENCES projects (id),
			plot_number TEXT NOT NULL,
			size        TEXT NOT NULL,
			price       BIGINT NOT NULL,
			facing      TEXT,
			status      TEXT NOT NULL DEFAULT 'Available',
			booked_by   TEXT REFERENCES leads (id),
			category    TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (project_id, plot_number)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id             TEXT PRIMARY KEY,
			lead_id        TEXT NOT NULL REFERENCES leads (id),
			plot_id        TEXT NOT NULL REFERENCES plots (id),
			amount         BIGINT NOT NULL,
			mode           TEXT NOT NULL,
			booking_type   TEXT NOT NULL,
			transaction_id TEXT,
			notes          TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS buyer_interests (
			id               TEXT PRIMARY KEY,
			plot_id          TEXT NOT NULL REFERENCES plots (id),
			buyer_name       TEXT NOT NULL,
			buyer_contact    TEXT NOT NULL,
			buyer_email      TEXT,
			offered_price    BIGINT NOT NULL,
			salesperson_id   TEXT NOT NULL,
			salesperson_name TEXT NOT NULL,
			notes            TEXT,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// user_id has no FK: audit rows must outlive deleted accounts.
		`CREATE TABLE IF NOT EXISTS activity_logs (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			user_name   TEXT NOT NULL,
			action      TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id   TEXT NOT NULL,
			details     TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_assigned_to ON leads (assigned_to)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_lead_id ON payments (lead_id)`,
		`CREATE INDEX IF NOT EXISTS idx_buyer_interests_plot_id ON buyer_interests (plot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_logs_created_at ON activity_logs (created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
