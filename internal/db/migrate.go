package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds all schema statements, applied in order on every open.
// The orders table mirrors the upstream sheet one row per order; row_index is
// the row's position in the sheet, which defines snapshot load order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id                TEXT PRIMARY KEY,
		row_index         INTEGER NOT NULL,
		order_date        TEXT NOT NULL DEFAULT '',
		order_number      TEXT NOT NULL,
		prisadka_number   TEXT NOT NULL DEFAULT '',
		client            TEXT NOT NULL DEFAULT '',
		area              TEXT NOT NULL DEFAULT '',
		milling_type      TEXT NOT NULL DEFAULT '',
		planned_date      TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT '',
		payment           TEXT NOT NULL DEFAULT '',
		remaining_payment TEXT NOT NULL DEFAULT '',
		delivery_date     TEXT NOT NULL DEFAULT '',
		phone             TEXT NOT NULL DEFAULT '',
		cad_files         TEXT NOT NULL DEFAULT '',
		material          TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_orders_row_index ON orders(row_index)`,

	`CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number)`,

	`CREATE TABLE IF NOT EXISTS sheet_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	// The sheet is editable unless explicitly marked otherwise.
	`INSERT OR IGNORE INTO sheet_meta (key, value) VALUES ('can_edit', '1')`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
