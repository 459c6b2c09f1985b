package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate creates the session schema. Statements are idempotent and run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS dogs (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL DEFAULT '',
		breed         TEXT NOT NULL,
		age_years     REAL NOT NULL CHECK(age_years > 0),
		weight_kg     REAL NOT NULL CHECK(weight_kg > 0),
		neutered      INTEGER NOT NULL DEFAULT 1,
		activity      TEXT NOT NULL
		              CHECK(activity IN ('Low','Normal','High','Athletic/Working')),
		special_flags TEXT NOT NULL DEFAULT 'none',
		meals_per_day INTEGER NOT NULL CHECK(meals_per_day BETWEEN 1 AND 4),
		kcal_per_gram REAL NOT NULL CHECK(kcal_per_gram BETWEEN 1.0 AND 1.8),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	// Taste entries outlive the dog they describe, so there is no FK.
	`CREATE TABLE IF NOT EXISTS taste_entries (
		id            TEXT PRIMARY KEY,
		dog_id        TEXT NOT NULL,
		protein       TEXT,
		veg           TEXT,
		preference    TEXT NOT NULL
		              CHECK(preference IN ('Dislike','Neutral','Like','Love')),
		note          TEXT NOT NULL DEFAULT '',
		dog_name      TEXT NOT NULL DEFAULT '',
		dog_breed     TEXT NOT NULL DEFAULT '',
		dog_age_years REAL NOT NULL DEFAULT 0,
		dog_weight_kg REAL NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_taste_entries_dog ON taste_entries(dog_id)`,

	`CREATE TABLE IF NOT EXISTS session_state (
		id            TEXT PRIMARY KEY DEFAULT 'default',
		active_dog_id TEXT REFERENCES dogs(id) ON DELETE SET NULL,
		updated_at    TEXT NOT NULL DEFAULT ''
	)`,

	`INSERT OR IGNORE INTO session_state (id) VALUES ('default')`,

	// Last plan seed, so "plan week" without --seed reshuffles predictably.
	`ALTER TABLE session_state ADD COLUMN last_seed INTEGER`,
}
