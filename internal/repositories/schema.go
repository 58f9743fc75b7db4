package repositories

import (
	"context"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/jmoiron/sqlx"
)

// postgresSchema creates the users and exercises tables.
// exercises.user_id carries no foreign key.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		description TEXT NOT NULL,
		duration DOUBLE PRECISION NOT NULL,
		date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS exercises_user_id_date_idx ON exercises (user_id, date)`,
}

// EnsurePostgresSchema creates the tables and indexes the repositories rely on if they are missing.
func EnsurePostgresSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range postgresSchema {
		_, err := db.ExecContext(ctx, stmt)
		logger.Log.Debugw("schema",
			"query", compact(stmt),
			"error", err,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
