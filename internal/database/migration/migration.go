// Package migration creates the résumé schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"resumeapi/internal/logger"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked to decide whether the schema already exists.
const sentinelTable = "public.resumes"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  filename           TEXT        NOT NULL,
  storage_path       TEXT        NOT NULL UNIQUE,
  size               BIGINT      NOT NULL CHECK (size >= 0),
  content_type       TEXT        NOT NULL,
  status             TEXT        NOT NULL,
  extraction_method  TEXT        NOT NULL DEFAULT '',
  candidate_name     TEXT        NOT NULL DEFAULT '',
  email              TEXT        NOT NULL DEFAULT '',
  record             JSONB       NOT NULL,
  career_suggestions JSONB       NOT NULL DEFAULT '[]'::jsonb,
  advice             TEXT        NOT NULL DEFAULT '',
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_resumes_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_resumes_email ON resumes (email);`,
	},
	{
		Name: "create_index_resumes_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_resumes_status ON resumes (status);`,
	},
	{
		Name: "create_index_resumes_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_resumes_created_at ON resumes (created_at);`,
	},
}

// EnsureMigrated runs every step unless the resumes table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()
	log := logger.Logger.With().
		Str("component", "database").
		Str("db_host", dbHost).
		Logger()

	log.Info().Str("event", "db_migration_check").Msg("checking schema")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		failed(log, start).Err(err).Msg("failed to check sentinel table")
		return fmt.Errorf("check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			failed(log, start).
				Str("migration_step", step.Name).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Err(err).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Int("steps", len(steps)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migrated")
	return nil
}

func failed(log zerolog.Logger, start time.Time) *zerolog.Event {
	return log.Error().
		Str("event", "db_migration_failed").
		Int64("duration_ms", time.Since(start).Milliseconds())
}
