package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Referential integrity between publications and medias/posts is enforced by
// the service layer, not by foreign keys. The unique index on medias is the
// storage backstop for concurrent duplicate creates.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS medias (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		username TEXT NOT NULL,
		CONSTRAINT medias_title_username_key UNIQUE (title, username)
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		text TEXT NOT NULL,
		image TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS publications (
		id BIGSERIAL PRIMARY KEY,
		media_id BIGINT NOT NULL,
		post_id BIGINT NOT NULL,
		date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS publications_media_id_idx ON publications (media_id)`,
	`CREATE INDEX IF NOT EXISTS publications_post_id_idx ON publications (post_id)`,
}

// Migrate applies the schema at startup.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for i, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Int("statements", len(migrations)).Msg("Database schema up to date")
	return nil
}
