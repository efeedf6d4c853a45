package database

import (
	"context"
	"fmt"

	pkgdb "bookshelf-graphql/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// schemaStatements create the entity tables. Every statement is idempotent.
// books.author_id has no foreign key: the reference is only checked on creation.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
        id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        first_name TEXT NOT NULL,
        last_name  TEXT NOT NULL,
        email      TEXT NOT NULL,
        age        INTEGER NOT NULL DEFAULT 0,
        books      UUID[] NOT NULL DEFAULT '{}',
        is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS books (
        id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        title               TEXT NOT NULL,
        pages               INTEGER NOT NULL DEFAULT 0,
        author_id           UUID NOT NULL,
        year_of_publication TIMESTAMPTZ,
        is_deleted          BOOLEAN NOT NULL DEFAULT FALSE,
        created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
	`CREATE TABLE IF NOT EXISTS users (
        id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        first_name      TEXT NOT NULL DEFAULT '',
        last_name       TEXT NOT NULL DEFAULT '',
        email           TEXT NOT NULL DEFAULT '',
        password        TEXT NOT NULL DEFAULT '',
        profile_picture TEXT NOT NULL DEFAULT '',
        phone           TEXT NOT NULL DEFAULT '',
        is_deleted      BOOLEAN NOT NULL DEFAULT FALSE,
        created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
}

// EnsureSchema creates the authors, books and users tables when missing.
// All statements run in one transaction.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	err := pkgdb.WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		for i, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Int("statements", len(schemaStatements)).Msg("[DATABASE] Schema ensured")
	return nil
}
