package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"quizgame/internal/domain"
	pgmigrations "quizgame/internal/infra/postgres/migrations"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// OpenBun opens a bun handle over the pgdriver connector.
func OpenBun(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Migrate applies every pending schema migration.
func Migrate(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedQuestionSet upserts a question set as JSONB.
func SeedQuestionSet(ctx context.Context, db *bun.DB, set domain.QuestionSet) error {
	for i, q := range set.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d of %s: %w", i+1, set.ID, err)
		}
	}
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal question set: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO question_sets (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`,
		set.ID, string(data))
	if err != nil {
		return fmt.Errorf("insert question set: %w", err)
	}
	return nil
}
