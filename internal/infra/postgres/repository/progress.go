package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
	"github.com/Moiseysus/Itabot/internal/infra/postgres"
)

const schema = `
	CREATE TABLE IF NOT EXISTS user_progress (
		user_id   BIGINT      NOT NULL,
		term      TEXT        NOT NULL,
		streak    INT         NOT NULL DEFAULT 0 CHECK (streak BETWEEN 0 AND 2),
		last_seen TIMESTAMPTZ NULL,
		PRIMARY KEY (user_id, term)
	)
`

// ProgressRepository stores the progress snapshot in the user_progress table.
// Save rewrites the table inside one transaction.
type ProgressRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewProgressRepository creates a ProgressRepository backed by pool.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db:         pool,
		transactor: postgres.NewTransactor(pool),
	}
}

// Migrate creates the user_progress table if it does not exist.
func (r *ProgressRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create user_progress: %w", err)
	}
	return nil
}

// Load reads every row. An empty table is an empty store.
func (r *ProgressRepository) Load(ctx context.Context) (entities.ProgressSnapshot, error) {
	query := `SELECT user_id, term, streak, last_seen FROM user_progress`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	defer rows.Close()

	snapshot := entities.ProgressSnapshot{}
	for rows.Next() {
		var (
			userID   int64
			term     string
			streak   int
			lastSeen *time.Time
		)
		if err := rows.Scan(&userID, &term, &streak, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}

		terms, ok := snapshot[userID]
		if !ok {
			terms = make(map[string]entities.ProgressEntry)
			snapshot[userID] = terms
		}
		terms[term] = entities.ProgressEntry{Streak: streak, LastSeen: lastSeen}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}

	return snapshot, nil
}

// Save replaces the table content with snapshot.
func (r *ProgressRepository) Save(ctx context.Context, snapshot entities.ProgressSnapshot) error {
	rows := make([][]any, 0, len(snapshot))
	for userID, terms := range snapshot {
		for term, p := range terms {
			rows = append(rows, []any{userID, term, p.Streak, p.LastSeen})
		}
	}

	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_progress`); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"user_progress"},
			[]string{"user_id", "term", "streak", "last_seen"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("copy progress: %w", err)
		}

		return nil
	})
}
