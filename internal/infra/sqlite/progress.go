// Package sqlite stores review history in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

const schema = `
	CREATE TABLE IF NOT EXISTS user_progress (
		user_id   INTEGER   NOT NULL,
		term      TEXT      NOT NULL,
		streak    INTEGER   NOT NULL DEFAULT 0 CHECK (streak BETWEEN 0 AND 2),
		last_seen TIMESTAMP NULL,
		PRIMARY KEY (user_id, term)
	)
`

type progressRow struct {
	UserID   int64        `db:"user_id"`
	Term     string       `db:"term"`
	Streak   int          `db:"streak"`
	LastSeen sql.NullTime `db:"last_seen"`
}

// ProgressRepository keeps the progress snapshot in the user_progress table.
type ProgressRepository struct {
	db *sqlx.DB
}

// Open connects to the database file at path and creates the schema.
func Open(ctx context.Context, path string) (*ProgressRepository, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	// A single writer keeps whole-table rewrites from tripping over SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create user_progress: %w", err)
	}

	return &ProgressRepository{db: db}, nil
}

// Close closes the database.
func (r *ProgressRepository) Close() error {
	return r.db.Close()
}

// Load reads every row. An empty table is an empty store.
func (r *ProgressRepository) Load(ctx context.Context) (entities.ProgressSnapshot, error) {
	var rows []progressRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT user_id, term, streak, last_seen FROM user_progress`); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	snapshot := entities.ProgressSnapshot{}
	for _, row := range rows {
		terms, ok := snapshot[row.UserID]
		if !ok {
			terms = make(map[string]entities.ProgressEntry)
			snapshot[row.UserID] = terms
		}

		p := entities.ProgressEntry{Streak: row.Streak}
		if row.LastSeen.Valid {
			ts := row.LastSeen.Time
			p.LastSeen = &ts
		}
		terms[row.Term] = p
	}

	return snapshot, nil
}

// Save replaces the table content with snapshot in one transaction.
func (r *ProgressRepository) Save(ctx context.Context, snapshot entities.ProgressSnapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_progress`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT INTO user_progress (user_id, term, streak, last_seen)
		VALUES (:user_id, :term, :streak, :last_seen)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for userID, terms := range snapshot {
		for term, p := range terms {
			row := progressRow{UserID: userID, Term: term, Streak: p.Streak}
			if p.LastSeen != nil {
				row.LastSeen = sql.NullTime{Time: *p.LastSeen, Valid: true}
			}
			if _, err := stmt.ExecContext(ctx, row); err != nil {
				return fmt.Errorf("insert progress: %w", err)
			}
		}
	}

	return tx.Commit()
}
