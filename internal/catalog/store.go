// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists split runs in a SQLite database. The catalog is
// a record of what was produced, not a guard against re-running: nothing
// consults it before a split writes files.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/levelsplit/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the catalog SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at dir/catalog.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_path TEXT NOT NULL,
			input_sha256 TEXT NOT NULL,
			pattern TEXT NOT NULL,
			level_count INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS levels (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			idx INTEGER NOT NULL,
			file TEXT NOT NULL,
			bytes INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			PRIMARY KEY (run_id, idx)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input_path)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun inserts a run and its levels in one transaction and returns
// the assigned run ID.
func (s *Store) RecordRun(ctx context.Context, run types.Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := run.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (input_path, input_sha256, pattern, level_count, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		run.InputPath, run.InputSHA256, run.Pattern, len(run.Levels), createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for _, lvl := range run.Levels {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO levels (run_id, idx, file, bytes, lines) VALUES (?, ?, ?, ?, ?)`,
			runID, lvl.Index, lvl.File, lvl.Bytes, lvl.Lines,
		); err != nil {
			return 0, fmt.Errorf("inserting level %d: %w", lvl.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns all recorded runs, newest first, without their levels.
func (s *Store) ListRuns(ctx context.Context) ([]types.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, input_sha256, pattern, level_count, created_at
		 FROM runs ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var r types.Run
		var count int
		if err := rows.Scan(&r.ID, &r.InputPath, &r.InputSHA256, &r.Pattern, &count, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run with its levels in index order.
func (s *Store) GetRun(ctx context.Context, id int64) (types.Run, error) {
	var r types.Run
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, input_path, input_sha256, pattern, level_count, created_at
		 FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.InputPath, &r.InputSHA256, &r.Pattern, &count, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return types.Run{}, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return types.Run{}, fmt.Errorf("querying run %d: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, file, bytes, lines FROM levels WHERE run_id = ? ORDER BY idx`, id,
	)
	if err != nil {
		return types.Run{}, fmt.Errorf("querying levels for run %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var lvl types.Level
		if err := rows.Scan(&lvl.Index, &lvl.File, &lvl.Bytes, &lvl.Lines); err != nil {
			return types.Run{}, fmt.Errorf("scanning level: %w", err)
		}
		r.Levels = append(r.Levels, lvl)
	}
	if err := rows.Err(); err != nil {
		return types.Run{}, fmt.Errorf("iterating levels: %w", err)
	}
	return r, nil
}
