package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vitos/lp_wave/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			bin_count INTEGER NOT NULL,
			amount REAL NOT NULL,
			sol_percent INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			fees REAL NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("failed to exec query %s: %w", q, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RunRepository Implementation

func (s *SQLiteStore) SaveRun(ctx context.Context, run *domain.RunRecord) error {
	query := `INSERT INTO runs (id, session_id, mode, bin_count, amount, sol_percent, ticks, fees, started_at, ended_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		run.ID, run.SessionID, string(run.Mode), run.BinCount, run.Amount,
		run.SolPercent, run.Ticks, run.Fees, run.StartedAt, run.EndedAt)
	return err
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*domain.RunRecord, error) {
	query := `SELECT id, session_id, mode, bin_count, amount, sol_percent, ticks, fees, started_at, ended_at FROM runs ORDER BY seq DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.RunRecord
	for rows.Next() {
		var r domain.RunRecord
		var mode string
		if err := rows.Scan(&r.ID, &r.SessionID, &mode, &r.BinCount, &r.Amount, &r.SolPercent, &r.Ticks, &r.Fees, &r.StartedAt, &r.EndedAt); err != nil {
			return nil, err
		}
		r.Mode = domain.Mode(mode)
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}
