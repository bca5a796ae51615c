// Package state persists the apply history backing the status command.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Applied is one recorded skin application.
type Applied struct {
	AppliedAt time.Time
	Package   string
	Name      string
}

// Manager handles persistent apply-history storage using SQLite.
type Manager struct {
	db *sql.DB
}

// NewManager opens (or creates) the history database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	ctx := context.Background()
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if err := runSchemaMigration(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}

	return &Manager{db: db}, nil
}

// runSchemaMigration ensures the history table exists.
func runSchemaMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			package TEXT NOT NULL,
			name TEXT NOT NULL,
			applied_at INTEGER NOT NULL DEFAULT (unixepoch())
		);
		CREATE INDEX IF NOT EXISTS idx_history_applied ON history(applied_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// Close closes the manager.
func (m *Manager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// RecordApply appends a history row for the applied skin.
func (m *Manager) RecordApply(ctx context.Context, pkg, name string) error {
	_, err := m.db.ExecContext(ctx,
		"INSERT INTO history (package, name) VALUES (?, ?)", pkg, name)
	if err != nil {
		return fmt.Errorf("failed to record apply: %w", err)
	}
	return nil
}

// Current returns the most recently applied skin, or ok=false when nothing
// was ever applied.
func (m *Manager) Current(ctx context.Context) (applied Applied, ok bool, err error) {
	row := m.db.QueryRowContext(ctx,
		"SELECT package, name, applied_at FROM history ORDER BY id DESC LIMIT 1")

	var appliedAt int64
	if err := row.Scan(&applied.Package, &applied.Name, &appliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Applied{}, false, nil
		}
		return Applied{}, false, fmt.Errorf("failed to query current skin: %w", err)
	}
	applied.AppliedAt = time.Unix(appliedAt, 0)
	return applied, true, nil
}

// Recent returns up to limit history rows, newest first.
func (m *Manager) Recent(ctx context.Context, limit int) ([]Applied, error) {
	rows, err := m.db.QueryContext(ctx,
		"SELECT package, name, applied_at FROM history ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Applied
	for rows.Next() {
		var a Applied
		var appliedAt int64
		if err := rows.Scan(&a.Package, &a.Name, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		a.AppliedAt = time.Unix(appliedAt, 0)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return out, nil
}
