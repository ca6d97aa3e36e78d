// Package repository persists compact snapshots of generated reports to a
// local SQLite database. The aggregation pipeline itself is transient, this
// store only feeds the dashboard's workload trend view.
package repository

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"priofeed/pkg/domain"
)

//go:embed schema.sql
var schema string

// History stores report snapshots
type History struct {
	db *sqlx.DB
}

// Config represents history database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// New opens the history database and initializes its schema
func New(ctx context.Context, cfg Config) (*History, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:priofeed.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the database connection
func (h *History) Close() error {
	return h.db.Close()
}

// Save persists a report snapshot, retrying on SQLite lock errors
func (h *History) Save(ctx context.Context, snapshot domain.ReportSnapshot) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO report_history
				(generated_at, scope, total_items, urgent_count, overdue_count, average_score, capacity)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		_, err := h.db.ExecContext(ctx, query,
			snapshot.GeneratedAt, snapshot.Scope, snapshot.TotalItems, snapshot.UrgentCount,
			snapshot.OverdueCount, snapshot.AverageScore, snapshot.Capacity)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("insert report snapshot: %w", err)}
		}
		return nil
	})
}

// Recent returns the latest snapshots, newest first
func (h *History) Recent(ctx context.Context, limit int) ([]domain.ReportSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	var snapshots []domain.ReportSnapshot
	query := `
		SELECT id, generated_at, scope, total_items, urgent_count, overdue_count, average_score, capacity
		FROM report_history
		ORDER BY generated_at DESC
		LIMIT ?
	`
	if err := h.db.SelectContext(ctx, &snapshots, query, limit); err != nil {
		return nil, fmt.Errorf("select report snapshots: %w", err)
	}
	return snapshots, nil
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
