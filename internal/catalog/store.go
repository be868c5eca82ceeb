// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records generation runs in a SQLite database so past
// runs can be listed and compared without re-reading their outputs.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/evinputs/internal/report"
	"github.com/pdiddy/evinputs/pkg/types"
)

const dbFile = "evinputs.db"

// Run is one recorded generation run.
type Run struct {
	ID              int64
	StartedAt       time.Time
	TargetsPath     string
	AssumptionsPath string
	OutputDir       string
	CanonicalRows   int
	MatchedRows     int
	ResourceRows    int
	Regions         []string
	Years           int
	Categories      []string
}

// Store manages the run catalog database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at dir/evinputs.db,
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
			started_at TEXT NOT NULL,
			targets_path TEXT NOT NULL,
			assumptions_path TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			canonical_rows INTEGER NOT NULL,
			matched_rows INTEGER NOT NULL,
			resource_rows INTEGER NOT NULL,
			regions TEXT,
			years INTEGER NOT NULL,
			categories TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run derived from a generation summary.
func (s *Store) Record(ctx context.Context, summary report.Summary, outputDir string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, targets_path, assumptions_path, output_dir,
			canonical_rows, matched_rows, resource_rows, regions, years, categories)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.GeneratedAt.UTC().Format(time.RFC3339),
		summary.TargetsPath,
		summary.AssumptionsPath,
		outputDir,
		summary.CanonicalRows,
		summary.MatchedRows,
		summary.ResourceRows,
		strings.Join(summary.Regions, ","),
		len(summary.Years),
		strings.Join(summary.Categories, ","),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// ListRuns returns recorded runs, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, targets_path, assumptions_path, output_dir,
			canonical_rows, matched_rows, resource_rows, regions, years, categories
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt, regions, categories string
		if err := rows.Scan(&r.ID, &startedAt, &r.TargetsPath, &r.AssumptionsPath, &r.OutputDir,
			&r.CanonicalRows, &r.MatchedRows, &r.ResourceRows, &regions, &r.Years, &categories); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		t, err := time.Parse(time.RFC3339, startedAt)
		if err == nil {
			r.StartedAt = t
		}
		r.Regions = splitList(regions)
		r.Categories = splitList(categories)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
