// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package freqstore persists per-run part-of-speech frequency summaries in
// a SQLite database.
package freqstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

const dbFile = "annotations.db"

// Store manages the frequency summary SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at dir/annotations.db, creating the
// schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tag_counts (
			run_id TEXT NOT NULL REFERENCES runs(id),
			document_id INTEGER NOT NULL,
			tag TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, document_id, tag)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tag_counts_run ON tag_counts(run_id, document_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun inserts a new run row and returns its id. Run ids are ULIDs, so
// they sort lexicographically by start time.
func (s *Store) BeginRun(ctx context.Context) (string, error) {
	id := ulid.Make().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// RecordDocument stores one document's tag counts for a run in a single
// transaction. Re-recording a document replaces its counts.
func (s *Store) RecordDocument(ctx context.Context, runID string, docID int, freqs map[string]int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO tag_counts (run_id, document_id, tag, count)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, tag := range sortedTags(freqs) {
		if _, err := stmt.ExecContext(ctx, runID, docID, tag, freqs[tag]); err != nil {
			return fmt.Errorf("inserting tag count %s: %w", tag, err)
		}
	}

	return tx.Commit()
}

// LatestRun returns the id of the most recently started run.
func (s *Store) LatestRun(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("querying latest run: %w", err)
	}
	return id, nil
}

// RunDocuments returns the document ids recorded for a run, ascending.
func (s *Store) RunDocuments(ctx context.Context, runID string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT document_id FROM tag_counts WHERE run_id = ? ORDER BY document_id`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("querying run documents: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning document id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DocumentCounts returns the tag counts recorded for one document in a run.
func (s *Store) DocumentCounts(ctx context.Context, runID string, docID int) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag, count FROM tag_counts WHERE run_id = ? AND document_id = ?`,
		runID, docID)
	if err != nil {
		return nil, fmt.Errorf("querying document counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tag string
		var n int
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, fmt.Errorf("scanning tag count: %w", err)
		}
		counts[tag] = n
	}
	return counts, rows.Err()
}

// RunTotals aggregates tag counts across all documents of a run.
func (s *Store) RunTotals(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag, SUM(count) FROM tag_counts WHERE run_id = ? GROUP BY tag`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("querying run totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var tag string
		var n int
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, fmt.Errorf("scanning run total: %w", err)
		}
		totals[tag] = n
	}
	return totals, rows.Err()
}

// sortedTags returns the map's keys in ascending order for deterministic
// insert order.
func sortedTags(freqs map[string]int) []string {
	tags := make([]string, 0, len(freqs))
	for t := range freqs {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
