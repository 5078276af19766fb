// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides a persistent log of command invocations.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrClosed        = errors.New("history store is closed")
	ErrDatabaseError = errors.New("database error")
)

// =============================================================================
// INVOCATION RECORD
// =============================================================================

// Invocation is one processed input line and its outcome.
type Invocation struct {
	// ID is a generated unique id.
	ID string

	// Line is the raw input line.
	Line string

	// Command is the resolved command name; empty when the line did not
	// dispatch.
	Command string

	// Args are the coerced positional arguments.
	Args []any

	// Keywords are the coerced keyword arguments.
	Keywords map[string]any

	// Dispatched reports whether a handler ran.
	Dispatched bool

	// CreatedAt is the time the line was processed.
	CreatedAt time.Time
}

// =============================================================================
// STORE
// =============================================================================

// Store persists invocations in a SQLite database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id         TEXT PRIMARY KEY,
	line       TEXT NOT NULL,
	command    TEXT NOT NULL DEFAULT '',
	args       TEXT NOT NULL DEFAULT '[]',
	keywords   TEXT NOT NULL DEFAULT '{}',
	dispatched INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invocations_command ON invocations(command);
CREATE INDEX IF NOT EXISTS idx_invocations_created ON invocations(created_at);
`

// Open opens (creating if needed) a history store at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record appends an invocation. A missing ID or CreatedAt is filled in.
func (s *Store) Record(inv Invocation) error {
	if s.db == nil {
		return ErrClosed
	}
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}

	args, err := json.Marshal(inv.Args)
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(inv.Keywords)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO invocations (id, line, command, args, keywords, dispatched, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Line, inv.Command, string(args), string(keywords),
		boolToInt(inv.Dispatched), inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// Recent returns up to limit invocations, newest first.
func (s *Store) Recent(limit int) ([]Invocation, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		`SELECT id, line, command, args, keywords, dispatched, created_at
		 FROM invocations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		var args, keywords string
		var dispatched int
		if err := rows.Scan(&inv.ID, &inv.Line, &inv.Command, &args, &keywords,
			&dispatched, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		if err := json.Unmarshal([]byte(args), &inv.Args); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(keywords), &inv.Keywords); err != nil {
			return nil, err
		}
		inv.Dispatched = dispatched != 0
		out = append(out, inv)
	}
	return out, rows.Err()
}

// CountByCommand returns dispatch counts per command name.
func (s *Store) CountByCommand() (map[string]int, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		`SELECT command, COUNT(*) FROM invocations
		 WHERE dispatched = 1 GROUP BY command`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		counts[name] = n
	}
	return counts, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
