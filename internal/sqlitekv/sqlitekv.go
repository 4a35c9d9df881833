// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sqlitekv stores flat resource name/value pairs in a SQLite table.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"
)

// DefaultTable is the table used when none is given.
const DefaultTable = "resources"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store wraps a SQLite database holding one (name, value) table.
type Store struct {
	db    *sql.DB
	table string
}

// Open opens (or creates) the database at dsn and ensures the table exists.
// Pass ":memory:" for a private in-memory database.
func Open(ctx context.Context, dsn, table string) (*Store, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and avoids "database is locked".
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return nil, errors.Join(fmt.Errorf("setting busy timeout: %w", err), db.Close())
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`, table)
	if _, err = db.ExecContext(ctx, ddl); err != nil {
		return nil, errors.Join(fmt.Errorf("creating table: %w", err), db.Close())
	}

	return &Store{db: db, table: table}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns every stored pair.
func (s *Store) Load(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT name, value FROM %s", s.table))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.table, err)
		}
		out[name] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.table, err)
	}
	return out, nil
}

// Store upserts pairs in a single transaction.
func (s *Store) Store(ctx context.Context, pairs map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (name, value) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET value = excluded.value",
		s.table))
	if err != nil {
		return errors.Join(fmt.Errorf("preparing upsert: %w", err), tx.Rollback())
	}
	defer stmt.Close()

	for name, value := range pairs {
		if _, err = stmt.ExecContext(ctx, name, value); err != nil {
			return errors.Join(fmt.Errorf("storing %s: %w", name, err), tx.Rollback())
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
