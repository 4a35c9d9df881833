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

package source

import (
	"context"
	"fmt"

	"rivaas.dev/resource/internal/keypath"
	"rivaas.dev/resource/internal/sqlitekv"
)

// SQLite loads resource values from a (name, value) table. Names are dotted
// paths and are expanded into nested maps.
type SQLite struct {
	dsn   string
	table string
}

// NewSQLite creates a SQLite source. An empty table selects "resources".
// The database is opened on each Load and closed afterwards.
func NewSQLite(dsn, table string) *SQLite {
	return &SQLite{dsn: dsn, table: table}
}

// Load reads every row of the table.
//
// Errors:
//   - Returns error if the database cannot be opened or read
//   - Returns error if two names conflict (one is a prefix of the other)
func (s *SQLite) Load(ctx context.Context) (values map[string]any, err error) {
	store, err := sqlitekv.Open(ctx, s.dsn, s.table)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite source: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close sqlite source: %w", cerr)
		}
	}()

	flat, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sqlite source: %w", err)
	}

	values, err = keypath.Expand(flat)
	if err != nil {
		return nil, fmt.Errorf("failed to expand sqlite source: %w", err)
	}
	return values, nil
}
