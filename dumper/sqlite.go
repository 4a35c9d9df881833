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

package dumper

import (
	"context"
	"fmt"

	"rivaas.dev/resource/internal/keypath"
	"rivaas.dev/resource/internal/sqlitekv"
)

// SQLite writes resource snapshots into a (name, value) table, one row per
// dotted resource name. Rows for names absent from the snapshot are kept.
type SQLite struct {
	dsn   string
	table string
}

// NewSQLite creates a SQLite dumper. An empty table selects "resources".
func NewSQLite(dsn, table string) *SQLite {
	return &SQLite{dsn: dsn, table: table}
}

// Dump flattens values and upserts every pair in one transaction.
//
// Errors:
//   - Returns error if values cannot be flattened
//   - Returns error if the database cannot be opened or written
func (s *SQLite) Dump(ctx context.Context, values *map[string]any) (err error) {
	var flat map[string]string
	if values != nil {
		flat, err = keypath.Flatten(*values)
		if err != nil {
			return fmt.Errorf("failed to flatten values: %w", err)
		}
	}

	store, err := sqlitekv.Open(ctx, s.dsn, s.table)
	if err != nil {
		return fmt.Errorf("failed to open sqlite dumper: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close sqlite dumper: %w", cerr)
		}
	}()

	if err = store.Store(ctx, flat); err != nil {
		return fmt.Errorf("failed to store values: %w", err)
	}
	return nil
}
