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

package resource

import "context"

// Source defines where raw resource values come from.
// Implementations return a nested map whose leaves are textual or scalar values.
type Source interface {
	// Load loads the values. Keys are matched against resource names without case.
	Load(ctx context.Context) (map[string]any, error)
}

// Dumper defines where encoded resource values are written to.
type Dumper interface {
	// Dump writes the nested map built from the dotted resource names.
	Dump(ctx context.Context, values *map[string]any) error
}
