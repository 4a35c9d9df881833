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

// Package dumper provides the places resource snapshots are written to.
//
// A dumper receives the nested map built from every registered resource's
// encoded value and persists it:
//
//	m := resource.MustNew(
//	    resource.WithDumper(dumper.NewFile("init.yaml", format.YAMLFormat{})),
//	)
//
// Available dumpers:
//
//   - [File]: a document on disk written by a format encoder
//   - [SQLite]: upserts into a (name, value) table
package dumper
