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

// Package source provides the places resource values are loaded from.
//
// Every source returns a nested map[string]any whose leaves are the textual
// (or scalar) resource values. The owning resource.Manager merges the maps
// of all sources in order, so later sources override earlier ones:
//
//	m := resource.MustNew(
//	    resource.WithSource(source.NewFile("init.yaml", format.YAMLFormat{})),
//	    resource.WithSource(source.NewOSEnvVar("FLUXBOX_")),
//	)
//
// Available sources:
//
//   - [File]: a document on disk or in memory, decoded by a format
//   - [OSEnvVar]: process environment variables sharing a prefix
//   - [Consul]: a key in Consul's key-value store
//   - [SQLite]: a (name, value) table in a SQLite database
package source
