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

// Package resource provides typed, persistable window manager settings.
//
// A [Resource] holds a value of type T together with a default and a
// [codec.Codec] that converts between T and its text form. Decoding never
// fails loudly: text a codec cannot parse either leaves the current value
// alone or restores the default, depending on the type.
//
// # Resources
//
// Create a resource with a codec, a default and its names:
//
//	workspaces := resource.New(codec.Int, 4,
//	    "session.screen0.workspaces", "Session.Screen0.Workspaces")
//
//	workspaces.SetFromString("6")   // true, value 6
//	workspaces.SetFromString("six") // false, value still 6
//	workspaces.String()             // "6"
//
// Codecs in the codec package:
//
//	codec.Int                         // keeps the current value on bad input
//	codec.Uint, codec.Int64           // restore the default on bad input
//	codec.Bool, codec.String
//	codec.AttachArea                  // "Titlebar" or "Window"
//	codec.NewLayer(layer.Standard())  // "Dock", "Top", "5", ...
//	codec.Buttons                     // "Shade Minimize Close "
//
// # Manager
//
// A [Manager] groups resources and moves their values between sources and
// dumpers. Sources are merged in order, with later sources overriding
// earlier ones. Names are matched without case.
//
//	m := resource.MustNewManager(
//	    resource.WithFile("${HOME}/.fluxbox/init.yaml"),
//	    resource.WithEnv("FLUXBOX_"),
//	    resource.WithFileDumper("${HOME}/.fluxbox/init.yaml"),
//	)
//
//	tabs := resource.MustAdd(m, codec.AttachArea, wm.AttachWindow,
//	    "session.screen0.tabs.attacharea", "Session.Screen0.Tabs.AttachArea")
//
//	if err := m.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	...
//	if err := m.Dump(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Supported sources are files and in-memory content (JSON, YAML, TOML, HCL,
// env), environment variables, Consul and SQLite. Dumpers write files or
// SQLite tables.
//
// Values a codec rejects are reported through the [slog.Logger] set with
// [WithLogger]; they never fail Load.
package resource
