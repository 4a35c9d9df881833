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

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/resource/dumper"
	"rivaas.dev/resource/format"
	"rivaas.dev/resource/source"
)

// Option configures a [Manager].
type Option func(m *Manager) error

// WithSource adds a source. Sources are merged in the order they are added;
// later sources override earlier ones.
func WithSource(src Source) Option {
	return func(m *Manager) error {
		if src == nil {
			return errors.New("source cannot be nil")
		}
		m.sources = append(m.sources, src)
		return nil
	}
}

// WithDumper adds a dumper that receives the encoded resources on Dump.
func WithDumper(d Dumper) Option {
	return func(m *Manager) error {
		if d == nil {
			return errors.New("dumper cannot be nil")
		}
		m.dumpers = append(m.dumpers, d)
		return nil
	}
}

// WithFile loads resources from a file. The format is detected from the
// extension (.yaml, .yml, .json, .toml, .hcl, .env). A missing file loads as
// empty so a fresh installation starts from defaults.
//
// Paths support environment variable expansion using ${VAR} or $VAR syntax.
//
// Example:
//
//	m := resource.MustNewManager(
//	    resource.WithFile("${HOME}/.fluxbox/init.yaml"),
//	)
func WithFile(path string) Option {
	return func(m *Manager) error {
		path = os.ExpandEnv(path)

		typ, err := detectFormat(path)
		if err != nil {
			return NewError("file-source", "detect-format", err)
		}

		return WithFileAs(path, typ)(m)
	}
}

// WithFileAs loads resources from a file with an explicit format.
// Use this when the file has no extension or a misleading one.
func WithFileAs(path string, typ format.Type) Option {
	return func(m *Manager) error {
		path = os.ExpandEnv(path)

		decoder, err := format.GetDecoder(typ)
		if err != nil {
			return NewError("file-source", "get-decoder", err)
		}

		m.sources = append(m.sources, source.NewFile(path, decoder))
		return nil
	}
}

// WithContent loads resources from an in-memory document.
func WithContent(data []byte, typ format.Type) Option {
	return func(m *Manager) error {
		decoder, err := format.GetDecoder(typ)
		if err != nil {
			return NewError("content-source", "get-decoder", err)
		}

		m.sources = append(m.sources, source.NewFileContent(data, decoder))
		return nil
	}
}

// WithEnv loads resources from environment variables starting with prefix.
// Underscores after the prefix separate name segments, so with prefix
// "FLUXBOX_" the variable FLUXBOX_SESSION_SCREEN0_TABS_INTITLEBAR sets
// "session.screen0.tabs.intitlebar".
func WithEnv(prefix string) Option {
	return func(m *Manager) error {
		m.sources = append(m.sources, source.NewOSEnvVar(prefix))
		return nil
	}
}

// WithConsul loads resources from a Consul key. The format is detected from
// the key's extension.
//
// If CONSUL_HTTP_ADDR is not set, this option is silently skipped.
//
// Environment variables:
//   - CONSUL_HTTP_ADDR: The address of the Consul server (e.g., "http://localhost:8500")
//   - CONSUL_HTTP_TOKEN: The access token for authentication with Consul (optional)
func WithConsul(path string) Option {
	return func(m *Manager) error {
		if os.Getenv("CONSUL_HTTP_ADDR") == "" {
			return nil
		}

		path = os.ExpandEnv(path)

		typ, err := detectFormat(path)
		if err != nil {
			return NewError("consul-source", "detect-format", err)
		}

		return WithConsulAs(path, typ)(m)
	}
}

// WithConsulAs loads resources from a Consul key with an explicit format.
// With [format.TypeText] the key holds a single value and its last path
// segment names the resource.
//
// If CONSUL_HTTP_ADDR is not set, this option is silently skipped.
func WithConsulAs(path string, typ format.Type) Option {
	return func(m *Manager) error {
		if os.Getenv("CONSUL_HTTP_ADDR") == "" {
			return nil
		}

		path = os.ExpandEnv(path)

		decoder, err := format.GetDecoder(typ)
		if err != nil {
			return NewError("consul-source", "get-decoder", err)
		}

		src, err := source.NewConsul(path, decoder, nil)
		if err != nil {
			return NewError("consul-source", "create-client", err)
		}

		m.sources = append(m.sources, src)
		return nil
	}
}

// WithSQLite loads resources from a two-column (name, value) table in a
// SQLite database. The table is created if it does not exist.
func WithSQLite(dsn, table string) Option {
	return func(m *Manager) error {
		m.sources = append(m.sources, source.NewSQLite(os.ExpandEnv(dsn), table))
		return nil
	}
}

// WithFileDumper writes resources to a file on Dump. The format is detected
// from the extension.
func WithFileDumper(path string) Option {
	return func(m *Manager) error {
		path = os.ExpandEnv(path)

		typ, err := detectFormat(path)
		if err != nil {
			return NewError("file-dumper", "detect-format", err)
		}

		return WithFileDumperAs(path, typ)(m)
	}
}

// WithFileDumperAs writes resources to a file with an explicit format.
func WithFileDumperAs(path string, typ format.Type) Option {
	return func(m *Manager) error {
		path = os.ExpandEnv(path)

		encoder, err := format.GetEncoder(typ)
		if err != nil {
			return NewError("file-dumper", "get-encoder", err)
		}

		m.dumpers = append(m.dumpers, dumper.NewFile(path, encoder))
		return nil
	}
}

// WithSQLiteDumper writes resources to a (name, value) table on Dump,
// one row per resource.
func WithSQLiteDumper(dsn, table string) Option {
	return func(m *Manager) error {
		m.dumpers = append(m.dumpers, dumper.NewSQLite(os.ExpandEnv(dsn), table))
		return nil
	}
}

// WithJSONSchema validates the merged sources against a JSON Schema before
// any resource is decoded. Keys are lower-cased before validation, so the
// schema must use lower-case property names.
func WithJSONSchema(schema []byte) Option {
	return func(m *Manager) error {
		// Unique name so compiled schemas never share a cache entry.
		//nolint:gosec // not security sensitive
		schemaName := fmt.Sprintf("inline_%d.json", rand.Int())
		compiler := jsonschema.NewCompiler()

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
		if err != nil {
			return NewError("json-schema", "parse", err)
		}

		if err = compiler.AddResource(schemaName, doc); err != nil {
			return NewError("json-schema", "add-resource", err)
		}
		s, err := compiler.Compile(schemaName)
		if err != nil {
			return NewError("json-schema", "compile", err)
		}
		m.schema = s
		return nil
	}
}

// WithValidator adds a function that checks the merged sources after schema
// validation. Returning an error fails Load.
func WithValidator(fn func(map[string]any) error) Option {
	return func(m *Manager) error {
		if fn == nil {
			return errors.New("validator cannot be nil")
		}
		m.validators = append(m.validators, fn)
		return nil
	}
}

// WithLogger sets the logger used to report values that failed to decode.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		m.logger = logger
		return nil
	}
}
