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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/resource/codec"
	"rivaas.dev/resource/internal/keypath"
)

// Manager keeps a set of named resources and moves their values between
// sources, the resources themselves and dumpers.
//
// Resource names are dotted paths chosen by the caller, such as
// "session.screen0.toolbar.layer". They are matched against source keys
// without case. The registration table is safe for concurrent use; Load,
// Reset and Dump mutate or read resource values and must be serialised by
// the caller, like any other access to a [Resource].
type Manager struct {
	mu        sync.RWMutex
	resources []Holder
	names     map[string]Holder

	sources    []Source
	dumpers    []Dumper
	schema     *jsonschema.Schema
	validators []func(map[string]any) error
	logger     *slog.Logger
}

// NewManager creates a Manager with the provided options.
// Errors from all options are joined and returned alongside the partially
// configured Manager.
func NewManager(options ...Option) (*Manager, error) {
	var errs error
	m := &Manager{
		names:  make(map[string]Holder),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(m); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return m, errs
}

// MustNewManager is like NewManager but panics if any option fails.
// Use it in main() or initialization code where panic is acceptable.
func MustNewManager(options ...Option) *Manager {
	m, err := NewManager(options...)
	if err != nil {
		panic(fmt.Sprintf("resource: failed to create manager: %v", err))
	}
	return m
}

// Register adds h to the manager.
//
// Errors:
//   - Returns error if h is nil or has an empty name
//   - Returns [ErrDuplicateName] if a resource with the same name (ignoring case) exists
func (m *Manager) Register(h Holder) error {
	if h == nil {
		return errors.New("resource cannot be nil")
	}
	if h.Name() == "" {
		return errors.New("resource name cannot be empty")
	}

	key := strings.ToLower(h.Name())

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.names[key]; exists {
		return NewResourceError("manager", h.Name(), "register", ErrDuplicateName)
	}
	m.names[key] = h
	m.resources = append(m.resources, h)
	return nil
}

// Add creates a resource and registers it with m.
//
// Example:
//
//	layer, err := resource.Add(m, codec.NewLayer(layer.Standard()), layer.Normal,
//	    "session.screen0.slit.layer", "Session.Screen0.Slit.Layer")
func Add[T any](m *Manager, c codec.Codec[T], def T, name, altName string) (*Resource[T], error) {
	r := New(c, def, name, altName)
	if err := m.Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

// MustAdd is like Add but panics on error.
func MustAdd[T any](m *Manager, c codec.Codec[T], def T, name, altName string) *Resource[T] {
	r, err := Add(m, c, def, name, altName)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the resource registered under name, ignoring case.
func (m *Manager) Lookup(name string) (Holder, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, ok := m.names[strings.ToLower(name)]
	return h, ok
}

// Resources returns the registered resources in registration order.
func (m *Manager) Resources() []Holder {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.resources)
}

// Snapshot returns every resource's encoded value keyed by its name.
func (m *Manager) Snapshot() map[string]string {
	resources := m.Resources()

	out := make(map[string]string, len(resources))
	for _, h := range resources {
		out[h.Name()] = h.String()
	}
	return out
}

// Reset restores every resource to its default.
func (m *Manager) Reset() {
	for _, h := range m.Resources() {
		h.SetDefault()
	}
}

// Load reads all sources, merges them (later sources override earlier ones)
// and decodes the result into the registered resources.
//
// A resource is looked up by its name, then by its alternative name. A
// resource found in neither is restored to its default. Values a codec
// rejects never fail Load: they are kept or reset as the codec decides and
// logged.
//
// Errors:
//   - Returns error if ctx is nil
//   - Returns [Error] if any source fails to load or merge
//   - Returns [Error] if JSON schema or custom validation fails
func (m *Manager) Load(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context cannot be nil")
	}

	merged, err := m.loadSources(ctx)
	if err != nil {
		return err
	}

	if m.schema != nil {
		if err = m.schema.Validate(merged); err != nil {
			return NewError("json-schema", "validate", err)
		}
	}

	for i, validate := range m.validators {
		if err = validate(merged); err != nil {
			return NewError(fmt.Sprintf("validator[%d]", i), "validate", err)
		}
	}

	flat, err := keypath.Flatten(merged)
	if err != nil {
		return NewError("sources", "flatten", err)
	}

	for _, h := range m.Resources() {
		m.apply(h, flat)
	}

	return nil
}

// MustLoad is like Load but panics on error.
func (m *Manager) MustLoad(ctx context.Context) {
	if err := m.Load(ctx); err != nil {
		panic(err)
	}
}

// apply decodes the value for h from flat, falling back to its default.
func (m *Manager) apply(h Holder, flat map[string]string) {
	key := strings.ToLower(h.Name())
	text, ok := flat[key]
	if !ok && h.AltName() != "" {
		key = strings.ToLower(h.AltName())
		text, ok = flat[key]
	}

	if !ok {
		h.SetDefault()
		m.logger.Debug("resource not set, using default",
			slog.String("resource", h.Name()),
			slog.String("default", h.String()))
		return
	}

	switch outcome := h.Decode(text); outcome {
	case codec.Kept:
		m.logger.Debug("resource value rejected, keeping current value",
			slog.String("resource", h.Name()),
			slog.String("key", key),
			slog.String("value", text),
			slog.String("current", h.String()))
	case codec.Reset:
		m.logger.Warn("resource value rejected, using default",
			slog.String("resource", h.Name()),
			slog.String("key", key),
			slog.String("value", text),
			slog.String("default", h.String()))
	}
}

// loadSources loads every source in order and merges the results.
func (m *Manager) loadSources(ctx context.Context) (map[string]any, error) {
	merged := make(map[string]any)
	for i, src := range m.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		conf, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}
		if conf == nil {
			continue
		}

		if err = mergo.Map(&merged, normalizeMapKeys(conf), mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "merge", err)
		}
	}
	return merged, nil
}

// Dump encodes every resource and writes the snapshot to all dumpers.
//
// Errors:
//   - Returns error if ctx is nil
//   - Returns [ErrNameConflict] if one resource name is a prefix of another
//   - Returns [Error] if any dumper fails
func (m *Manager) Dump(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context cannot be nil")
	}

	values, err := keypath.Expand(m.Snapshot())
	if err != nil {
		return NewError("manager", "expand", fmt.Errorf("%w: %w", ErrNameConflict, err))
	}

	for i, d := range m.dumpers {
		if err = ctx.Err(); err != nil {
			return err
		}
		// Each dumper gets its own copy of the top level.
		snapshot := maps.Clone(values)
		if err = d.Dump(ctx, &snapshot); err != nil {
			return NewError(fmt.Sprintf("dumper[%d]", i), "dump", err)
		}
	}

	return nil
}

// MustDump is like Dump but panics on error.
func (m *Manager) MustDump(ctx context.Context) {
	if err := m.Dump(ctx); err != nil {
		panic(err)
	}
}

// normalizeMapKeys recursively lower-cases map keys for case-insensitive merging.
func normalizeMapKeys(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeMapKeys(nested)
		}
		normalized[strings.ToLower(k)] = v
	}
	return normalized
}
