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
	"strings"

	"github.com/hashicorp/consul/api"

	"rivaas.dev/resource/format"
	"rivaas.dev/resource/internal/keypath"
)

// ConsulKV defines the interface for Consul key-value operations.
// This interface enables testing by allowing mock implementations.
type ConsulKV interface {
	Get(key string, q *api.QueryOptions) (*api.KVPair, *api.QueryMeta, error)
}

// Consul loads resource values from a key in Consul's key-value store.
//
// With a document decoder (JSON, YAML, TOML, HCL) the key holds a whole
// snapshot. With [format.TextFormat] the key holds one value and the last
// path segment of the key is used as the resource name, so the key
// "fluxbox/session.screen0.toolbar.layer" sets session.screen0.toolbar.layer.
//
// The Consul client is configured using environment variables:
//   - CONSUL_HTTP_ADDR: The address of the Consul server (e.g., "http://localhost:8500")
//   - CONSUL_HTTP_TOKEN: The access token for authentication (optional)
type Consul struct {
	kv        ConsulKV
	path      string
	lastIndex uint64
	decoder   format.Decoder
}

// NewConsul creates a Consul source for path. If kv is nil, the default
// Consul client's KV endpoint is used.
//
// Errors:
//   - Returns error if the Consul client cannot be created
func NewConsul(path string, decoder format.Decoder, kv ConsulKV) (*Consul, error) {
	if kv == nil {
		client, err := api.NewClient(api.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create consul client: %w", err)
		}
		kv = client.KV()
	}
	return &Consul{
		kv:      kv,
		path:    path,
		decoder: decoder,
	}, nil
}

// LastIndex returns the Consul index observed by the last successful Load.
func (c *Consul) LastIndex() uint64 {
	return c.lastIndex
}

// Load fetches and decodes the key. A missing key yields an empty map.
//
// Errors:
//   - Returns error if the Consul query fails
//   - Returns error if decoding the value fails
func (c *Consul) Load(ctx context.Context) (map[string]any, error) {
	pair, meta, err := c.kv.Get(c.path, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get consul key: %w", err)
	}

	if pair == nil {
		return make(map[string]any), nil
	}

	if meta != nil {
		c.lastIndex = meta.LastIndex
	}

	switch c.decoder.(type) {
	case format.TextFormat, *format.TextFormat:
		var value string
		if err = c.decoder.Decode(pair.Value, &value); err != nil {
			return nil, fmt.Errorf("failed to decode consul value: %w", err)
		}
		keyParts := strings.Split(pair.Key, "/")
		values, err := keypath.Expand(map[string]string{keyParts[len(keyParts)-1]: value})
		if err != nil {
			return nil, fmt.Errorf("failed to expand consul key: %w", err)
		}
		return values, nil
	}

	var values map[string]any
	if err = c.decoder.Decode(pair.Value, &values); err != nil {
		return nil, fmt.Errorf("failed to decode consul value: %w", err)
	}

	return values, nil
}
