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
	"os"
	"strings"

	"rivaas.dev/resource/format"
)

// OSEnvVar loads resource values from environment variables sharing a prefix.
// The prefix is stripped and the remaining name is split on underscores into
// nesting levels, so with prefix "FLUXBOX_" the variable
// FLUXBOX_SESSION_SCREEN0_TOOLBAR_LAYER becomes session.screen0.toolbar.layer.
type OSEnvVar struct {
	prefix  string
	decoder format.Decoder
}

// NewOSEnvVar creates an OSEnvVar source for the given prefix.
func NewOSEnvVar(prefix string) *OSEnvVar {
	return &OSEnvVar{
		prefix:  prefix,
		decoder: format.EnvVarFormat{},
	}
}

// Load collects the matching variables and decodes them.
//
// Errors:
//   - Returns error if decoding fails
func (e *OSEnvVar) Load(_ context.Context) (map[string]any, error) {
	environ := os.Environ()
	matched := make([]string, 0, len(environ))

	for _, env := range environ {
		if !strings.HasPrefix(env, e.prefix) {
			continue
		}
		matched = append(matched, strings.TrimPrefix(env, e.prefix))
	}

	var values map[string]any
	if err := e.decoder.Decode([]byte(strings.Join(matched, "\n")), &values); err != nil {
		return nil, fmt.Errorf("failed to decode environment variables: %w", err)
	}

	return values, nil
}
