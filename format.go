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
	"fmt"

	"rivaas.dev/resource/format"
)

// detectFormat picks the document format registered for the extension of path.
func detectFormat(path string) (format.Type, error) {
	typ, err := format.ForPath(path)
	if err != nil {
		return "", fmt.Errorf("%w; use an *As option to name the format", err)
	}
	return typ, nil
}
