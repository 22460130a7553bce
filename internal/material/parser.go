// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"strings"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/x/errorchain"
)

const (
	partSeparator = "|"
	partCount     = 3
)

// ParseString parses strings of the form "<TYPE>|<name>|<color>". Every part is trimmed,
// TYPE is matched case-insensitively.
func ParseString(val string) (Type, string, string, error) {
	parts := strings.Split(val, partSeparator)
	if len(parts) != partCount {
		return 0, "", "", errorchain.NewWithMessagef(fikea.ErrFormat,
			"invalid material format string %q - expected %d parts, got %d", val, partCount, len(parts))
	}

	for idx := range parts {
		parts[idx] = strings.TrimSpace(parts[idx])
	}

	typ, ok := TypeFromString(parts[0])
	if !ok {
		return 0, "", "", errorchain.NewWithMessagef(fikea.ErrFormat,
			"invalid material format string %q - %s is not a valid material", val, parts[0])
	}

	return typ, parts[1], parts[2], nil
}
