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

	"github.com/fikea/fikea/internal/repository"
)

type Type int

const (
	Wood Type = iota + 1
	Metal
	Plastic
	Other
)

// nolint: gochecknoglobals
var typeNames = map[Type]string{
	Wood:    "WOOD",
	Metal:   "METAL",
	Plastic: "PLASTIC",
	Other:   "OTHER",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// TypeFromString matches the given value case-insensitively against the known material types.
func TypeFromString(val string) (Type, bool) {
	for typ, name := range typeNames {
		if strings.EqualFold(name, val) {
			return typ, true
		}
	}

	return 0, false
}

// Material is identified by its name. DisplayName is computed once on creation.
type Material struct {
	Type        Type
	Name        string
	Color       string
	DisplayName string
}

func (m *Material) String() string { return m.DisplayName }

// Pool holds the deduplicated materials keyed by name.
type Pool = repository.Repository[string, *Material]

func NewPool() Pool {
	return repository.New[string, *Material](
		func(m *Material) (string, bool) {
			if m == nil {
				return "", false
			}

			return m.Name, true
		},
	)
}
