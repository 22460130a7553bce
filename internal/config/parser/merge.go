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

package parser

import (
	"reflect"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/x/errorchain"
)

// merge combines src into dest. Maps are merged key by key, slices position by position
// and everything else is replaced by src. Combining a map or a slice with a value of a
// different type is a configuration error.
func merge(dest, src any) (any, error) {
	if dest == nil {
		return cleanSuffix(src), nil
	}

	switch typed := dest.(type) {
	case map[string]any:
		srcMap, ok := src.(map[string]any)
		if !ok {
			return nil, typeMismatch(dest, src)
		}

		return mergeMaps(typed, srcMap)
	case []any:
		srcSlice, ok := src.([]any)
		if !ok {
			return nil, typeMismatch(dest, src)
		}

		return mergeSlices(typed, srcSlice)
	default:
		return cleanSuffix(src), nil
	}
}

func typeMismatch(dest, src any) error {
	return errorchain.NewWithMessagef(fikea.ErrConfiguration,
		"cannot merge %v into %v: %s is not a %s", src, dest, reflect.TypeOf(src), reflect.TypeOf(dest))
}

func mergeSlices(dest, src []any) ([]any, error) {
	if len(dest) < len(src) {
		grown := make([]any, len(src))
		copy(grown, dest)
		dest = grown
	}

	for i, val := range src {
		if val == nil {
			continue
		}

		merged, err := merge(dest[i], val)
		if err != nil {
			return nil, err
		}

		dest[i] = merged
	}

	return dest, nil
}

func mergeMaps(dest, src map[string]any) (map[string]any, error) {
	for key, val := range src {
		if err := mergeInto(dest, key, val); err != nil {
			return nil, err
		}
	}

	return dest, nil
}

// mergeInto merges val into dest[key].
func mergeInto(dest map[string]any, key string, val any) error {
	merged, err := merge(dest[key], val)
	if err != nil {
		return err
	}

	dest[key] = merged

	return nil
}
