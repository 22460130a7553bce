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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/x/errorchain"
)

var isNumRegex = regexp.MustCompile(`^\d+$`) //nolint:gochecknoglobals

func messageDigest(val, hash string) string {
	mds := sha256.New()
	mds.Write([]byte(val))
	mds.Write([]byte(hash))

	return hex.EncodeToString(mds.Sum(nil))
}

// toRealType lets the yaml parser guess the type of the given value.
func toRealType(val string) any {
	var parsed map[string]any

	yaml.Unmarshal([]byte("val: "+val), &parsed) // nolint: errcheck

	return parsed["val"]
}

// convert turns numeric key parts into slice positions. "foo.1.bar" becomes the key "foo"
// with a two element slice, holding a map with the key "bar" at index 1.
func convert(key, val, hash string) (string, any, string) {
	parts := strings.Split(key, ".")

	pos := -1

	var prefix, postfix string

	for idx, part := range parts {
		if !isNumRegex.MatchString(part) {
			continue
		}

		pos, _ = strconv.Atoi(part)
		prefix = strings.Join(parts[:idx], ".")
		postfix = strings.Join(parts[idx+1:], ".")

		break
	}

	if pos == -1 {
		return key, toRealType(val), messageDigest(val, hash)
	}

	slice := make([]any, pos+1)

	newKey, newVal, hash := convert(postfix, val, messageDigest(val, hash))
	if len(newKey) != 0 {
		slice[pos] = map[string]any{newKey: newVal}
	} else {
		slice[pos] = newVal
	}

	return prefix, slice, hash
}

func cleanSuffix(val any) any {
	values, ok := val.(map[string]any)
	if !ok {
		return val
	}

	result := make(map[string]any, len(values))

	for key, value := range values {
		name, _, _ := strings.Cut(key, "#")
		result[name] = cleanSuffix(value)
	}

	return result
}

// koanfFromEnv reads all variables starting with prefix. "_" separates the hierarchy
// levels, "__" stands for a literal underscore.
func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
			tmp = strings.ReplaceAll(tmp, "_", ".")
			normalizedKey := strings.ReplaceAll(tmp, `\:\`, "_")

			newKey, newVal, hash := convert(normalizedKey, val, normalizedKey)

			return fmt.Sprintf("%s#%s", newKey, hash), newVal
		},
	})

	err := parser.Load(provider,
		nil,
		koanf.WithMergeFunc(func(src, dest map[string]any) error {
			for key, val := range src {
				name, _, _ := strings.Cut(key, "#")
				if err := mergeInto(dest, name, val); err != nil {
					return err
				}
			}

			return nil
		}),
	)
	if err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return parser, nil
}
