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

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/product/factory"
)

func TestFormatOf(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		path      string
		expFormat Format
		expErr    error
	}{
		{path: "products.json", expFormat: FormatJSON},
		{path: "/etc/fikea/products.YAML", expFormat: FormatYAML},
		{path: "products.yml", expFormat: FormatYAML},
		{path: "products", expErr: fikea.ErrArgument},
		{path: "products.toml", expErr: fikea.ErrArgument},
	} {
		t.Run(tc.path, func(t *testing.T) {
			format, err := FormatOf(tc.path)

			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expFormat, format)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Setenv("FIKEA_TEST_MATERIAL", "WOOD|Oak|Brown")

	for _, tc := range []struct {
		uc            string
		content       string
		format        Format
		substituteEnv bool
		expRecords    []RecordSet
		expErr        error
	}{
		{
			uc:      "json",
			content: `{"chairs": [{"id": 1, "name": "Ergo", "price": 149.9, "material": "WOOD|Oak|Brown"}], "beds": []}`,
			format:  FormatJSON,
			expRecords: []RecordSet{
				{
					Category: "chairs",
					Records:  []factory.Record{{"id": 1, "name": "Ergo", "price": 149.9, "material": "WOOD|Oak|Brown"}},
				},
				{Category: "beds", Records: []factory.Record{}},
			},
		},
		{
			uc: "yaml with substitution",
			content: `
other:
  - id: 5
    name: Lamp
    price: 15
    material: ${FIKEA_TEST_MATERIAL}
`,
			format:        FormatYAML,
			substituteEnv: true,
			expRecords: []RecordSet{
				{
					Category: "other",
					Records:  []factory.Record{{"id": 5, "name": "Lamp", "price": 15, "material": "WOOD|Oak|Brown"}},
				},
			},
		},
		{
			uc:      "substitution disabled",
			content: `{"other": [{"material": "${FIKEA_TEST_MATERIAL}"}]}`,
			format:  FormatJSON,
			expRecords: []RecordSet{
				{Category: "other", Records: []factory.Record{{"material": "${FIKEA_TEST_MATERIAL}"}}},
			},
		},
		{uc: "malformed json", content: `{"chairs": [`, format: FormatJSON, expErr: fikea.ErrFormat},
		{uc: "top level is a list", content: `[{"id": 1}]`, format: FormatJSON, expErr: fikea.ErrFormat},
		{uc: "category is not a list", content: `{"chairs": {"id": 1}}`, format: FormatJSON, expErr: fikea.ErrFormat},
		{uc: "record is not an object", content: "chairs:\n  - 1\n", format: FormatYAML, expErr: fikea.ErrFormat},
		{
			uc:      "nested values in a record",
			content: `{"chairs": [{"id": 1, "material": {"type": "WOOD"}}]}`,
			format:  FormatJSON,
			expErr:  fikea.ErrFormat,
		},
		{uc: "unknown format", content: "{}", format: Format(42), expErr: fikea.ErrArgument},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			records, err := Decode([]byte(tc.content), tc.format, tc.substituteEnv)

			// THEN
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expRecords, records)
		})
	}
}

func TestDecodeKeepsCategoryOrder(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		content string
		format  Format
	}{
		{
			uc: "json",
			content: `{
  "tables": [{"id": 1, "name": "Desk {\"oak\"}", "price": 1.5}],
  "chairs": [],
  "beds": [{"id": 2, "grate_included_id": null}],
  "other": []
}`,
			format: FormatJSON,
		},
		{
			uc:      "yaml",
			content: "tables:\n  - id: 1\nchairs: []\nbeds:\n  - id: 2\nother: []\n",
			format:  FormatYAML,
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			sets, err := Decode([]byte(tc.content), tc.format, false)

			// THEN
			require.NoError(t, err)

			categories := make([]string, 0, len(sets))
			for _, set := range sets {
				categories = append(categories, set.Category)
			}

			assert.Equal(t, []string{"tables", "chairs", "beds", "other"}, categories)
		})
	}
}

func TestJSONKeyOrder(t *testing.T) {
	t.Parallel()

	// WHEN
	keys, err := jsonKeyOrder([]byte(`{"z": {"a": [1, {"b": []}]}, "y": "}", "x": [[], {}], "w": null}`))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x", "w"}, keys)
}
