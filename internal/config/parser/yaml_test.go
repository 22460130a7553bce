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
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikea/fikea/internal/fikea"
)

func TestKoanfFromYaml(t *testing.T) {
	t.Setenv("YAMLTEST_NAME", "from env")

	for _, tc := range []struct {
		uc     string
		config string
		assert func(t *testing.T, err error, konf *koanf.Koanf)
	}{
		{
			uc: "valid content",
			config: `
some_string: foo
someint: 3
nested1:
  somebool: true
  some_string: ${YAMLTEST_NAME}
nested_2:
  - somebool: false
    some_string: baz
`,
			assert: func(t *testing.T, err error, konf *koanf.Koanf) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "foo", konf.Get("some_string"))
				assert.Equal(t, 3, konf.Get("someint"))
				assert.Equal(t, "from env", konf.Get("nested1.some_string"))
				assert.Equal(t, true, konf.Get("nested1.somebool"))
				assert.Len(t, konf.Get("nested_2"), 1)
			},
		},
		{
			uc:     "invalid content",
			config: "foobar",
			assert: func(t *testing.T, err error, _ *koanf.Koanf) {
				t.Helper()

				require.ErrorIs(t, err, fikea.ErrConfiguration)
				assert.Contains(t, err.Error(), "failed to load")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			fileName := writeFile(t, t.TempDir(), "config.yaml", tc.config)

			// WHEN
			konf, err := koanfFromYaml(fileName)

			// THEN
			tc.assert(t, err, konf)
		})
	}
}
