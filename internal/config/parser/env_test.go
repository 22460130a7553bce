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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKoanfFromEnv(t *testing.T) {
	// GIVEN
	t.Setenv("FOO_SOME_0_STRING__KEY", "first val")
	t.Setenv("FOO_SOME_0_INT__KEY", "10")
	t.Setenv("FOO_SOME_2_INT__KEY", "11")
	t.Setenv("FOO_FOO_2", "baz")
	t.Setenv("FOO_FOO_1", "bar")
	t.Setenv("FOO_A_SIMPLE_KEY", "simple")
	t.Setenv("FOO_A_FLAG", "true")

	// WHEN
	konf, err := koanfFromEnv("FOO_")

	// THEN
	require.NoError(t, err)

	slice, ok := konf.Get("foo").([]any)
	require.True(t, ok)
	assert.Len(t, slice, 3)
	assert.Nil(t, slice[0])
	assert.Equal(t, "bar", slice[1])
	assert.Equal(t, "baz", slice[2])

	slice, ok = konf.Get("some").([]any)
	require.True(t, ok)
	require.Len(t, slice, 3)

	entry1, ok := slice[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"string_key": "first val", "int_key": 10}, entry1)
	assert.Nil(t, slice[1])

	entry3, ok := slice[2].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"int_key": 11}, entry3)

	assert.Equal(t, "simple", konf.Get("a.simple.key"))
	assert.Equal(t, true, konf.Get("a.flag"))
}

func TestToRealType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, toRealType("42"))
	assert.Equal(t, true, toRealType("true"))
	assert.InDelta(t, 0.25, toRealType("0.25"), 0.0001)
	assert.Equal(t, "Another product!", toRealType("Another product!"))
}
