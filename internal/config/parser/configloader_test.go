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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikea/fikea/internal/fikea"
)

type testNestedConfig struct {
	SomeBool   bool   `koanf:"somebool"`
	SomeString string `koanf:"some_string"`
	SomeInt    int    `koanf:"someint"`
}

type testConfig struct {
	SomeString string             `koanf:"some_string"`
	SomeInt    int                `koanf:"someint"`
	SomeBool   bool               `koanf:"some_bool"`
	Timeout    time.Duration      `koanf:"timeout,string"`
	Nested1    testNestedConfig   `koanf:"nested1"`
	Nested2    []testNestedConfig `koanf:"nested_2"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestConfigLoaderLoad(t *testing.T) {
	// GIVEN
	config := testConfig{
		SomeString: "default value",
		SomeInt:    666,
		Timeout:    time.Second,
		Nested2: []testNestedConfig{
			{
				SomeBool: true,
			},
		},
	}

	fileName := writeFile(t, t.TempDir(), "test.yaml", `
some_string: "overridden by yaml file"
someint: 10
timeout: ${TIMEOUT_FOR_LOADERTEST}
nested1:
  somebool: true
nested_2:
  - some_string: "from yaml"
`)

	t.Setenv("TIMEOUT_FOR_LOADERTEST", "2m")
	t.Setenv("CONFIGLOADERTEST_SOME__BOOL", "true")
	t.Setenv("CONFIGLOADERTEST_SOMEINT", "42")
	t.Setenv("CONFIGLOADERTEST_NESTED1_SOME__STRING", "from env")
	t.Setenv("CONFIGLOADERTEST_NESTED1_SOMEINT", "111")
	t.Setenv("CONFIGLOADERTEST_NESTED__2_0_SOMEINT", "222")
	t.Setenv("CONFIGLOADERTEST_NESTED__2_1_SOMEBOOL", "true")
	t.Setenv("CONFIGLOADERTEST_NESTED__2_1_SOME__STRING", "from env as well")

	// WHEN
	err := New(
		WithConfigFile(fileName),
		WithEnvPrefix("CONFIGLOADERTEST_"),
	).Load(&config)

	// THEN
	require.NoError(t, err)

	assert.Equal(t, "overridden by yaml file", config.SomeString)
	assert.Equal(t, 42, config.SomeInt)
	assert.True(t, config.SomeBool)
	assert.Equal(t, 2*time.Minute, config.Timeout)
	assert.Equal(t, "from env", config.Nested1.SomeString)
	assert.Equal(t, 111, config.Nested1.SomeInt)
	assert.True(t, config.Nested1.SomeBool)
	require.Len(t, config.Nested2, 2)
	assert.Equal(t, "from yaml", config.Nested2[0].SomeString)
	assert.Equal(t, 222, config.Nested2[0].SomeInt)
	assert.Equal(t, "from env as well", config.Nested2[1].SomeString)
	assert.True(t, config.Nested2[1].SomeBool)
}

func TestConfigLoaderLooksUpDefaultFile(t *testing.T) {
	// GIVEN
	emptyDir := t.TempDir()
	confDir := t.TempDir()
	writeFile(t, confDir, "fikea.yaml", "some_string: from lookup dir\n")

	config := testConfig{SomeString: "default"}

	// WHEN
	err := New(
		WithDefaultConfigFilename("fikea.yaml"),
		WithConfigLookupDir(emptyDir),
		WithConfigLookupDir(confDir),
		WithEnvPrefix("CONFIGLOOKUPTEST_"),
	).Load(&config)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "from lookup dir", config.SomeString)
}

func TestConfigLoaderWithoutAnySource(t *testing.T) {
	// GIVEN
	config := testConfig{SomeString: "default", SomeInt: 1}

	// WHEN
	err := New(WithEnvPrefix("CONFIGNOSOURCETEST_"), WithConfigLookupDir(t.TempDir())).Load(&config)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "default", config.SomeString)
	assert.Equal(t, 1, config.SomeInt)
	assert.False(t, config.SomeBool)
	assert.Zero(t, config.Timeout)
	assert.Equal(t, testNestedConfig{}, config.Nested1)
	// a nil slice default is loaded as an empty one
	assert.Empty(t, config.Nested2)
}

func TestConfigLoaderFails(t *testing.T) {
	for _, tc := range []struct {
		uc   string
		opts func(t *testing.T) []Option
	}{
		{
			uc: "configured file does not exist",
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))}
			},
		},
		{
			uc: "invalid yaml",
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(writeFile(t, t.TempDir(), "bad.yaml", "foobar"))}
			},
		},
		{
			uc: "value of wrong type",
			opts: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(writeFile(t, t.TempDir(), "bad.yaml", "someint: [1, 2]\n"))}
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			var config testConfig

			// WHEN
			err := New(tc.opts(t)...).Load(&config)

			// THEN
			require.ErrorIs(t, err, fikea.ErrConfiguration)
		})
	}
}
