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

package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSeverities(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc    string
		level zerolog.Level
		exp   int8
	}{
		{uc: "trace", level: zerolog.TraceLevel, exp: 7},
		{uc: "debug", level: zerolog.DebugLevel, exp: 7},
		{uc: "info", level: zerolog.InfoLevel, exp: 6},
		{uc: "warn", level: zerolog.WarnLevel, exp: 4},
		{uc: "error", level: zerolog.ErrorLevel, exp: 3},
		{uc: "fatal", level: zerolog.FatalLevel, exp: 2},
		{uc: "panic", level: zerolog.PanicLevel, exp: 1},
		{uc: "everything else", level: zerolog.Level(10), exp: 0},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			assert.Equal(t, tc.exp, severities[tc.level])
		})
	}
}
