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
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fikea/fikea/internal/x"
)

const gelfVersion = "1.1"

// severities maps zerolog levels to syslog severities as used in the GELF level field.
// Levels not listed are reported as emergency (0).
var severities = map[zerolog.Level]int8{ //nolint:gochecknoglobals
	zerolog.TraceLevel: 7,
	zerolog.DebugLevel: 7,
	zerolog.InfoLevel:  6,
	zerolog.WarnLevel:  4,
	zerolog.ErrorLevel: 3,
	zerolog.FatalLevel: 2,
	zerolog.PanicLevel: 1,
}

type severityHook struct{}

func (severityHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		e.Int8("level", severities[level])
	}
}

func newGELFLogger(level zerolog.Level, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "_level_name"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strings.ToUpper(l.String())
	}
	zerolog.MessageFieldName = "short_message"
	zerolog.ErrorFieldName = "_error" // nolint: reassign
	zerolog.CallerFieldName = "_caller"

	hostname, err := os.Hostname()

	return zerolog.New(out).Level(level).With().
		Str("version", gelfVersion).
		Str("host", x.IfThenElse(err == nil, hostname, "unknown")).
		Timestamp().
		Logger().
		Hook(severityHook{})
}
