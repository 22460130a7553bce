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

package exporters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/fikea/fikea/internal/x"
)

func TestCreateSpanExporters(t *testing.T) {
	for uc, tc := range map[string]struct {
		names  []string
		setup  func(t *testing.T)
		assert func(t *testing.T, err error, exporters []trace.SpanExporter)
	}{
		"no names": {
			assert: func(t *testing.T, err error, exporters []trace.SpanExporter) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, exporters, 1)
				assert.IsType(t, noopSpanExporter{}, exporters[0])
			},
		},
		"none exporter wins": {
			names: []string{"otlp", "none", "foobar"},
			assert: func(t *testing.T, err error, exporters []trace.SpanExporter) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, exporters, 1)
				assert.IsType(t, noopSpanExporter{}, exporters[0])
			},
		},
		"unsupported exporter type": {
			names: []string{"foobar"},
			assert: func(t *testing.T, err error, _ []trace.SpanExporter) {
				t.Helper()

				require.ErrorIs(t, err, ErrUnsupportedTracesExporterType)
				assert.Contains(t, err.Error(), "foobar")
			},
		},
		"unsupported otlp protocol": {
			names: []string{"otlp"},
			setup: func(t *testing.T) {
				t.Helper()

				t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "foobar")
			},
			assert: func(t *testing.T, err error, _ []trace.SpanExporter) {
				t.Helper()

				require.ErrorIs(t, err, ErrFailedCreatingTracesExporter)
				require.ErrorIs(t, err, ErrUnsupportedOTLPProtocol)
			},
		},
		"otlp over http and grpc": {
			names: []string{"otlp", " otlp"},
			setup: func(t *testing.T) {
				t.Helper()

				t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
			},
			assert: func(t *testing.T, err error, exporters []trace.SpanExporter) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, exporters, 2)
				assert.IsType(t, &otlptrace.Exporter{}, exporters[0])
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			setup := x.IfThenElse(tc.setup == nil, func(t *testing.T) { t.Helper() }, tc.setup)
			setup(t)

			// WHEN
			exporters, err := createSpanExporters(t.Context(), tc.names...)

			// THEN
			tc.assert(t, err, exporters)
		})
	}
}

func TestNewSpanExportersDefaultsToNone(t *testing.T) {
	// WHEN
	exporters, err := NewSpanExporters(t.Context())

	// THEN
	require.NoError(t, err)
	require.Len(t, exporters, 1)
	assert.IsType(t, noopSpanExporter{}, exporters[0])
}
