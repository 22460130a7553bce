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

package otel

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.uber.org/fx"

	"github.com/fikea/fikea/internal/config"
	"github.com/fikea/fikea/internal/x"
	"github.com/fikea/fikea/internal/x/opentelemetry/exporters"
	"github.com/fikea/fikea/internal/x/testsupport"
)

type mockLifecycle struct{ mock.Mock }

func (m *mockLifecycle) Append(hook fx.Hook) { m.Called(hook) }

func TestInitTraceProvider(t *testing.T) {
	for _, tc := range []struct {
		uc         string
		conf       config.TracingConfig
		setupMocks func(t *testing.T, lcMock *mockLifecycle)
		assert     func(t *testing.T, err error, propagator propagation.TextMapPropagator, logged string)
	}{
		{
			uc:   "disabled tracing",
			conf: config.TracingConfig{Enabled: false},
			assert: func(t *testing.T, err error, _ propagation.TextMapPropagator, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "tracing disabled")
			},
		},
		{
			uc:   "failing exporter creation",
			conf: config.TracingConfig{Enabled: true},
			setupMocks: func(t *testing.T, _ *mockLifecycle) {
				t.Helper()

				t.Setenv("OTEL_TRACES_EXPORTER", "does_not_exist")
			},
			assert: func(t *testing.T, err error, _ propagation.TextMapPropagator, _ string) {
				t.Helper()

				require.ErrorIs(t, err, exporters.ErrUnsupportedTracesExporterType)
			},
		},
		{
			uc:   "successful initialization",
			conf: config.TracingConfig{Enabled: true},
			setupMocks: func(t *testing.T, lcMock *mockLifecycle) {
				t.Helper()

				lcMock.On("Append",
					mock.MatchedBy(func(hook fx.Hook) bool {
						return hook.OnStop(t.Context()) == nil
					}),
				)
			},
			assert: func(t *testing.T, err error, propagator propagation.TextMapPropagator, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "tracing initialized")

				require.Len(t, propagator, 2)
				assert.Contains(t, propagator, propagation.TraceContext{})
				assert.Contains(t, propagator, propagation.Baggage{})
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			setupMocks := x.IfThenElse(
				tc.setupMocks != nil,
				tc.setupMocks,
				func(t *testing.T, _ *mockLifecycle) { t.Helper() })
			lc := &mockLifecycle{}
			tb := &testsupport.TestingLog{TB: t}
			logger := zerolog.New(zerolog.TestWriter{T: tb})

			setupMocks(t, lc)

			// WHEN
			err := initTraceProvider(&config.Configuration{Tracing: tc.conf}, resource.Default(), logger, lc)

			// THEN
			tc.assert(t, err, otel.GetTextMapPropagator(), tb.CollectedLog())
			lc.AssertExpectations(t)
		})
	}
}

func TestInitMeterProvider(t *testing.T) {
	for _, tc := range []struct {
		uc         string
		conf       config.MetricsConfig
		setupMocks func(t *testing.T, lcMock *mockLifecycle)
		assert     func(t *testing.T, err error, reg *prometheus.Registry, logged string)
	}{
		{
			uc:   "disabled metrics",
			conf: config.MetricsConfig{Enabled: false},
			assert: func(t *testing.T, err error, _ *prometheus.Registry, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "metrics disabled")
			},
		},
		{
			uc:   "failing exporter creation",
			conf: config.MetricsConfig{Enabled: true},
			setupMocks: func(t *testing.T, _ *mockLifecycle) {
				t.Helper()

				t.Setenv("OTEL_METRICS_EXPORTER", "does_not_exist")
			},
			assert: func(t *testing.T, err error, _ *prometheus.Registry, _ string) {
				t.Helper()

				require.ErrorIs(t, err, exporters.ErrUnsupportedMetricExporterType)
			},
		},
		{
			uc:   "successful initialization",
			conf: config.MetricsConfig{Enabled: true},
			setupMocks: func(t *testing.T, lcMock *mockLifecycle) {
				t.Helper()

				lcMock.On("Append", mock.AnythingOfType("fx.Hook"))
			},
			assert: func(t *testing.T, err error, reg *prometheus.Registry, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "metrics initialized")

				families, err := reg.Gather()
				require.NoError(t, err)

				names := make([]string, 0, len(families))
				for _, family := range families {
					names = append(names, family.GetName())
				}

				assert.Contains(t, names, "target_info")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			setupMocks := x.IfThenElse(
				tc.setupMocks != nil,
				tc.setupMocks,
				func(t *testing.T, _ *mockLifecycle) { t.Helper() })
			lc := &mockLifecycle{}
			reg := prometheus.NewRegistry()
			tb := &testsupport.TestingLog{TB: t}
			logger := zerolog.New(zerolog.TestWriter{T: tb})

			setupMocks(t, lc)

			// WHEN
			err := initMeterProvider(&config.Configuration{Metrics: tc.conf}, resource.Default(), reg, logger, lc)

			// THEN
			tc.assert(t, err, reg, tb.CollectedLog())
			lc.AssertExpectations(t)
		})
	}
}
