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

package tracecontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	// GIVEN
	tp := sdktrace.NewTracerProvider()
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1}, SpanID: trace.SpanID{2}, TraceFlags: trace.FlagsSampled,
	})

	ctx, span := tp.Tracer("test").Start(trace.ContextWithRemoteSpanContext(t.Context(), parent), "test")
	defer span.End()

	// WHEN
	withSpan := Extract(ctx)
	withoutSpan := Extract(t.Context())

	// THEN
	require.NotNil(t, withSpan)
	assert.Equal(t, parent.TraceID().String(), withSpan.TraceID)
	assert.Equal(t, span.SpanContext().SpanID().String(), withSpan.SpanID)
	assert.Equal(t, parent.SpanID().String(), withSpan.ParentID)
	assert.Nil(t, withoutSpan)
}
