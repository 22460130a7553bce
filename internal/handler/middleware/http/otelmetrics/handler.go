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

package otelmetrics

import (
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"

	"github.com/fikea/fikea/internal/x"
	"github.com/fikea/fikea/internal/x/httpx"
)

const (
	instrumentationName = "github.com/fikea/fikea/internal/handler/middleware/http/otelmetrics"

	requestsActive = "http.server.active_requests"
	pageViews      = "fikea.page.views"

	sectionKey = attribute.Key("fikea.page.section")
)

// New counts the requests currently in flight and the page views per catalog section
// and response status.
func New(opts ...Option) func(http.Handler) http.Handler {
	conf := newConfig(opts...)

	meter := conf.provider.Meter(instrumentationName)

	activeRequests, err := meter.Int64UpDownCounter(
		requestsActive,
		metric.WithDescription("Measures the number of concurrent HTTP requests that are currently in-flight."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		panic(err)
	}

	views, err := meter.Int64Counter(
		pageViews,
		metric.WithDescription("Counts the catalog pages served."),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if !conf.shouldProcess(req) {
				next.ServeHTTP(rw, req)

				return
			}

			attributes := serverRequestAttributes(conf.server, req)
			active := metric.WithAttributes(attributes...)

			activeRequests.Add(req.Context(), 1, active)

			metrics := httpsnoop.CaptureMetrics(next, rw, req)

			activeRequests.Add(req.Context(), -1, active) //nolint:contextcheck

			section := conf.section(req)
			views.Add(req.Context(), 1, metric.WithAttributes(append(attributes, //nolint:contextcheck
				sectionKey.String(x.IfThenElse(len(section) != 0, section, "other")),
				semconv.HTTPResponseStatusCode(metrics.Code),
			)...))
		})
	}
}

func serverRequestAttributes(server string, req *http.Request) []attribute.KeyValue {
	host, port := httpx.HostPort(x.IfThenElse(len(server) != 0, server, req.Host))
	if port < 0 && len(server) != 0 {
		_, port = httpx.HostPort(req.Host)
	}

	attrs := []attribute.KeyValue{
		methodAttribute(req.Method),
		semconv.URLScheme(x.IfThenElse(req.TLS != nil, "https", "http")),
		semconv.ServerAddress(host),
	}

	if port > 0 {
		attrs = append(attrs, semconv.ServerPort(port))
	}

	return attrs
}

func methodAttribute(method string) attribute.KeyValue {
	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodHead:
	default:
		method = "_OTHER"
	}

	return semconv.HTTPRequestMethodKey.String(method)
}
