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
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// SectionResolver maps a request to the catalog section it addresses, e.g.
// "products/chairs". An empty section is reported as "other".
type SectionResolver func(req *http.Request) string

type config struct {
	server    string
	provider  metric.MeterProvider
	section   SectionResolver
	skipPaths []string
}

type Option func(*config)

func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *config) {
		if provider != nil {
			o.provider = provider
		}
	}
}

func WithSectionResolver(resolver SectionResolver) Option {
	return func(o *config) {
		if resolver != nil {
			o.section = resolver
		}
	}
}

// WithSkipPaths excludes requests to the given paths from being measured.
func WithSkipPaths(paths ...string) Option {
	return func(o *config) {
		o.skipPaths = append(o.skipPaths, paths...)
	}
}

// WithServerName sets the host[:port] reported as server address. Without it the Host
// header of the request is used.
func WithServerName(name string) Option {
	return func(o *config) {
		if len(name) != 0 {
			o.server = name
		}
	}
}

// FirstSegments resolves the section from the first n segments of the request path.
func FirstSegments(n int) SectionResolver {
	return func(req *http.Request) string {
		segments := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
		if len(segments) > n {
			segments = segments[:n]
		}

		return strings.Join(segments, "/")
	}
}

func (c *config) shouldProcess(req *http.Request) bool {
	return !slices.Contains(c.skipPaths, req.URL.Path)
}

func newConfig(opts ...Option) *config {
	conf := config{
		provider: otel.GetMeterProvider(),
		section:  func(_ *http.Request) string { return "" },
	}

	for _, opt := range opts {
		opt(&conf)
	}

	return &conf
}
