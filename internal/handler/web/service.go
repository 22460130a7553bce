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

package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/fikea/fikea/internal/cache"
	"github.com/fikea/fikea/internal/config"
	"github.com/fikea/fikea/internal/handler/middleware/http/accesslog"
	"github.com/fikea/fikea/internal/handler/middleware/http/errorhandler"
	"github.com/fikea/fikea/internal/handler/middleware/http/logger"
	"github.com/fikea/fikea/internal/handler/middleware/http/methodfilter"
	"github.com/fikea/fikea/internal/handler/middleware/http/otelmetrics"
	"github.com/fikea/fikea/internal/handler/middleware/http/pagecache"
	"github.com/fikea/fikea/internal/handler/middleware/http/passthrough"
	"github.com/fikea/fikea/internal/handler/middleware/http/recovery"
	"github.com/fikea/fikea/internal/router"
	"github.com/fikea/fikea/internal/x/httpx"
	"github.com/fikea/fikea/internal/x/loggeradapter"
)

const serviceName = "web"

func newService(
	conf *config.Configuration,
	cch cache.Cache,
	rt *router.Router,
	log zerolog.Logger,
) *http.Server {
	cfg := conf.Serve
	eh := errorhandler.New()

	hc := alice.New(
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(
				next,
				"",
				otelhttp.WithTracerProvider(otel.GetTracerProvider()),
				otelhttp.WithServerName(serviceName),
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return fmt.Sprintf("EntryPoint %s %s%s",
						strings.ToLower(req.URL.Scheme), httpx.LocalAddress(req), req.URL.Path)
				}),
			)
		},
		accesslog.New(log),
		logger.New(log),
		recovery.New(eh),
		when(conf.Metrics.Enabled,
			func() func(http.Handler) http.Handler {
				return otelmetrics.New(
					otelmetrics.WithServerName(cfg.Address()),
					otelmetrics.WithSectionResolver(otelmetrics.FirstSegments(2)),
				)
			},
		),
		methodfilter.New(http.MethodGet, http.MethodHead),
		when(cfg.CORS != nil,
			func() func(http.Handler) http.Handler {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
		),
		when(conf.Cache.Enabled,
			func() func(http.Handler) http.Handler { return pagecache.New(cch, conf.Cache.TTL) },
		),
	).Then(rt)

	return &http.Server{
		Handler:      hc,
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
		ErrorLog:     loggeradapter.NewStdLogger(log),
	}
}

// when returns the middleware created by mw if cond holds and a passthrough otherwise.
func when(cond bool, mw func() func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if !cond {
		return passthrough.New
	}

	return mw()
}
