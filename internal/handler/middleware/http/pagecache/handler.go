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

package pagecache

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/fikea/fikea/internal/cache"
)

const keyPrefix = "page:"

type entry struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// New serves GET and HEAD requests from cch if a page for the request URI is present and
// stores the responses to GET requests with status 200 for ttl.
func New(cch cache.Cache, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if req.Method != http.MethodGet && req.Method != http.MethodHead {
				next.ServeHTTP(rw, req)

				return
			}

			ctx := req.Context()
			logger := zerolog.Ctx(ctx)
			key := keyPrefix + req.URL.RequestURI()

			if ent, ok := lookup(req, cch, key); ok {
				rw.Header().Set("Content-Type", ent.ContentType)
				rw.Header().Set("Content-Length", strconv.Itoa(len(ent.Body)))
				rw.Header().Set("X-Cache", "HIT")
				rw.WriteHeader(http.StatusOK)

				if req.Method == http.MethodGet {
					_, _ = rw.Write(ent.Body)
				}

				return
			}

			rw.Header().Set("X-Cache", "MISS")

			if req.Method == http.MethodHead {
				next.ServeHTTP(rw, req)

				return
			}

			var (
				status = http.StatusOK
				body   bytes.Buffer
			)

			next.ServeHTTP(httpsnoop.Wrap(rw, httpsnoop.Hooks{
				WriteHeader: func(writeHeader httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						status = code

						writeHeader(code)
					}
				},
				Write: func(write httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(b []byte) (int, error) {
						body.Write(b)

						return write(b)
					}
				},
			}), req)

			if status != http.StatusOK {
				return
			}

			data, err := json.Marshal(entry{ContentType: rw.Header().Get("Content-Type"), Body: body.Bytes()})
			if err == nil {
				err = cch.Set(ctx, key, data, ttl)
			}

			if err != nil {
				logger.Warn().Err(err).Str("_key", key).Msg("Failed to cache page")
			}
		})
	}
}

func lookup(req *http.Request, cch cache.Cache, key string) (entry, bool) {
	var ent entry

	data, err := cch.Get(req.Context(), key)
	if err != nil {
		return ent, false
	}

	if err = json.Unmarshal(data, &ent); err != nil {
		zerolog.Ctx(req.Context()).Warn().Err(err).Str("_key", key).Msg("Dropping malformed cache entry")

		_ = cch.Delete(req.Context(), key)

		return ent, false
	}

	return ent, true
}
