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

package router

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
)

const notFoundBody = "<html><body><h1>404 Not Found</h1></body></html>"

type Handler interface {
	// Handle gets the path segments following the matched prefix and the raw query
	// arguments.
	Handle(segments, query []string) Response
}

type HandlerFunc func(segments, query []string) Response

func (f HandlerFunc) Handle(segments, query []string) Response { return f(segments, query) }

type Option func(r *Router)

func WithNotFoundHandler(h Handler) Option {
	return func(r *Router) {
		if h != nil {
			r.notFound = h
		}
	}
}

// Router dispatches a request to the handler registered for the longest matching
// path prefix.
type Router struct {
	mu       sync.RWMutex
	routes   map[string]Handler
	notFound Handler
}

func New(opts ...Option) *Router {
	r := &Router{
		routes: make(map[string]Handler),
		notFound: HandlerFunc(func(_, _ []string) Response {
			return NotFound(notFoundBody)
		}),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Handle registers h for the given prefix, replacing any handler registered before.
// The prefix is expected without leading slash, e.g. "products/chairs".
func (r *Router) Handle(prefix string, h Handler) {
	if h == nil {
		panic("router: nil handler")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes[prefix] = h
}

func (r *Router) HandleFunc(prefix string, h HandlerFunc) {
	r.Handle(prefix, h)
}

// Match looks up the handler for the longest prefix of segments and returns it together
// with the segments not consumed by the prefix.
func (r *Router) Match(segments []string) (Handler, []string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for idx := len(segments); idx > 0; idx-- {
		if h, ok := r.routes[strings.Join(segments[:idx], "/")]; ok {
			return h, segments[idx:], true
		}
	}

	return nil, nil, false
}

func (r *Router) Dispatch(requestPath string) Response {
	segments, query := ParsePath(requestPath)

	h, rest, ok := r.Match(segments)
	if !ok {
		return r.notFound.Handle(segments, query)
	}

	return h.Handle(rest, query)
}

func (r *Router) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	resp := r.Dispatch(req.URL.RequestURI())

	for name, value := range resp.Headers {
		rw.Header().Set(name, value)
	}

	rw.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	rw.WriteHeader(resp.StatusCode)

	if req.Method != http.MethodHead {
		_, _ = rw.Write([]byte(resp.Body))
	}
}

// ParsePath splits the request path at the first "?". The path part loses one leading
// slash and is split at "/". The query part is split at "&" without any decoding.
func ParsePath(requestPath string) ([]string, []string) {
	path, rawQuery, _ := strings.Cut(requestPath, "?")

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	var query []string
	if len(rawQuery) != 0 {
		query = strings.Split(rawQuery, "&")
	}

	return segments, query
}
