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

package methodfilter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc            string
		requestMethod string
		expCalled     bool
		expCode       int
		expAllow      string
	}{
		{uc: "get accepted", requestMethod: http.MethodGet, expCalled: true, expCode: http.StatusOK},
		{uc: "head accepted", requestMethod: http.MethodHead, expCalled: true, expCode: http.StatusOK},
		{
			uc:            "post not allowed",
			requestMethod: http.MethodPost,
			expCode:       http.StatusMethodNotAllowed,
			expAllow:      "GET, HEAD",
		},
		{
			uc:            "delete not allowed",
			requestMethod: http.MethodDelete,
			expCode:       http.StatusMethodNotAllowed,
			expAllow:      "GET, HEAD",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			called := false
			next := http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
				called = true

				rw.WriteHeader(http.StatusOK)
			})

			handler := New(http.MethodGet, http.MethodHead)
			rec := httptest.NewRecorder()

			// WHEN
			handler(next).ServeHTTP(rec, httptest.NewRequest(tc.requestMethod, "http://fikea.local/products", nil))

			// THEN
			assert.Equal(t, tc.expCalled, called)
			assert.Equal(t, tc.expCode, rec.Code)
			assert.Equal(t, tc.expAllow, rec.Header().Get("Allow"))
		})
	}
}
