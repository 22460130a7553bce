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

package recovery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikea/fikea/internal/fikea"
)

type errorHandlerFunc func(rw http.ResponseWriter, req *http.Request, err error)

func (f errorHandlerFunc) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	f(rw, req, err)
}

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc        string
		next      http.HandlerFunc
		expCode   int
		expCalled bool
		assertErr func(t *testing.T, err error)
	}{
		{
			uc:      "no panic",
			next:    func(rw http.ResponseWriter, _ *http.Request) { rw.WriteHeader(http.StatusOK) },
			expCode: http.StatusOK,
		},
		{
			uc:        "panic with error",
			next:      func(_ http.ResponseWriter, _ *http.Request) { panic(errors.New("test error")) },
			expCode:   http.StatusInternalServerError,
			expCalled: true,
			assertErr: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, fikea.ErrInternal)
				assert.Contains(t, err.Error(), "test error")
			},
		},
		{
			uc:        "panic with string",
			next:      func(_ http.ResponseWriter, _ *http.Request) { panic("something bad") },
			expCode:   http.StatusInternalServerError,
			expCalled: true,
			assertErr: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, fikea.ErrInternal)
				assert.Contains(t, err.Error(), "something bad")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			var (
				called bool
				err    error
			)

			eh := errorHandlerFunc(func(rw http.ResponseWriter, _ *http.Request, handledErr error) {
				called = true
				err = handledErr

				rw.WriteHeader(http.StatusInternalServerError)
			})

			rec := httptest.NewRecorder()

			// WHEN
			New(eh)(tc.next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

			// THEN
			assert.Equal(t, tc.expCode, rec.Code)
			assert.Equal(t, tc.expCalled, called)

			if tc.assertErr != nil {
				tc.assertErr(t, err)
			}
		})
	}
}
