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

package errorhandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/x/errorchain"
)

func TestHandlerHandleError(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		handler ErrorHandler
		err     error
		accept  string
		expCode int
		expType string
		expBody string
	}{
		{
			uc:      "argument error default",
			handler: New(),
			err:     errorchain.New(fikea.ErrArgument),
			expCode: http.StatusBadRequest,
		},
		{
			uc:      "format error is an argument error",
			handler: New(),
			err:     errorchain.NewWithMessage(fikea.ErrFormat, "bad id"),
			expCode: http.StatusBadRequest,
		},
		{
			uc:      "argument error overridden",
			handler: New(WithArgumentErrorCode(http.StatusUnprocessableEntity)),
			err:     errorchain.New(fikea.ErrArgument),
			expCode: http.StatusUnprocessableEntity,
		},
		{
			uc:      "argument error verbose without mime type set",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.New(fikea.ErrArgument),
			expCode: http.StatusBadRequest,
			expType: "text/html",
			expBody: "<p>argument error</p>",
		},
		{
			uc:      "not found error default",
			handler: New(),
			err:     errorchain.New(fikea.ErrNotFound),
			expCode: http.StatusNotFound,
		},
		{
			uc:      "unknown category is a not found error",
			handler: New(),
			err:     errorchain.NewWithMessage(fikea.ErrUnknownCategory, "sofas"),
			expCode: http.StatusNotFound,
		},
		{
			uc:      "not found error overridden",
			handler: New(WithNotFoundErrorCode(http.StatusGone)),
			err:     errorchain.New(fikea.ErrNotFound),
			expCode: http.StatusGone,
		},
		{
			uc:      "not found error verbose expecting application/json",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.New(fikea.ErrNotFound),
			accept:  "application/json",
			expCode: http.StatusNotFound,
			expType: "application/json",
			expBody: `{"code":"notFound"}`,
		},
		{
			uc:      "internal error default",
			handler: New(),
			err:     errorchain.New(fikea.ErrInternal),
			expCode: http.StatusInternalServerError,
		},
		{
			uc:      "unclassified error is an internal error",
			handler: New(),
			err:     errors.New("test error"),
			expCode: http.StatusInternalServerError,
		},
		{
			uc:      "internal error overridden",
			handler: New(WithInternalServerErrorCode(http.StatusServiceUnavailable)),
			err:     errorchain.New(fikea.ErrInternal),
			expCode: http.StatusServiceUnavailable,
		},
		{
			uc:      "internal error verbose expecting text/plain",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.NewWithMessage(fikea.ErrInternal, "runtime error occurred"),
			accept:  "text/plain",
			expCode: http.StatusInternalServerError,
			expType: "text/plain",
			expBody: "internal error: runtime error occurred",
		},
		{
			uc:      "verbose error with html special characters",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.NewWithMessage(fikea.ErrArgument, "<script>"),
			accept:  "text/html",
			expCode: http.StatusBadRequest,
			expType: "text/html",
			expBody: "<p>argument error: &lt;script&gt;</p>",
		},
		{
			uc:      "verbose error with not acceptable mime type",
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.New(fikea.ErrArgument),
			accept:  "application/xml",
			expCode: http.StatusBadRequest,
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			recorder := httptest.NewRecorder()

			req := httptest.NewRequest(http.MethodGet, "/products/chairs/1", nil)
			if len(tc.accept) != 0 {
				req.Header.Set("Accept", tc.accept)
			}

			// WHEN
			tc.handler.HandleError(recorder, req, tc.err)

			// THEN
			assert.Equal(t, tc.expCode, recorder.Code)
			assert.Equal(t, tc.expBody, recorder.Body.String())
			assert.Equal(t, tc.expType, recorder.Header().Get("Content-Type"))
		})
	}
}
