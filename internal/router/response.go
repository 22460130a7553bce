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
)

const contentTypeHTML = "text/html; charset=utf-8"

// Response is what every handler produces. Headers are written as given.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

func newResponse(code int, body string) Response {
	return Response{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": contentTypeHTML},
		Body:       body,
	}
}

func OK(body string) Response { return newResponse(http.StatusOK, body) }

func NotFound(body string) Response { return newResponse(http.StatusNotFound, body) }

func BadRequest(body string) Response { return newResponse(http.StatusBadRequest, body) }

func InternalServerError(body string) Response { return newResponse(http.StatusInternalServerError, body) }
