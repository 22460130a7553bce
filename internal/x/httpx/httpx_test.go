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

package httpx

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostPort(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		value string
		host  string
		port  int
	}{
		{value: "", host: "", port: -1},
		{value: "localhost", host: "localhost", port: -1},
		{value: "localhost:8080", host: "localhost", port: 8080},
		{value: "[::1]:90", host: "::1", port: 90},
		{value: "127.0.0.1:foo", host: "127.0.0.1", port: -1},
	} {
		t.Run(tc.value, func(t *testing.T) {
			// WHEN
			host, port := HostPort(tc.value)

			// THEN
			assert.Equal(t, tc.host, host)
			assert.Equal(t, tc.port, port)
		})
	}
}

func TestIPFromHostPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "192.0.2.1", IPFromHostPort("192.0.2.1:1234"))
	assert.Equal(t, "::1", IPFromHostPort("[::1]:1234"))
	assert.Empty(t, IPFromHostPort("192.0.2.1"))
}

func TestLocalAddress(t *testing.T) {
	t.Parallel()

	// GIVEN
	addr := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
	withAddr := httptest.NewRequest(http.MethodGet, "/", nil)
	withAddr = withAddr.WithContext(context.WithValue(withAddr.Context(), http.LocalAddrContextKey, addr))

	// WHEN
	known := LocalAddress(withAddr)
	unknown := LocalAddress(httptest.NewRequest(http.MethodGet, "/", nil))

	// THEN
	assert.Equal(t, "127.0.0.1:8080", known)
	assert.Equal(t, "unknown", unknown)
}
