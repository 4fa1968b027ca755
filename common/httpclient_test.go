// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package common

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPath(t *testing.T) {
	req := httptest.NewRequest("GET", "/repos/octo/api/pulls/42/reviews", nil)
	assert.Equal(t, "/repos/octo/api/pulls/:id/reviews", ExtractPath(req))
}

func TestCacheTransport(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/missing" {
			w.WriteHeader(404)
			return
		}
		w.Write([]byte("ok")) // nolint: errcheck
	}))
	defer srv.Close()

	client := &http.Client{}
	WrapHTTPClient(client, NewCacheTransport(10, time.Minute).Handler())

	t.Run("should serve repeated GET requests from the cache", func(t *testing.T) {
		calls = 0
		for range 2 {
			resp, err := client.Get(srv.URL + "/found")
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			assert.Equal(t, "ok", string(body))
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("should never cache a 404", func(t *testing.T) {
		calls = 0
		for range 2 {
			resp, err := client.Get(srv.URL + "/missing")
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, 404, resp.StatusCode)
		}
		assert.Equal(t, 2, calls)
	})
}
