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

package middlewares

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/jiralink/shared"
)

func TestInstallationIDMiddleware(t *testing.T) {
	e := NewServer(shared.Config{Environment: "prod"})
	e.GET("/installations/:installationId/", func(ctx shared.Context) error {
		return ctx.JSON(200, shared.GetInstallationID(ctx))
	}, InstallationIDMiddleware())

	t.Run("should store the parsed installation id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/installations/42", nil))

		assert.Equal(t, 200, rec.Code)
		var installationID int64
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &installationID))
		assert.Equal(t, int64(42), installationID)
	})

	t.Run("should answer with 400 for invalid ids", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/installations/abc", nil))

		assert.Equal(t, 400, rec.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should render http errors as json message", func(t *testing.T) {
		e := NewServer(shared.Config{Environment: "prod"})
		e.GET("/failing/", func(ctx shared.Context) error {
			return echo.NewHTTPError(404, "subscription not found")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/failing/", nil))

		assert.Equal(t, 404, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "subscription not found", body["message"])
		assert.NotContains(t, body, "error")
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		e := NewServer(shared.Config{Environment: "prod"})
		e.GET("/failing/", func(ctx shared.Context) error {
			return assert.AnError
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/failing/", nil))

		assert.Equal(t, 500, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})

	t.Run("should turn panics into 500", func(t *testing.T) {
		e := NewServer(shared.Config{Environment: "prod"})
		e.GET("/panic/", func(ctx shared.Context) error {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/panic/", nil))

		assert.Equal(t, 500, rec.Code)
	})
}
