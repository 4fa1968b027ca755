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

package controllers

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/dtos"
	"github.com/l3montree-dev/jiralink/mocks"
	"github.com/l3montree-dev/jiralink/shared"
)

func TestHandleLifecycle(t *testing.T) {
	t.Run("should take the event type from the path if the body does not carry one", func(t *testing.T) {
		installationService := mocks.NewInstallationService(t)
		installationService.On("HandleLifecycleEvent", mock.Anything, mock.MatchedBy(func(event dtos.JiraLifecycleEvent) bool {
			return event.EventType == "enabled" && event.ClientKey == "client-key"
		})).Return(models.Installation{}, nil)

		controller := NewJiraEventController(installationService)

		ctx, rec := jsonRequest(t, "POST", "/jira/events/enabled", map[string]string{
			"clientKey": "client-key",
			"baseUrl":   "https://acme.atlassian.net",
		})
		ctx.SetParamNames("eventType")
		ctx.SetParamValues("enabled")

		require.NoError(t, controller.HandleLifecycle(ctx))
		assert.Equal(t, 204, rec.Code)
	})

	t.Run("should require the shared secret on install", func(t *testing.T) {
		controller := NewJiraEventController(mocks.NewInstallationService(t))

		ctx, _ := jsonRequest(t, "POST", "/jira/events/installed", map[string]string{
			"clientKey": "client-key",
			"baseUrl":   "https://acme.atlassian.net",
			"eventType": "installed",
		})

		assert.Equal(t, 400, httpStatus(t, controller.HandleLifecycle(ctx)))
	})

	t.Run("should return 404 for unknown installations", func(t *testing.T) {
		installationService := mocks.NewInstallationService(t)
		installationService.On("HandleLifecycleEvent", mock.Anything, mock.Anything).Return(models.Installation{}, shared.ErrInstallationNotFound)

		controller := NewJiraEventController(installationService)

		ctx, _ := jsonRequest(t, "POST", "/jira/events/uninstalled", map[string]string{
			"clientKey": "client-key",
			"baseUrl":   "https://acme.atlassian.net",
			"eventType": "uninstalled",
		})

		assert.Equal(t, 404, httpStatus(t, controller.HandleLifecycle(ctx)))
	})
}

func TestLookup(t *testing.T) {
	t.Run("should unescape the jira host", func(t *testing.T) {
		installationService := mocks.NewInstallationService(t)
		installationService.On("FindByClientKeyOrJiraHost", "https://acme.atlassian.net").Return([]models.Installation{
			{JiraHost: "https://acme.atlassian.net", ClientKey: "hashed"},
		}, nil)

		controller := NewJiraEventController(installationService)

		ctx, rec := jsonRequest(t, "GET", "/jira/https%3A%2F%2Facme.atlassian.net", nil)
		ctx.SetParamNames("clientKeyOrJiraHost")
		ctx.SetParamValues("https%3A%2F%2Facme.atlassian.net")

		require.NoError(t, controller.Lookup(ctx))

		var installations []dtos.InstallationDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &installations))
		require.Len(t, installations, 1)
		assert.Equal(t, "https://acme.atlassian.net", installations[0].JiraHost)
	})

	t.Run("should return 404 if nothing matches", func(t *testing.T) {
		installationService := mocks.NewInstallationService(t)
		installationService.On("FindByClientKeyOrJiraHost", "unknown").Return([]models.Installation{}, nil)

		controller := NewJiraEventController(installationService)

		ctx, _ := jsonRequest(t, "GET", "/jira/unknown", nil)
		ctx.SetParamNames("clientKeyOrJiraHost")
		ctx.SetParamValues("unknown")

		assert.Equal(t, 404, httpStatus(t, controller.Lookup(ctx)))
	})
}

func TestUninstall(t *testing.T) {
	clientKey := models.HashClientKey("client-key")

	t.Run("should pass the force flag to the service", func(t *testing.T) {
		installationService := mocks.NewInstallationService(t)
		installationService.On("Uninstall", mock.Anything, clientKey, true).Return(models.Installation{}, nil)

		controller := NewJiraEventController(installationService)

		ctx, rec := jsonRequest(t, "POST", "/jira/"+clientKey+"/uninstall", map[string]bool{"force": true})
		ctx.SetParamNames("clientKey")
		ctx.SetParamValues(clientKey)

		require.NoError(t, controller.Uninstall(ctx))
		assert.Equal(t, 204, rec.Code)
	})

	t.Run("should refuse authorized installations", func(t *testing.T) {
		installationService := mocks.NewInstallationService(t)
		installationService.On("Uninstall", mock.Anything, clientKey, false).Return(models.Installation{}, shared.ErrInstallationAuthorized)

		controller := NewJiraEventController(installationService)

		ctx, _ := jsonRequest(t, "POST", "/jira/"+clientKey+"/uninstall", nil)
		ctx.SetParamNames("clientKey")
		ctx.SetParamValues(clientKey)

		assert.Equal(t, 400, httpStatus(t, controller.Uninstall(ctx)))
	})

	t.Run("should answer with 404 for unknown client keys", func(t *testing.T) {
		installationService := mocks.NewInstallationService(t)
		installationService.On("Uninstall", mock.Anything, clientKey, false).Return(models.Installation{}, shared.ErrInstallationNotFound)

		controller := NewJiraEventController(installationService)

		ctx, _ := jsonRequest(t, "POST", "/jira/"+clientKey+"/uninstall", nil)
		ctx.SetParamNames("clientKey")
		ctx.SetParamValues(clientKey)

		assert.Equal(t, 404, httpStatus(t, controller.Uninstall(ctx)))
	})

	t.Run("should reject client keys which are not hex encoded", func(t *testing.T) {
		controller := NewJiraEventController(mocks.NewInstallationService(t))

		ctx, _ := jsonRequest(t, "POST", "/jira/not-a-key/uninstall", nil)
		ctx.SetParamNames("clientKey")
		ctx.SetParamValues("not-a-key")

		assert.Equal(t, 400, httpStatus(t, controller.Uninstall(ctx)))
	})
}

func TestVerify(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name           string
		installation   models.Installation
		alreadyEnabled bool
		message        string
	}{
		{"already enabled", models.Installation{Model: models.Model{ID: id}, Enabled: true}, true, "Installation already enabled"},
		{"verified", models.Installation{Model: models.Model{ID: id}, Enabled: true}, false, "Verification successful"},
		{"not authorized", models.Installation{Model: models.Model{ID: id}}, false, "Verification failed"},
	}

	for _, tc := range cases {
		t.Run("should report "+tc.name, func(t *testing.T) {
			installationService := mocks.NewInstallationService(t)
			installationService.On("Verify", mock.Anything, id).Return(tc.installation, tc.alreadyEnabled, nil)

			controller := NewJiraEventController(installationService)

			ctx, rec := jsonRequest(t, "POST", "/jira/"+id.String()+"/verify", nil)
			ctx.SetParamNames("installationId")
			ctx.SetParamValues(id.String())

			require.NoError(t, controller.Verify(ctx))
			assert.Equal(t, 200, rec.Code)

			var body dtos.VerificationDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, id, body.Installation.ID)
			assert.Equal(t, tc.installation.Enabled, body.Installation.Enabled)
		})
	}

	t.Run("should reject invalid installation ids", func(t *testing.T) {
		controller := NewJiraEventController(mocks.NewInstallationService(t))

		ctx, _ := jsonRequest(t, "POST", "/jira/42/verify", nil)
		ctx.SetParamNames("installationId")
		ctx.SetParamValues("42")

		assert.Equal(t, 400, httpStatus(t, controller.Verify(ctx)))
	})
}
