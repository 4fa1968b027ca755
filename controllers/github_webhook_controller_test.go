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
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/jiralink/mocks"
	"github.com/l3montree-dev/jiralink/shared"
)

const testWebhookSecret = "webhook-secret"

func webhookRequest(eventType string, payload []byte, secret string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(github.EventTypeHeader, eventType)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	req.Header.Set(github.SHA256SignatureHeader, "sha256="+hex.EncodeToString(mac.Sum(nil)))

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func webhookConfig() shared.Config {
	cfg := shared.Config{}
	cfg.Github.WebhookSecret = testWebhookSecret
	return cfg
}

func TestHandleWebhook(t *testing.T) {
	t.Run("should reject payloads with an invalid signature", func(t *testing.T) {
		controller := NewGithubWebhookController(mocks.NewPullRequestService(t), mocks.NewSyncService(t), webhookConfig())

		ctx, _ := webhookRequest("pull_request", []byte(`{"action":"opened"}`), "wrong-secret")

		assert.Equal(t, 401, httpStatus(t, controller.HandleWebhook(ctx)))
	})

	t.Run("should hand pull request events to the pull request service", func(t *testing.T) {
		pullRequestService := mocks.NewPullRequestService(t)
		pullRequestService.On("HandlePullRequestEvent", mock.Anything, mock.MatchedBy(func(event *github.PullRequestEvent) bool {
			return event.GetAction() == "opened" && event.GetPullRequest().GetNumber() == 7
		})).Return(nil)

		controller := NewGithubWebhookController(pullRequestService, mocks.NewSyncService(t), webhookConfig())

		ctx, rec := webhookRequest("pull_request", []byte(`{"action":"opened","number":7,"pull_request":{"number":7},"installation":{"id":10}}`), testWebhookSecret)

		require.NoError(t, controller.HandleWebhook(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should answer with 500 if the pull request could not be handled", func(t *testing.T) {
		pullRequestService := mocks.NewPullRequestService(t)
		pullRequestService.On("HandlePullRequestEvent", mock.Anything, mock.Anything).Return(fmt.Errorf("jira unavailable"))

		controller := NewGithubWebhookController(pullRequestService, mocks.NewSyncService(t), webhookConfig())

		ctx, _ := webhookRequest("pull_request", []byte(`{"action":"opened","pull_request":{"number":7}}`), testWebhookSecret)

		assert.Equal(t, 500, httpStatus(t, controller.HandleWebhook(ctx)))
	})

	t.Run("should remove the subscriptions of a deleted installation", func(t *testing.T) {
		syncService := mocks.NewSyncService(t)
		syncService.On("RemoveInstallation", mock.Anything, int64(10)).Return(nil)

		controller := NewGithubWebhookController(mocks.NewPullRequestService(t), syncService, webhookConfig())

		ctx, rec := webhookRequest("installation", []byte(`{"action":"deleted","installation":{"id":10}}`), testWebhookSecret)

		require.NoError(t, controller.HandleWebhook(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should ignore other events", func(t *testing.T) {
		controller := NewGithubWebhookController(mocks.NewPullRequestService(t), mocks.NewSyncService(t), webhookConfig())

		ctx, rec := webhookRequest("ping", []byte(`{"zen":"keep it simple"}`), testWebhookSecret)

		require.NoError(t, controller.HandleWebhook(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}
