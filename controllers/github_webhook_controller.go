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
	"log/slog"

	"github.com/google/go-github/v62/github"
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/jiralink/shared"
)

type GithubWebhookController struct {
	pullRequestService shared.PullRequestService
	syncService        shared.SyncService
	webhookSecret      []byte
}

func NewGithubWebhookController(pullRequestService shared.PullRequestService, syncService shared.SyncService, cfg shared.Config) *GithubWebhookController {
	return &GithubWebhookController{
		pullRequestService: pullRequestService,
		syncService:        syncService,
		webhookSecret:      []byte(cfg.Github.WebhookSecret),
	}
}

// @Summary Receive github app webhooks
// @Tags Github
// @Success 200
// @Router /webhook/github [post]
func (c *GithubWebhookController) HandleWebhook(ctx shared.Context) error {
	req := ctx.Request()
	payload, err := github.ValidatePayload(req, c.webhookSecret)
	if err != nil {
		return echo.NewHTTPError(401, "invalid webhook signature").WithInternal(err)
	}

	event, err := github.ParseWebHook(github.WebHookType(req), payload)
	if err != nil {
		return echo.NewHTTPError(400, "could not parse webhook").WithInternal(err)
	}

	switch event := event.(type) {
	case *github.PullRequestEvent:
		if err := c.pullRequestService.HandlePullRequestEvent(req.Context(), event); err != nil {
			return echo.NewHTTPError(500, "could not handle pull request event").WithInternal(err)
		}
	case *github.InstallationEvent:
		if event.GetAction() != "deleted" {
			return ctx.NoContent(200)
		}
		installationID := event.GetInstallation().GetID()
		slog.Info("github installation deleted", "installationID", installationID)
		if err := c.syncService.RemoveInstallation(req.Context(), installationID); err != nil {
			return echo.NewHTTPError(500, "could not remove installation").WithInternal(err)
		}
	default:
		slog.Debug("ignoring github webhook", "type", github.WebHookType(req))
	}

	return ctx.NoContent(200)
}
