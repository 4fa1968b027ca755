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
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/dtos"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/transformer"
	"github.com/l3montree-dev/jiralink/utils"
)

type SyncController struct {
	syncService            shared.SyncService
	subscriptionRepository shared.SubscriptionRepository
	installationLookup     shared.InstallationLookup
}

func NewSyncController(syncService shared.SyncService, subscriptionRepository shared.SubscriptionRepository, installationLookup shared.InstallationLookup) *SyncController {
	return &SyncController{
		syncService:            syncService,
		subscriptionRepository: subscriptionRepository,
		installationLookup:     installationLookup,
	}
}

func (c *SyncController) toDTO(sub models.Subscription) dtos.SubscriptionDTO {
	return transformer.SubscriptionModelToDTO(sub, c.syncService.Classify(sub))
}

// @Summary Get the repository sync state
// @Tags Sync
// @Param installationId path int true "GitHub installation ID"
// @Param jiraHost query string false "Only the subscription of this jira host"
// @Success 200 {array} dtos.RepoSyncStateDTO
// @Router /installations/{installationId}/repo-sync-state [get]
func (c *SyncController) RepoSyncState(ctx shared.Context) error {
	installationID := shared.GetInstallationID(ctx)

	subscriptions, err := c.subscriptionRepository.FindAllForInstallation(installationID)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch subscriptions").WithInternal(err)
	}

	if jiraHost := ctx.QueryParam("jiraHost"); jiraHost != "" {
		jiraHost = jira.NormalizeHost(jiraHost)
		subscriptions = utils.Filter(subscriptions, func(sub models.Subscription) bool {
			return sub.JiraHost == jiraHost
		})
	}
	if len(subscriptions) == 0 {
		return echo.NewHTTPError(404, "no subscription found for installation")
	}

	return ctx.JSON(200, utils.Map(subscriptions, transformer.RepoSyncStateToDTO))
}

// @Summary Start or resume the sync of a subscription
// @Tags Sync
// @Param installationId path int true "GitHub installation ID"
// @Param body body dtos.StartSyncRequest true "Sync request"
// @Success 202 {object} dtos.SubscriptionDTO
// @Router /installations/{installationId}/sync [post]
func (c *SyncController) StartSync(ctx shared.Context) error {
	var req dtos.StartSyncRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	installationID := shared.GetInstallationID(ctx)
	subscription, err := c.subscriptionRepository.FindByInstallationAndHost(installationID, jira.NormalizeHost(req.JiraHost))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "subscription not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not fetch subscription").WithInternal(err)
	}

	started, err := c.syncService.StartOrResume(ctx.Request().Context(), subscription, models.SyncResetType(req.ResetType))
	if err != nil {
		if errors.Is(err, shared.ErrInstallationGone) {
			return echo.NewHTTPError(404, "github installation not found").WithInternal(err)
		}
		if started.SyncGeneration == subscription.SyncGeneration {
			return echo.NewHTTPError(500, "could not start sync").WithInternal(err)
		}
		// the run is persisted and gets resumed later
		slog.Warn("sync started but not scheduled", "subscriptionID", started.ID, "err", err)
	}

	return ctx.JSON(202, c.toDTO(started))
}

// @Summary Resync many subscriptions
// @Tags Sync
// @Param body body dtos.ResyncRequest true "Selection of subscriptions"
// @Success 200 {array} dtos.SubscriptionDTO
// @Router /resync [post]
func (c *SyncController) Resync(ctx shared.Context) error {
	var req dtos.ResyncRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	subscriptions, err := c.syncService.BulkResync(ctx.Request().Context(), shared.ResyncQuery{
		InstallationIDs: req.InstallationIDs,
		StatusTypes:     req.StatusTypes,
		Offset:          req.Offset,
		Limit:           req.Limit,
	}, models.SyncResetType(req.SyncType))
	if err != nil {
		return echo.NewHTTPError(400, "could not resync subscriptions").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(subscriptions, c.toDTO))
}

// @Summary Get the connections of a github installation
// @Description Connections of installations which github does not know anymore are reported as failed and removed.
// @Tags Sync
// @Param installationId path int true "GitHub installation ID"
// @Success 200 {object} dtos.InstallationStatusDTO
// @Router /installations/{installationId} [get]
func (c *SyncController) InstallationStatus(ctx shared.Context) error {
	installationID := shared.GetInstallationID(ctx)

	subscriptions, err := c.subscriptionRepository.FindAllForInstallation(installationID)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch subscriptions").WithInternal(err)
	}

	status := dtos.InstallationStatusDTO{
		InstallationID: installationID,
		Connections:    make([]dtos.ConnectionDTO, 0, len(subscriptions)),
	}

	installation, err := c.installationLookup.GetInstallation(ctx.Request().Context(), installationID)
	switch {
	case errors.Is(err, shared.ErrInstallationGone):
		status.Gone = true
		if removeErr := c.syncService.RemoveInstallation(ctx.Request().Context(), installationID); removeErr != nil {
			return echo.NewHTTPError(500, "could not remove subscriptions").WithInternal(removeErr)
		}
	case err != nil:
		return echo.NewHTTPError(502, "could not fetch github installation").WithInternal(err)
	default:
		status.Account = installation.GetAccount().GetLogin()
		status.HTMLURL = installation.GetHTMLURL()
	}

	for _, sub := range subscriptions {
		status.Connections = append(status.Connections, dtos.ConnectionDTO{
			SubscriptionDTO: c.toDTO(sub),
			Failed:          status.Gone,
		})
	}
	return ctx.JSON(200, status)
}

// @Summary Link a github installation to a jira host
// @Tags Sync
// @Param body body dtos.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} dtos.SubscriptionDTO
// @Router /subscriptions [post]
func (c *SyncController) CreateSubscription(ctx shared.Context) error {
	var req dtos.CreateSubscriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	subscription, err := c.syncService.Subscribe(ctx.Request().Context(), req.InstallationID, req.JiraHost)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInstallationNotFound):
			return echo.NewHTTPError(404, "jira is not installed for this host").WithInternal(err)
		case errors.Is(err, shared.ErrInstallationGone):
			return echo.NewHTTPError(404, "github installation not found").WithInternal(err)
		case subscription.ID == uuid.Nil:
			return echo.NewHTTPError(500, "could not create subscription").WithInternal(err)
		}
		slog.Warn("subscription created but sync not scheduled", "subscriptionID", subscription.ID, "err", err)
	}

	return ctx.JSON(201, c.toDTO(subscription))
}
