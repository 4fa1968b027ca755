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
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/jiralink/dtos"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/transformer"
	"github.com/l3montree-dev/jiralink/utils"
)

type JiraEventController struct {
	installationService shared.InstallationService
}

func NewJiraEventController(installationService shared.InstallationService) *JiraEventController {
	return &JiraEventController{
		installationService: installationService,
	}
}

// @Summary Handle a jira connect lifecycle callback
// @Tags Jira
// @Param eventType path string true "installed, uninstalled, enabled or disabled"
// @Param body body dtos.JiraLifecycleEvent true "Lifecycle event"
// @Success 204
// @Router /jira/events/{eventType} [post]
func (c *JiraEventController) HandleLifecycle(ctx shared.Context) error {
	var event dtos.JiraLifecycleEvent
	if err := ctx.Bind(&event); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if event.EventType == "" {
		event.EventType = ctx.Param("eventType")
	}
	if err := shared.V.Struct(event); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if _, err := c.installationService.HandleLifecycleEvent(ctx.Request().Context(), event); err != nil {
		if errors.Is(err, shared.ErrInstallationNotFound) {
			return echo.NewHTTPError(404, "installation not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not handle lifecycle event").WithInternal(err)
	}
	return ctx.NoContent(204)
}

// @Summary Find jira installations by client key or jira host
// @Tags Jira
// @Param clientKeyOrJiraHost path string true "Raw client key or url encoded jira host"
// @Success 200 {array} dtos.InstallationDTO
// @Router /jira/{clientKeyOrJiraHost} [get]
func (c *JiraEventController) Lookup(ctx shared.Context) error {
	clientKeyOrJiraHost, err := url.PathUnescape(ctx.Param("clientKeyOrJiraHost"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid client key or jira host").WithInternal(err)
	}

	installations, err := c.installationService.FindByClientKeyOrJiraHost(clientKeyOrJiraHost)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch installations").WithInternal(err)
	}
	if len(installations) == 0 {
		return echo.NewHTTPError(404, "installation not found")
	}

	return ctx.JSON(200, utils.Map(installations, transformer.InstallationModelToDTO))
}

// @Summary Remove a jira installation which jira does not authorize anymore
// @Tags Jira
// @Param clientKey path string true "Hashed client key"
// @Param force body bool false "Remove even if jira still authorizes the installation"
// @Success 204
// @Router /jira/{clientKey}/uninstall [post]
func (c *JiraEventController) Uninstall(ctx shared.Context) error {
	var req dtos.UninstallRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if _, err := c.installationService.Uninstall(ctx.Request().Context(), req.ClientKey, req.Force); err != nil {
		switch {
		case errors.Is(err, shared.ErrInstallationNotFound):
			return echo.NewHTTPError(404, "installation not found").WithInternal(err)
		case errors.Is(err, shared.ErrInstallationAuthorized):
			return echo.NewHTTPError(400, "refusing to uninstall authorized jira installation").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not uninstall installation").WithInternal(err)
	}
	return ctx.NoContent(204)
}

// @Summary Verify a disabled jira installation
// @Tags Jira
// @Param installationId path string true "Installation id"
// @Success 200 {object} dtos.VerificationDTO
// @Router /jira/{installationId}/verify [post]
func (c *JiraEventController) Verify(ctx shared.Context) error {
	var req dtos.VerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	installation, alreadyEnabled, err := c.installationService.Verify(ctx.Request().Context(), uuid.MustParse(req.InstallationID))
	if err != nil {
		if errors.Is(err, shared.ErrInstallationNotFound) {
			return echo.NewHTTPError(404, "installation not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not verify installation").WithInternal(err)
	}

	message := "Verification failed"
	switch {
	case alreadyEnabled:
		message = "Installation already enabled"
	case installation.Enabled:
		message = "Verification successful"
	}

	return ctx.JSON(200, dtos.VerificationDTO{
		Message: message,
		Installation: dtos.VerifiedInstallationDTO{
			ID:       installation.ID,
			JiraHost: installation.JiraHost,
			Enabled:  installation.Enabled,
		},
	})
}
