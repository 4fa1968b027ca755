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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/jiralink/controllers"
	"github.com/l3montree-dev/jiralink/middlewares"
)

type SyncRouter struct {
	*echo.Group
}

func NewSyncRouter(apiV1Router APIV1Router, syncController *controllers.SyncController) SyncRouter {
	apiV1Router.POST("/resync/", syncController.Resync)
	apiV1Router.POST("/subscriptions/", syncController.CreateSubscription)

	installationRouter := apiV1Router.Group.Group("/installations/:installationId", middlewares.InstallationIDMiddleware())
	installationRouter.GET("/", syncController.InstallationStatus)
	installationRouter.GET("/repo-sync-state/", syncController.RepoSyncState)
	installationRouter.POST("/sync/", syncController.StartSync)

	return SyncRouter{Group: installationRouter}
}
