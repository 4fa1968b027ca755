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
)

type JiraRouter struct {
	*echo.Group
}

func NewJiraRouter(apiV1Router APIV1Router, jiraEventController *controllers.JiraEventController) JiraRouter {
	jiraRouter := apiV1Router.Group.Group("/jira")
	// lifecycle callbacks registered in the atlassian connect descriptor
	jiraRouter.POST("/events/:eventType/", jiraEventController.HandleLifecycle)
	jiraRouter.GET("/:clientKeyOrJiraHost/", jiraEventController.Lookup)
	jiraRouter.POST("/:clientKey/uninstall/", jiraEventController.Uninstall)
	jiraRouter.POST("/:installationId/verify/", jiraEventController.Verify)

	return JiraRouter{Group: jiraRouter}
}
