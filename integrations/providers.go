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

package integrations

import (
	"go.uber.org/fx"

	"github.com/l3montree-dev/jiralink/integrations/githubint"
	"github.com/l3montree-dev/jiralink/integrations/jiraint"
	"github.com/l3montree-dev/jiralink/shared"
)

// Module provides the github and jira clients
var Module = fx.Options(
	fx.Provide(fx.Annotate(
		githubint.NewGithubAppClient,
		fx.As(new(shared.GithubAppClient)),
		fx.As(new(shared.RepositoryEnumerator)),
		fx.As(new(shared.PullRequestSource)),
		fx.As(new(shared.InstallationLookup)),
	)),
	fx.Provide(fx.Annotate(jiraint.NewDevInfoClientFactory, fx.As(new(shared.DevInfoClientFactory)))),
)
