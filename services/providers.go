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

package services

import (
	"context"

	"go.uber.org/fx"

	"github.com/l3montree-dev/jiralink/shared"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
	fx.Provide(fx.Annotate(NewDatabaseLeaderElector, fx.As(new(shared.LeaderElector)), fx.As(fx.Self()))),
	fx.Provide(fx.Annotate(NewBrokerSyncScheduler, fx.As(new(shared.SyncScheduler)))),
	fx.Provide(fx.Annotate(NewSyncService, fx.As(new(shared.SyncService)))),
	fx.Provide(fx.Annotate(NewPullRequestService, fx.As(new(shared.PullRequestService)))),
	fx.Provide(fx.Annotate(NewInstallationService, fx.As(new(shared.InstallationService)))),
	fx.Invoke(runLeaderElection),
)

func runLeaderElection(lc fx.Lifecycle, elector *databaseLeaderElector) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go elector.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
