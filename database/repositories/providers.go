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

package repositories

import (
	"go.uber.org/fx"

	"github.com/l3montree-dev/jiralink/shared"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository)))),
	fx.Provide(fx.Annotate(NewInstallationRepository, fx.As(new(shared.InstallationRepository)))),
	fx.Provide(fx.Annotate(NewSubscriptionRepository, fx.As(new(shared.SubscriptionRepository)))),
)
