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

package pubsub

import (
	"context"

	"go.uber.org/fx"

	"github.com/l3montree-dev/jiralink/database"
	"github.com/l3montree-dev/jiralink/shared"
)

func newBroker(lc fx.Lifecycle, cfg shared.Config) (*PostgreSQLBroker, error) {
	// the instance which schedules a run may as well process it
	broker, err := NewPostgreSQLBroker(database.NewPoolConfig(cfg.Postgres), true)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return broker.Close()
		},
	})
	return broker, nil
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(newBroker, fx.As(new(shared.PubSubBroker)))),
)
