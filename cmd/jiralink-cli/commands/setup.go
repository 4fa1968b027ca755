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

package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/l3montree-dev/jiralink/database"
	"github.com/l3montree-dev/jiralink/shared"
)

type environment struct {
	cfg  shared.Config
	pool *pgxpool.Pool
	db   shared.DB
}

func (e environment) Close() {
	e.pool.Close()
}

func setupEnvironment(ctx context.Context) (environment, error) {
	cfg, err := shared.ReadConfig()
	if err != nil {
		return environment{}, err
	}

	pool, err := database.NewPgxConnPool(ctx, database.NewPoolConfig(cfg.Postgres))
	if err != nil {
		return environment{}, fmt.Errorf("could not connect to database: %w", err)
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		pool.Close()
		return environment{}, fmt.Errorf("could not connect to database: %w", err)
	}
	return environment{cfg: cfg, pool: pool, db: db}, nil
}
