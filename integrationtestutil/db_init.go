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

package integrationtestutil

import (
	"context"
	"log"
	"log/slog"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/l3montree-dev/jiralink/database"
	"github.com/l3montree-dev/jiralink/shared"
)

const (
	dbName     = "jiralink"
	dbUser     = "user"
	dbPassword = "password"
)

// InitDatabaseContainer starts a postgres container, runs the embedded migrations and returns a gorm connection.
func InitDatabaseContainer() (shared.DB, func()) {
	ctx := context.Background()

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "err", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	pool, err := database.NewPgxConnPool(ctx, database.NewPoolConfig(shared.PostgresConfig{
		Host:     host,
		Port:     port.Port(),
		User:     dbUser,
		Password: dbPassword,
		DB:       dbName,
	}))
	if err != nil {
		terminate()
		panic(err)
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		terminate()
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		terminate()
		panic(err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}
