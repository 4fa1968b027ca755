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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/l3montree-dev/jiralink/controllers"
	"github.com/l3montree-dev/jiralink/daemons"
	"github.com/l3montree-dev/jiralink/database"
	"github.com/l3montree-dev/jiralink/database/repositories"
	"github.com/l3montree-dev/jiralink/integrations"
	"github.com/l3montree-dev/jiralink/middlewares"
	"github.com/l3montree-dev/jiralink/monitoring"
	"github.com/l3montree-dev/jiralink/pubsub"
	"github.com/l3montree-dev/jiralink/router"
	"github.com/l3montree-dev/jiralink/services"
	"github.com/l3montree-dev/jiralink/shared"
)

//	@title			jiralink API
//	@version		v1
//	@description	links github pull requests to jira issues

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg, err := shared.ReadConfig()
	if err != nil {
		slog.Error("could not read configuration", "err", err)
		panic(err)
	}

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), "jiralink", cfg.OtelExporterEndpoint, cfg.Environment)
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		panic(err)
	}

	pool, err := database.NewPgxConnPool(context.Background(), database.NewPoolConfig(cfg.Postgres))
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(middlewares.NewServer),
		repositories.Module,
		pubsub.Module,
		integrations.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.APIV1Router) {}),
		fx.Invoke(func(router.SyncRouter) {}),
		fx.Invoke(func(router.JiraRouter) {}),
		fx.Invoke(runServer),
		fx.Invoke(runDaemons),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: shutdownTracing})
		}),
	).Run()
}

func runServer(lc fx.Lifecycle, server *echo.Echo, cfg shared.Config, pool *pgxpool.Pool) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				slog.Info("starting server", "port", cfg.Port)
				if err := server.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					monitoring.Alert("server stopped unexpectedly", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer pool.Close()
			return server.Shutdown(ctx)
		},
	})
}

func runDaemons(lc fx.Lifecycle, runner shared.DaemonRunner) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return runner.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func initSentry(cfg shared.Config) {
	environment := cfg.Environment
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.ErrorTrackingDSN,
		Environment:      environment,
		Release:          shared.Version,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
