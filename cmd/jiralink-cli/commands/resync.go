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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/l3montree-dev/jiralink/database"
	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/database/repositories"
	"github.com/l3montree-dev/jiralink/integrations/githubint"
	"github.com/l3montree-dev/jiralink/pubsub"
	"github.com/l3montree-dev/jiralink/services"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/statemachine"
)

func NewResyncCommand() *cobra.Command {
	resync := &cobra.Command{
		Use:   "resync",
		Short: "Start a new sync for many subscriptions",
		Long: `Selects subscriptions by installation and status and starts a new sync for each of them.
The runs are processed by the workers of the running jiralink instances.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			installationIDs, _ := cmd.Flags().GetInt64Slice("installation-id")
			statusTypes, _ := cmd.Flags().GetStringSlice("status")
			syncType, _ := cmd.Flags().GetString("sync-type")
			offset, _ := cmd.Flags().GetInt("offset")
			limit, _ := cmd.Flags().GetInt("limit")
			wait, _ := cmd.Flags().GetBool("wait")
			pollInterval, _ := cmd.Flags().GetDuration("poll-interval")

			if !models.SyncResetType(syncType).IsValid() {
				return fmt.Errorf("invalid sync type: %s", syncType)
			}

			env, err := setupEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			broker, err := pubsub.NewPostgreSQLBroker(database.NewPoolConfig(env.cfg.Postgres), false)
			if err != nil {
				return fmt.Errorf("could not connect to broker: %w", err)
			}
			defer broker.Close() // nolint: errcheck

			githubClient, err := githubint.NewGithubAppClient(env.cfg)
			if err != nil {
				return err
			}

			subscriptionRepository := repositories.NewSubscriptionRepository(env.db)
			syncService := services.NewSyncService(
				subscriptionRepository,
				repositories.NewInstallationRepository(env.db),
				githubClient,
				services.NewBrokerSyncScheduler(broker),
				env.cfg,
			)

			started, err := syncService.BulkResync(cmd.Context(), shared.ResyncQuery{
				InstallationIDs: installationIDs,
				StatusTypes:     statusTypes,
				Offset:          offset,
				Limit:           limit,
			}, models.SyncResetType(syncType))
			if err != nil {
				return err
			}
			fmt.Println(renderSubscriptions(started, time.Now(), env.cfg.Sync.StalenessWindow))

			if !wait || len(started) == 0 {
				return nil
			}
			ids := make([]uuid.UUID, 0, len(started))
			for _, sub := range started {
				ids = append(ids, sub.ID)
			}
			return waitForSync(cmd.Context(), subscriptionRepository, ids, pollInterval, env.cfg.Sync.StalenessWindow)
		},
	}

	resync.Flags().Int64Slice("installation-id", nil, "only resync subscriptions of these github installations")
	resync.Flags().StringSlice("status", nil, "only resync subscriptions in these states (PENDING, ACTIVE, COMPLETE, FAILED)")
	resync.Flags().String("sync-type", "", "full, partial or none (defaults to partial)")
	resync.Flags().Int("offset", 0, "number of subscriptions to skip")
	resync.Flags().Int("limit", 0, "maximum number of subscriptions, 0 selects all")
	resync.Flags().Bool("wait", false, "wait until every started run is complete or failed")
	resync.Flags().Duration("poll-interval", 2*time.Second, "how often the progress is polled with --wait")
	return resync
}

func waitForSync(ctx context.Context, subscriptionRepository shared.SubscriptionRepository, ids []uuid.UUID, pollInterval time.Duration, stalenessWindow time.Duration) error {
	var bar *progressbar.ProgressBar
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		total, synced, running := 0, 0, 0
		for _, id := range ids {
			sub, err := subscriptionRepository.Read(id)
			if err != nil {
				// removed while syncing
				slog.Warn("could not read subscription", "subscriptionID", id, "err", err)
				continue
			}
			total += sub.TotalNumberOfRepos
			synced += sub.NumberOfSyncedRepos
			if statemachine.ClassifySyncStatus(sub, time.Now(), stalenessWindow) == statemachine.SyncPresentationInProgress {
				running++
			}
		}

		if bar == nil {
			bar = progressbar.Default(int64(total), "syncing repositories")
		} else {
			bar.ChangeMax(total)
		}
		bar.Set(synced) // nolint: errcheck

		if running == 0 {
			return bar.Finish()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
