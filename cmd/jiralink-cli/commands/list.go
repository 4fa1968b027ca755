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
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/database/repositories"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/statemachine"
	"github.com/l3montree-dev/jiralink/utils"
)

func NewListCommand() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions and the state of their sync",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			installationIDs, _ := cmd.Flags().GetInt64Slice("installation-id")
			offset, _ := cmd.Flags().GetInt("offset")
			limit, _ := cmd.Flags().GetInt("limit")

			env, err := setupEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			subscriptions, err := repositories.NewSubscriptionRepository(env.db).FindAllFiltered(shared.SubscriptionFilter{
				InstallationIDs: installationIDs,
				Offset:          offset,
				Limit:           limit,
			})
			if err != nil {
				return fmt.Errorf("could not fetch subscriptions: %w", err)
			}

			fmt.Println(renderSubscriptions(subscriptions, time.Now(), env.cfg.Sync.StalenessWindow))
			return nil
		},
	}

	list.Flags().Int64Slice("installation-id", nil, "only list subscriptions of these github installations")
	list.Flags().Int("offset", 0, "number of subscriptions to skip")
	list.Flags().Int("limit", 0, "maximum number of subscriptions, 0 lists all")
	return list
}

func renderSubscriptions(subscriptions []models.Subscription, now time.Time, stalenessWindow time.Duration) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Installation", "Jira host", "Status", "Repos", "Generation", "Updated"})
	tw.AppendRows(utils.Map(subscriptions, func(sub models.Subscription) table.Row {
		status := statemachine.ClassifySyncStatus(sub, now, stalenessWindow)
		if status == statemachine.SyncPresentationNotStarted {
			status = "NOT STARTED"
		}
		return table.Row{
			sub.ID,
			sub.GithubInstallationID,
			sub.JiraHost,
			status,
			fmt.Sprintf("%d/%d", sub.NumberOfSyncedRepos, sub.TotalNumberOfRepos),
			sub.SyncGeneration,
			sub.UpdatedAt.Format(time.RFC3339),
		}
	}))
	tw.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d subscriptions", len(subscriptions))})
	return tw.Render()
}
