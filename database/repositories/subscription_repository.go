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
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/l3montree-dev/jiralink/common"
	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/statemachine"
)

type subscriptionRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Subscription, shared.DB]
}

func NewSubscriptionRepository(db shared.DB) *subscriptionRepository {
	return &subscriptionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Subscription](db),
	}
}

func (r *subscriptionRepository) FindByInstallationAndHost(installationID int64, jiraHost string) (models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "github_installation_id = ? AND jira_host = ?", installationID, jiraHost).Error
	return sub, err
}

func (r *subscriptionRepository) FindAllForHost(jiraHost string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("jira_host = ?", jiraHost).Order("created_at ASC").Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) FindAllForInstallation(installationID int64) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("github_installation_id = ?", installationID).Order("created_at ASC").Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) FindAllFiltered(filter shared.SubscriptionFilter) ([]models.Subscription, error) {
	q := r.db.Model(&models.Subscription{})

	if len(filter.InstallationIDs) > 0 {
		q = q.Where("github_installation_id IN ?", filter.InstallationIDs)
	}

	switch {
	case len(filter.Statuses) > 0 && filter.IncludeStalled:
		q = q.Where("(sync_status IN ? OR (sync_status = ? AND updated_at < ?))", filter.Statuses, models.SyncStatusActive, filter.StaleBefore)
	case len(filter.Statuses) > 0:
		q = q.Where("sync_status IN ?", filter.Statuses)
	case filter.IncludeStalled:
		q = q.Where("sync_status = ? AND updated_at < ?", models.SyncStatusActive, filter.StaleBefore)
	}

	// stable order for offset pagination
	q = q.Order("created_at ASC").Order("id ASC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var subs []models.Subscription
	err := q.Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) FindResumable() ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where(`sync_status = ? AND EXISTS (
		SELECT 1 FROM jsonb_each(CASE WHEN jsonb_typeof(repo_sync_state->'repos') = 'object' THEN repo_sync_state->'repos' ELSE '{}'::jsonb END) AS entry
		WHERE entry.value->>'status' IN ?
	)`, models.SyncStatusActive, []models.RepoSyncStatus{models.RepoSyncStatusPending, models.RepoSyncStatusInProgress}).
		Order("updated_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) StartSync(tx shared.DB, id uuid.UUID, state models.RepoSyncState, startedAt time.Time) (models.Subscription, error) {
	if state.Repos == nil {
		state.Repos = map[string]models.RepoSyncEntry{}
	}
	total, synced := statemachine.Counts(state)

	var sub models.Subscription
	res := r.GetDB(tx).Model(&sub).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sync_generation":        gorm.Expr("sync_generation + 1"),
			"sync_status":            statemachine.StatusFor(total, synced),
			"sync_warning":           "",
			"total_number_of_repos":  total,
			"number_of_synced_repos": synced,
			"sync_started_at":        startedAt,
			"repo_sync_state":        datatypes.NewJSONType(state),
			"updated_at":             startedAt,
		})
	if res.Error != nil {
		return models.Subscription{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Subscription{}, shared.ErrSubscriptionNotFound
	}
	return sub, nil
}

func entryPath(repositoryID int64, field string) string {
	return fmt.Sprintf("{repos,%d,%s}", repositoryID, field)
}

// guards every repository callback: the run must still be current and the entry must exist and not be complete
const repoCallbackGuard = `id = ? AND sync_generation = ? AND COALESCE(repo_sync_state #>> ?::text[], 'complete') <> 'complete'`

func (r *subscriptionRepository) ClaimRepo(id uuid.UUID, generation int64, repositoryID int64, staleBefore time.Time) error {
	var sub models.Subscription
	if err := r.db.Select("id").First(&sub, "id = ? AND sync_generation = ?", id, generation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrStaleGeneration
		}
		return err
	}

	res := r.db.Exec(`UPDATE subscriptions SET
		repo_sync_state = jsonb_set(jsonb_set(repo_sync_state,
			?::text[], '"in-progress"'::jsonb),
			?::text[], to_jsonb(now())),
		updated_at = now()
	WHERE `+repoCallbackGuard+` AND (
		repo_sync_state #>> ?::text[] = 'pending'
		OR (repo_sync_state #>> ?::text[] = 'in-progress' AND (repo_sync_state #>> ?::text[])::timestamptz < ?)
	)`,
		entryPath(repositoryID, "status"),
		entryPath(repositoryID, "updatedAt"),
		id, generation, entryPath(repositoryID, "status"),
		entryPath(repositoryID, "status"),
		entryPath(repositoryID, "status"), entryPath(repositoryID, "updatedAt"), staleBefore,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrRepoClaimed
	}
	return nil
}

func (r *subscriptionRepository) MarkRepoInProgress(id uuid.UUID, generation int64, repositoryID int64, cursor int) error {
	res := r.db.Exec(`UPDATE subscriptions SET
		repo_sync_state = jsonb_set(jsonb_set(jsonb_set(repo_sync_state,
			?::text[], '"in-progress"'::jsonb),
			?::text[], to_jsonb(?::int)),
			?::text[], to_jsonb(now())),
		updated_at = now()
	WHERE `+repoCallbackGuard,
		entryPath(repositoryID, "status"),
		entryPath(repositoryID, "cursor"), cursor,
		entryPath(repositoryID, "updatedAt"),
		id, generation, entryPath(repositoryID, "status"),
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrStaleGeneration
	}
	return nil
}

// CompleteRepo is a single statement. Concurrent completions of different repositories
// of the same subscription therefore never lose an increment.
func (r *subscriptionRepository) CompleteRepo(id uuid.UUID, generation int64, repositoryID int64) (models.Subscription, error) {
	var sub models.Subscription
	res := r.db.Raw(`UPDATE subscriptions SET
		number_of_synced_repos = number_of_synced_repos + 1,
		sync_status = CASE WHEN number_of_synced_repos + 1 >= total_number_of_repos THEN ? ELSE sync_status END,
		repo_sync_state = jsonb_set(jsonb_set(repo_sync_state,
			?::text[], '"complete"'::jsonb),
			?::text[], to_jsonb(now())),
		updated_at = now()
	WHERE `+repoCallbackGuard+` AND sync_status = ? AND number_of_synced_repos < total_number_of_repos
	RETURNING *`,
		models.SyncStatusComplete,
		entryPath(repositoryID, "status"),
		entryPath(repositoryID, "updatedAt"),
		id, generation, entryPath(repositoryID, "status"),
		models.SyncStatusActive,
	).Scan(&sub)
	if res.Error != nil {
		return models.Subscription{}, res.Error
	}
	if sub.ID == uuid.Nil {
		return models.Subscription{}, shared.ErrStaleGeneration
	}
	return sub, nil
}

func (r *subscriptionRepository) FailRepo(id uuid.UUID, generation int64, repositoryID int64, warning string) error {
	res := r.db.Exec(`UPDATE subscriptions SET
		repo_sync_state = jsonb_set(jsonb_set(jsonb_set(repo_sync_state,
			?::text[], '"failed"'::jsonb),
			?::text[], to_jsonb(?::text)),
			?::text[], to_jsonb(now())),
		sync_warning = ?,
		updated_at = now()
	WHERE `+repoCallbackGuard,
		entryPath(repositoryID, "status"),
		entryPath(repositoryID, "error"), warning,
		entryPath(repositoryID, "updatedAt"),
		warning,
		id, generation, entryPath(repositoryID, "status"),
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrStaleGeneration
	}
	return nil
}

func (r *subscriptionRepository) DeleteByInstallationID(tx shared.DB, installationID int64) error {
	return r.GetDB(tx).Where("github_installation_id = ?", installationID).Delete(&models.Subscription{}).Error
}

func (r *subscriptionRepository) DeleteByJiraHost(tx shared.DB, jiraHost string) error {
	return r.GetDB(tx).Where("jira_host = ?", jiraHost).Delete(&models.Subscription{}).Error
}
