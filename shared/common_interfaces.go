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

package shared

import (
	"context"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/google/uuid"

	"github.com/l3montree-dev/jiralink/common"
	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/dtos"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/statemachine"
)

type LeaderElector interface {
	IsLeader() bool
}

type ConfigRepository interface {
	Save(tx DB, config *models.Config) error
	GetDB(tx DB) DB
}

type ConfigService interface {
	// retrieves the value for the given key and marshals it into v
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
}

type InstallationRepository interface {
	common.Repository[uuid.UUID, models.Installation, DB]
	// FindByClientKey expects the hashed client key, see models.HashClientKey
	FindByClientKey(clientKey string) (models.Installation, error)
	FindByJiraHost(jiraHost string) ([]models.Installation, error)
	SetEnabled(tx DB, id uuid.UUID, enabled bool) error
}

// SubscriptionFilter selects subscriptions for a bulk resync.
// An empty filter matches every subscription.
type SubscriptionFilter struct {
	InstallationIDs []int64
	// stored statuses to match
	Statuses []models.SyncStatus
	// IncludeStalled additionally matches ACTIVE subscriptions without progress since StaleBefore
	IncludeStalled bool
	StaleBefore    time.Time
	Offset         int
	// Limit <= 0 means no limit
	Limit int
}

type SubscriptionRepository interface {
	common.Repository[uuid.UUID, models.Subscription, DB]
	FindByInstallationAndHost(installationID int64, jiraHost string) (models.Subscription, error)
	FindAllForHost(jiraHost string) ([]models.Subscription, error)
	FindAllForInstallation(installationID int64) ([]models.Subscription, error)
	FindAllFiltered(filter SubscriptionFilter) ([]models.Subscription, error)
	// FindResumable returns ACTIVE subscriptions which still have repositories to process
	FindResumable() ([]models.Subscription, error)

	// StartSync persists a new run for the subscription and returns the stored row including the new generation.
	StartSync(tx DB, id uuid.UUID, state models.RepoSyncState, startedAt time.Time) (models.Subscription, error)
	// ClaimRepo moves a pending repository, or an in-progress repository without progress since staleBefore, to in-progress.
	// Returns ErrRepoClaimed if another worker owns the repository.
	ClaimRepo(id uuid.UUID, generation int64, repositoryID int64, staleBefore time.Time) error
	MarkRepoInProgress(id uuid.UUID, generation int64, repositoryID int64, cursor int) error
	// CompleteRepo atomically marks the repository complete and increments the synced counter.
	// Returns ErrStaleGeneration if the callback does not apply to the current run.
	CompleteRepo(id uuid.UUID, generation int64, repositoryID int64) (models.Subscription, error)
	FailRepo(id uuid.UUID, generation int64, repositoryID int64, warning string) error

	DeleteByInstallationID(tx DB, installationID int64) error
	DeleteByJiraHost(tx DB, jiraHost string) error
}

type RepositoryInfo struct {
	ID       int64
	Name     string
	Owner    string
	FullName string
	URL      string
}

// RepositoryEnumerator lists the repositories visible to a github app installation.
// Returns ErrInstallationGone if github does not know the installation anymore.
type RepositoryEnumerator interface {
	ListRepositories(ctx context.Context, installationID int64) ([]RepositoryInfo, error)
}

type PullRequestSource interface {
	// ListPullRequests returns one page of pull requests (all states) and the next page. Next page 0 means done.
	ListPullRequests(ctx context.Context, installationID int64, owner, repo string, page int) ([]*github.PullRequest, int, error)
	ListReviews(ctx context.Context, installationID int64, owner, repo string, number int) ([]*github.PullRequestReview, error)
	GetCommit(ctx context.Context, installationID int64, owner, repo, sha string) (*github.RepositoryCommit, error)
}

type InstallationLookup interface {
	GetInstallation(ctx context.Context, installationID int64) (*github.Installation, error)
}

type GithubAppClient interface {
	RepositoryEnumerator
	PullRequestSource
	InstallationLookup
}

type DevInfoClient interface {
	UpdateRepository(ctx context.Context, repository jira.Repository) error
	DeletePullRequest(ctx context.Context, repositoryID int64, pullRequestNumber int) error
	// IsAuthorized reports whether jira still accepts the shared secret of the installation.
	IsAuthorized(ctx context.Context) (bool, error)
}

type DevInfoClientFactory interface {
	ForJiraHost(jiraHost string) (DevInfoClient, error)
	ForInstallation(installation models.Installation) DevInfoClient
}

// SyncScheduler hands a run to the sync workers. It must not block until the run is done.
type SyncScheduler interface {
	Schedule(ctx context.Context, job SyncJob) error
}

type ResyncQuery struct {
	InstallationIDs []int64
	StatusTypes     []string
	Offset          int
	Limit           int
}

type SyncService interface {
	StartOrResume(ctx context.Context, subscription models.Subscription, resetType models.SyncResetType) (models.Subscription, error)
	BulkResync(ctx context.Context, query ResyncQuery, resetType models.SyncResetType) ([]models.Subscription, error)
	RepoCompleted(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64) error
	RepoStarted(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64) error
	RepoProgress(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64, cursor int) error
	RepoFailed(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64, cause error) error
	// InstallationGone reports a 404 from github. Returns true if the subscriptions got removed.
	InstallationGone(ctx context.Context, installationID int64) (bool, error)
	RemoveInstallation(ctx context.Context, installationID int64) error
	// ResumeStalled schedules active runs which still have repositories to process but made no progress recently.
	ResumeStalled(ctx context.Context) (int, error)
	// Subscribe links a github installation to a jira host and starts a full sync.
	Subscribe(ctx context.Context, installationID int64, jiraHost string) (models.Subscription, error)
	Classify(subscription models.Subscription) statemachine.SyncPresentation
}

type PullRequestService interface {
	HandlePullRequestEvent(ctx context.Context, event *github.PullRequestEvent) error
}

type InstallationService interface {
	HandleLifecycleEvent(ctx context.Context, event dtos.JiraLifecycleEvent) (models.Installation, error)
	// FindByClientKeyOrJiraHost accepts either a raw client key or a jira host
	FindByClientKeyOrJiraHost(clientKeyOrJiraHost string) ([]models.Installation, error)
	// Uninstall removes the installation with the hashed client key.
	// Installations jira still authorizes are only removed if forced.
	Uninstall(ctx context.Context, clientKey string, force bool) (models.Installation, error)
	// Verify enables a disabled installation if jira authorizes it. Returns whether it was enabled already.
	Verify(ctx context.Context, id uuid.UUID) (models.Installation, bool, error)
}

type DaemonRunner interface {
	// Start consumes scheduled sync jobs and periodically resumes stalled runs until the context is done.
	Start(ctx context.Context) error
}
