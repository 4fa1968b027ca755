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

package daemons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/monitoring"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/statemachine"
	"github.com/l3montree-dev/jiralink/transformer"
)

// SyncWorker processes the repositories of a single sync run.
// Every state change is reported to the sync service which drops callbacks of superseded runs.
type SyncWorker struct {
	syncService            shared.SyncService
	subscriptionRepository shared.SubscriptionRepository
	pullRequestSource      shared.PullRequestSource
	devInfoClientFactory   shared.DevInfoClientFactory
	transformer            *transformer.PullRequestTransformer
	limiter                *rate.Limiter
	concurrency            int
}

func NewSyncWorker(
	syncService shared.SyncService,
	subscriptionRepository shared.SubscriptionRepository,
	pullRequestSource shared.PullRequestSource,
	devInfoClientFactory shared.DevInfoClientFactory,
	config shared.Config,
) *SyncWorker {
	requestsPerSecond := config.Github.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = 10
	}
	concurrency := config.Sync.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &SyncWorker{
		syncService:            syncService,
		subscriptionRepository: subscriptionRepository,
		pullRequestSource:      pullRequestSource,
		devInfoClientFactory:   devInfoClientFactory,
		transformer:            transformer.NewPullRequestTransformer(nil),
		limiter:                rate.NewLimiter(rate.Limit(requestsPerSecond), max(1, int(requestsPerSecond))),
		concurrency:            concurrency,
	}
}

// Process works through every pending repository of the run. A job of a superseded run is a no-op.
func (w *SyncWorker) Process(ctx context.Context, job shared.SyncJob) error {
	subscription, err := w.subscriptionRepository.Read(job.SubscriptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Debug("subscription of sync job does not exist anymore", "subscriptionID", job.SubscriptionID)
			return nil
		}
		return fmt.Errorf("could not read subscription: %w", err)
	}
	if subscription.SyncGeneration != job.Generation || subscription.SyncStatus != models.SyncStatusActive {
		slog.Debug("skipping sync job of a superseded run", "subscriptionID", job.SubscriptionID, "generation", job.Generation, "current", subscription.SyncGeneration)
		return nil
	}

	client, err := w.devInfoClientFactory.ForJiraHost(subscription.JiraHost)
	if err != nil {
		return fmt.Errorf("could not create devinfo client: %w", err)
	}

	repos := statemachine.ReposToProcess(subscription.GetRepoSyncState())
	slog.Info("processing sync run", "subscriptionID", subscription.ID, "generation", subscription.SyncGeneration, "repos", len(repos))

	var goneOnce sync.Once
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for _, entry := range repos {
		g.Go(func() error {
			err := w.syncRepository(gctx, subscription, client, entry)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, shared.ErrRepoClaimed):
				return nil
			case errors.Is(err, shared.ErrStaleGeneration):
				// the run got restarted, stop working on it
				return err
			case errors.Is(err, shared.ErrInstallationGone):
				goneOnce.Do(func() {
					if failErr := w.syncService.RepoFailed(ctx, subscription.ID, subscription.SyncGeneration, entry.RepositoryID, err); failErr != nil {
						slog.Error("could not handle vanished installation", "installationID", subscription.GithubInstallationID, "err", failErr)
					}
				})
				return err
			case gctx.Err() != nil:
				return gctx.Err()
			default:
				if failErr := w.syncService.RepoFailed(ctx, subscription.ID, subscription.SyncGeneration, entry.RepositoryID, err); failErr != nil && !errors.Is(failErr, shared.ErrStaleGeneration) {
					slog.Error("could not mark repository as failed", "repositoryID", entry.RepositoryID, "err", failErr)
				}
				return nil
			}
		})
	}

	err = g.Wait()
	if errors.Is(err, shared.ErrStaleGeneration) || errors.Is(err, shared.ErrInstallationGone) {
		return nil
	}
	return err
}

func ownerAndName(entry models.RepoSyncEntry) (string, string) {
	if entry.Owner != "" && entry.Name != "" {
		return entry.Owner, entry.Name
	}
	owner, name, _ := strings.Cut(entry.FullName, "/")
	return owner, name
}

func repositoryFromEntry(entry models.RepoSyncEntry) *github.Repository {
	owner, name := ownerAndName(entry)
	return &github.Repository{
		ID:       github.Int64(entry.RepositoryID),
		Name:     github.String(name),
		FullName: github.String(entry.FullName),
		HTMLURL:  github.String(entry.URL),
		Owner:    &github.User{Login: github.String(owner)},
	}
}

func (w *SyncWorker) syncRepository(ctx context.Context, subscription models.Subscription, client shared.DevInfoClient, entry models.RepoSyncEntry) error {
	start := time.Now()
	if err := w.syncService.RepoStarted(ctx, subscription.ID, subscription.SyncGeneration, entry.RepositoryID); err != nil {
		return err
	}

	owner, name := ownerAndName(entry)
	repo := repositoryFromEntry(entry)
	page := entry.Cursor
	for {
		if err := w.limiter.Wait(ctx); err != nil {
			return err
		}
		prs, next, err := w.pullRequestSource.ListPullRequests(ctx, subscription.GithubInstallationID, owner, name, page)
		if err != nil {
			return fmt.Errorf("could not list pull requests of %s: %w", entry.FullName, err)
		}

		payload, err := w.transformPage(ctx, subscription.GithubInstallationID, repo, prs)
		if err != nil {
			return err
		}
		if payload != nil {
			if err := client.UpdateRepository(ctx, *payload); err != nil {
				return err
			}
		}

		if next == 0 {
			break
		}
		page = next
		if err := w.syncService.RepoProgress(ctx, subscription.ID, subscription.SyncGeneration, entry.RepositoryID, page); err != nil {
			return err
		}
	}

	monitoring.RepoSyncDuration.Observe(time.Since(start).Seconds())
	return w.syncService.RepoCompleted(ctx, subscription.ID, subscription.SyncGeneration, entry.RepositoryID)
}

// transformPage merges every linked pull request of one page into a single devinfo payload.
// Returns nil if no pull request of the page references an issue.
func (w *SyncWorker) transformPage(ctx context.Context, installationID int64, repo *github.Repository, prs []*github.PullRequest) (*jira.Repository, error) {
	var payload *jira.Repository
	owner, name := repo.GetOwner().GetLogin(), repo.GetName()

	for _, pr := range prs {
		// avoid fetching details of pull requests which can not be linked anyway
		if len(jira.ExtractIssueKeys(pr.GetTitle())) == 0 {
			monitoring.DevInfoResultAmount.WithLabelValues("skip").Inc()
			continue
		}

		reviews, err := w.fetchReviews(ctx, installationID, owner, name, pr.GetNumber())
		if err != nil {
			return nil, err
		}
		headCommit, err := w.fetchHeadCommit(ctx, installationID, owner, name, pr)
		if err != nil {
			return nil, err
		}

		result := w.transformer.TransformPullRequest(repo, pr, reviews, headCommit)
		monitoring.DevInfoResultAmount.WithLabelValues(transformer.ResultLabel(result)).Inc()

		update, ok := result.(transformer.DevInfoUpdate)
		if !ok {
			continue
		}
		if payload == nil {
			p := update.Payload
			payload = &p
			continue
		}
		payload.PullRequests = append(payload.PullRequests, update.Payload.PullRequests...)
		payload.Branches = append(payload.Branches, update.Payload.Branches...)
		payload.UpdateSequenceID = max(payload.UpdateSequenceID, update.Payload.UpdateSequenceID)
	}
	if payload == nil {
		return nil, nil
	}
	merged := payload.WithUpdateSequenceID(payload.UpdateSequenceID)
	return &merged, nil
}

// reviews are optional, only a vanished installation is an error
func (w *SyncWorker) fetchReviews(ctx context.Context, installationID int64, owner, name string, number int) ([]*github.PullRequestReview, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	reviews, err := w.pullRequestSource.ListReviews(ctx, installationID, owner, name, number)
	if err != nil {
		if errors.Is(err, shared.ErrInstallationGone) {
			return nil, err
		}
		slog.Warn("could not fetch pull request reviews", "repo", owner+"/"+name, "number", number, "err", err)
		return nil, nil
	}
	return reviews, nil
}

// the head commit is only part of the payload of open pull requests
func (w *SyncWorker) fetchHeadCommit(ctx context.Context, installationID int64, owner, name string, pr *github.PullRequest) (*github.RepositoryCommit, error) {
	if pr.GetState() != "open" || pr.GetHead().GetSHA() == "" {
		return nil, nil
	}
	if err := w.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	commit, err := w.pullRequestSource.GetCommit(ctx, installationID, owner, name, pr.GetHead().GetSHA())
	if err != nil {
		if errors.Is(err, shared.ErrInstallationGone) {
			return nil, err
		}
		slog.Warn("could not fetch head commit", "repo", owner+"/"+name, "sha", pr.GetHead().GetSHA(), "err", err)
		return nil, nil
	}
	return commit, nil
}
