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
	"fmt"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/mocks"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/transformer"
)

func testConfig() shared.Config {
	cfg := shared.Config{Sync: shared.DefaultSyncConfig()}
	cfg.Sync.WorkerConcurrency = 1
	cfg.Github.RequestsPerSecond = 1000
	return cfg
}

func activeSubscription(generation int64, entries ...models.RepoSyncEntry) models.Subscription {
	sub := models.Subscription{
		Model:                models.Model{ID: uuid.New()},
		GithubInstallationID: 10,
		JiraHost:             "https://acme.atlassian.net",
		SyncStatus:           models.SyncStatusActive,
		SyncGeneration:       generation,
		TotalNumberOfRepos:   len(entries),
	}
	repos := make(map[string]models.RepoSyncEntry, len(entries))
	for _, e := range entries {
		repos[e.Key()] = e
	}
	sub.SetRepoSyncState(models.RepoSyncState{Repos: repos})
	return sub
}

func pendingRepo(id int64, name string) models.RepoSyncEntry {
	return models.RepoSyncEntry{
		RepositoryID: id,
		Name:         name,
		Owner:        "octo",
		FullName:     "octo/" + name,
		URL:          "https://github.com/octo/" + name,
		Status:       models.RepoSyncStatusPending,
	}
}

func linkedPullRequest(number int, title string) *github.PullRequest {
	return &github.PullRequest{
		Number:  github.Int(number),
		Title:   github.String(title),
		State:   github.String("open"),
		HTMLURL: github.String(fmt.Sprintf("https://github.com/octo/api/pull/%d", number)),
		Head:    &github.PullRequestBranch{Ref: github.String("feature"), SHA: github.String("abcdef1234567")},
		Base:    &github.PullRequestBranch{Ref: github.String("main")},
		User:    &github.User{Login: github.String("alice")},
	}
}

func TestProcess(t *testing.T) {
	t.Run("should skip jobs of a superseded run", func(t *testing.T) {
		sub := activeSubscription(3, pendingRepo(1, "api"))

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		worker := NewSyncWorker(mocks.NewSyncService(t), subscriptionRepository, mocks.NewGithubAppClient(t), mocks.NewDevInfoClientFactory(t), testConfig())

		err := worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 2})
		assert.NoError(t, err)
	})

	t.Run("should skip jobs of removed subscriptions", func(t *testing.T) {
		id := uuid.New()
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", id).Return(models.Subscription{}, gorm.ErrRecordNotFound)

		worker := NewSyncWorker(mocks.NewSyncService(t), subscriptionRepository, mocks.NewGithubAppClient(t), mocks.NewDevInfoClientFactory(t), testConfig())

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: id, Generation: 1}))
	})

	t.Run("should page through the pull requests and complete the repository", func(t *testing.T) {
		sub := activeSubscription(1, pendingRepo(42, "api"))

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "api", 0).Return([]*github.PullRequest{
			linkedPullRequest(1, "ABC-1 first"),
			linkedPullRequest(2, "no keys here"),
			linkedPullRequest(3, "ABC-3 third"),
		}, 2, nil)
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "api", 2).Return([]*github.PullRequest{}, 0, nil)
		source.On("ListReviews", mock.Anything, int64(10), "octo", "api", mock.Anything).Return([]*github.PullRequestReview{}, nil).Twice()
		source.On("GetCommit", mock.Anything, int64(10), "octo", "api", "abcdef1234567").Return(nil, fmt.Errorf("not available")).Twice()

		client := mocks.NewDevInfoClient(t)
		client.On("UpdateRepository", mock.Anything, mock.MatchedBy(func(repo jira.Repository) bool {
			return repo.ID == "42" && len(repo.PullRequests) == 2 && len(repo.Branches) == 2
		})).Return(nil).Once()

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", sub.JiraHost).Return(client, nil)

		syncService := mocks.NewSyncService(t)
		syncService.On("RepoStarted", mock.Anything, sub.ID, int64(1), int64(42)).Return(nil)
		syncService.On("RepoProgress", mock.Anything, sub.ID, int64(1), int64(42), 2).Return(nil)
		syncService.On("RepoCompleted", mock.Anything, sub.ID, int64(1), int64(42)).Return(nil)

		worker := NewSyncWorker(syncService, subscriptionRepository, source, factory, testConfig())

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 1}))
	})

	t.Run("should send a merged page as a single version", func(t *testing.T) {
		sub := activeSubscription(1, pendingRepo(42, "api"))

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "api", 0).Return([]*github.PullRequest{
			linkedPullRequest(1, "ABC-1 first"),
			linkedPullRequest(2, "ABC-2 second"),
		}, 0, nil)
		source.On("ListReviews", mock.Anything, int64(10), "octo", "api", mock.Anything).Return([]*github.PullRequestReview{}, nil)
		source.On("GetCommit", mock.Anything, int64(10), "octo", "api", "abcdef1234567").Return(nil, fmt.Errorf("not available"))

		client := mocks.NewDevInfoClient(t)
		client.On("UpdateRepository", mock.Anything, mock.MatchedBy(func(repo jira.Repository) bool {
			if repo.UpdateSequenceID != 2000 || len(repo.PullRequests) != 2 {
				return false
			}
			for _, pr := range repo.PullRequests {
				if pr.UpdateSequenceID != repo.UpdateSequenceID {
					return false
				}
			}
			for _, branch := range repo.Branches {
				if branch.UpdateSequenceID != repo.UpdateSequenceID || branch.LastCommit.UpdateSequenceID != repo.UpdateSequenceID {
					return false
				}
			}
			return true
		})).Return(nil).Once()

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", sub.JiraHost).Return(client, nil)

		syncService := mocks.NewSyncService(t)
		syncService.On("RepoStarted", mock.Anything, sub.ID, int64(1), int64(42)).Return(nil)
		syncService.On("RepoCompleted", mock.Anything, sub.ID, int64(1), int64(42)).Return(nil)

		worker := NewSyncWorker(syncService, subscriptionRepository, source, factory, testConfig())
		// every transformed pull request gets a later sequence id
		var tick int64
		worker.transformer = transformer.NewPullRequestTransformer(jira.NewUpdateSequence(func() time.Time {
			tick++
			return time.UnixMilli(tick * 1000)
		}))

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 1}))
	})

	t.Run("should resume a repository from its cursor", func(t *testing.T) {
		entry := pendingRepo(42, "api")
		entry.Cursor = 5
		sub := activeSubscription(1, entry)

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "api", 5).Return([]*github.PullRequest{}, 0, nil)

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", sub.JiraHost).Return(mocks.NewDevInfoClient(t), nil)

		syncService := mocks.NewSyncService(t)
		syncService.On("RepoStarted", mock.Anything, sub.ID, int64(1), int64(42)).Return(nil)
		syncService.On("RepoCompleted", mock.Anything, sub.ID, int64(1), int64(42)).Return(nil)

		worker := NewSyncWorker(syncService, subscriptionRepository, source, factory, testConfig())

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 1}))
	})

	t.Run("should leave repositories claimed by another worker alone", func(t *testing.T) {
		sub := activeSubscription(1, pendingRepo(42, "api"))

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", sub.JiraHost).Return(mocks.NewDevInfoClient(t), nil)

		syncService := mocks.NewSyncService(t)
		syncService.On("RepoStarted", mock.Anything, sub.ID, int64(1), int64(42)).Return(shared.ErrRepoClaimed)

		worker := NewSyncWorker(syncService, subscriptionRepository, mocks.NewGithubAppClient(t), factory, testConfig())

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 1}))
	})

	t.Run("should mark a repository as failed and continue with the next one", func(t *testing.T) {
		sub := activeSubscription(1, pendingRepo(1, "api"), pendingRepo(2, "web"))

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "api", 0).Return(nil, 0, fmt.Errorf("server error"))
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "web", 0).Return([]*github.PullRequest{}, 0, nil)

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", sub.JiraHost).Return(mocks.NewDevInfoClient(t), nil)

		syncService := mocks.NewSyncService(t)
		syncService.On("RepoStarted", mock.Anything, sub.ID, int64(1), mock.Anything).Return(nil)
		syncService.On("RepoFailed", mock.Anything, sub.ID, int64(1), int64(1), mock.Anything).Return(nil)
		syncService.On("RepoCompleted", mock.Anything, sub.ID, int64(1), int64(2)).Return(nil)

		worker := NewSyncWorker(syncService, subscriptionRepository, source, factory, testConfig())

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 1}))
	})

	t.Run("should report a vanished installation once and stop the run", func(t *testing.T) {
		sub := activeSubscription(1, pendingRepo(1, "api"), pendingRepo(2, "web"))

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		gone := fmt.Errorf("%w: installation 10", shared.ErrInstallationGone)
		source := mocks.NewGithubAppClient(t)
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "api", 0).Return(nil, 0, gone)
		source.On("ListPullRequests", mock.Anything, int64(10), "octo", "web", 0).Return(nil, 0, gone).Maybe()

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", sub.JiraHost).Return(mocks.NewDevInfoClient(t), nil)

		syncService := mocks.NewSyncService(t)
		syncService.On("RepoStarted", mock.Anything, sub.ID, int64(1), mock.Anything).Return(nil)
		syncService.On("RepoFailed", mock.Anything, sub.ID, int64(1), mock.Anything, mock.MatchedBy(func(err error) bool {
			return err != nil
		})).Return(nil).Once()

		worker := NewSyncWorker(syncService, subscriptionRepository, source, factory, testConfig())

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 1}))
	})

	t.Run("should stop once the run got restarted", func(t *testing.T) {
		sub := activeSubscription(1, pendingRepo(1, "api"), pendingRepo(2, "web"))

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("Read", sub.ID).Return(sub, nil)

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", sub.JiraHost).Return(mocks.NewDevInfoClient(t), nil)

		syncService := mocks.NewSyncService(t)
		syncService.On("RepoStarted", mock.Anything, sub.ID, int64(1), mock.Anything).Return(shared.ErrStaleGeneration)

		worker := NewSyncWorker(syncService, subscriptionRepository, mocks.NewGithubAppClient(t), factory, testConfig())

		assert.NoError(t, worker.Process(context.Background(), shared.SyncJob{SubscriptionID: sub.ID, Generation: 1}))
	})
}
