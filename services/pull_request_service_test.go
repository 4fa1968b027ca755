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

package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/mocks"
)

func pullRequestEvent(action, title string) *github.PullRequestEvent {
	return &github.PullRequestEvent{
		Action:       github.String(action),
		Installation: &github.Installation{ID: github.Int64(10)},
		Repo: &github.Repository{
			ID:       github.Int64(42),
			Name:     github.String("api"),
			FullName: github.String("octo/api"),
			HTMLURL:  github.String("https://github.com/octo/api"),
			Owner:    &github.User{Login: github.String("octo")},
		},
		PullRequest: &github.PullRequest{
			Number:  github.Int(7),
			Title:   github.String(title),
			State:   github.String("open"),
			HTMLURL: github.String("https://github.com/octo/api/pull/7"),
			Head:    &github.PullRequestBranch{Ref: github.String("feature"), SHA: github.String("abcdef1234567")},
			Base:    &github.PullRequestBranch{Ref: github.String("main")},
			User:    &github.User{Login: github.String("alice")},
		},
	}
}

func TestHandlePullRequestEvent(t *testing.T) {
	t.Run("should ignore unhandled actions", func(t *testing.T) {
		s := NewPullRequestService(mocks.NewSubscriptionRepository(t), mocks.NewGithubAppClient(t), mocks.NewDevInfoClientFactory(t))

		assert.NoError(t, s.HandlePullRequestEvent(context.Background(), pullRequestEvent("labeled", "ABC-1 fix")))
	})

	t.Run("should fail for an event without installation", func(t *testing.T) {
		s := NewPullRequestService(mocks.NewSubscriptionRepository(t), mocks.NewGithubAppClient(t), mocks.NewDevInfoClientFactory(t))

		event := pullRequestEvent("opened", "ABC-1 fix")
		event.Installation = nil
		assert.Error(t, s.HandlePullRequestEvent(context.Background(), event))
	})

	t.Run("should do nothing if no jira host is subscribed", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("FindAllForInstallation", int64(10)).Return([]models.Subscription{}, nil)

		s := NewPullRequestService(subscriptionRepository, mocks.NewGithubAppClient(t), mocks.NewDevInfoClientFactory(t))

		assert.NoError(t, s.HandlePullRequestEvent(context.Background(), pullRequestEvent("opened", "ABC-1 fix")))
	})

	t.Run("should send the pull request to every subscribed jira host", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("FindAllForInstallation", int64(10)).Return([]models.Subscription{
			{JiraHost: "https://a.atlassian.net"},
			{JiraHost: "https://b.atlassian.net"},
		}, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListReviews", mock.Anything, int64(10), "octo", "api", 7).Return([]*github.PullRequestReview{
			{State: github.String("APPROVED"), User: &github.User{Login: github.String("bob")}},
		}, nil)

		client := mocks.NewDevInfoClient(t)
		client.On("UpdateRepository", mock.Anything, mock.MatchedBy(func(repo jira.Repository) bool {
			return repo.ID == "42" && len(repo.PullRequests) == 1 && repo.PullRequests[0].IssueKeys[0] == "ABC-1"
		})).Return(nil).Twice()

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", "https://a.atlassian.net").Return(client, nil)
		factory.On("ForJiraHost", "https://b.atlassian.net").Return(client, nil)

		s := NewPullRequestService(subscriptionRepository, source, factory)

		assert.NoError(t, s.HandlePullRequestEvent(context.Background(), pullRequestEvent("opened", "ABC-1 fix")))
	})

	t.Run("should still send the pull request if reviews can not be fetched", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("FindAllForInstallation", int64(10)).Return([]models.Subscription{{JiraHost: "https://a.atlassian.net"}}, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListReviews", mock.Anything, int64(10), "octo", "api", 7).Return(nil, fmt.Errorf("secondary rate limit"))

		client := mocks.NewDevInfoClient(t)
		client.On("UpdateRepository", mock.Anything, mock.Anything).Return(nil)

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", "https://a.atlassian.net").Return(client, nil)

		s := NewPullRequestService(subscriptionRepository, source, factory)

		assert.NoError(t, s.HandlePullRequestEvent(context.Background(), pullRequestEvent("synchronize", "ABC-1 fix")))
	})

	t.Run("should delete the pull request if its issue keys were removed from the title", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("FindAllForInstallation", int64(10)).Return([]models.Subscription{{JiraHost: "https://a.atlassian.net"}}, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListReviews", mock.Anything, int64(10), "octo", "api", 7).Return([]*github.PullRequestReview{}, nil)

		client := mocks.NewDevInfoClient(t)
		client.On("DeletePullRequest", mock.Anything, int64(42), 7).Return(nil)

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", "https://a.atlassian.net").Return(client, nil)

		s := NewPullRequestService(subscriptionRepository, source, factory)

		event := pullRequestEvent("edited", "plain fix")
		event.Changes = &github.EditChange{Title: &github.EditTitle{From: github.String("ABC-1 fix")}}
		assert.NoError(t, s.HandlePullRequestEvent(context.Background(), event))
	})

	t.Run("should not contact jira for a pull request without issue keys", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("FindAllForInstallation", int64(10)).Return([]models.Subscription{{JiraHost: "https://a.atlassian.net"}}, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListReviews", mock.Anything, int64(10), "octo", "api", 7).Return([]*github.PullRequestReview{}, nil)

		s := NewPullRequestService(subscriptionRepository, source, mocks.NewDevInfoClientFactory(t))

		assert.NoError(t, s.HandlePullRequestEvent(context.Background(), pullRequestEvent("opened", "plain fix")))
	})

	t.Run("should report failed deliveries but still try every host", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("FindAllForInstallation", int64(10)).Return([]models.Subscription{
			{JiraHost: "https://a.atlassian.net"},
			{JiraHost: "https://b.atlassian.net"},
		}, nil)

		source := mocks.NewGithubAppClient(t)
		source.On("ListReviews", mock.Anything, int64(10), "octo", "api", 7).Return([]*github.PullRequestReview{}, nil)

		client := mocks.NewDevInfoClient(t)
		client.On("UpdateRepository", mock.Anything, mock.Anything).Return(nil)

		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForJiraHost", "https://a.atlassian.net").Return(nil, fmt.Errorf("no installation"))
		factory.On("ForJiraHost", "https://b.atlassian.net").Return(client, nil)

		s := NewPullRequestService(subscriptionRepository, source, factory)

		err := s.HandlePullRequestEvent(context.Background(), pullRequestEvent("opened", "ABC-1 fix"))
		assert.ErrorContains(t, err, "https://a.atlassian.net")
	})
}
