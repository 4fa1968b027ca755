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
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v62/github"

	"github.com/l3montree-dev/jiralink/monitoring"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/transformer"
)

var handledPullRequestActions = map[string]bool{
	"opened":      true,
	"edited":      true,
	"closed":      true,
	"reopened":    true,
	"synchronize": true,
}

type PullRequestService struct {
	subscriptionRepository shared.SubscriptionRepository
	pullRequestSource      shared.PullRequestSource
	devInfoClientFactory   shared.DevInfoClientFactory
	transformer            *transformer.PullRequestTransformer
}

func NewPullRequestService(
	subscriptionRepository shared.SubscriptionRepository,
	pullRequestSource shared.PullRequestSource,
	devInfoClientFactory shared.DevInfoClientFactory,
) *PullRequestService {
	return &PullRequestService{
		subscriptionRepository: subscriptionRepository,
		pullRequestSource:      pullRequestSource,
		devInfoClientFactory:   devInfoClientFactory,
		transformer:            transformer.NewPullRequestTransformer(nil),
	}
}

// HandlePullRequestEvent delivers the pull request of a webhook event to every jira host subscribed to the installation.
func (s *PullRequestService) HandlePullRequestEvent(ctx context.Context, event *github.PullRequestEvent) error {
	if !handledPullRequestActions[event.GetAction()] {
		slog.Debug("ignoring pull request action", "action", event.GetAction())
		return nil
	}

	installationID := event.GetInstallation().GetID()
	if installationID == 0 {
		return fmt.Errorf("pull request event without installation")
	}

	subscriptions, err := s.subscriptionRepository.FindAllForInstallation(installationID)
	if err != nil {
		return fmt.Errorf("could not find subscriptions: %w", err)
	}
	if len(subscriptions) == 0 {
		slog.Debug("no jira host subscribed to installation", "installationID", installationID)
		return nil
	}

	var reviews []*github.PullRequestReview
	if event.GetPullRequest() != nil && event.GetRepo() != nil {
		// reviewers are optional
		reviews, err = s.pullRequestSource.ListReviews(ctx, installationID, event.GetRepo().GetOwner().GetLogin(), event.GetRepo().GetName(), event.GetPullRequest().GetNumber())
		if err != nil {
			slog.Warn("could not fetch pull request reviews", "installationID", installationID, "repo", event.GetRepo().GetFullName(), "number", event.GetPullRequest().GetNumber(), "err", err)
			reviews = nil
		}
	}

	result := s.transformer.TransformPullRequestEvent(event, reviews)
	monitoring.DevInfoResultAmount.WithLabelValues(transformer.ResultLabel(result)).Inc()

	if skip, ok := result.(transformer.DevInfoSkip); ok {
		slog.Debug("not sending pull request to jira", "repo", event.GetRepo().GetFullName(), "number", event.GetPullRequest().GetNumber(), "reason", skip.Reason)
		return nil
	}

	var errs []error
	for _, subscription := range subscriptions {
		if err := s.deliver(ctx, subscription.JiraHost, result); err != nil {
			errs = append(errs, fmt.Errorf("could not deliver pull request to %s: %w", subscription.JiraHost, err))
		}
	}
	return errors.Join(errs...)
}

func (s *PullRequestService) deliver(ctx context.Context, jiraHost string, result transformer.DevInfoResult) error {
	client, err := s.devInfoClientFactory.ForJiraHost(jiraHost)
	if err != nil {
		return err
	}

	switch r := result.(type) {
	case transformer.DevInfoUpdate:
		return client.UpdateRepository(ctx, r.Payload)
	case transformer.DevInfoDelete:
		return client.DeletePullRequest(ctx, r.RepositoryID, r.PullRequestNumber)
	}
	return nil
}
