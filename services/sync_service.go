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
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/l3montree-dev/jiralink/database"
	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/monitoring"
	"github.com/l3montree-dev/jiralink/shared"
	"github.com/l3montree-dev/jiralink/statemachine"
)

type SyncService struct {
	subscriptionRepository shared.SubscriptionRepository
	installationRepository shared.InstallationRepository
	repositoryEnumerator   shared.RepositoryEnumerator
	scheduler              shared.SyncScheduler
	config                 shared.SyncConfig

	now func() time.Time

	goneMu    sync.Mutex
	goneCount map[int64]int
}

func NewSyncService(
	subscriptionRepository shared.SubscriptionRepository,
	installationRepository shared.InstallationRepository,
	repositoryEnumerator shared.RepositoryEnumerator,
	scheduler shared.SyncScheduler,
	config shared.Config,
) *SyncService {
	if config.Sync.BulkConcurrency <= 0 {
		config.Sync.BulkConcurrency = 1
	}
	return &SyncService{
		subscriptionRepository: subscriptionRepository,
		installationRepository: installationRepository,
		repositoryEnumerator:   repositoryEnumerator,
		scheduler:              scheduler,
		config:                 config.Sync,
		now:                    time.Now,
		goneCount:              make(map[int64]int),
	}
}

// StartOrResume persists a new run of the subscription and hands it to the sync workers.
// It returns as soon as the run is scheduled.
func (s *SyncService) StartOrResume(ctx context.Context, subscription models.Subscription, resetType models.SyncResetType) (models.Subscription, error) {
	if !resetType.IsValid() {
		return subscription, fmt.Errorf("invalid reset type: %s", resetType)
	}
	if resetType == "" {
		resetType = models.SyncResetTypeNone
	}

	existing := subscription.GetRepoSyncState()
	if resetType == models.SyncResetTypeNone && len(existing.Repos) == 0 {
		// nothing to resume
		resetType = models.SyncResetTypeFull
	}

	var state models.RepoSyncState
	if resetType == models.SyncResetTypeNone {
		// a resumed run releases the repositories of crashed workers
		state = statemachine.PrepareRepoSyncState(resetType, existing, nil, s.now())
	} else {
		repos, err := s.repositoryEnumerator.ListRepositories(ctx, subscription.GithubInstallationID)
		if err != nil {
			if errors.Is(err, shared.ErrInstallationGone) {
				if _, goneErr := s.InstallationGone(ctx, subscription.GithubInstallationID); goneErr != nil {
					slog.Error("could not handle vanished installation", "installationID", subscription.GithubInstallationID, "err", goneErr)
				}
				return subscription, err
			}
			return subscription, fmt.Errorf("could not list repositories of installation %d: %w", subscription.GithubInstallationID, err)
		}
		s.resetGoneCount(subscription.GithubInstallationID)

		now := s.now()
		visible := make([]models.RepoSyncEntry, 0, len(repos))
		for _, repo := range repos {
			visible = append(visible, models.RepoSyncEntry{
				RepositoryID: repo.ID,
				Name:         repo.Name,
				Owner:        repo.Owner,
				FullName:     repo.FullName,
				URL:          repo.URL,
			})
		}
		state = statemachine.PrepareRepoSyncState(resetType, existing, visible, now)
	}

	started, err := s.subscriptionRepository.StartSync(nil, subscription.ID, state, s.now())
	if err != nil {
		return subscription, fmt.Errorf("could not start sync: %w", err)
	}
	monitoring.SyncStartedAmount.WithLabelValues(string(resetType)).Inc()

	slog.Info("sync started",
		"subscriptionID", started.ID,
		"installationID", started.GithubInstallationID,
		"jiraHost", started.JiraHost,
		"resetType", resetType,
		"generation", started.SyncGeneration,
		"total", started.TotalNumberOfRepos,
		"synced", started.NumberOfSyncedRepos,
	)

	if started.SyncStatus == models.SyncStatusComplete {
		monitoring.SyncCompletedAmount.Inc()
		return started, nil
	}

	if err := s.scheduler.Schedule(ctx, shared.SyncJob{SubscriptionID: started.ID, Generation: started.SyncGeneration}); err != nil {
		// the run stays ACTIVE and gets picked up by ResumeStalled
		return started, fmt.Errorf("could not schedule sync: %w", err)
	}
	return started, nil
}

func (s *SyncService) subscriptionFilter(query shared.ResyncQuery) (shared.SubscriptionFilter, error) {
	filter := shared.SubscriptionFilter{
		InstallationIDs: query.InstallationIDs,
		Offset:          query.Offset,
		Limit:           query.Limit,
	}

	if len(query.StatusTypes) == 0 {
		filter.Statuses = []models.SyncStatus{models.SyncStatusNotStarted, models.SyncStatusActive}
		return filter, nil
	}

	for _, statusType := range query.StatusTypes {
		switch strings.ToUpper(statusType) {
		case "PENDING":
			filter.Statuses = append(filter.Statuses, models.SyncStatusNotStarted)
		case "ACTIVE":
			filter.Statuses = append(filter.Statuses, models.SyncStatusActive)
		case "COMPLETE":
			filter.Statuses = append(filter.Statuses, models.SyncStatusComplete)
		case "FAILED":
			filter.IncludeStalled = true
			filter.StaleBefore = s.now().Add(-s.config.StalenessWindow)
		default:
			return filter, fmt.Errorf("unknown status type: %s", statusType)
		}
	}
	return filter, nil
}

// BulkResync starts every selected subscription with the same reset type.
// Failures of single subscriptions are reported and do not stop the others.
func (s *SyncService) BulkResync(ctx context.Context, query shared.ResyncQuery, resetType models.SyncResetType) ([]models.Subscription, error) {
	if resetType == "" {
		resetType = models.SyncResetTypePartial
	}

	filter, err := s.subscriptionFilter(query)
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.subscriptionRepository.FindAllFiltered(filter)
	if err != nil {
		return nil, fmt.Errorf("could not select subscriptions: %w", err)
	}

	results := make([]models.Subscription, len(subscriptions))
	var g errgroup.Group
	g.SetLimit(s.config.BulkConcurrency)
	for i, subscription := range subscriptions {
		g.Go(func() error {
			started, err := s.StartOrResume(ctx, subscription, resetType)
			if err != nil {
				monitoring.Alert(fmt.Sprintf("could not resync subscription %s", subscription.ID), err)
			}
			results[i] = started
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("bulk resync started", "count", len(results), "resetType", resetType)
	return results, nil
}

func (s *SyncService) staleCallback(subscriptionID uuid.UUID, generation int64, repositoryID int64) {
	monitoring.StaleSyncCallbackAmount.Inc()
	slog.Debug("ignoring callback of superseded sync run", "subscriptionID", subscriptionID, "generation", generation, "repositoryID", repositoryID)
}

// RepoStarted claims a repository of the run for the calling worker.
func (s *SyncService) RepoStarted(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64) error {
	err := s.subscriptionRepository.ClaimRepo(subscriptionID, generation, repositoryID, s.now().Add(-s.config.ResumeInterval))
	if errors.Is(err, shared.ErrStaleGeneration) {
		s.staleCallback(subscriptionID, generation, repositoryID)
	}
	return err
}

// RepoProgress persists the next pull request page of a repository.
func (s *SyncService) RepoProgress(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64, cursor int) error {
	err := s.subscriptionRepository.MarkRepoInProgress(subscriptionID, generation, repositoryID, cursor)
	if errors.Is(err, shared.ErrStaleGeneration) {
		s.staleCallback(subscriptionID, generation, repositoryID)
	}
	return err
}

func (s *SyncService) RepoCompleted(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64) error {
	subscription, err := s.subscriptionRepository.CompleteRepo(subscriptionID, generation, repositoryID)
	if err != nil {
		if errors.Is(err, shared.ErrStaleGeneration) {
			s.staleCallback(subscriptionID, generation, repositoryID)
		}
		return err
	}

	if subscription.SyncStatus == models.SyncStatusComplete {
		monitoring.SyncCompletedAmount.Inc()
		slog.Info("sync completed",
			"subscriptionID", subscription.ID,
			"installationID", subscription.GithubInstallationID,
			"jiraHost", subscription.JiraHost,
			"repos", subscription.TotalNumberOfRepos,
		)
	}
	return nil
}

// RepoFailed records a failed repository. The run stays ACTIVE.
// A vanished installation is never retried but removes the subscriptions of the installation.
func (s *SyncService) RepoFailed(ctx context.Context, subscriptionID uuid.UUID, generation int64, repositoryID int64, cause error) error {
	if errors.Is(cause, shared.ErrInstallationGone) {
		subscription, err := s.subscriptionRepository.Read(subscriptionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		_, err = s.InstallationGone(ctx, subscription.GithubInstallationID)
		return err
	}

	monitoring.RepoSyncFailedAmount.Inc()
	warning := "unknown error"
	if cause != nil {
		warning = cause.Error()
	}
	err := s.subscriptionRepository.FailRepo(subscriptionID, generation, repositoryID, warning)
	if err != nil {
		if errors.Is(err, shared.ErrStaleGeneration) {
			s.staleCallback(subscriptionID, generation, repositoryID)
		}
		return err
	}
	slog.Warn("repository sync failed", "subscriptionID", subscriptionID, "repositoryID", repositoryID, "err", cause)
	return nil
}

func (s *SyncService) resetGoneCount(installationID int64) {
	s.goneMu.Lock()
	defer s.goneMu.Unlock()
	delete(s.goneCount, installationID)
}

// InstallationGone is called whenever github answers with a 404 for a known installation.
// After SYNC_INSTALLATION_GONE_RETRIES tolerated answers every subscription of the installation is removed.
func (s *SyncService) InstallationGone(ctx context.Context, installationID int64) (bool, error) {
	monitoring.InstallationGoneAmount.Inc()

	s.goneMu.Lock()
	s.goneCount[installationID]++
	count := s.goneCount[installationID]
	if count <= s.config.InstallationGoneRetries {
		s.goneMu.Unlock()
		slog.Warn("github installation not found, will retry", "installationID", installationID, "attempt", count)
		return false, nil
	}
	delete(s.goneCount, installationID)
	s.goneMu.Unlock()

	if err := s.subscriptionRepository.DeleteByInstallationID(nil, installationID); err != nil {
		return false, fmt.Errorf("could not remove subscriptions of installation %d: %w", installationID, err)
	}
	slog.Info("removed subscriptions of vanished github installation", "installationID", installationID)
	return true, nil
}

// RemoveInstallation removes every subscription of a github installation which got uninstalled.
func (s *SyncService) RemoveInstallation(ctx context.Context, installationID int64) error {
	s.resetGoneCount(installationID)
	if err := s.subscriptionRepository.DeleteByInstallationID(nil, installationID); err != nil {
		return fmt.Errorf("could not remove subscriptions of installation %d: %w", installationID, err)
	}
	slog.Info("removed subscriptions of uninstalled github installation", "installationID", installationID)
	return nil
}

// ResumeStalled reschedules the current run of every ACTIVE subscription
// which has work left and did not make progress within the resume interval.
func (s *SyncService) ResumeStalled(ctx context.Context) (int, error) {
	subscriptions, err := s.subscriptionRepository.FindResumable()
	if err != nil {
		return 0, fmt.Errorf("could not find resumable subscriptions: %w", err)
	}

	now := s.now()
	scheduled := 0
	for _, subscription := range subscriptions {
		if now.Sub(subscription.UpdatedAt) < s.config.ResumeInterval {
			continue
		}
		if err := s.scheduler.Schedule(ctx, shared.SyncJob{SubscriptionID: subscription.ID, Generation: subscription.SyncGeneration}); err != nil {
			return scheduled, fmt.Errorf("could not schedule sync: %w", err)
		}
		scheduled++
	}
	if scheduled > 0 {
		slog.Info("resumed stalled sync runs", "count", scheduled)
	}
	return scheduled, nil
}

// Subscribe links a github installation to a jira host. A new or existing subscription starts a full sync.
func (s *SyncService) Subscribe(ctx context.Context, installationID int64, jiraHost string) (models.Subscription, error) {
	jiraHost = jira.NormalizeHost(jiraHost)
	installations, err := s.installationRepository.FindByJiraHost(jiraHost)
	if err != nil {
		return models.Subscription{}, err
	}
	if len(installations) == 0 {
		return models.Subscription{}, shared.ErrInstallationNotFound
	}

	subscription, err := s.subscriptionRepository.FindByInstallationAndHost(installationID, jiraHost)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subscription{}, err
		}
		subscription = models.Subscription{
			GithubInstallationID: installationID,
			JiraHost:             jiraHost,
			JiraClientKey:        installations[0].ClientKey,
		}
		if err := s.subscriptionRepository.Create(nil, &subscription); err != nil {
			if !database.IsDuplicateKeyError(err) {
				return models.Subscription{}, fmt.Errorf("could not create subscription: %w", err)
			}
			// created concurrently
			subscription, err = s.subscriptionRepository.FindByInstallationAndHost(installationID, jiraHost)
			if err != nil {
				return models.Subscription{}, err
			}
		}
	}

	return s.StartOrResume(ctx, subscription, models.SyncResetTypeFull)
}

// Classify derives the presentation status of the subscription.
// Every FAILED classification is reported.
func (s *SyncService) Classify(subscription models.Subscription) statemachine.SyncPresentation {
	status := statemachine.ClassifySyncStatus(subscription, s.now(), s.config.StalenessWindow)
	if status == statemachine.SyncPresentationFailed {
		monitoring.SyncFailedAmount.Inc()
		monitoring.AlertMessage("sync run did not make progress within the staleness window",
			"subscriptionID", subscription.ID,
			"installationID", subscription.GithubInstallationID,
			"lastUpdate", subscription.UpdatedAt,
			"synced", subscription.NumberOfSyncedRepos,
			"total", subscription.TotalNumberOfRepos,
		)
	}
	return status
}
