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

package statemachine

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/l3montree-dev/jiralink/database/models"
)

// SyncPresentation is the status shown to api consumers.
// It is derived from the stored status and never persisted.
type SyncPresentation string

const (
	SyncPresentationNotStarted SyncPresentation = ""
	SyncPresentationInProgress SyncPresentation = "IN PROGRESS"
	SyncPresentationFailed     SyncPresentation = "FAILED"
	SyncPresentationComplete   SyncPresentation = "COMPLETE"
)

// ClassifySyncStatus derives the presentation status of a subscription.
// An ACTIVE run without any update for longer than the staleness window is reported as FAILED.
func ClassifySyncStatus(sub models.Subscription, now time.Time, stalenessWindow time.Duration) SyncPresentation {
	switch sub.SyncStatus {
	case models.SyncStatusActive:
		if now.Sub(sub.UpdatedAt) > stalenessWindow {
			return SyncPresentationFailed
		}
		return SyncPresentationInProgress
	case models.SyncStatusComplete:
		return SyncPresentationComplete
	default:
		return SyncPresentation(sub.SyncStatus)
	}
}

// PrepareRepoSyncState computes the repository state of a new run.
//
//   - full: every visible repository starts as pending
//   - partial: repositories which are already complete stay complete, every other visible repository starts as pending
//   - none: the existing state is kept, in-progress repositories are released to pending and keep their cursor
//
// Repositories which are not visible anymore are dropped for full and partial runs.
func PrepareRepoSyncState(resetType models.SyncResetType, existing models.RepoSyncState, visible []models.RepoSyncEntry, now time.Time) models.RepoSyncState {
	if resetType == models.SyncResetTypeNone {
		next := models.RepoSyncState{Repos: make(map[string]models.RepoSyncEntry, len(existing.Repos))}
		for key, entry := range existing.Repos {
			if entry.Status == models.RepoSyncStatusInProgress {
				entry.Status = models.RepoSyncStatusPending
			}
			next.Repos[key] = entry
		}
		return next
	}

	next := models.RepoSyncState{Repos: make(map[string]models.RepoSyncEntry, len(visible))}
	for _, repo := range visible {
		key := repo.Key()
		if resetType == models.SyncResetTypePartial {
			if old, ok := existing.Repos[key]; ok && old.Status == models.RepoSyncStatusComplete {
				next.Repos[key] = old
				continue
			}
		}

		repo.Status = models.RepoSyncStatusPending
		repo.Cursor = 0
		repo.Error = ""
		repo.UpdatedAt = now
		next.Repos[key] = repo
	}
	return next
}

// Counts returns the total number of repositories and the number of completed repositories.
func Counts(state models.RepoSyncState) (total int, synced int) {
	return len(state.Repos), state.CountByStatus(models.RepoSyncStatusComplete)
}

// StatusFor returns the stored status of a run with the given counters.
func StatusFor(total, synced int) models.SyncStatus {
	if synced >= total {
		return models.SyncStatusComplete
	}
	return models.SyncStatusActive
}

// ReposToProcess returns the pending and in-progress repositories ordered by their full name.
func ReposToProcess(state models.RepoSyncState) []models.RepoSyncEntry {
	res := make([]models.RepoSyncEntry, 0, len(state.Repos))
	for _, entry := range state.Repos {
		if entry.Status == models.RepoSyncStatusPending || entry.Status == models.RepoSyncStatusInProgress {
			res = append(res, entry)
		}
	}
	slices.SortFunc(res, func(a, b models.RepoSyncEntry) int {
		if c := strings.Compare(a.FullName, b.FullName); c != 0 {
			return c
		}
		return cmp.Compare(a.RepositoryID, b.RepositoryID)
	})
	return res
}
