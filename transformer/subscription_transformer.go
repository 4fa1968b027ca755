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

package transformer

import (
	"cmp"
	"slices"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/dtos"
	"github.com/l3montree-dev/jiralink/statemachine"
)

// SubscriptionModelToDTO renders the subscription with the already classified status.
func SubscriptionModelToDTO(sub models.Subscription, status statemachine.SyncPresentation) dtos.SubscriptionDTO {
	var syncStatus *string
	if status != statemachine.SyncPresentationNotStarted {
		s := string(status)
		syncStatus = &s
	}

	return dtos.SubscriptionDTO{
		ID:                   sub.ID,
		GithubInstallationID: sub.GithubInstallationID,
		JiraHost:             sub.JiraHost,
		SyncStatus:           syncStatus,
		SyncWarning:          sub.SyncWarning,
		TotalNumberOfRepos:   sub.TotalNumberOfRepos,
		NumberOfSyncedRepos:  sub.NumberOfSyncedRepos,
		SyncStartedAt:        sub.SyncStartedAt,
		UpdatedAt:            sub.UpdatedAt,
	}
}

func RepoSyncStateToDTO(sub models.Subscription) dtos.RepoSyncStateDTO {
	state := sub.GetRepoSyncState()

	repos := make([]dtos.RepoSyncEntryDTO, 0, len(state.Repos))
	for _, entry := range state.Repos {
		repos = append(repos, dtos.RepoSyncEntryDTO{
			RepositoryID: entry.RepositoryID,
			Name:         entry.Name,
			Owner:        entry.Owner,
			FullName:     entry.FullName,
			URL:          entry.URL,
			Status:       string(entry.Status),
			Error:        entry.Error,
			UpdatedAt:    entry.UpdatedAt,
		})
	}
	slices.SortFunc(repos, func(a, b dtos.RepoSyncEntryDTO) int {
		return cmp.Compare(a.FullName, b.FullName)
	})

	return dtos.RepoSyncStateDTO{
		InstallationID:      sub.GithubInstallationID,
		JiraHost:            sub.JiraHost,
		Generation:          sub.SyncGeneration,
		TotalNumberOfRepos:  sub.TotalNumberOfRepos,
		NumberOfSyncedRepos: sub.NumberOfSyncedRepos,
		Repos:               repos,
	}
}

func InstallationModelToDTO(installation models.Installation) dtos.InstallationDTO {
	return dtos.InstallationDTO{
		ID:         installation.ID,
		JiraHost:   installation.JiraHost,
		ClientKey:  installation.ClientKey,
		Enabled:    installation.Enabled,
		VerifiedAt: installation.VerifiedAt,
		CreatedAt:  installation.CreatedAt,
	}
}
