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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type RepoSyncEntryDTO struct {
	RepositoryID int64     `json:"repositoryId"`
	Name         string    `json:"repoName"`
	Owner        string    `json:"repoOwner"`
	FullName     string    `json:"repoFullName"`
	URL          string    `json:"repoUrl"`
	Status       string    `json:"status"`
	Error        string    `json:"error,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type RepoSyncStateDTO struct {
	InstallationID      int64              `json:"installationId"`
	JiraHost            string             `json:"jiraHost"`
	Generation          int64              `json:"generation"`
	TotalNumberOfRepos  int                `json:"totalNumberOfRepos"`
	NumberOfSyncedRepos int                `json:"numberOfSyncedRepos"`
	Repos               []RepoSyncEntryDTO `json:"repos"`
}

type SubscriptionDTO struct {
	ID                   uuid.UUID  `json:"id"`
	GithubInstallationID int64      `json:"gitHubInstallationId"`
	JiraHost             string     `json:"jiraHost"`
	SyncStatus           *string    `json:"syncStatus"`
	SyncWarning          string     `json:"syncWarning,omitempty"`
	TotalNumberOfRepos   int        `json:"totalNumberOfRepos"`
	NumberOfSyncedRepos  int        `json:"numberOfSyncedRepos"`
	SyncStartedAt        *time.Time `json:"syncStartedAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// ConnectionDTO describes the link between a github installation and a jira host as shown to admins.
type ConnectionDTO struct {
	SubscriptionDTO
	// Failed is true if github does not know the installation anymore
	Failed bool `json:"failed"`
}

type InstallationStatusDTO struct {
	InstallationID int64           `json:"installationId"`
	Account        string          `json:"account,omitempty"`
	HTMLURL        string          `json:"htmlUrl,omitempty"`
	Connections    []ConnectionDTO `json:"connections"`
	// set if github answered with 404
	Gone bool `json:"gone"`
}

type StartSyncRequest struct {
	JiraHost  string `json:"jiraHost" validate:"required,url"`
	ResetType string `json:"resetType" validate:"omitempty,oneof=full partial none"`
}

type ResyncRequest struct {
	SyncType        string   `json:"syncType" validate:"omitempty,oneof=full partial none"`
	StatusTypes     []string `json:"statusTypes" validate:"dive,oneof=PENDING ACTIVE COMPLETE FAILED"`
	InstallationIDs []int64  `json:"installationIds"`
	Offset          int      `json:"offset" validate:"gte=0"`
	Limit           int      `json:"limit" validate:"gte=0"`
}

type CreateSubscriptionRequest struct {
	InstallationID int64  `json:"installationId" validate:"required,gt=0"`
	JiraHost       string `json:"jiraHost" validate:"required,url"`
}
