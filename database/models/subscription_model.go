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

package models

import (
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SyncStatus is the persisted status of a subscription.
// FAILED and IN PROGRESS are derived at presentation time and never stored.
type SyncStatus string

const (
	SyncStatusNotStarted SyncStatus = ""
	SyncStatusActive     SyncStatus = "ACTIVE"
	SyncStatusComplete   SyncStatus = "COMPLETE"
)

type RepoSyncStatus string

const (
	RepoSyncStatusPending    RepoSyncStatus = "pending"
	RepoSyncStatusInProgress RepoSyncStatus = "in-progress"
	RepoSyncStatusComplete   RepoSyncStatus = "complete"
	RepoSyncStatusFailed     RepoSyncStatus = "failed"
)

type SyncResetType string

const (
	SyncResetTypeFull    SyncResetType = "full"
	SyncResetTypePartial SyncResetType = "partial"
	SyncResetTypeNone    SyncResetType = "none"
)

func (r SyncResetType) IsValid() bool {
	switch r {
	case SyncResetTypeFull, SyncResetTypePartial, SyncResetTypeNone, "":
		return true
	}
	return false
}

// RepoSyncEntry tracks the progress of a single repository inside a sync run.
type RepoSyncEntry struct {
	RepositoryID int64          `json:"repositoryId"`
	Name         string         `json:"name"`
	Owner        string         `json:"owner"`
	FullName     string         `json:"fullName"`
	URL          string         `json:"url"`
	Status       RepoSyncStatus `json:"status"`
	// Cursor is the next page of pull requests to fetch. 0 means "start from the beginning".
	Cursor    int       `json:"cursor,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e RepoSyncEntry) Key() string {
	return RepoSyncKey(e.RepositoryID)
}

func RepoSyncKey(repositoryID int64) string {
	return strconv.FormatInt(repositoryID, 10)
}

type RepoSyncState struct {
	Repos map[string]RepoSyncEntry `json:"repos"`
}

func (s RepoSyncState) CountByStatus(status RepoSyncStatus) int {
	count := 0
	for _, entry := range s.Repos {
		if entry.Status == status {
			count++
		}
	}
	return count
}

// Subscription links one github app installation to one jira host.
type Subscription struct {
	Model
	GithubInstallationID int64      `json:"gitHubInstallationId" gorm:"column:github_installation_id;not null;uniqueIndex:idx_subscription_installation_host"`
	JiraHost             string     `json:"jiraHost" gorm:"not null;uniqueIndex:idx_subscription_installation_host"`
	JiraClientKey        string     `json:"-" gorm:"column:jira_client_key"`
	SyncStatus           SyncStatus `json:"syncStatus" gorm:"type:text;not null;default:''"`
	SyncWarning          string     `json:"syncWarning" gorm:"type:text;not null;default:''"`
	// SyncGeneration is incremented on every (re)start of a sync run.
	// Callbacks carrying an older generation are ignored.
	SyncGeneration      int64      `json:"syncGeneration" gorm:"not null;default:0"`
	TotalNumberOfRepos  int        `json:"totalNumberOfRepos" gorm:"not null;default:0"`
	NumberOfSyncedRepos int        `json:"numberOfSyncedRepos" gorm:"not null;default:0"`
	SyncStartedAt       *time.Time `json:"syncStartedAt"`

	RepoSyncState datatypes.JSONType[RepoSyncState] `json:"repoSyncState" gorm:"type:jsonb;not null;default:'{}'"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s Subscription) GetRepoSyncState() RepoSyncState {
	state := s.RepoSyncState.Data()
	if state.Repos == nil {
		state.Repos = map[string]RepoSyncEntry{}
	}
	return state
}

func (s *Subscription) SetRepoSyncState(state RepoSyncState) {
	if state.Repos == nil {
		state.Repos = map[string]RepoSyncEntry{}
	}
	s.RepoSyncState = datatypes.NewJSONType(state)
}

func (s *Subscription) BeforeSave(tx *gorm.DB) error {
	if s.RepoSyncState.Data().Repos == nil {
		s.SetRepoSyncState(RepoSyncState{})
	}
	return nil
}
