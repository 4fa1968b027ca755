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

package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/l3montree-dev/jiralink/database/models"
)

func TestRenderSubscriptions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := renderSubscriptions([]models.Subscription{
		{
			Model:                models.Model{ID: uuid.New(), UpdatedAt: now.Add(-time.Hour)},
			GithubInstallationID: 10,
			JiraHost:             "https://acme.atlassian.net",
			SyncStatus:           models.SyncStatusActive,
			TotalNumberOfRepos:   4,
			NumberOfSyncedRepos:  1,
		},
		{
			Model:                models.Model{ID: uuid.New(), UpdatedAt: now},
			GithubInstallationID: 11,
			JiraHost:             "https://other.atlassian.net",
		},
	}, now, 15*time.Minute)

	assert.Contains(t, out, "https://acme.atlassian.net")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "1/4")
	assert.Contains(t, out, "NOT STARTED")
	assert.Contains(t, strings.ToLower(out), "2 subscriptions")
}
