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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SyncFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jiralink_sync_failed_total",
	Help: "The number of subscriptions classified as failed",
})

var SyncStartedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jiralink_sync_started_total",
	Help: "The number of started sync runs by reset type",
}, []string{"reset_type"})

var SyncCompletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jiralink_sync_completed_total",
	Help: "The number of sync runs which finished all repositories",
})

var RepoSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "jiralink_repo_sync_duration_seconds",
	Help:    "Duration of the synchronization of a single repository in seconds",
	Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
})

var RepoSyncFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jiralink_repo_sync_failed_total",
	Help: "The number of repositories which could not be synchronized",
})

var StaleSyncCallbackAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jiralink_stale_sync_callback_total",
	Help: "The number of ignored callbacks of superseded sync runs",
})

var InstallationGoneAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jiralink_github_installation_gone_total",
	Help: "The number of github installations answering with 404",
})

var DevInfoResultAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jiralink_devinfo_result_total",
	Help: "The number of transformed pull requests by result",
}, []string{"result"})
