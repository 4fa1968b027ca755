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
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/l3montree-dev/jiralink/monitoring"
	"github.com/l3montree-dev/jiralink/shared"
)

// DaemonRunner encapsulates daemon dependencies and lifecycle
type DaemonRunner struct {
	broker        shared.PubSubBroker
	syncService   shared.SyncService
	leaderElector shared.LeaderElector
	worker        *SyncWorker

	resumeInterval time.Duration
	maxRuns        int

	mu      sync.Mutex
	running map[shared.SyncJob]struct{}
}

// NewDaemonRunner creates a new daemon runner with injected dependencies
func NewDaemonRunner(
	broker shared.PubSubBroker,
	syncService shared.SyncService,
	leaderElector shared.LeaderElector,
	worker *SyncWorker,
	config shared.Config,
) *DaemonRunner {
	resumeInterval := config.Sync.ResumeInterval
	if resumeInterval <= 0 {
		resumeInterval = 5 * time.Minute
	}
	return &DaemonRunner{
		broker:         broker,
		syncService:    syncService,
		leaderElector:  leaderElector,
		worker:         worker,
		resumeInterval: resumeInterval,
		maxRuns:        max(1, config.Sync.BulkConcurrency),
		running:        make(map[shared.SyncJob]struct{}),
	}
}

// Start initiates all background daemons
func (runner *DaemonRunner) Start(ctx context.Context) error {
	jobs, err := runner.broker.Subscribe(shared.SyncRequestedChannel)
	if err != nil {
		return fmt.Errorf("could not subscribe to sync jobs: %w", err)
	}

	go runner.consume(ctx, jobs)
	go func() {
		ticker := time.NewTicker(runner.resumeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.tick(ctx)
			}
		}
	}()
	return nil
}

func (runner *DaemonRunner) tick(ctx context.Context) {
	if !runner.leaderElector.IsLeader() {
		slog.Debug("not the leader - skipping resume of stalled sync runs")
		return
	}
	if _, err := runner.syncService.ResumeStalled(ctx); err != nil {
		monitoring.Alert("could not resume stalled sync runs", err)
	}
}

// claim returns false if this process already works on the job
func (runner *DaemonRunner) claim(job shared.SyncJob) bool {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if _, ok := runner.running[job]; ok {
		return false
	}
	runner.running[job] = struct{}{}
	return true
}

func (runner *DaemonRunner) release(job shared.SyncJob) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	delete(runner.running, job)
}

func (runner *DaemonRunner) consume(ctx context.Context, jobs <-chan map[string]any) {
	var g errgroup.Group
	g.SetLimit(runner.maxRuns)
	defer g.Wait() // nolint:errcheck

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-jobs:
			if !ok {
				return
			}
			job, err := shared.SyncJobFromPayload(payload)
			if err != nil {
				slog.Error("received invalid sync job", "err", err, "payload", payload)
				continue
			}
			if !runner.claim(job) {
				slog.Debug("sync job is already running", "subscriptionID", job.SubscriptionID, "generation", job.Generation)
				continue
			}

			g.Go(func() error {
				defer runner.release(job)
				defer func() {
					if r := recover(); r != nil {
						monitoring.RecoverAndAlert("sync job panicked", r)
					}
				}()
				if err := runner.worker.Process(ctx, job); err != nil {
					monitoring.Alert(fmt.Sprintf("could not process sync job of subscription %s", job.SubscriptionID), err)
				}
				return nil
			})
		}
	}
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)

var Module = fx.Module("daemons",
	fx.Provide(NewSyncWorker),
	fx.Provide(fx.Annotate(NewDaemonRunner, fx.As(new(shared.DaemonRunner)))),
)
