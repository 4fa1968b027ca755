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

	"github.com/l3montree-dev/jiralink/shared"
)

// brokerSyncScheduler publishes sync jobs. Every process running the sync daemon receives them.
// Workers claim single repositories so a job received twice is processed once.
type brokerSyncScheduler struct {
	broker shared.PubSubBroker
}

func NewBrokerSyncScheduler(broker shared.PubSubBroker) *brokerSyncScheduler {
	return &brokerSyncScheduler{broker: broker}
}

func (s *brokerSyncScheduler) Schedule(ctx context.Context, job shared.SyncJob) error {
	return s.broker.Publish(ctx, shared.NewSimplePubSubMessage(shared.SyncRequestedChannel, job.ToPayload()))
}
