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

package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/jiralink/shared"
)

func TestInMemoryBroker(t *testing.T) {
	t.Run("should deliver to every subscriber of the topic", func(t *testing.T) {
		broker := NewInMemoryBroker()
		a, err := broker.Subscribe(shared.SyncRequestedChannel)
		require.NoError(t, err)
		b, err := broker.Subscribe(shared.SyncRequestedChannel)
		require.NoError(t, err)
		other, err := broker.Subscribe("other")
		require.NoError(t, err)

		err = broker.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.SyncRequestedChannel, map[string]any{"generation": 1}))
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"generation": 1}, <-a)
		assert.Equal(t, map[string]any{"generation": 1}, <-b)
		assert.Len(t, other, 0)
	})

	t.Run("should not block if nobody listens", func(t *testing.T) {
		broker := NewInMemoryBroker()
		err := broker.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.SyncRequestedChannel, nil))
		assert.NoError(t, err)
	})
}
