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

package shared

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncJobFromPayload(t *testing.T) {
	t.Run("should survive a json round trip", func(t *testing.T) {
		job := SyncJob{SubscriptionID: uuid.New(), Generation: 42}

		b, err := json.Marshal(job.ToPayload())
		require.NoError(t, err)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(b, &payload))

		decoded, err := SyncJobFromPayload(payload)
		require.NoError(t, err)
		assert.Equal(t, job, decoded)
	})

	t.Run("should decode an in process payload", func(t *testing.T) {
		job := SyncJob{SubscriptionID: uuid.New(), Generation: 7}
		decoded, err := SyncJobFromPayload(job.ToPayload())
		require.NoError(t, err)
		assert.Equal(t, job, decoded)
	})

	t.Run("should fail without subscription id", func(t *testing.T) {
		_, err := SyncJobFromPayload(map[string]any{"generation": 1})
		assert.Error(t, err)
	})

	t.Run("should fail for an invalid subscription id", func(t *testing.T) {
		_, err := SyncJobFromPayload(map[string]any{"subscriptionId": "not-a-uuid", "generation": 1})
		assert.Error(t, err)
	})
}
