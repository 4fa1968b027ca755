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
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
)

// SyncJob asks a worker to process the pending repositories of one run of a subscription.
type SyncJob struct {
	SubscriptionID uuid.UUID `json:"subscriptionId"`
	Generation     int64     `json:"generation"`
}

func (j SyncJob) ToPayload() map[string]any {
	return map[string]any{
		"subscriptionId": j.SubscriptionID.String(),
		"generation":     j.Generation,
	}
}

// SyncJobFromPayload decodes a job received through the broker.
// Numbers arrive as float64 after a json round trip.
func SyncJobFromPayload(payload map[string]any) (SyncJob, error) {
	var job SyncJob
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		Result:           &job,
	})
	if err != nil {
		return job, err
	}
	if err := decoder.Decode(payload); err != nil {
		return job, fmt.Errorf("could not decode sync job: %w", err)
	}
	if job.SubscriptionID == uuid.Nil {
		return job, fmt.Errorf("sync job without subscription id")
	}
	return job, nil
}
