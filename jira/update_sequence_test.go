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

package jira

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateSequence(t *testing.T) {
	t.Run("should use the wall clock in milliseconds", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		seq := NewUpdateSequence(func() time.Time { return now })

		assert.Equal(t, now.UnixMilli(), seq.Next())
	})

	t.Run("should never decrease if the clock goes backwards", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		seq := NewUpdateSequence(func() time.Time { return now })

		first := seq.Next()
		now = now.Add(-time.Hour)
		second := seq.Next()

		assert.Equal(t, first, second)

		now = now.Add(2 * time.Hour)
		third := seq.Next()
		assert.Greater(t, third, second)
	})

	t.Run("should be non decreasing under concurrent use", func(t *testing.T) {
		seq := NewUpdateSequence(time.Now)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				last := int64(0)
				for range 1000 {
					next := seq.Next()
					assert.GreaterOrEqual(t, next, last)
					last = next
				}
			}()
		}
		wg.Wait()
	})
}
