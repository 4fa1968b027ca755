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
	"sync/atomic"
	"time"
)

// UpdateSequence hands out update sequence ids derived from the wall clock in milliseconds.
// The returned values never decrease, even if the clock jumps backwards.
type UpdateSequence struct {
	now  func() time.Time
	last atomic.Int64
}

func NewUpdateSequence(now func() time.Time) *UpdateSequence {
	if now == nil {
		now = time.Now
	}
	return &UpdateSequence{now: now}
}

var DefaultUpdateSequence = NewUpdateSequence(time.Now)

func (s *UpdateSequence) Next() int64 {
	candidate := s.now().UnixMilli()
	for {
		last := s.last.Load()
		if candidate <= last {
			return last
		}
		if s.last.CompareAndSwap(last, candidate) {
			return candidate
		}
	}
}
