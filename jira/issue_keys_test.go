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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIssueKeys(t *testing.T) {
	t.Run("should extract a single key", func(t *testing.T) {
		assert.Equal(t, []string{"ABC-123"}, ExtractIssueKeys("ABC-123 fix bug"))
	})

	t.Run("should return an empty, non nil slice if there is no key", func(t *testing.T) {
		keys := ExtractIssueKeys("no ticket here")
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})

	t.Run("should return an empty slice for empty input", func(t *testing.T) {
		keys := ExtractIssueKeys("")
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})

	t.Run("should preserve order and remove duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"ABC-123", "ABC-124"}, ExtractIssueKeys("ABC-123 and ABC-124"))
		assert.Equal(t, []string{"ABC-124", "ABC-123"}, ExtractIssueKeys("ABC-124 ABC-123 abc-124"))
	})

	t.Run("should match the project key case insensitive and upper case the result", func(t *testing.T) {
		assert.Equal(t, []string{"ABC-123"}, ExtractIssueKeys("abc-123"))
		assert.Equal(t, []string{"TEST-1"}, ExtractIssueKeys("feature/Test-1-some-branch"))
	})

	t.Run("should find bracketed keys", func(t *testing.T) {
		assert.Equal(t, []string{"TES-123"}, ExtractIssueKeys("[TES-123] Test pull request."))
	})

	t.Run("should find adjacent keys separated by a single character", func(t *testing.T) {
		assert.Equal(t, []string{"ABC-1", "ABC-2", "DEF-3"}, ExtractIssueKeys("ABC-1 ABC-2,DEF-3"))
	})

	t.Run("should not match keys glued to other letters or digits", func(t *testing.T) {
		assert.Empty(t, ExtractIssueKeys("ABC-123x"))
		assert.Empty(t, ExtractIssueKeys("9ABC-123"))
		assert.Empty(t, ExtractIssueKeys("ABC-"))
		assert.Empty(t, ExtractIssueKeys("-123"))
	})

	t.Run("should allow digits inside the project key", func(t *testing.T) {
		assert.Equal(t, []string{"A1B2-42"}, ExtractIssueKeys("see A1B2-42"))
	})

	t.Run("should keep underscores inside the project key", func(t *testing.T) {
		assert.Equal(t, []string{"MY_PROJ-7"}, ExtractIssueKeys("MY_PROJ-7 fix login"))
		assert.Equal(t, []string{"MY_PROJ-7"}, ExtractIssueKeys("feature/my_proj-7"))
	})

	t.Run("should treat a trailing underscore as separator", func(t *testing.T) {
		assert.Equal(t, []string{"ABC-12"}, ExtractIssueKeys("ABC-12_fix_login"))
	})

	t.Run("should not match keys glued to a leading underscore", func(t *testing.T) {
		assert.Empty(t, ExtractIssueKeys("_ABC-1"))
		assert.Empty(t, ExtractIssueKeys("9_ABC-1"))
	})
}

func TestExtractIssueKeysFrom(t *testing.T) {
	t.Run("should build the union of all texts in order", func(t *testing.T) {
		keys := ExtractIssueKeysFrom("ABC-1 title", "feature/abc-2", "", "ABC-1 again")
		assert.Equal(t, []string{"ABC-1", "ABC-2"}, keys)
	})

	t.Run("should return an empty slice without texts", func(t *testing.T) {
		keys := ExtractIssueKeysFrom()
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})
}
