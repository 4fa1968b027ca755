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
	"regexp"
	"strings"
)

// a project key starts with a letter, followed by letters, digits or underscores, a dash and the issue number.
// The key must not be glued to a preceding letter, digit or underscore, nor to a following letter or digit.
// A trailing underscore is a separator, branch names like "ABC-12_fix" are common.
var issueKeyRegexp = regexp.MustCompile(`(?i)(?:^|[^a-z0-9_])([a-z][a-z0-9_]*-[0-9]+)(?:$|[^a-z0-9])`)

// ExtractIssueKeys returns the issue keys found in the text in order of appearance.
// Duplicates are removed and every key is returned upper case.
// An empty text results in an empty slice.
func ExtractIssueKeys(text string) []string {
	return ExtractIssueKeysFrom(text)
}

// ExtractIssueKeysFrom returns the union of the issue keys of all texts.
func ExtractIssueKeysFrom(texts ...string) []string {
	keys := make([]string, 0)
	seen := make(map[string]struct{})

	for _, text := range texts {
		for _, key := range findKeys(text) {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

func findKeys(text string) []string {
	var keys []string
	// the separator in front of a key might be the trailing separator of the previous match.
	// Scan manually instead of FindAll to not lose adjacent keys like "ABC-1 ABC-2".
	for offset := 0; offset < len(text); {
		loc := issueKeyRegexp.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}
		start, end := offset+loc[2], offset+loc[3]
		keys = append(keys, strings.ToUpper(text[start:end]))
		offset = end
	}
	return keys
}
