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

package jiraint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// connectClaims are the claims of an atlassian connect jwt.
type connectClaims struct {
	jwt.RegisteredClaims
	QueryStringHash string `json:"qsh"`
}

const tokenLifetime = 3 * time.Minute

func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// canonicalRequest builds the string hashed into the qsh claim.
// The path is relative to the jira host, the jwt query parameter is never part of it.
func canonicalRequest(method string, path string, query url.Values) string {
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	keys := make([]string, 0, len(query))
	for key := range query {
		if key == "jwt" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	params := make([]string, 0, len(keys))
	for _, key := range keys {
		values := make([]string, 0, len(query[key]))
		for _, v := range query[key] {
			values = append(values, percentEncode(v))
		}
		sort.Strings(values)
		params = append(params, percentEncode(key)+"="+strings.Join(values, ","))
	}

	return strings.ToUpper(method) + "&" + path + "&" + strings.Join(params, "&")
}

func queryStringHash(method string, path string, query url.Values) string {
	sum := sha256.Sum256([]byte(canonicalRequest(method, path, query)))
	return hex.EncodeToString(sum[:])
}

func signRequest(appKey string, sharedSecret string, method string, path string, query url.Values, now time.Time) (string, error) {
	claims := connectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    appKey,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
		QueryStringHash: queryStringHash(method, path, query),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(sharedSecret))
}
