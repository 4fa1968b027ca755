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

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Installation is the registration of a single jira site.
// The client key issued by jira is never stored in plain text - see HashClientKey.
type Installation struct {
	Model
	JiraHost     string     `json:"jiraHost" gorm:"not null;index"`
	ClientKey    string     `json:"clientKey" gorm:"not null;uniqueIndex"`
	SharedSecret string     `json:"-" gorm:"not null"`
	Enabled      bool       `json:"enabled" gorm:"not null;default:false"`
	VerifiedAt   *time.Time `json:"verifiedAt"`
}

func (Installation) TableName() string {
	return "installations"
}

// HashClientKey returns the one-way hash of a raw client key as lowercase hex.
func HashClientKey(rawClientKey string) string {
	sum := sha256.Sum256([]byte(rawClientKey))
	return hex.EncodeToString(sum[:])
}
