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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

// JiraLifecycleEvent is the body jira posts to the lifecycle callbacks of a connect app.
type JiraLifecycleEvent struct {
	Key          string `json:"key"`
	ClientKey    string `json:"clientKey" validate:"required"`
	SharedSecret string `json:"sharedSecret" validate:"required_if=EventType installed"`
	BaseURL      string `json:"baseUrl" validate:"required,url"`
	EventType    string `json:"eventType" validate:"required,oneof=installed uninstalled enabled disabled"`
}

type InstallationDTO struct {
	ID         uuid.UUID  `json:"id"`
	JiraHost   string     `json:"jiraHost"`
	ClientKey  string     `json:"clientKey"`
	Enabled    bool       `json:"enabled"`
	VerifiedAt *time.Time `json:"verifiedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type UninstallRequest struct {
	ClientKey string `param:"clientKey" validate:"required,hexadecimal"`
	Force     bool   `json:"force" form:"force"`
}

type VerifyRequest struct {
	InstallationID string `param:"installationId" validate:"required,uuid"`
}

type VerifiedInstallationDTO struct {
	ID       uuid.UUID `json:"id"`
	JiraHost string    `json:"jiraHost"`
	Enabled  bool      `json:"enabled"`
}

type VerificationDTO struct {
	Message      string                  `json:"message"`
	Installation VerifiedInstallationDTO `json:"installation"`
}
