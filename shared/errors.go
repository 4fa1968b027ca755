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

import "errors"

var (
	// ErrInstallationGone is returned by github clients when github answers with a 404
	// for an installation that used to exist.
	ErrInstallationGone = errors.New("github installation not found")
	// ErrSubscriptionNotFound signals that no subscription matches the given installation / jira host pair.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInstallationNotFound = errors.New("jira installation not found")
	// ErrInstallationAuthorized refuses to remove an installation jira still accepts requests of.
	ErrInstallationAuthorized = errors.New("jira installation is still authorized")
	// ErrStaleGeneration is returned for sync callbacks which do not belong to the current run of a subscription.
	ErrStaleGeneration = errors.New("sync callback does not match the current run")
	ErrRepoClaimed     = errors.New("repository is processed by another worker")
)
