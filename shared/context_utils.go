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
	"strconv"
)

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback, ok := ctx.Get(param).(string)
		if !ok {
			return ""
		}
		return fallback
	}
	return v
}

func ParseInstallationID(ctx Context) (int64, error) {
	raw := GetParam(ctx, "installationId")
	if raw == "" {
		return 0, fmt.Errorf("no installation id provided")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid installation id: %s", raw)
	}
	return id, nil
}

func SetInstallationID(ctx Context, installationID int64) {
	ctx.Set("installationID", installationID)
}

func GetInstallationID(ctx Context) int64 {
	return ctx.Get("installationID").(int64)
}
