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

package repositories

import (
	"github.com/l3montree-dev/jiralink/common"
	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/shared"
)

type configRepository struct {
	db shared.DB
	common.Repository[string, models.Config, shared.DB]
}

func NewConfigRepository(db shared.DB) *configRepository {
	return &configRepository{
		db:         db,
		Repository: newGormRepository[string, models.Config](db),
	}
}

func (r *configRepository) Read(key string) (models.Config, error) {
	var config models.Config
	err := r.db.First(&config, "key = ?", key).Error
	return config, err
}
