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
	"github.com/google/uuid"

	"github.com/l3montree-dev/jiralink/common"
	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/shared"
)

type installationRepository struct {
	db shared.DB
	common.Repository[uuid.UUID, models.Installation, shared.DB]
}

func NewInstallationRepository(db shared.DB) *installationRepository {
	return &installationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Installation](db),
	}
}

func (r *installationRepository) FindByClientKey(clientKey string) (models.Installation, error) {
	var installation models.Installation
	err := r.db.First(&installation, "client_key = ?", clientKey).Error
	return installation, err
}

func (r *installationRepository) FindByJiraHost(jiraHost string) ([]models.Installation, error) {
	var installations []models.Installation
	err := r.db.Where("jira_host = ?", jiraHost).Order("created_at DESC").Find(&installations).Error
	return installations, err
}

func (r *installationRepository) SetEnabled(tx shared.DB, id uuid.UUID, enabled bool) error {
	return r.GetDB(tx).Model(&models.Installation{}).Where("id = ?", id).Update("enabled", enabled).Error
}
