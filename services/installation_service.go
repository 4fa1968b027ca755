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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/dtos"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/shared"
)

type InstallationService struct {
	installationRepository shared.InstallationRepository
	subscriptionRepository shared.SubscriptionRepository
	devInfoClientFactory   shared.DevInfoClientFactory
	now                    func() time.Time
}

func NewInstallationService(installationRepository shared.InstallationRepository, subscriptionRepository shared.SubscriptionRepository, devInfoClientFactory shared.DevInfoClientFactory) *InstallationService {
	return &InstallationService{
		installationRepository: installationRepository,
		subscriptionRepository: subscriptionRepository,
		devInfoClientFactory:   devInfoClientFactory,
		now:                    time.Now,
	}
}

func (s *InstallationService) HandleLifecycleEvent(ctx context.Context, event dtos.JiraLifecycleEvent) (models.Installation, error) {
	clientKey := models.HashClientKey(event.ClientKey)
	installation, err := s.installationRepository.FindByClientKey(clientKey)
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Installation{}, err
	}

	if event.EventType == "installed" {
		installation.ClientKey = clientKey
		installation.JiraHost = jira.NormalizeHost(event.BaseURL)
		installation.SharedSecret = event.SharedSecret
		now := s.now()
		installation.VerifiedAt = &now
		if err := s.installationRepository.Save(nil, &installation); err != nil {
			return models.Installation{}, fmt.Errorf("could not save installation: %w", err)
		}
		slog.Info("jira installation registered", "jiraHost", installation.JiraHost, "new", !found)
		return installation, nil
	}

	if !found {
		return models.Installation{}, shared.ErrInstallationNotFound
	}

	switch event.EventType {
	case "enabled", "disabled":
		enabled := event.EventType == "enabled"
		if err := s.installationRepository.SetEnabled(nil, installation.ID, enabled); err != nil {
			return models.Installation{}, fmt.Errorf("could not update installation: %w", err)
		}
		installation.Enabled = enabled
		slog.Info("jira installation toggled", "jiraHost", installation.JiraHost, "enabled", enabled)
	case "uninstalled":
		if err := s.remove(installation); err != nil {
			return models.Installation{}, err
		}
	default:
		return models.Installation{}, fmt.Errorf("unknown lifecycle event: %s", event.EventType)
	}
	return installation, nil
}

func (s *InstallationService) FindByClientKeyOrJiraHost(clientKeyOrJiraHost string) ([]models.Installation, error) {
	installation, err := s.installationRepository.FindByClientKey(models.HashClientKey(clientKeyOrJiraHost))
	if err == nil {
		return []models.Installation{installation}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.installationRepository.FindByJiraHost(jira.NormalizeHost(clientKeyOrJiraHost))
}

// remove deletes the installation and every subscription of its jira host.
func (s *InstallationService) remove(installation models.Installation) error {
	err := s.installationRepository.Transaction(func(tx shared.DB) error {
		if err := s.subscriptionRepository.DeleteByJiraHost(tx, installation.JiraHost); err != nil {
			return err
		}
		return s.installationRepository.Delete(tx, installation.ID)
	})
	if err != nil {
		return fmt.Errorf("could not remove installation: %w", err)
	}
	slog.Info("jira installation removed", "jiraHost", installation.JiraHost)
	return nil
}

func (s *InstallationService) Uninstall(ctx context.Context, clientKey string, force bool) (models.Installation, error) {
	installation, err := s.installationRepository.FindByClientKey(clientKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Installation{}, shared.ErrInstallationNotFound
		}
		return models.Installation{}, err
	}

	if !force {
		authorized, err := s.devInfoClientFactory.ForInstallation(installation).IsAuthorized(ctx)
		if err != nil {
			return installation, err
		}
		if authorized {
			return installation, shared.ErrInstallationAuthorized
		}
	}

	slog.Info("forcing uninstall of jira installation", "jiraHost", installation.JiraHost, "force", force)
	if err := s.remove(installation); err != nil {
		return installation, err
	}
	return installation, nil
}

func (s *InstallationService) Verify(ctx context.Context, id uuid.UUID) (models.Installation, bool, error) {
	installation, err := s.installationRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Installation{}, false, shared.ErrInstallationNotFound
		}
		return models.Installation{}, false, err
	}
	if installation.Enabled {
		return installation, true, nil
	}

	authorized, err := s.devInfoClientFactory.ForInstallation(installation).IsAuthorized(ctx)
	if err != nil {
		// an unreachable site does not verify
		slog.Warn("could not verify jira installation", "jiraHost", installation.JiraHost, "err", err)
		return installation, false, nil
	}
	if !authorized {
		slog.Info("jira installation is not authorized", "jiraHost", installation.JiraHost)
		return installation, false, nil
	}

	now := s.now()
	installation.Enabled = true
	installation.VerifiedAt = &now
	if err := s.installationRepository.Save(nil, &installation); err != nil {
		return installation, false, fmt.Errorf("could not enable installation: %w", err)
	}
	slog.Info("jira installation verified", "jiraHost", installation.JiraHost)
	return installation, false, nil
}
