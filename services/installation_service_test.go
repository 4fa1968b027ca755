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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/dtos"
	"github.com/l3montree-dev/jiralink/mocks"
	"github.com/l3montree-dev/jiralink/shared"
)

func TestHandleLifecycleEvent(t *testing.T) {
	hashed := models.HashClientKey("client-key")

	t.Run("should register a new installation with a normalized host and hashed client key", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(models.Installation{}, gorm.ErrRecordNotFound)
		installationRepository.On("Save", mock.Anything, mock.MatchedBy(func(i *models.Installation) bool {
			return i.ClientKey == hashed && i.JiraHost == "https://acme.atlassian.net" && i.SharedSecret == "secret" && i.VerifiedAt != nil
		})).Return(nil)

		s := NewInstallationService(installationRepository, mocks.NewSubscriptionRepository(t), nil)

		installation, err := s.HandleLifecycleEvent(context.Background(), dtos.JiraLifecycleEvent{
			ClientKey:    "client-key",
			SharedSecret: "secret",
			BaseURL:      "https://acme.atlassian.net/",
			EventType:    "installed",
		})
		require.NoError(t, err)
		assert.NotEqual(t, "client-key", installation.ClientKey)
	})

	t.Run("should update the secret of an existing installation", func(t *testing.T) {
		id := uuid.New()
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(models.Installation{Model: models.Model{ID: id}, ClientKey: hashed, SharedSecret: "old"}, nil)
		installationRepository.On("Save", mock.Anything, mock.MatchedBy(func(i *models.Installation) bool {
			return i.ID == id && i.SharedSecret == "new"
		})).Return(nil)

		s := NewInstallationService(installationRepository, mocks.NewSubscriptionRepository(t), nil)

		_, err := s.HandleLifecycleEvent(context.Background(), dtos.JiraLifecycleEvent{
			ClientKey:    "client-key",
			SharedSecret: "new",
			BaseURL:      "https://acme.atlassian.net",
			EventType:    "installed",
		})
		assert.NoError(t, err)
	})

	t.Run("should toggle an installation", func(t *testing.T) {
		id := uuid.New()
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(models.Installation{Model: models.Model{ID: id}}, nil)
		installationRepository.On("SetEnabled", mock.Anything, id, true).Return(nil)

		s := NewInstallationService(installationRepository, mocks.NewSubscriptionRepository(t), nil)

		installation, err := s.HandleLifecycleEvent(context.Background(), dtos.JiraLifecycleEvent{ClientKey: "client-key", EventType: "enabled"})
		require.NoError(t, err)
		assert.True(t, installation.Enabled)
	})

	t.Run("should remove the installation and its subscriptions on uninstall", func(t *testing.T) {
		id := uuid.New()
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(models.Installation{Model: models.Model{ID: id}, JiraHost: "https://acme.atlassian.net"}, nil)
		installationRepository.On("Transaction", mock.Anything).Return(func(f func(tx shared.DB) error) error {
			return f(nil)
		})
		installationRepository.On("Delete", mock.Anything, id).Return(nil)

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("DeleteByJiraHost", mock.Anything, "https://acme.atlassian.net").Return(nil)

		s := NewInstallationService(installationRepository, subscriptionRepository, nil)

		_, err := s.HandleLifecycleEvent(context.Background(), dtos.JiraLifecycleEvent{ClientKey: "client-key", EventType: "uninstalled"})
		assert.NoError(t, err)
	})

	t.Run("should fail for an unknown installation", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(models.Installation{}, gorm.ErrRecordNotFound)

		s := NewInstallationService(installationRepository, mocks.NewSubscriptionRepository(t), nil)

		_, err := s.HandleLifecycleEvent(context.Background(), dtos.JiraLifecycleEvent{ClientKey: "client-key", EventType: "disabled"})
		assert.ErrorIs(t, err, shared.ErrInstallationNotFound)
	})
}

func TestFindByClientKeyOrJiraHost(t *testing.T) {
	t.Run("should find an installation by its raw client key", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", models.HashClientKey("client-key")).Return(models.Installation{JiraHost: "https://acme.atlassian.net"}, nil)

		s := NewInstallationService(installationRepository, nil, nil)

		installations, err := s.FindByClientKeyOrJiraHost("client-key")
		require.NoError(t, err)
		assert.Len(t, installations, 1)
	})

	t.Run("should fall back to the jira host", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", mock.Anything).Return(models.Installation{}, gorm.ErrRecordNotFound)
		installationRepository.On("FindByJiraHost", "https://acme.atlassian.net").Return([]models.Installation{{}, {}}, nil)

		s := NewInstallationService(installationRepository, nil, nil)

		installations, err := s.FindByClientKeyOrJiraHost("https://acme.atlassian.net/")
		require.NoError(t, err)
		assert.Len(t, installations, 2)
	})
}

func TestUninstall(t *testing.T) {
	hashed := models.HashClientKey("client-key")
	installation := models.Installation{Model: models.Model{ID: uuid.New()}, ClientKey: hashed, JiraHost: "https://acme.atlassian.net"}

	removable := func(t *testing.T) (*mocks.InstallationRepository, *mocks.SubscriptionRepository) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(installation, nil)
		installationRepository.On("Transaction", mock.Anything).Return(func(f func(tx shared.DB) error) error {
			return f(nil)
		})
		installationRepository.On("Delete", mock.Anything, installation.ID).Return(nil)

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("DeleteByJiraHost", mock.Anything, installation.JiraHost).Return(nil)
		return installationRepository, subscriptionRepository
	}

	t.Run("should refuse to remove an installation jira still authorizes", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(installation, nil)

		client := mocks.NewDevInfoClient(t)
		client.On("IsAuthorized", mock.Anything).Return(true, nil)
		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForInstallation", installation).Return(client)

		s := NewInstallationService(installationRepository, mocks.NewSubscriptionRepository(t), factory)

		_, err := s.Uninstall(context.Background(), hashed, false)
		assert.ErrorIs(t, err, shared.ErrInstallationAuthorized)
	})

	t.Run("should remove an installation jira does not authorize anymore", func(t *testing.T) {
		installationRepository, subscriptionRepository := removable(t)

		client := mocks.NewDevInfoClient(t)
		client.On("IsAuthorized", mock.Anything).Return(false, nil)
		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForInstallation", installation).Return(client)

		s := NewInstallationService(installationRepository, subscriptionRepository, factory)

		_, err := s.Uninstall(context.Background(), hashed, false)
		assert.NoError(t, err)
	})

	t.Run("should skip the authorization check when forced", func(t *testing.T) {
		installationRepository, subscriptionRepository := removable(t)

		s := NewInstallationService(installationRepository, subscriptionRepository, mocks.NewDevInfoClientFactory(t))

		_, err := s.Uninstall(context.Background(), hashed, true)
		assert.NoError(t, err)
	})

	t.Run("should fail for an unknown client key", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("FindByClientKey", hashed).Return(models.Installation{}, gorm.ErrRecordNotFound)

		s := NewInstallationService(installationRepository, nil, nil)

		_, err := s.Uninstall(context.Background(), hashed, true)
		assert.ErrorIs(t, err, shared.ErrInstallationNotFound)
	})
}

func TestVerify(t *testing.T) {
	id := uuid.New()
	disabled := models.Installation{Model: models.Model{ID: id}, JiraHost: "https://acme.atlassian.net"}

	t.Run("should not contact jira for an enabled installation", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("Read", id).Return(models.Installation{Model: models.Model{ID: id}, Enabled: true}, nil)

		s := NewInstallationService(installationRepository, nil, mocks.NewDevInfoClientFactory(t))

		installation, alreadyEnabled, err := s.Verify(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, alreadyEnabled)
		assert.True(t, installation.Enabled)
	})

	t.Run("should enable an authorized installation", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("Read", id).Return(disabled, nil)
		installationRepository.On("Save", mock.Anything, mock.MatchedBy(func(i *models.Installation) bool {
			return i.ID == id && i.Enabled && i.VerifiedAt != nil
		})).Return(nil)

		client := mocks.NewDevInfoClient(t)
		client.On("IsAuthorized", mock.Anything).Return(true, nil)
		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForInstallation", disabled).Return(client)

		s := NewInstallationService(installationRepository, nil, factory)

		installation, alreadyEnabled, err := s.Verify(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, alreadyEnabled)
		assert.True(t, installation.Enabled)
	})

	t.Run("should keep an unreachable installation disabled", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("Read", id).Return(disabled, nil)

		client := mocks.NewDevInfoClient(t)
		client.On("IsAuthorized", mock.Anything).Return(false, assert.AnError)
		factory := mocks.NewDevInfoClientFactory(t)
		factory.On("ForInstallation", disabled).Return(client)

		s := NewInstallationService(installationRepository, nil, factory)

		installation, _, err := s.Verify(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, installation.Enabled)
	})

	t.Run("should fail for an unknown installation", func(t *testing.T) {
		installationRepository := mocks.NewInstallationRepository(t)
		installationRepository.On("Read", id).Return(models.Installation{}, gorm.ErrRecordNotFound)

		s := NewInstallationService(installationRepository, nil, nil)

		_, _, err := s.Verify(context.Background(), id)
		assert.ErrorIs(t, err, shared.ErrInstallationNotFound)
	})
}
