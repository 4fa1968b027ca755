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
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/l3montree-dev/jiralink/common"
	"github.com/l3montree-dev/jiralink/database/models"
	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/monitoring"
	"github.com/l3montree-dev/jiralink/shared"
)

type DevInfoClientFactory struct {
	installationRepository shared.InstallationRepository
	appKey                 string
	httpClient             *http.Client
	maxRetryElapsedTime    time.Duration
}

func NewDevInfoClientFactory(installationRepository shared.InstallationRepository, cfg shared.Config) *DevInfoClientFactory {
	httpClient := &http.Client{
		Timeout:   cfg.Jira.RequestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	common.WrapHTTPClient(httpClient, common.Instrument(monitoring.JiraRequestDuration, "jira"))

	return &DevInfoClientFactory{
		installationRepository: installationRepository,
		appKey:                 cfg.Jira.AppKey,
		httpClient:             httpClient,
		maxRetryElapsedTime:    cfg.Jira.MaxRetryElapsedTime,
	}
}

// ForJiraHost returns a client signing with the shared secret of the installation of the host.
// Enabled installations are preferred.
func (f *DevInfoClientFactory) ForJiraHost(jiraHost string) (shared.DevInfoClient, error) {
	installations, err := f.installationRepository.FindByJiraHost(jira.NormalizeHost(jiraHost))
	if err != nil {
		return nil, fmt.Errorf("could not find installation of %s: %w", jiraHost, err)
	}
	if len(installations) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrInstallationNotFound, jiraHost)
	}

	installation := installations[0]
	for _, candidate := range installations {
		if candidate.Enabled {
			installation = candidate
			break
		}
	}

	return f.ForInstallation(installation), nil
}

func (f *DevInfoClientFactory) ForInstallation(installation models.Installation) shared.DevInfoClient {
	return NewDevInfoClient(installation.JiraHost, f.appKey, installation.SharedSecret, f.httpClient, f.maxRetryElapsedTime)
}
