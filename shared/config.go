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
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type PostgresConfig struct {
	Host     string `mapstructure:"POSTGRES_HOST"`
	Port     string `mapstructure:"POSTGRES_PORT"`
	User     string `mapstructure:"POSTGRES_USER"`
	Password string `mapstructure:"POSTGRES_PASSWORD"`
	DB       string `mapstructure:"POSTGRES_DB"`

	MaxOpenConns    int32         `mapstructure:"DB_MAX_OPEN_CONNS"`
	MinConns        int32         `mapstructure:"DB_MIN_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration `mapstructure:"DB_CONN_MAX_IDLE_TIME"`
}

type GithubConfig struct {
	AppID             int64   `mapstructure:"GITHUB_APP_ID"`
	PrivateKeyPath    string  `mapstructure:"GITHUB_PRIVATE_KEY"`
	WebhookSecret     string  `mapstructure:"GITHUB_WEBHOOK_SECRET"`
	RequestsPerSecond float64 `mapstructure:"GITHUB_REQUESTS_PER_SECOND"`
}

type JiraConfig struct {
	// key of the atlassian connect app, used as issuer of the jwt sent to jira
	AppKey string `mapstructure:"JIRA_APP_KEY"`
	// timeout of a single devinfo request
	RequestTimeout      time.Duration `mapstructure:"JIRA_REQUEST_TIMEOUT"`
	MaxRetryElapsedTime time.Duration `mapstructure:"JIRA_MAX_RETRY_ELAPSED_TIME"`
}

// SyncConfig controls the behavior of the repository synchronization.
type SyncConfig struct {
	// a run without any progress for this long is reported as FAILED
	StalenessWindow time.Duration `mapstructure:"SYNC_STALENESS_WINDOW"`
	// maximum number of subscriptions started in parallel by a bulk resync
	BulkConcurrency int `mapstructure:"SYNC_BULK_CONCURRENCY"`
	// number of repositories processed in parallel per run
	WorkerConcurrency int `mapstructure:"SYNC_WORKER_CONCURRENCY"`
	// how often a 404 for a known installation is tolerated before its subscriptions are removed
	InstallationGoneRetries int `mapstructure:"SYNC_INSTALLATION_GONE_RETRIES"`
	// interval of the resume daemon
	ResumeInterval time.Duration `mapstructure:"SYNC_RESUME_INTERVAL"`
}

type Config struct {
	Postgres PostgresConfig `mapstructure:",squash"`
	Github   GithubConfig   `mapstructure:",squash"`
	Jira     JiraConfig     `mapstructure:",squash"`
	Sync     SyncConfig     `mapstructure:",squash"`

	AppURL               string `mapstructure:"APP_URL"`
	Port                 string `mapstructure:"PORT"`
	Environment          string `mapstructure:"ENVIRONMENT"`
	ErrorTrackingDSN     string `mapstructure:"ERROR_TRACKING_DSN"`
	DisableAutoMigrate   bool   `mapstructure:"DISABLE_AUTOMIGRATE"`
	OtelExporterEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "jiralink")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "jiralink")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 4*time.Hour)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 15*time.Minute)

	v.SetDefault("GITHUB_APP_ID", 0)
	v.SetDefault("GITHUB_PRIVATE_KEY", "")
	v.SetDefault("GITHUB_WEBHOOK_SECRET", "")
	v.SetDefault("GITHUB_REQUESTS_PER_SECOND", 10.0)

	v.SetDefault("JIRA_APP_KEY", "com.github.integration.jiralink")
	v.SetDefault("JIRA_REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("JIRA_MAX_RETRY_ELAPSED_TIME", 2*time.Minute)

	v.SetDefault("SYNC_STALENESS_WINDOW", 15*time.Minute)
	v.SetDefault("SYNC_BULK_CONCURRENCY", 10)
	v.SetDefault("SYNC_WORKER_CONCURRENCY", 4)
	v.SetDefault("SYNC_INSTALLATION_GONE_RETRIES", 0)
	v.SetDefault("SYNC_RESUME_INTERVAL", 5*time.Minute)

	v.SetDefault("APP_URL", "http://localhost:8080")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("ERROR_TRACKING_DSN", "")
	v.SetDefault("DISABLE_AUTOMIGRATE", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

// ReadConfig reads the configuration from the environment.
// LoadConfig should be called before to make values of a .env file available.
func ReadConfig() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("could not decode configuration: %w", err)
	}

	if cfg.Sync.BulkConcurrency <= 0 {
		cfg.Sync.BulkConcurrency = 1
	}
	if cfg.Sync.WorkerConcurrency <= 0 {
		cfg.Sync.WorkerConcurrency = 1
	}
	if cfg.Sync.StalenessWindow <= 0 {
		return Config{}, fmt.Errorf("SYNC_STALENESS_WINDOW must be positive, got %s", cfg.Sync.StalenessWindow)
	}

	return cfg, nil
}

// DefaultSyncConfig returns the sync configuration used when nothing is configured.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		StalenessWindow:         15 * time.Minute,
		BulkConcurrency:         10,
		WorkerConcurrency:       4,
		InstallationGoneRetries: 0,
		ResumeInterval:          5 * time.Minute,
	}
}
