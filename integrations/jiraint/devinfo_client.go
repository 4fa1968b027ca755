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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/l3montree-dev/jiralink/jira"
	"github.com/l3montree-dev/jiralink/shared"
)

const (
	bulkPath        = "/rest/devinfo/0.10/bulk"
	pullRequestPath = "/rest/devinfo/0.10/repository/%d/pull_request/%d"
)

// any authenticated read works, the property does not need to exist
const existsByPropertiesPath = "/rest/devinfo/0.10/existsByProperties"

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jira responded with status code %d: %s", e.StatusCode, e.Body)
}

func retryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

type bulkResponse struct {
	UnknownIssueKeys []string `json:"unknownIssueKeys"`
}

// DevInfoClient sends development information of a single jira site.
// Requests are authenticated with an atlassian connect jwt.
type DevInfoClient struct {
	jiraHost     string
	appKey       string
	sharedSecret string
	httpClient   *http.Client
	sequence     *jira.UpdateSequence

	maxElapsedTime  time.Duration
	initialInterval time.Duration
	now             func() time.Time
}

var _ shared.DevInfoClient = &DevInfoClient{}

func NewDevInfoClient(jiraHost, appKey, sharedSecret string, httpClient *http.Client, maxElapsedTime time.Duration) *DevInfoClient {
	return &DevInfoClient{
		jiraHost:        jira.NormalizeHost(jiraHost),
		appKey:          appKey,
		sharedSecret:    sharedSecret,
		httpClient:      httpClient,
		sequence:        jira.DefaultUpdateSequence,
		maxElapsedTime:  maxElapsedTime,
		initialInterval: backoff.DefaultInitialInterval,
		now:             time.Now,
	}
}

func (c *DevInfoClient) backOff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval
	bo.MaxElapsedTime = c.maxElapsedTime
	if c.maxElapsedTime <= 0 {
		// a zero MaxElapsedTime would retry forever
		return backoff.WithContext(backoff.WithMaxRetries(bo, 0), ctx)
	}
	return backoff.WithContext(bo, ctx)
}

// do sends the request and retries on transport errors, 429 and 5xx answers.
func (c *DevInfoClient) do(ctx context.Context, method string, path string, query url.Values, body []byte) ([]byte, error) {
	var responseBody []byte
	operation := func() error {
		token, err := signRequest(c.appKey, c.sharedSecret, method, path, query, c.now())
		if err != nil {
			return backoff.Permanent(fmt.Errorf("could not sign request: %w", err))
		}

		u := c.jiraHost + path
		if len(query) > 0 {
			u += "?" + query.Encode()
		}
		req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "JWT "+token)
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		content, _ := io.ReadAll(resp.Body)
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(content)}
			if retryable(resp.StatusCode) {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}
		responseBody = content
		return nil
	}

	err := backoff.RetryNotify(operation, c.backOff(ctx), func(err error, wait time.Duration) {
		slog.Warn("jira request failed, retrying", "jiraHost", c.jiraHost, "path", path, "wait", wait, "err", err)
	})
	return responseBody, err
}

func (c *DevInfoClient) UpdateRepository(ctx context.Context, repository jira.Repository) error {
	body, err := json.Marshal(jira.BulkRequest{
		Repositories: []jira.Repository{repository},
	})
	if err != nil {
		return fmt.Errorf("could not marshal devinfo payload: %w", err)
	}

	content, err := c.do(ctx, http.MethodPost, bulkPath, nil, body)
	if err != nil {
		return fmt.Errorf("could not send devinfo of repository %s: %w", repository.ID, err)
	}

	var resp bulkResponse
	if err := json.Unmarshal(content, &resp); err == nil && len(resp.UnknownIssueKeys) > 0 {
		slog.Debug("jira does not know some issue keys", "jiraHost", c.jiraHost, "keys", resp.UnknownIssueKeys)
	}
	return nil
}

func (c *DevInfoClient) DeletePullRequest(ctx context.Context, repositoryID int64, pullRequestNumber int) error {
	query := url.Values{}
	query.Set("_updateSequenceId", strconv.FormatInt(c.sequence.Next(), 10))

	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf(pullRequestPath, repositoryID, pullRequestNumber), query, nil)
	if err != nil {
		return fmt.Errorf("could not delete pull request %d of repository %d: %w", pullRequestNumber, repositoryID, err)
	}
	return nil
}

func (c *DevInfoClient) IsAuthorized(ctx context.Context) (bool, error) {
	query := url.Values{}
	query.Set("fakeProperty", "1")

	_, err := c.do(ctx, http.MethodGet, existsByPropertiesPath, query, nil)
	if err == nil {
		return true, nil
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) && (statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
		return false, nil
	}
	return false, fmt.Errorf("could not check authorization of %s: %w", c.jiraHost, err)
}
