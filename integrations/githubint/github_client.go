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

package githubint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v62/github"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/l3montree-dev/jiralink/common"
	"github.com/l3montree-dev/jiralink/monitoring"
	"github.com/l3montree-dev/jiralink/shared"
)

var ErrGithubAppNotConfigured = errors.New("github app is not configured")

const perPage = 100

// GithubAppClient talks to github as a github app.
// Installation clients are cached, ghinstallation refreshes their tokens on its own.
type GithubAppClient struct {
	appID      int64
	privateKey []byte
	baseURL    string

	transport http.RoundTripper
	clients   *expirable.LRU[int64, *github.Client]

	appClientMu sync.Mutex
	appClient   *github.Client
}

var _ shared.GithubAppClient = &GithubAppClient{}

func NewGithubAppClient(cfg shared.Config) (*GithubAppClient, error) {
	var privateKey []byte
	if cfg.Github.PrivateKeyPath != "" {
		var err error
		privateKey, err = os.ReadFile(cfg.Github.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("could not read github app private key: %w", err)
		}
	}
	return newGithubAppClient(cfg.Github.AppID, privateKey, ""), nil
}

func newGithubAppClient(appID int64, privateKey []byte, baseURL string) *GithubAppClient {
	cache := common.NewCacheTransport(1000, 30*time.Second)
	httpClient := &http.Client{Transport: http.DefaultTransport}
	common.WrapHTTPClient(httpClient, cache.Handler())
	common.WrapHTTPClient(httpClient, common.Instrument(monitoring.GithubRequestDuration, "github"))

	return &GithubAppClient{
		appID:      appID,
		privateKey: privateKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		transport:  otelhttp.NewTransport(httpClient.Transport),
		clients:    expirable.NewLRU[int64, *github.Client](1000, nil, time.Hour),
	}
}

func (c *GithubAppClient) newGithubClient(transport http.RoundTripper) (*github.Client, error) {
	client := github.NewClient(&http.Client{Transport: transport})
	if c.baseURL != "" {
		u, err := url.Parse(c.baseURL + "/")
		if err != nil {
			return nil, err
		}
		client.BaseURL = u
	}
	return client, nil
}

func (c *GithubAppClient) clientFor(installationID int64) (*github.Client, error) {
	if c.appID == 0 || len(c.privateKey) == 0 {
		return nil, ErrGithubAppNotConfigured
	}
	if client, ok := c.clients.Get(installationID); ok {
		return client, nil
	}

	itr, err := ghinstallation.New(c.transport, c.appID, installationID, c.privateKey)
	if err != nil {
		return nil, fmt.Errorf("could not create installation transport: %w", err)
	}
	if c.baseURL != "" {
		itr.BaseURL = c.baseURL
	}

	client, err := c.newGithubClient(itr)
	if err != nil {
		return nil, err
	}
	c.clients.Add(installationID, client)
	return client, nil
}

func (c *GithubAppClient) appClientOrInit() (*github.Client, error) {
	c.appClientMu.Lock()
	defer c.appClientMu.Unlock()
	if c.appClient != nil {
		return c.appClient, nil
	}
	if c.appID == 0 || len(c.privateKey) == 0 {
		return nil, ErrGithubAppNotConfigured
	}
	atr, err := ghinstallation.NewAppsTransport(c.transport, c.appID, c.privateKey)
	if err != nil {
		return nil, fmt.Errorf("could not create app transport: %w", err)
	}
	if c.baseURL != "" {
		atr.BaseURL = c.baseURL
	}
	client, err := c.newGithubClient(atr)
	if err != nil {
		return nil, err
	}
	c.appClient = client
	return client, nil
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return true
	}
	return tokenNotFound(err)
}

// tokenNotFound reports whether github refused to issue an installation token because the installation does not exist.
func tokenNotFound(err error) bool {
	var itrErr *ghinstallation.HTTPError
	return errors.As(err, &itrErr) && itrErr.Response != nil && itrErr.Response.StatusCode == http.StatusNotFound
}

func installationGone(installationID int64, err error) error {
	return fmt.Errorf("%w: installation %d: %s", shared.ErrInstallationGone, installationID, err.Error())
}

func (c *GithubAppClient) ListRepositories(ctx context.Context, installationID int64) ([]shared.RepositoryInfo, error) {
	client, err := c.clientFor(installationID)
	if err != nil {
		return nil, err
	}

	repos := make([]shared.RepositoryInfo, 0)
	opts := &github.ListOptions{Page: 1, PerPage: perPage}
	for {
		result, resp, err := client.Apps.ListRepos(ctx, opts)
		if err != nil {
			if isNotFound(err) {
				return nil, installationGone(installationID, err)
			}
			return nil, err
		}
		for _, repo := range result.Repositories {
			repos = append(repos, shared.RepositoryInfo{
				ID:       repo.GetID(),
				Name:     repo.GetName(),
				Owner:    repo.GetOwner().GetLogin(),
				FullName: repo.GetFullName(),
				URL:      repo.GetHTMLURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return repos, nil
}

// ListPullRequests returns the pull requests of all states, most recently updated first.
func (c *GithubAppClient) ListPullRequests(ctx context.Context, installationID int64, owner, repo string, page int) ([]*github.PullRequest, int, error) {
	client, err := c.clientFor(installationID)
	if err != nil {
		return nil, 0, err
	}
	if page <= 0 {
		page = 1
	}

	prs, resp, err := client.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	})
	if err != nil {
		if tokenNotFound(err) {
			return nil, 0, installationGone(installationID, err)
		}
		return nil, 0, err
	}
	return prs, resp.NextPage, nil
}

func (c *GithubAppClient) ListReviews(ctx context.Context, installationID int64, owner, repo string, number int) ([]*github.PullRequestReview, error) {
	client, err := c.clientFor(installationID)
	if err != nil {
		return nil, err
	}

	reviews := make([]*github.PullRequestReview, 0)
	opts := &github.ListOptions{Page: 1, PerPage: perPage}
	for {
		page, resp, err := client.PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			if tokenNotFound(err) {
				return nil, installationGone(installationID, err)
			}
			return nil, err
		}
		reviews = append(reviews, page...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return reviews, nil
}

func (c *GithubAppClient) GetCommit(ctx context.Context, installationID int64, owner, repo, sha string) (*github.RepositoryCommit, error) {
	client, err := c.clientFor(installationID)
	if err != nil {
		return nil, err
	}
	commit, _, err := client.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	if err != nil {
		if tokenNotFound(err) {
			return nil, installationGone(installationID, err)
		}
		return nil, err
	}
	return commit, nil
}

func (c *GithubAppClient) GetInstallation(ctx context.Context, installationID int64) (*github.Installation, error) {
	client, err := c.appClientOrInit()
	if err != nil {
		return nil, err
	}
	installation, _, err := client.Apps.GetInstallation(ctx, installationID)
	if err != nil {
		if isNotFound(err) {
			return nil, installationGone(installationID, err)
		}
		return nil, err
	}
	return installation, nil
}
