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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/jiralink/shared"
)

func testPrivateKey(t *testing.T) []byte {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
}

func newFakeGithub(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("POST /app/installations/10/access_tokens", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"token":"installation-token","expires_at":"2099-01-01T00:00:00Z"}`)
	})
	mux.HandleFunc("POST /app/installations/11/access_tokens", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	mux.HandleFunc("GET /installation/repositories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token installation-token", r.Header.Get("Authorization"))
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `{"total_count":2,"repositories":[{"id":2,"name":"b","full_name":"octo/b","html_url":"https://github.com/octo/b","owner":{"login":"octo"}}]}`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/installation/repositories?page=2&per_page=100>; rel="next"`, server.URL))
		fmt.Fprint(w, `{"total_count":2,"repositories":[{"id":1,"name":"a","full_name":"octo/a","html_url":"https://github.com/octo/a","owner":{"login":"octo"}}]}`)
	})
	mux.HandleFunc("GET /repos/octo/a/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[{"number":1,"title":"TES-1 first"},{"number":2,"title":"second"}]`)
	})
	mux.HandleFunc("GET /repos/octo/gone/pulls", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	mux.HandleFunc("GET /app/installations/12", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	mux.HandleFunc("GET /app/installations/10", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":10,"account":{"login":"octo"},"html_url":"https://github.com/organizations/octo/settings/installations/10"}`)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestGithubAppClient(t *testing.T) {
	server := newFakeGithub(t)
	client := newGithubAppClient(42, testPrivateKey(t), server.URL)

	t.Run("should list every repository of the installation", func(t *testing.T) {
		repos, err := client.ListRepositories(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, shared.RepositoryInfo{ID: 1, Name: "a", Owner: "octo", FullName: "octo/a", URL: "https://github.com/octo/a"}, repos[0])
		assert.Equal(t, "octo/b", repos[1].FullName)
	})

	t.Run("should report a vanished installation", func(t *testing.T) {
		_, err := client.ListRepositories(context.Background(), 11)
		assert.ErrorIs(t, err, shared.ErrInstallationGone)
	})

	t.Run("should list one page of pull requests", func(t *testing.T) {
		prs, next, err := client.ListPullRequests(context.Background(), 10, "octo", "a", 0)
		require.NoError(t, err)
		assert.Len(t, prs, 2)
		assert.Equal(t, 0, next)
	})

	t.Run("should not treat a missing repository as a vanished installation", func(t *testing.T) {
		_, _, err := client.ListPullRequests(context.Background(), 10, "octo", "gone", 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrInstallationGone)
	})

	t.Run("should look up installations as the app", func(t *testing.T) {
		installation, err := client.GetInstallation(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "octo", installation.GetAccount().GetLogin())

		_, err = client.GetInstallation(context.Background(), 12)
		assert.ErrorIs(t, err, shared.ErrInstallationGone)
	})

	t.Run("should fail if the app is not configured", func(t *testing.T) {
		unconfigured := newGithubAppClient(0, nil, server.URL)
		_, err := unconfigured.ListRepositories(context.Background(), 10)
		assert.ErrorIs(t, err, ErrGithubAppNotConfigured)
	})
}
