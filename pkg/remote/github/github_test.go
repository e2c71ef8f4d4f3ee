// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/ghcp/gen/mockery"
	"github.com/walteh/ghcp/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestDefaultUser(t *testing.T) {
	t.Run("returns_login", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetUser(mock.Anything, "").Return(
			&github.User{Login: github.String("alice")},
			&github.Response{},
			nil,
		)

		c := NewWithClient(mockClient)
		user, err := c.DefaultUser(testContext(t))
		require.NoError(t, err, "DefaultUser should succeed")
		assert.Equal(t, "alice", user)
	})

	t.Run("api_error", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetUser(mock.Anything, "").Return(nil, nil, errors.New("401 Bad credentials"))

		_, err := NewWithClient(mockClient).DefaultUser(testContext(t))
		require.Error(t, err, "DefaultUser should fail")
		assert.True(t, errors.Is(err, remote.ErrNoUser), "error should be ErrNoUser, got %v", err)
	})

	t.Run("empty_login", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetUser(mock.Anything, "").Return(&github.User{}, &github.Response{}, nil)

		_, err := NewWithClient(mockClient).DefaultUser(testContext(t))
		require.Error(t, err, "DefaultUser should fail")
		assert.True(t, errors.Is(err, remote.ErrNoUser), "error should be ErrNoUser, got %v", err)
	})
}

func TestRepositoryNames(t *testing.T) {
	t.Run("authenticated_user_follows_pages", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetUser(mock.Anything, "").Return(&github.User{Login: github.String("alice")}, &github.Response{}, nil)
		mockClient.EXPECT().ListByAuthenticatedUser(mock.Anything, mock.MatchedBy(func(o *github.RepositoryListByAuthenticatedUserOptions) bool {
			return o.Page == 1 && o.Affiliation == "owner"
		})).Return(
			[]*github.Repository{
				{FullName: github.String("alice/zeta")},
				{FullName: github.String("alice/alpha")},
			},
			&github.Response{NextPage: 2},
			nil,
		).Once()
		mockClient.EXPECT().ListByAuthenticatedUser(mock.Anything, mock.MatchedBy(func(o *github.RepositoryListByAuthenticatedUserOptions) bool {
			return o.Page == 2
		})).Return(
			[]*github.Repository{
				{FullName: github.String("alice/tool")},
			},
			&github.Response{},
			nil,
		).Once()

		ctx := testContext(t)
		c := NewWithClient(mockClient)
		user, err := c.DefaultUser(ctx)
		require.NoError(t, err, "DefaultUser should succeed")

		names, err := c.RepositoryNames(ctx, user)
		require.NoError(t, err, "RepositoryNames should succeed")
		assert.Equal(t, []string{"alice/zeta", "alice/alpha", "alice/tool"}, names, "names should keep API order")
	})

	t.Run("other_user_lists_public", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().ListByUser(mock.Anything, "bob", mock.MatchedBy(func(o *github.RepositoryListByUserOptions) bool {
			return o.Type == "owner" && o.PerPage == perPage
		})).Return(
			[]*github.Repository{{FullName: github.String("bob/lib")}},
			&github.Response{},
			nil,
		)

		names, err := NewWithClient(mockClient).RepositoryNames(testContext(t), "bob")
		require.NoError(t, err, "RepositoryNames should succeed")
		assert.Equal(t, []string{"bob/lib"}, names)
	})

	t.Run("no_repositories", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().ListByUser(mock.Anything, "bob", mock.Anything).Return([]*github.Repository{}, &github.Response{}, nil)

		_, err := NewWithClient(mockClient).RepositoryNames(testContext(t), "bob")
		require.Error(t, err, "RepositoryNames should fail")
		assert.True(t, errors.Is(err, remote.ErrNoRepos), "error should be ErrNoRepos, got %v", err)
	})

	t.Run("api_error", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().ListByUser(mock.Anything, "bob", mock.Anything).Return(nil, nil, errors.New("boom"))

		_, err := NewWithClient(mockClient).RepositoryNames(testContext(t), "bob")
		require.Error(t, err, "RepositoryNames should fail")
		assert.True(t, errors.Is(err, remote.ErrNoRepos), "error should be ErrNoRepos, got %v", err)
	})
}

func TestDefaultBranch(t *testing.T) {
	t.Run("returns_branch", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetRepository(mock.Anything, "alice", "tool").Return(
			&github.Repository{DefaultBranch: github.String("trunk")},
			&github.Response{},
			nil,
		)

		branch, err := NewWithClient(mockClient).DefaultBranch(testContext(t), "alice/tool")
		require.NoError(t, err, "DefaultBranch should succeed")
		assert.Equal(t, "trunk", branch)
	})

	t.Run("missing_branch", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetRepository(mock.Anything, "alice", "tool").Return(&github.Repository{}, &github.Response{}, nil)

		_, err := NewWithClient(mockClient).DefaultBranch(testContext(t), "alice/tool")
		require.Error(t, err, "DefaultBranch should fail")
		assert.True(t, errors.Is(err, remote.ErrNoBranch), "error should be ErrNoBranch, got %v", err)
	})

	t.Run("invalid_repository", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)

		_, err := NewWithClient(mockClient).DefaultBranch(testContext(t), "not-a-repo")
		require.Error(t, err, "DefaultBranch should fail")
		assert.True(t, errors.Is(err, remote.ErrNoBranch), "error should be ErrNoBranch, got %v", err)
	})

	t.Run("api_error", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetRepository(mock.Anything, "alice", "gone").Return(nil, nil, errors.New("404 Not Found"))

		_, err := NewWithClient(mockClient).DefaultBranch(testContext(t), "alice/gone")
		require.Error(t, err, "DefaultBranch should fail")
		assert.True(t, errors.Is(err, remote.ErrNoBranch), "error should be ErrNoBranch, got %v", err)
	})
}

func TestRepositoryTree(t *testing.T) {
	t.Run("passes_payload_through", func(t *testing.T) {
		raw := []byte(`{"tree":[{"path":"a","type":"blob"}]}`)
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetTreeRaw(mock.Anything, "alice", "tool", "main", true).Return(raw, &github.Response{}, nil)

		got, err := NewWithClient(mockClient).RepositoryTree(testContext(t), "alice/tool", "main")
		require.NoError(t, err, "RepositoryTree should succeed")
		assert.Equal(t, raw, got)
	})

	t.Run("rate_limited", func(t *testing.T) {
		mockClient := mockery.NewMockGitHubClient_github(t)
		mockClient.EXPECT().GetTreeRaw(mock.Anything, "alice", "tool", "main", true).Return(
			nil,
			&github.Response{Response: &http.Response{StatusCode: http.StatusForbidden}},
			&github.RateLimitError{Message: "API rate limit exceeded"},
		)

		_, err := NewWithClient(mockClient).RepositoryTree(testContext(t), "alice/tool", "main")
		require.Error(t, err, "RepositoryTree should fail")
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})
}

func TestClientAgainstServer(t *testing.T) {
	tree := `{"sha":"abc","tree":[{"path":"src/a.rs","type":"blob"},{"path":"src","type":"tree"}],"truncated":false}`

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"login":"alice"}`))
	})
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "owner", r.URL.Query().Get("affiliation"))
		w.Write([]byte(`[{"full_name":"alice/tool"},{"full_name":"alice/site"}]`))
	})
	mux.HandleFunc("/repos/alice/tool", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"full_name":"alice/tool","default_branch":"main"}`))
	})
	mux.HandleFunc("/repos/alice/tool/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("recursive"))
		w.Write([]byte(tree))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	gh := github.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base

	ctx := testContext(t)
	c := NewFromGitHub(gh)

	user, err := c.DefaultUser(ctx)
	require.NoError(t, err, "DefaultUser should succeed")
	assert.Equal(t, "alice", user)

	names, err := c.RepositoryNames(ctx, user)
	require.NoError(t, err, "RepositoryNames should succeed")
	assert.Equal(t, []string{"alice/tool", "alice/site"}, names)

	branch, err := c.DefaultBranch(ctx, "alice/tool")
	require.NoError(t, err, "DefaultBranch should succeed")
	assert.Equal(t, "main", branch)

	raw, err := c.RepositoryTree(ctx, "alice/tool", branch)
	require.NoError(t, err, "RepositoryTree should succeed")
	assert.JSONEq(t, tree, string(raw), "tree payload should be passed through untouched")
}

func TestToken(t *testing.T) {
	original := ghAuthToken
	t.Cleanup(func() { ghAuthToken = original })

	t.Run("github_token_first", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "from-github-token")
		t.Setenv("GH_TOKEN", "from-gh-token")
		ghAuthToken = func(context.Context) (string, error) {
			t.Fatal("gh should not be consulted")
			return "", nil
		}

		tok, source := Token(testContext(t))
		assert.Equal(t, "from-github-token", tok)
		assert.Equal(t, "GITHUB_TOKEN", source)
	})

	t.Run("gh_token_second", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "from-gh-token")

		tok, source := Token(testContext(t))
		assert.Equal(t, "from-gh-token", tok)
		assert.Equal(t, "GH_TOKEN", source)
	})

	t.Run("gh_cli_fallback", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")
		ghAuthToken = func(context.Context) (string, error) { return "from-cli", nil }

		tok, source := Token(testContext(t))
		assert.Equal(t, "from-cli", tok)
		assert.Equal(t, "gh auth token", source)
	})

	t.Run("nothing_available", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")
		ghAuthToken = func(context.Context) (string, error) { return "", errors.New("gh not found") }

		tok, source := Token(testContext(t))
		assert.Empty(t, tok)
		assert.Empty(t, source)
	})
}
