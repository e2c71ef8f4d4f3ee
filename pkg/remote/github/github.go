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
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/walteh/ghcp/pkg/remote"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"
)

const perPage = 100

// GitHubClient defines the GitHub API operations we need
type GitHubClient interface {
	GetUser(ctx context.Context, user string) (*github.User, *github.Response, error)
	ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error)
	ListByUser(ctx context.Context, user string, opts *github.RepositoryListByUserOptions) ([]*github.Repository, *github.Response, error)
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	GetTreeRaw(ctx context.Context, owner, repo, sha string, recursive bool) ([]byte, *github.Response, error)
}

// 🎯 Client implements remote.Client for GitHub
type Client struct {
	client GitHubClient

	// login of the authenticated user, set by DefaultUser
	login string
}

var _ remote.Client = (*Client)(nil)

// 🏭 NewWithHTTPClient creates a client that sends API requests through httpClient.
// Pass HTTPClient(ctx) for the token found by Token; without one the client is
// anonymous and DefaultUser fails.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	return NewFromGitHub(github.NewClient(httpClient))
}

// HTTPClient returns an http.Client that sends the token found by Token, or
// http.DefaultClient when there is none. Raw file downloads reuse it so
// private repositories work.
func HTTPClient(ctx context.Context) *http.Client {
	logger := zerolog.Ctx(ctx)

	token, source := Token(ctx)
	if token == "" {
		logger.Debug().Msg("no github token found, using anonymous client")
		return http.DefaultClient
	}

	logger.Debug().Str("source", source).Msg("using github token")
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, ts)
}

// NewWithClient wraps an existing GitHubClient
func NewWithClient(client GitHubClient) *Client {
	return &Client{client: client}
}

// NewFromGitHub wraps a configured go-github client
func NewFromGitHub(client *github.Client) *Client {
	return NewWithClient(&githubClientWrapper{client: client})
}

// githubClientWrapper wraps the GitHub client to implement our interface
type githubClientWrapper struct {
	client *github.Client
}

func (w *githubClientWrapper) GetUser(ctx context.Context, user string) (*github.User, *github.Response, error) {
	return w.client.Users.Get(ctx, user)
}

func (w *githubClientWrapper) ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error) {
	return w.client.Repositories.ListByAuthenticatedUser(ctx, opts)
}

func (w *githubClientWrapper) ListByUser(ctx context.Context, user string, opts *github.RepositoryListByUserOptions) ([]*github.Repository, *github.Response, error) {
	return w.client.Repositories.ListByUser(ctx, user, opts)
}

func (w *githubClientWrapper) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error) {
	return w.client.Repositories.Get(ctx, owner, repo)
}

// GetTreeRaw is Git.GetTree without decoding, so callers see the payload as sent
func (w *githubClientWrapper) GetTreeRaw(ctx context.Context, owner, repo, sha string, recursive bool) ([]byte, *github.Response, error) {
	u := fmt.Sprintf("repos/%v/%v/git/trees/%v", owner, repo, sha)
	if recursive {
		u += "?recursive=1"
	}

	req, err := w.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	resp, err := w.client.Do(ctx, req, &buf)
	if err != nil {
		return nil, resp, err
	}

	return buf.Bytes(), resp, nil
}

// 👤 DefaultUser returns the login of the authenticated user
func (c *Client) DefaultUser(ctx context.Context) (string, error) {
	zerolog.Ctx(ctx).Debug().Msg("getting authenticated user")

	user, _, err := c.client.GetUser(ctx, "")
	if err != nil {
		return "", errors.Errorf("%w: getting authenticated user: %w", remote.ErrNoUser, err)
	}

	login := user.GetLogin()
	if login == "" {
		return "", errors.Errorf("%w: authenticated user has no login", remote.ErrNoUser)
	}

	c.login = login
	return login, nil
}

// 📚 RepositoryNames returns every repository owned by user, following pagination
func (c *Client) RepositoryNames(ctx context.Context, user string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("user", user).Msg("listing repositories")

	var names []string
	page := 1
	for page != 0 {
		var (
			repos []*github.Repository
			resp  *github.Response
			err   error
		)

		listOpts := github.ListOptions{Page: page, PerPage: perPage}
		if c.login != "" && c.login == user {
			// includes private repositories the token can see
			repos, resp, err = c.client.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
				Affiliation: "owner",
				ListOptions: listOpts,
			})
		} else {
			repos, resp, err = c.client.ListByUser(ctx, user, &github.RepositoryListByUserOptions{
				Type:        "owner",
				ListOptions: listOpts,
			})
		}
		if err != nil {
			return nil, errors.Errorf("%w: listing repositories for %s: %w", remote.ErrNoRepos, user, err)
		}

		for _, r := range repos {
			if name := r.GetFullName(); name != "" {
				names = append(names, name)
			}
		}

		page = 0
		if resp != nil {
			page = resp.NextPage
		}
	}

	if len(names) == 0 {
		return nil, errors.Errorf("%w: %s has no repositories", remote.ErrNoRepos, user)
	}

	logger.Debug().Int("count", len(names)).Msg("listed repositories")
	return names, nil
}

// 🌿 DefaultBranch returns the current default branch of repo
func (c *Client) DefaultBranch(ctx context.Context, repo string) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("repo", repo).Msg("resolving default branch")

	owner, name, err := remote.SplitRepo(repo)
	if err != nil {
		return "", errors.Errorf("%w: %w", remote.ErrNoBranch, err)
	}

	r, _, err := c.client.GetRepository(ctx, owner, name)
	if err != nil {
		return "", errors.Errorf("%w: getting repository %s: %w", remote.ErrNoBranch, repo, err)
	}

	branch := r.GetDefaultBranch()
	if branch == "" {
		return "", errors.Errorf("%w: %s has no default branch", remote.ErrNoBranch, repo)
	}

	return branch, nil
}

// 🌳 RepositoryTree returns the raw recursive tree of repo at branch
func (c *Client) RepositoryTree(ctx context.Context, repo, branch string) ([]byte, error) {
	zerolog.Ctx(ctx).Debug().Str("repo", repo).Str("branch", branch).Msg("fetching repository tree")

	owner, name, err := remote.SplitRepo(repo)
	if err != nil {
		return nil, errors.Errorf("parsing repository: %w", err)
	}

	raw, resp, err := c.client.GetTreeRaw(ctx, owner, name, branch, true)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			if _, ok := err.(*github.RateLimitError); ok {
				return nil, errors.Errorf("rate limit exceeded: %w", err)
			}
		}
		return nil, errors.Errorf("getting repository tree: %w", err)
	}

	return raw, nil
}
