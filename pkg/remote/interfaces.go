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

// Package remote describes the source-hosting account ghcp browses.
package remote

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNoUser is returned when the authenticated user cannot be determined
	ErrNoUser = errors.Base("no user")

	// ErrNoRepos is returned when a user has no repositories to list
	ErrNoRepos = errors.Base("no repositories")

	// ErrNoBranch is returned when a repository's default branch cannot be resolved
	ErrNoBranch = errors.Base("no default branch")
)

// 🌐 Client is the primary interface for talking to a repository host (e.g. GitHub)
type Client interface {
	// DefaultUser returns the login of the authenticated user
	DefaultUser(ctx context.Context) (string, error)
	// RepositoryNames returns "owner/name" identifiers for every repository owned by user
	RepositoryNames(ctx context.Context, user string) ([]string, error)
	// DefaultBranch returns the current default branch of repo ("owner/name")
	DefaultBranch(ctx context.Context, repo string) (string, error)
	// RepositoryTree returns the raw recursive tree response for repo at branch
	RepositoryTree(ctx context.Context, repo, branch string) ([]byte, error)
}

// 🔍 SplitRepo splits an "owner/name" identifier
func SplitRepo(repo string) (owner, name string, err error) {
	if repo == "" {
		return "", "", errors.Errorf("empty repository name")
	}

	parts := strings.Split(repo, "/")
	if len(parts) != 2 {
		return "", "", errors.Errorf("invalid repository name: %s", repo)
	}

	owner = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if owner == "" || name == "" {
		return "", "", errors.Errorf("invalid repository name: %s", repo)
	}

	return owner, name, nil
}
