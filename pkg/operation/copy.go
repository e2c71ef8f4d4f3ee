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

package operation

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/ghcp/pkg/history"
	"github.com/walteh/ghcp/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 📋 Copy runs the selection pipeline once.
// History is written only after a successful transfer; every other exit leaves it untouched.
func (o *operator) Copy(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	r := &run{state: StateIdle}

	h, err := o.store.Load(ctx)
	if err != nil {
		return nil, errors.Errorf("loading history: %w", err)
	}
	r.advance(ctx, StateHistoryLoaded)

	user, err := o.remote.DefaultUser(ctx)
	if err != nil {
		return nil, errors.Errorf("getting default user: %w", err)
	}

	repos, err := o.remote.RepositoryNames(ctx, user)
	if err != nil {
		return nil, errors.Errorf("listing repositories: %w", err)
	}

	candidates := newCandidateSet(BuildCandidates(h, repos))
	logger.Debug().Int("history", h.Len()).Int("repositories", len(repos)).Msg("built candidate list")
	r.advance(ctx, StateCandidatesBuilt)

	line, err := o.picker.Pick(ctx, candidates.lines)
	if err != nil {
		return nil, errors.Errorf("selecting repository: %w", err)
	}
	if line == "" {
		return nil, r.abort(ctx, ReasonNoSelection, nil)
	}

	// a tagged line the set does not know is still a history pick; fromHistory rejects it as stale
	chosen, ok := candidates.get(line)
	tagged := strings.HasPrefix(line, HistoryTag)
	if !ok && !tagged {
		return nil, errors.Errorf("%w: %q", ErrSelectionMismatch, line)
	}
	r.advance(ctx, StateFirstSelectionMade)

	var res *Result
	if tagged || chosen.Kind == KindHistory {
		r.advance(ctx, StateHistoryBranch)
		res, err = o.fromHistory(ctx, r, h, strings.TrimPrefix(line, HistoryTag))
	} else {
		r.advance(ctx, StateRepoBranch)
		res, err = o.fromRepository(ctx, r, chosen.Repo)
	}
	if err != nil {
		return nil, err
	}

	res.Destination = res.Path
	if o.dir != "" {
		res.Destination = filepath.Join(o.dir, res.Path)
	}

	if err := o.transfer.Transfer(ctx, res.URL, res.Destination); err != nil {
		return nil, r.abort(ctx, ReasonDownloadFailed, err)
	}
	r.advance(ctx, StateTransferred)

	if err := o.store.Add(ctx, h, res.Repo, res.Path); err != nil {
		return nil, errors.Errorf("updating history: %w", err)
	}
	r.advance(ctx, StateHistoryUpdated)

	r.advance(ctx, StateDone)
	return res, nil
}

// fromHistory rebuilds the download URL for a remembered file against the current default branch
func (o *operator) fromHistory(ctx context.Context, r *run, h *history.History, line string) (*Result, error) {
	entry, ok := h.Find(line)
	if !ok {
		return nil, r.abort(ctx, ReasonStaleHistory, nil)
	}

	branch, err := o.remote.DefaultBranch(ctx, entry.Repo)
	if err != nil {
		return nil, errors.Errorf("resolving default branch: %w", err)
	}

	if o.console != nil {
		o.console.Repository(entry.Repo, branch)
	}

	return &Result{
		Repo:        entry.Repo,
		Path:        entry.FilePath,
		Branch:      branch,
		URL:         tree.RawURL(entry.Repo, branch, entry.FilePath),
		FromHistory: true,
	}, nil
}

// fromRepository lists the repository's files and asks for one
func (o *operator) fromRepository(ctx context.Context, r *run, repo string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	branch, err := o.remote.DefaultBranch(ctx, repo)
	if err != nil {
		return nil, errors.Errorf("resolving default branch: %w", err)
	}

	if o.console != nil {
		o.console.Repository(repo, branch)
	}

	raw, err := o.remote.RepositoryTree(ctx, repo, branch)
	if err != nil {
		return nil, errors.Errorf("fetching repository tree: %w", err)
	}

	listing, err := tree.Parse(raw, repo, branch)
	if err != nil {
		return nil, errors.Errorf("resolving repository tree: %w", err)
	}

	if listing.Truncated {
		if o.console != nil {
			o.console.Warningf("%s is too large to list completely; some files are missing", repo)
		} else {
			logger.Warn().Str("repo", repo).Msg("repository tree was truncated")
		}
	}

	files, dropped := o.ignore.apply(listing.Files)
	if dropped > 0 {
		logger.Debug().Int("ignored", dropped).Msg("filtered files by ignore patterns")
	}

	if len(files) == 0 {
		return nil, r.abort(ctx, ReasonEmptyRepo, nil)
	}
	r.advance(ctx, StateFileListed)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}

	picked, err := o.picker.Pick(ctx, paths)
	if err != nil {
		return nil, errors.Errorf("selecting file: %w", err)
	}
	if picked == "" {
		return nil, r.abort(ctx, ReasonNoFileSelected, nil)
	}

	for _, f := range files {
		if f.Path == picked {
			r.advance(ctx, StateSecondSelectionMade)
			return &Result{
				Repo:   repo,
				Path:   f.Path,
				Branch: branch,
				URL:    f.URL,
			}, nil
		}
	}

	return nil, errors.Errorf("%w: %q", ErrSelectionMismatch, picked)
}
