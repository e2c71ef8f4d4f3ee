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

	"github.com/rs/zerolog"
)

// 🚦 State is a step of a copy run
type State int

const (
	StateIdle State = iota
	StateHistoryLoaded
	StateCandidatesBuilt
	StateFirstSelectionMade
	StateHistoryBranch
	StateRepoBranch
	StateFileListed
	StateSecondSelectionMade
	StateTransferred
	StateHistoryUpdated
	StateDone
	StateAborted
)

var stateNames = map[State]string{
	StateIdle:                "idle",
	StateHistoryLoaded:       "history_loaded",
	StateCandidatesBuilt:     "candidates_built",
	StateFirstSelectionMade:  "first_selection_made",
	StateHistoryBranch:       "history_branch",
	StateRepoBranch:          "repo_branch",
	StateFileListed:          "file_listed",
	StateSecondSelectionMade: "second_selection_made",
	StateTransferred:         "transferred",
	StateHistoryUpdated:      "history_updated",
	StateDone:                "done",
	StateAborted:             "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}

// run tracks the state of a single Copy call
type run struct {
	state State
}

// advance moves to next; a run that already finished stays where it is
func (r *run) advance(ctx context.Context, next State) {
	if r.state.Terminal() {
		zerolog.Ctx(ctx).Debug().Stringer("state", r.state).Stringer("to", next).Msg("ignoring transition after terminal state")
		return
	}
	zerolog.Ctx(ctx).Debug().Stringer("from", r.state).Stringer("to", next).Msg("state transition")
	r.state = next
}

// abort moves to StateAborted and returns the error describing it
func (r *run) abort(ctx context.Context, reason string, cause error) error {
	err := &AbortedError{Reason: reason, State: r.state, Err: cause}
	zerolog.Ctx(ctx).Debug().Stringer("from", r.state).Str("reason", reason).Err(cause).Msg("aborting")
	r.state = StateAborted
	return err
}
