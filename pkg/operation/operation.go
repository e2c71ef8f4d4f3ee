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

	"github.com/walteh/ghcp/pkg/history"
	"github.com/walteh/ghcp/pkg/log"
	"github.com/walteh/ghcp/pkg/picker"
	"github.com/walteh/ghcp/pkg/remote"
	"github.com/walteh/ghcp/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator runs the interactive copy pipeline
type Operator interface {
	// Copy runs the pipeline once: pick, download, record in history
	Copy(ctx context.Context) (*Result, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// History persists recently copied files
	History *history.Store
	// Remote lists repositories and fetches trees
	Remote remote.Client
	// Picker asks the user to choose
	Picker picker.Picker
	// Transferer downloads the chosen file
	Transferer transfer.Transferer
	// Ignore hides matching paths from the file picker (doublestar globs)
	Ignore []string
	// Dir is prefixed to the destination path; empty means the working directory
	Dir string
	// Console receives user-facing notices; may be nil
	Console *log.Logger
}

// 📦 Result describes a completed copy
type Result struct {
	Repo        string
	Path        string
	Branch      string
	URL         string
	Destination string
	// FromHistory is true when the file was chosen from a history line
	FromHistory bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.History == nil {
		return nil, errors.Errorf("history store is required")
	}
	if opts.Remote == nil {
		return nil, errors.Errorf("remote client is required")
	}
	if opts.Picker == nil {
		return nil, errors.Errorf("picker is required")
	}
	if opts.Transferer == nil {
		return nil, errors.Errorf("transferer is required")
	}

	ignore, err := newIgnoreFilter(opts.Ignore)
	if err != nil {
		return nil, errors.Errorf("parsing ignore patterns: %w", err)
	}

	return &operator{
		store:    opts.History,
		remote:   opts.Remote,
		picker:   opts.Picker,
		transfer: opts.Transferer,
		ignore:   ignore,
		dir:      opts.Dir,
		console:  opts.Console,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	store    *history.Store
	remote   remote.Client
	picker   picker.Picker
	transfer transfer.Transferer
	ignore   *ignoreFilter
	dir      string
	console  *log.Logger
}

// Copy is implemented in copy.go
