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

package picker

import (
	"context"
	"os/exec"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Kind selects a Picker implementation
type Kind string

const (
	KindAuto    Kind = "auto"
	KindFzf     Kind = "fzf"
	KindBuiltin Kind = "builtin"
)

var ErrUnknownKind = errors.Base("unknown picker")

// 🎯 Picker asks the user to choose one line.
// An aborted or empty choice is reported as "" with a nil error.
type Picker interface {
	Pick(ctx context.Context, candidates []string) (string, error)
}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// 🏭 New returns the picker for kind. KindAuto uses fzf when it is on PATH.
// args are only used by the fzf picker.
func New(ctx context.Context, kind Kind, args []string) (Picker, error) {
	logger := zerolog.Ctx(ctx)

	switch kind {
	case KindAuto, "":
		path, err := lookPath("fzf")
		if err != nil {
			logger.Debug().Msg("fzf not found on PATH, using builtin picker")
			return NewBuiltin(), nil
		}
		logger.Debug().Str("path", path).Msg("using fzf picker")
		return NewFzf(path, args), nil
	case KindFzf:
		path, err := lookPath("fzf")
		if err != nil {
			return nil, errors.Errorf("finding fzf: %w", err)
		}
		return NewFzf(path, args), nil
	case KindBuiltin:
		return NewBuiltin(), nil
	default:
		return nil, errors.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
