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

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const builtinPrompt = "ghcp> "

// findFunc matches fuzzyfinder.Find
type findFunc func(slice interface{}, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error)

// 🧭 Builtin is the in-process fuzzy finder used when fzf is unavailable
type Builtin struct {
	find findFunc
}

var _ Picker = (*Builtin)(nil)

func NewBuiltin() *Builtin {
	return &Builtin{find: fuzzyfinder.Find}
}

func (b *Builtin) Pick(ctx context.Context, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}

	idx, err := b.find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPromptString(builtinPrompt),
		fuzzyfinder.WithContext(ctx),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			zerolog.Ctx(ctx).Debug().Msg("builtin picker aborted")
			return "", nil
		}
		return "", errors.Errorf("running builtin picker: %w", err)
	}

	if idx < 0 || idx >= len(candidates) {
		return "", nil
	}

	return candidates[idx], nil
}
