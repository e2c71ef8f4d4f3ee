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
	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/ghcp/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 🙈 ignoreFilter drops files matching any of its patterns
type ignoreFilter struct {
	patterns []string
}

func newIgnoreFilter(patterns []string) (*ignoreFilter, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid pattern %q", p)
		}
	}
	return &ignoreFilter{patterns: patterns}, nil
}

func (f *ignoreFilter) ignored(path string) bool {
	for _, p := range f.patterns {
		// patterns are validated up front, so the error is always nil
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// apply keeps order and returns how many files were dropped
func (f *ignoreFilter) apply(files []tree.File) ([]tree.File, int) {
	if len(f.patterns) == 0 {
		return files, 0
	}

	kept := make([]tree.File, 0, len(files))
	for _, file := range files {
		if f.ignored(file.Path) {
			continue
		}
		kept = append(kept, file)
	}
	return kept, len(files) - len(kept)
}
