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

package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		name  string
		start []Entry
		repo  string
		path  string
		want  []Entry
	}{
		{
			name: "empty_history",
			repo: "alice/tool",
			path: "src/a.rs",
			want: []Entry{{Repo: "alice/tool", FilePath: "src/a.rs"}},
		},
		{
			name: "new_entry_goes_first",
			start: []Entry{
				{Repo: "alice/tool", FilePath: "README.md"},
			},
			repo: "bob/lib",
			path: "go.mod",
			want: []Entry{
				{Repo: "bob/lib", FilePath: "go.mod"},
				{Repo: "alice/tool", FilePath: "README.md"},
			},
		},
		{
			name: "duplicate_moves_to_front",
			start: []Entry{
				{Repo: "bob/lib", FilePath: "go.mod"},
				{Repo: "alice/tool", FilePath: "src/a.rs"},
				{Repo: "carol/app", FilePath: "main.go"},
			},
			repo: "alice/tool",
			path: "src/a.rs",
			want: []Entry{
				{Repo: "alice/tool", FilePath: "src/a.rs"},
				{Repo: "bob/lib", FilePath: "go.mod"},
				{Repo: "carol/app", FilePath: "main.go"},
			},
		},
		{
			name: "same_path_other_repo_is_distinct",
			start: []Entry{
				{Repo: "alice/tool", FilePath: "Makefile"},
			},
			repo: "bob/lib",
			path: "Makefile",
			want: []Entry{
				{Repo: "bob/lib", FilePath: "Makefile"},
				{Repo: "alice/tool", FilePath: "Makefile"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &History{Entries: tt.start}
			h.Promote(tt.repo, tt.path)
			assert.Equal(t, tt.want, h.Entries, "entries should match")
		})
	}
}

func TestPromoteTwiceKeepsPositionAndLength(t *testing.T) {
	h := New()
	h.Promote("bob/lib", "go.mod")
	h.Promote("carol/app", "main.go")

	h.Promote("alice/tool", "src/a.rs")
	lenAfterFirst := h.Len()

	h.Promote("alice/tool", "src/a.rs")

	require.Equal(t, lenAfterFirst, h.Len(), "length should not change on re-add")
	assert.Equal(t, Entry{Repo: "alice/tool", FilePath: "src/a.rs"}, h.Entries[0], "re-added entry should be first")
}

func TestPromoteCapsAtMaxEntries(t *testing.T) {
	h := New()
	total := MaxEntries + 17
	for i := 0; i < total; i++ {
		h.Promote("alice/tool", fmt.Sprintf("file-%03d", i))
	}

	require.Equal(t, MaxEntries, h.Len(), "history should be capped")
	for i, e := range h.Entries {
		want := fmt.Sprintf("file-%03d", total-1-i)
		assert.Equal(t, want, e.FilePath, "entry %d should be the %d-th most recent", i, i)
	}
}

func TestLinesAndFind(t *testing.T) {
	h := &History{Entries: []Entry{
		{Repo: "alice/tool", FilePath: "src/a.rs"},
		{Repo: "bob/lib", FilePath: "docs/guide: part 1.md"},
	}}

	assert.Equal(t, []string{
		"alice/tool: src/a.rs",
		"bob/lib: docs/guide: part 1.md",
	}, h.Lines(), "lines should keep stored order")

	for _, line := range h.Lines() {
		e, ok := h.Find(line)
		require.True(t, ok, "rendered line %q should be found", line)
		assert.Equal(t, line, e.String(), "found entry should render to the same line")
	}

	_, ok := h.Find("alice/tool: src/b.rs")
	assert.False(t, ok, "unknown line should not be found")

	_, ok = h.Find("[History] alice/tool: src/a.rs")
	assert.False(t, ok, "tagged line should not match")
}
