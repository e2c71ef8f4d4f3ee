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

// Package history keeps the bounded, most-recently-used log of files copied by ghcp.
package history

import "fmt"

// MaxEntries is the maximum number of entries kept in the history.
const MaxEntries = 50

// 📄 Entry identifies a file previously copied from a repository
type Entry struct {
	Repo     string `json:"repo"`
	FilePath string `json:"file_path"`
}

// String renders the entry the way it is shown to the user
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Repo, e.FilePath)
}

// 📚 History is an ordered list of entries, most recent first
type History struct {
	Entries []Entry `json:"entries"`
}

// 🏭 New returns an empty history
func New() *History {
	return &History{Entries: []Entry{}}
}

// 📝 Promote moves (repo, filePath) to the front, dropping any equal entry and
// everything past MaxEntries. It does not persist; see Store.Add.
func (h *History) Promote(repo, filePath string) {
	entry := Entry{Repo: repo, FilePath: filePath}

	entries := make([]Entry, 0, len(h.Entries)+1)
	entries = append(entries, entry)
	for _, e := range h.Entries {
		if e == entry {
			continue
		}
		entries = append(entries, e)
	}

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	h.Entries = entries
}

// 🖼️ Lines renders every entry as "repo: path" in stored order
func (h *History) Lines() []string {
	lines := make([]string, 0, len(h.Entries))
	for _, e := range h.Entries {
		lines = append(lines, e.String())
	}
	return lines
}

// 🔍 Find returns the entry whose rendered line equals line exactly
func (h *History) Find(line string) (Entry, bool) {
	for _, e := range h.Entries {
		if e.String() == line {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.Entries)
}
