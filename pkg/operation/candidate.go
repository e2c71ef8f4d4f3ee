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
	"github.com/walteh/ghcp/pkg/history"
)

// HistoryTag marks history lines in the first picker
const HistoryTag = "[History] "

// CandidateKind tells history entries and repositories apart
type CandidateKind int

const (
	KindHistory CandidateKind = iota
	KindRepository
)

// 🏷️ Candidate is one line of the first picker
type Candidate struct {
	Kind CandidateKind
	// Entry is set for KindHistory
	Entry history.Entry
	// Repo is set for KindRepository
	Repo    string
	Display string
}

// BuildCandidates lists history entries in stored order, then repositories in the
// order given. Nothing is sorted or deduplicated across the two groups.
func BuildCandidates(h *history.History, repos []string) []Candidate {
	candidates := make([]Candidate, 0, h.Len()+len(repos))
	for _, e := range h.Entries {
		candidates = append(candidates, Candidate{
			Kind:    KindHistory,
			Entry:   e,
			Display: HistoryTag + e.String(),
		})
	}
	for _, r := range repos {
		candidates = append(candidates, Candidate{
			Kind:    KindRepository,
			Repo:    r,
			Display: r,
		})
	}
	return candidates
}

// candidateSet maps display text back to its candidate
type candidateSet struct {
	lines  []string
	lookup map[string]Candidate
}

func newCandidateSet(candidates []Candidate) *candidateSet {
	s := &candidateSet{
		lines:  make([]string, 0, len(candidates)),
		lookup: make(map[string]Candidate, len(candidates)),
	}
	for _, c := range candidates {
		s.lines = append(s.lines, c.Display)
		if _, ok := s.lookup[c.Display]; !ok {
			s.lookup[c.Display] = c
		}
	}
	return s
}

func (s *candidateSet) get(line string) (Candidate, bool) {
	c, ok := s.lookup[line]
	return c, ok
}
