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

// Package tree turns GitHub Git Trees API responses into downloadable files.
package tree

import (
	"encoding/json"

	"github.com/google/go-github/v60/github"
	"gitlab.com/tozd/go/errors"
)

// RawBaseURL is the host every download URL is built on
const RawBaseURL = "https://raw.githubusercontent.com/"

// ErrMalformedResponse is returned when a tree payload does not have the expected shape
var ErrMalformedResponse = errors.Base("malformed tree response")

// 📄 File is a blob in a repository together with its raw download URL
type File struct {
	Path string
	URL  string
}

// 🔗 RawURL builds the raw content URL for path in repo at branch
func RawURL(repo, branch, path string) string {
	return RawBaseURL + repo + "/" + branch + "/" + path
}

func decode(raw []byte) (*github.Tree, error) {
	var t github.Tree
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, errors.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if t.Entries == nil {
		return nil, errors.Errorf("%w: missing tree array", ErrMalformedResponse)
	}

	return &t, nil
}

// 📋 Listing is one parsed tree response
type Listing struct {
	Files []File
	// Truncated is set when GitHub cut the tree short
	Truncated bool
}

// 🌳 Parse decodes a recursive tree response once and keeps one File per blob, in input order.
// Trees, submodules and other node kinds are dropped.
func Parse(raw []byte, repo, branch string) (*Listing, error) {
	t, err := decode(raw)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(t.Entries))
	for i, entry := range t.Entries {
		if entry == nil {
			return nil, errors.Errorf("%w: entry %d is null", ErrMalformedResponse, i)
		}

		if entry.GetType() != "blob" {
			continue
		}

		path := entry.GetPath()
		if path == "" {
			return nil, errors.Errorf("%w: blob entry %d has no path", ErrMalformedResponse, i)
		}

		files = append(files, File{
			Path: path,
			URL:  RawURL(repo, branch, path),
		})
	}

	return &Listing{Files: files, Truncated: t.GetTruncated()}, nil
}
