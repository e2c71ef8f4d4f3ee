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
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	appDir   = "ghcp"
	fileName = "history.json"
)

var (
	// ErrStorage is returned when the history file cannot be read or written
	ErrStorage = errors.Base("history storage error")

	// ErrCorruptHistory is returned when the history file exists but cannot be parsed
	ErrCorruptHistory = errors.Base("corrupt history file")
)

// 💾 Store reads and writes a History at a fixed path
type Store struct {
	path string
}

// 🏭 NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// 🏠 ConfigDir returns the per-user ghcp configuration directory
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".config", appDir), nil
}

// 🎯 DefaultPath returns the per-user history file location
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// storedHistory mirrors History with pointers so missing fields are detectable
type storedHistory struct {
	Entries *[]storedEntry `json:"entries"`
}

type storedEntry struct {
	Repo     *string `json:"repo"`
	FilePath *string `json:"file_path"`
}

// 📥 Load reads the history. A missing file yields an empty history.
func (s *Store) Load(ctx context.Context) (*History, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", s.path).Msg("loading history")

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("path", s.path).Msg("no history file, starting empty")
		return New(), nil
	}
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrStorage, err)
	}

	h, err := decode(data)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrCorruptHistory, err)
	}

	logger.Debug().Int("entries", h.Len()).Msg("history loaded")
	return h, nil
}

func decode(data []byte) (*History, error) {
	var raw storedHistory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Errorf("parsing history file: %w", err)
	}

	if raw.Entries == nil {
		return nil, errors.New("missing entries")
	}

	h := &History{Entries: make([]Entry, 0, len(*raw.Entries))}
	for i, e := range *raw.Entries {
		if e.Repo == nil || e.FilePath == nil {
			return nil, errors.Errorf("entry %d: missing repo or file_path", i)
		}
		h.Entries = append(h.Entries, Entry{Repo: *e.Repo, FilePath: *e.FilePath})
	}

	return h, nil
}

// 💾 Save writes the history atomically, creating parent directories first
func (s *Store) Save(ctx context.Context, h *History) error {
	zerolog.Ctx(ctx).Debug().Str("path", s.path).Int("entries", h.Len()).Msg("saving history")

	entries := h.Entries
	if entries == nil {
		entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(History{Entries: entries}); err != nil {
		return errors.Errorf("%w: %w", ErrStorage, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Errorf("%w: %w", ErrStorage, err)
	}

	if err := writeFileAtomic(s.path, buf.Bytes()); err != nil {
		return errors.Errorf("%w: %w", ErrStorage, err)
	}

	return nil
}

// 📝 Add promotes (repo, filePath) to the front of h and persists it before returning
func (s *Store) Add(ctx context.Context, h *History, repo, filePath string) error {
	h.Promote(repo, filePath)

	if err := s.Save(ctx, h); err != nil {
		return errors.Errorf("saving history: %w", err)
	}

	return nil
}

// writeFileAtomic writes to a temp file in the target directory and renames it into place
func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("syncing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
