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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func setupTestLogger(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func TestLoad(t *testing.T) {
	ctx := setupTestLogger(t)

	tests := []struct {
		name    string
		content *string
		want    []Entry
		wantErr error
	}{
		{
			name: "missing_file_is_empty",
			want: []Entry{},
		},
		{
			name:    "valid_file",
			content: ptr(`{"entries":[{"repo":"alice/tool","file_path":"src/a.rs"},{"repo":"bob/lib","file_path":"go.mod"}]}`),
			want: []Entry{
				{Repo: "alice/tool", FilePath: "src/a.rs"},
				{Repo: "bob/lib", FilePath: "go.mod"},
			},
		},
		{
			name:    "empty_entries",
			content: ptr(`{"entries":[]}`),
			want:    []Entry{},
		},
		{
			name:    "unknown_fields_ignored",
			content: ptr(`{"entries":[{"repo":"alice/tool","file_path":"a","branch":"main"}],"extra":1}`),
			want:    []Entry{{Repo: "alice/tool", FilePath: "a"}},
		},
		{
			name:    "invalid_json",
			content: ptr(`{invalid json}`),
			wantErr: ErrCorruptHistory,
		},
		{
			name:    "empty_file",
			content: ptr(``),
			wantErr: ErrCorruptHistory,
		},
		{
			name:    "missing_entries",
			content: ptr(`{}`),
			wantErr: ErrCorruptHistory,
		},
		{
			name:    "null_entries",
			content: ptr(`{"entries":null}`),
			wantErr: ErrCorruptHistory,
		},
		{
			name:    "entry_missing_file_path",
			content: ptr(`{"entries":[{"repo":"alice/tool"}]}`),
			wantErr: ErrCorruptHistory,
		},
		{
			name:    "wrong_shape",
			content: ptr(`{"entries":{"repo":"alice/tool"}}`),
			wantErr: ErrCorruptHistory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ghcp", "history.json")
			if tt.content != nil {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "creating dir")
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600), "writing history file")
			}

			h, err := NewStore(path).Load(ctx)
			if tt.wantErr != nil {
				require.Error(t, err, "Load should fail")
				assert.True(t, errors.Is(err, tt.wantErr), "error should be %v, got %v", tt.wantErr, err)
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, tt.want, h.Entries, "entries should match")
		})
	}
}

func TestLoadUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permissions are not enforced")
	}

	ctx := setupTestLogger(t)
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries":[]}`), 0o000), "writing history file")

	_, err := NewStore(path).Load(ctx)
	require.Error(t, err, "Load should fail")
	assert.True(t, errors.Is(err, ErrStorage), "error should be a storage error, got %v", err)
	assert.False(t, errors.Is(err, ErrCorruptHistory), "error should not be a corruption error")
}

func TestLoadDirectoryIsStorageError(t *testing.T) {
	ctx := setupTestLogger(t)
	path := t.TempDir()

	_, err := NewStore(path).Load(ctx)
	require.Error(t, err, "Load should fail")
	assert.True(t, errors.Is(err, ErrStorage), "error should be a storage error, got %v", err)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := setupTestLogger(t)

	t.Run("round_trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "ghcp", "history.json")
		store := NewStore(path)

		h := &History{Entries: []Entry{
			{Repo: "alice/tool", FilePath: "src/a.rs"},
			{Repo: "bob/lib", FilePath: "<weird & path>.md"},
			{Repo: "carol/app", FilePath: "main.go"},
		}}

		require.NoError(t, store.Save(ctx, h), "Save should create parent dirs")

		loaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should succeed")
		assert.Equal(t, h.Entries, loaded.Entries, "entries should round trip in order")
	})

	t.Run("human_readable_format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		store := NewStore(path)

		h := New()
		h.Promote("alice/tool", "src/a.rs")
		require.NoError(t, store.Save(ctx, h), "Save should succeed")

		data, err := os.ReadFile(path)
		require.NoError(t, err, "reading file")
		assert.Equal(t, "{\n  \"entries\": [\n    {\n      \"repo\": \"alice/tool\",\n      \"file_path\": \"src/a.rs\"\n    }\n  ]\n}\n", string(data))
	})

	t.Run("empty_history_writes_empty_array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		store := NewStore(path)

		require.NoError(t, store.Save(ctx, &History{}), "Save should succeed")

		data, err := os.ReadFile(path)
		require.NoError(t, err, "reading file")
		assert.JSONEq(t, `{"entries":[]}`, string(data))
	})

	t.Run("no_temp_files_left", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "history.json"))

		for i := 0; i < 3; i++ {
			require.NoError(t, store.Add(ctx, New(), "alice/tool", fmt.Sprintf("f%d", i)), "Add should succeed")
		}

		files, err := os.ReadDir(dir)
		require.NoError(t, err, "reading dir")
		require.Len(t, files, 1, "only the history file should remain")
		assert.Equal(t, "history.json", files[0].Name())
	})

	t.Run("save_to_unwritable_location", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600), "writing blocker file")

		err := NewStore(filepath.Join(blocker, "history.json")).Save(ctx, New())
		require.Error(t, err, "Save under a regular file should fail")
		assert.True(t, errors.Is(err, ErrStorage), "error should be a storage error, got %v", err)
	})
}

func TestAdd(t *testing.T) {
	ctx := setupTestLogger(t)

	t.Run("persists_synchronously", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		store := NewStore(path)

		h, err := store.Load(ctx)
		require.NoError(t, err, "Load should succeed")

		require.NoError(t, store.Add(ctx, h, "alice/tool", "src/a.rs"), "Add should succeed")
		require.NoError(t, store.Add(ctx, h, "bob/lib", "go.mod"), "Add should succeed")
		require.NoError(t, store.Add(ctx, h, "alice/tool", "src/a.rs"), "Add should succeed")

		reloaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should succeed")
		assert.Equal(t, []Entry{
			{Repo: "alice/tool", FilePath: "src/a.rs"},
			{Repo: "bob/lib", FilePath: "go.mod"},
		}, reloaded.Entries, "file should reflect the last Add")
		assert.Equal(t, h.Entries, reloaded.Entries, "memory and disk should agree")
	})

	t.Run("caps_on_disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		store := NewStore(path)
		h := New()

		for i := 0; i < MaxEntries+5; i++ {
			require.NoError(t, store.Add(ctx, h, "alice/tool", fmt.Sprintf("f%02d", i)), "Add should succeed")
		}

		reloaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should succeed")
		require.Len(t, reloaded.Entries, MaxEntries)
		assert.Equal(t, fmt.Sprintf("f%02d", MaxEntries+4), reloaded.Entries[0].FilePath)
		assert.Equal(t, "f05", reloaded.Entries[MaxEntries-1].FilePath)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Run("xdg_config_home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)

		path, err := DefaultPath()
		require.NoError(t, err, "DefaultPath should succeed")
		assert.Equal(t, filepath.Join(dir, "ghcp", "history.json"), path)
	})

	t.Run("home_fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		path, err := DefaultPath()
		require.NoError(t, err, "DefaultPath should succeed")
		assert.Equal(t, filepath.Join(home, ".config", "ghcp", "history.json"), path)
	})
}

func ptr(s string) *string {
	return &s
}
