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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tomlParser claims .toml files and returns a fixed picker choice
type tomlParser struct{}

func (tomlParser) CanParse(filename string) bool {
	return filepath.Ext(filename) == ".toml"
}

func (tomlParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	cfg := Default()
	cfg.Picker = PickerBuiltin
	return cfg, nil
}

// 🧪 TestParserRegistration checks that a registered parser is picked by extension and used by Load
func TestParserRegistration(t *testing.T) {
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	assert.Nil(t, GetParser("config.toml"), "toml should not be supported out of the box")

	Register(tomlParser{})
	assert.Len(t, parsers, len(originalParsers)+1)
	assert.IsType(t, tomlParser{}, GetParser("config.toml"))
	assert.IsType(t, &YAMLParser{}, GetParser("config.yaml"), "built-in parsers should still win for their files")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`picker = "builtin"`), 0o644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, PickerBuiltin, cfg.Picker)
	assert.Equal(t, path, cfg.Location())
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: "config.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: "config.yml", want: &YAMLParser{}},
		{name: "hcl_file", filename: "config.hcl", want: &HCLParser{}},
		{name: "json_file", filename: "/home/alice/.config/ghcp/config.json", want: &JSONParser{}},
		{name: "unknown_extension", filename: "config.txt", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should return nil for unknown extension")
				return
			}
			require.NotNil(t, got, "should return a parser")
			assert.IsType(t, tt.want, got, "should return correct parser type")
		})
	}
}
