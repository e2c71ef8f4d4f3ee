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

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/ghcp/pkg/history"
	"gitlab.com/tozd/go/errors"
)

// EnvPath overrides where the config file is looked up
const EnvPath = "GHCP_CONFIG"

// candidate file names, first found wins
var fileNames = []string{"config.hcl", "config.yaml", "config.yml", "config.json"}

// Picker values
const (
	PickerAuto    = "auto"
	PickerFzf     = "fzf"
	PickerBuiltin = "builtin"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, on top of Default
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the user configuration
type Config struct {
	Picker   string   `json:"picker" yaml:"picker"`
	FzfArgs  []string `json:"fzf_args" yaml:"fzf_args"`
	Ignore   []string `json:"ignore" yaml:"ignore"`
	Progress bool     `json:"progress" yaml:"progress"`
	Debug    bool     `json:"debug" yaml:"debug"`

	// location is the file this config was read from, empty for defaults
	location string
}

// 🏭 Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Picker:   PickerAuto,
		Progress: true,
	}
}

// Location returns the file the config was read from, or "" for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	switch cfg.Picker {
	case "":
		cfg.Picker = PickerAuto
	case PickerAuto, PickerFzf, PickerBuiltin:
	default:
		return errors.Errorf("picker must be one of %s, %s, %s: got %q", PickerAuto, PickerFzf, PickerBuiltin, cfg.Picker)
	}

	for _, p := range cfg.Ignore {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("invalid ignore pattern %q", p)
		}
	}

	return nil
}

// 🎯 Load loads the configuration from a file. A missing file yields Default.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("config file not found, using defaults")
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	return cfg, nil
}

// 🔍 Find returns the config file to use: $GHCP_CONFIG when set, otherwise the
// first existing config.{hcl,yaml,yml,json} in the ghcp config directory.
// It returns "" when there is none.
func Find(ctx context.Context) (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}

	dir, err := history.ConfigDir()
	if err != nil {
		return "", errors.Errorf("finding config directory: %w", err)
	}

	for _, name := range fileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file found")
	return "", nil
}

// 🎯 LoadDefault finds and loads the user's configuration
func LoadDefault(ctx context.Context) (*Config, error) {
	path, err := Find(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(ctx, path)
}
