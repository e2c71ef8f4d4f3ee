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

// Package config loads the optional ghcp user configuration.
//
// 🎯 Purpose:
// - Finds the config file next to the history file
// - Parses HCL, YAML or JSON through a parser registry
// - Validates picker choice and ignore globs
//
// 🔄 Flow:
//  1. $GHCP_CONFIG, or the first of config.hcl, config.yaml, config.yml, config.json
//     in the ghcp config directory
//  2. The parser registered for the file extension decodes on top of Default
//  3. Validate fills in defaults and rejects bad values
//
// A missing file is not an error; Default is used.
//
// 🔍 Example:
//
//	# ~/.config/ghcp/config.hcl
//	picker   = "fzf"
//	fzf_args = ["--height", "40%", "--reverse"]
//	ignore   = ["**/*.lock", "vendor/**"]
//	progress = env.TERM != "dumb"
package config
