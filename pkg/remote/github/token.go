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

package github

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// tokenEnvVars are checked in order before asking the gh CLI
var tokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// ghAuthToken asks the gh CLI for its stored credential
var ghAuthToken = func(ctx context.Context) (string, error) {
	path, err := exec.LookPath("gh")
	if err != nil {
		return "", err
	}

	out, err := exec.CommandContext(ctx, path, "auth", "token").Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// 🔑 Token returns a GitHub token and where it came from, or "" when none is available.
// ghcp never stores tokens; it reuses the environment or the gh CLI's credentials.
func Token(ctx context.Context) (token string, source string) {
	for _, name := range tokenEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, name
		}
	}

	tok, err := ghAuthToken(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("gh auth token unavailable")
		return "", ""
	}

	if tok == "" {
		return "", ""
	}

	return tok, "gh auth token"
}
