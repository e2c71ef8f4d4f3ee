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

package picker

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// fzf exit codes that mean "nothing chosen"
const (
	fzfNoMatch     = 1
	fzfInterrupted = 130
)

// 🔍 Fzf runs the fzf binary with the candidates on stdin
type Fzf struct {
	path   string
	args   []string
	stderr io.Writer
}

var _ Picker = (*Fzf)(nil)

func NewFzf(path string, args []string) *Fzf {
	return &Fzf{
		path:   path,
		args:   args,
		stderr: os.Stderr,
	}
}

func (f *Fzf) Pick(ctx context.Context, candidates []string) (string, error) {
	logger := zerolog.Ctx(ctx)

	var in bytes.Buffer
	for _, c := range candidates {
		in.WriteString(c)
		in.WriteByte('\n')
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, f.args...)
	cmd.Stdin = &in
	cmd.Stdout = &out
	cmd.Stderr = f.stderr

	logger.Debug().Str("path", f.path).Strs("args", f.args).Int("candidates", len(candidates)).Msg("running fzf")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case fzfNoMatch, fzfInterrupted:
				logger.Debug().Int("exit_code", exitErr.ExitCode()).Msg("fzf returned no selection")
				return "", nil
			}
		}
		return "", errors.Errorf("running fzf: %w", err)
	}

	return lastLine(out.String()), nil
}

// lastLine keeps only the final line of fzf's output. --print-query puts the query
// first and --multi prints one line per pick; either way the last line is a candidate.
func lastLine(out string) string {
	out = strings.TrimRight(out, "\r\n")
	if i := strings.LastIndexByte(out, '\n'); i >= 0 {
		out = out[i+1:]
	}
	return strings.TrimRight(out, "\r")
}
