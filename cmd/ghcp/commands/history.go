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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/ghcp/cmd/ghcp/opts"
	"gitlab.com/tozd/go/errors"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently copied files",
		Long: `Show recently copied files, most recent first.

These are the [History] lines offered when ghcp runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.History.Load(cmd.Context())
			if err != nil {
				return errors.Errorf("loading history: %w", err)
			}

			if h.Len() == 0 {
				opts.Console.Info("no files copied yet")
				return nil
			}

			opts.Console.Header(fmt.Sprintf("%d recent files", h.Len()))
			for i, line := range h.Lines() {
				opts.Console.HistoryLine(i+1, line)
			}
			return nil
		},
	}

	return cmd
}
