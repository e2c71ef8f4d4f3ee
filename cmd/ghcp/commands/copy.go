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
	"github.com/spf13/cobra"
	"github.com/walteh/ghcp/cmd/ghcp/opts"
	"gitlab.com/tozd/go/errors"
)

// NewRootCmd creates the ghcp command. Run without arguments it copies one file.
func NewRootCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ghcp",
		Short: "Copy a single file from one of your GitHub repositories",
		Long: `ghcp lists your GitHub repositories together with recently copied files,
lets you pick one with a fuzzy finder, and downloads the chosen file into the
current directory at the same relative path.

Recently copied files are remembered in ~/.config/ghcp/history.json.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := opts.NewOperator(ctx)
			if err != nil {
				return errors.Errorf("setting up: %w", err)
			}

			res, err := op.Copy(ctx)
			if err != nil {
				return err
			}

			opts.Console.Successf("File %s copied successfully.", res.Path)
			return nil
		},
	}

	cmd.AddCommand(
		NewHistoryCmd(opts),
		NewVersionCmd(),
	)

	return cmd
}
