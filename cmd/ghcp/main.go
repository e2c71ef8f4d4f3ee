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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/walteh/ghcp/cmd/ghcp/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes ghcp and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx = setupLogging(ctx, stderr)

	ctx, ro, err := newRootOpts(ctx, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ghcp: %v\n", err)
		return 1
	}

	rootCmd := commands.NewRootCmd(ro)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ro.Console.Error(err.Error())
		return 1
	}

	return 0
}
