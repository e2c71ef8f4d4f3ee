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
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/ghcp/cmd/ghcp/opts"
	"github.com/walteh/ghcp/pkg/config"
	"github.com/walteh/ghcp/pkg/history"
	"github.com/walteh/ghcp/pkg/log"
	"github.com/walteh/ghcp/pkg/operation"
	"github.com/walteh/ghcp/pkg/picker"
	ghremote "github.com/walteh/ghcp/pkg/remote/github"
	"github.com/walteh/ghcp/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// envDebug turns on debug logging regardless of the config file
const envDebug = "GHCP_DEBUG"

// newRootOpts loads the configuration and wires the pipeline's dependencies
func newRootOpts(ctx context.Context, stdout, stderr io.Writer) (context.Context, *opts.RootOpts, error) {
	cfg, err := config.LoadDefault(ctx)
	if err != nil {
		return ctx, nil, errors.Errorf("loading config: %w", err)
	}

	if cfg.Debug {
		ctx = zerolog.Ctx(ctx).Level(zerolog.DebugLevel).WithContext(ctx)
	}
	if loc := cfg.Location(); loc != "" {
		zerolog.Ctx(ctx).Debug().Str("path", loc).Msg("loaded config file")
	}

	historyPath, err := history.DefaultPath()
	if err != nil {
		return ctx, nil, errors.Errorf("finding history file: %w", err)
	}

	console := log.New(stdout, stderr, *zerolog.Ctx(ctx))
	ctx = log.NewContext(ctx, console)

	ro := &opts.RootOpts{
		Config:  cfg,
		Console: console,
		History: history.NewStore(historyPath),
	}

	ro.NewOperator = func(ctx context.Context) (operation.Operator, error) {
		httpClient := ghremote.HTTPClient(ctx)

		p, err := picker.New(ctx, picker.Kind(cfg.Picker), cfg.FzfArgs)
		if err != nil {
			return nil, errors.Errorf("creating picker: %w", err)
		}

		var progress io.Writer
		if cfg.Progress {
			progress = stderr
		}

		return operation.New(operation.Options{
			History:    ro.History,
			Remote:     ghremote.NewWithHTTPClient(httpClient),
			Picker:     p,
			Transferer: transfer.New(httpClient, progress),
			Ignore:     cfg.Ignore,
			Console:    log.FromContext(ctx),
		})
	}

	return ctx, ro, nil
}

// setupLogging configures zerolog for stderr
func setupLogging(ctx context.Context, stderr io.Writer) context.Context {
	level := zerolog.InfoLevel
	if debugFromEnv() {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

func debugFromEnv() bool {
	switch os.Getenv(envDebug) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}
