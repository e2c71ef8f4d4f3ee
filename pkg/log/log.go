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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	indexWidth = 3 // width of the history line number
)

// 🎯 Logger writes user-facing console lines and mirrors them into zerolog.
// Results go to out, notices go to errOut.
type Logger struct {
	zlog   zerolog.Logger
	out    io.Writer
	errOut io.Writer
	mu     sync.Mutex
}

// 🏭 New creates a new logger
func New(out, errOut io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:   zlog,
		out:    out,
		errOut: errOut,
		mu:     sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// printer returns a pterm prefix printer writing to errOut
func (l *Logger) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	return base.WithPrefix(pterm.Prefix{Text: prefix}).WithWriter(l.errOut)
}

// 📝 formatHistoryLine formats one history entry for display
func formatHistoryLine(index int, line string) string {
	return fmt.Sprintf("%s  %s",
		color.New(color.Faint).Sprintf("%*d", indexWidth, index),
		line)
}

// 📜 HistoryLine prints a numbered history entry, 1 being the most recent
func (l *Logger) HistoryLine(index int, line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.out, formatHistoryLine(index, line))
	l.zlog.Debug().Int("index", index).Str("entry", line).Msg("history entry")
}

// 📦 Repository announces the repository and branch being used
func (l *Logger) Repository(repo, branch string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.errOut, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(repo),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(branch))

	l.zlog.Debug().
		Str("repo", repo).
		Str("branch", branch).
		Msg("using repository")
}

// 📝 Header prints a section title on errOut
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ghcpText := color.New(color.Bold, color.FgCyan).Sprint("ghcp")
	fmt.Fprintf(l.errOut, "%s %s\n", ghcpText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Success prints msg on its own line to out, without a prefix, so it can be scripted against
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, color.New(color.FgGreen).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printer(pterm.Warning, "⚠️").Println(msg)
	l.zlog.Debug().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printer(pterm.Error, "❌").Println(msg)
	l.zlog.Debug().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printer(pterm.Info, "ℹ️").Println(msg)
	l.zlog.Debug().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
