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

package transfer

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📥 Transferer copies the content at url to destination
type Transferer interface {
	Transfer(ctx context.Context, url, destination string) error
}

// 🌐 HTTP downloads with a GET request, streaming the body to disk
type HTTP struct {
	client *http.Client

	// progress is written here when non-nil
	progress io.Writer
}

var _ Transferer = (*HTTP)(nil)

// 🏭 New creates an HTTP transferer. A nil client uses http.DefaultClient;
// a nil progress writer disables the progress bar.
func New(client *http.Client, progress io.Writer) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{
		client:   client,
		progress: progress,
	}
}

// 🔍 Transfer creates destination's parent directories and overwrites destination.
// A partially written file is left in place on failure.
func (h *HTTP) Transfer(ctx context.Context, url, destination string) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("url", url).Str("destination", destination).Msg("downloading file")

	body, size, err := h.open(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(destination)
	if err != nil {
		return errors.Errorf("creating file %s: %w", destination, err)
	}
	defer f.Close()

	var src io.Reader = body
	if h.progress != nil {
		bar := pb.New64(size).
			SetTemplate(pb.Full).
			SetWriter(h.progress).
			Set("prefix", filepath.Base(destination)).
			Start()
		defer bar.Finish()
		src = bar.NewProxyReader(body)
	}

	n, err := io.Copy(f, src)
	if err != nil {
		return errors.Errorf("writing file %s: %w", destination, err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing file %s: %w", destination, err)
	}

	logger.Debug().Int64("bytes", n).Str("destination", destination).Msg("downloaded file")
	return nil
}

func (h *HTTP) open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, errors.Errorf("creating request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, errors.Errorf("downloading file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, resp.ContentLength, nil
}
