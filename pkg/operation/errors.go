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

package operation

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrSelectionMismatch means the picker returned a line that was never offered
var ErrSelectionMismatch = errors.Base("selection does not match any candidate")

// Abort reasons
const (
	ReasonNoSelection    = "no selection"
	ReasonStaleHistory   = "stale history entry"
	ReasonEmptyRepo      = "empty repository"
	ReasonNoFileSelected = "no file selected"
	ReasonDownloadFailed = "download failed"
)

// 🛑 AbortedError ends a run early without touching history
type AbortedError struct {
	Reason string
	// State is where the run stopped
	State State
	Err   error
}

func (e *AbortedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aborted: %s: %v", e.Reason, e.Err)
	}
	return "aborted: " + e.Reason
}

func (e *AbortedError) Unwrap() error {
	return e.Err
}

// IsAborted reports whether err is an *AbortedError, and which one
func IsAborted(err error) (*AbortedError, bool) {
	var aborted *AbortedError
	if errors.As(err, &aborted) {
		return aborted, true
	}
	return nil, false
}
