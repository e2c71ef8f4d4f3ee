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

/*
Package operation drives a single ghcp run.

🔄 Flow:
1. Load history
2. List the user's repositories
3. First pick: history lines, then repositories
4. History line: re-resolve the default branch and build the raw URL
5. Repository: fetch the tree, pick a file
6. Download, then record the file in history

🚦 States:

	idle → history_loaded → candidates_built → first_selection_made
	  → history_branch ─────────────────────────────┐
	  → repo_branch → file_listed → second_selection_made
	                                                 ↓
	                            transferred → history_updated → done

Any step may end in aborted. History is only written on the way to done.

🤝 Interfaces:
- remote.Client: repositories, default branches, trees
- picker.Picker: interactive choice
- transfer.Transferer: download to disk

🔍 Example:

	op, err := operation.New(operation.Options{
		History:    history.NewStore(path),
		Remote:     client,
		Picker:     p,
		Transferer: transfer.New(nil, os.Stderr),
	})
	res, err := op.Copy(ctx)
*/
package operation
