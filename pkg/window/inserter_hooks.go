//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package window

import "github.com/corewin/corewin/pkg/selection"

// AcquireInserter registers token as the window's exclusive active
// inserter, asserting (spec.md §4.10, §5, §8.7) that none is already
// active. pkg/inserter passes itself as token and is the only expected
// caller.
func (w *Window) AcquireInserter(token inserterToken) {
	if w.activeInserter != nil {
		panic("window: an IncrementalInserter is already active on this window")
	}
	w.activeInserter = token
}

// ReleaseInserter clears the active inserter slot, asserting it still
// holds token.
func (w *Window) ReleaseInserter(token inserterToken) {
	if w.activeInserter != token {
		panic("window: ReleaseInserter called by a non-owning inserter")
	}
	w.activeInserter = nil
}

// HasActiveInserter reports whether an inserter is currently active.
func (w *Window) HasActiveInserter() bool {
	return w.activeInserter != nil
}

// SelectionSet exposes the live selection slice for pkg/inserter's mode
// reshaping, which mutates each *Selection's First/Last directly rather
// than through the window's own selection-op wrappers (those all
// replace the whole set; the inserter reshapes in place, preserving
// Captures). The returned slice aliases the window's own.
func (w *Window) SelectionSet() []*selection.Selection { return w.selections }

// RefreshDisplay re-runs scroll adjustment and rebuilds the display
// buffer; pkg/inserter calls this after reshaping selections directly,
// since that bypasses every Window method that would normally do so.
func (w *Window) RefreshDisplay() { w.refresh() }
