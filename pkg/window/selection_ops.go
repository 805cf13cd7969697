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

import (
	"github.com/corewin/corewin/pkg/corebuf"
	"github.com/corewin/corewin/pkg/selection"
)

// Selector produces a replacement selection from a single iterator
// position, the input type of Select (spec.md §4.5, §6).
type Selector func(it *corebuf.Mark) *selection.Selection

// MultiSelector expands one selection into zero or more, the input type
// of MultiSelect.
type MultiSelector func(sel *selection.Selection) []*selection.Selection

// ClearSelections collapses every selection to a single caret at the
// primary selection's cursor.
func (w *Window) ClearSelections() {
	caret := w.primary().Last.Clone()
	releaseSelections(w.selections)
	w.selections = []*selection.Selection{selection.New(caret)}
	w.refresh()
}

// Select replaces or extends the selection set (spec.md §4.5). With
// append == false, the primary selection's cursor is fed to selector
// and its single result becomes the whole selection set. With
// append == true, every selection is independently extended in place
// via its merge rule.
func (w *Window) Select(selector Selector, appendFlag bool) {
	if !appendFlag {
		next := selector(w.primary().Last.Clone())
		releaseSelections(w.selections)
		w.selections = []*selection.Selection{next}
		w.refresh()
		return
	}
	for _, sel := range w.selections {
		merged := selector(sel.Last.Clone())
		sel.MergeWith(merged)
	}
	w.refresh()
}

// MultiSelect replaces the selection set with the concatenation of
// selector(sel) over every current selection, in order. The result must
// be non-empty (spec.md §4.5, §7): an empty expansion is a caller error,
// not silently tolerated as an empty window.
func (w *Window) MultiSelect(selector MultiSelector) {
	var next []*selection.Selection
	for _, sel := range w.selections {
		next = append(next, selector(sel)...)
	}
	if len(next) == 0 {
		panic("window: MultiSelect selector produced an empty selection set")
	}
	w.selections = next
	w.refresh()
}

// SelectionContent returns the text covered by the primary selection.
func (w *Window) SelectionContent() string {
	sel := w.primary()
	return w.buf.Slice(sel.Begin(), sel.End())
}
