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
	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/corebuf"
	"github.com/corewin/corewin/pkg/selection"
)

// MoveCursor implements spec.md §4.6. With append == false, every
// selection collapses to one caret at the primary cursor's position
// plus offset. With append == true, only each selection's cursor moves
// by offset; its anchor stays.
func (w *Window) MoveCursor(offset coord.Buffer, appendFlag bool) {
	if !appendFlag {
		pos := w.buf.LineAndColumnAt(w.primary().Last).Add(offset)
		w.MoveCursorTo(w.buf.IteratorAt(pos))
		return
	}
	for _, sel := range w.selections {
		pos := w.buf.LineAndColumnAt(sel.Last).Add(offset)
		next := w.buf.IteratorAt(pos)
		sel.Last.Release()
		sel.Last = next
	}
	w.refresh()
}

// MoveCursorTo collapses every selection to the caret [it, it].
func (w *Window) MoveCursorTo(it *corebuf.Mark) {
	releaseSelections(w.selections)
	w.selections = []*selection.Selection{selection.New(it)}
	w.refresh()
}

// CursorDisplayPosition returns the primary selection's cursor in
// display coordinates, for renderers that need to place the terminal
// cursor without reaching into window internals.
func (w *Window) CursorDisplayPosition() coord.Display {
	return w.display.LineAndColumnAt(w.buf, w.position, w.primary().Last)
}

// scrollToKeepCursorVisible implements spec.md §4.7 against the
// window's *current* display buffer, before any rebuild.
func (w *Window) scrollToKeepCursorVisible() {
	if w.display == nil {
		return
	}
	cursor := w.display.LineAndColumnAt(w.buf, w.position, w.primary().Last)
	switch {
	case cursor.Line < 0:
		w.position.Line = max(w.position.Line+cursor.Line, 0)
	case cursor.Line >= w.dimensions.Line:
		w.position.Line += cursor.Line - (w.dimensions.Line - 1)
	}
	switch {
	case cursor.Column < 0:
		w.position.Column = max(w.position.Column+cursor.Column, 0)
	case cursor.Column >= w.dimensions.Column:
		w.position.Column += cursor.Column - (w.dimensions.Column - 1)
	}
}
