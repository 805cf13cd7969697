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

// Insert splices s at every selection's begin, in stored order, inside
// a single undo group (spec.md §4.4). Selections are not explicitly
// repositioned here: the Buffer's iterator-stability contract is what
// keeps them attached to the right text.
func (w *Window) Insert(s string) {
	w.buf.BeginUndoGroup()
	defer w.buf.EndUndoGroup()
	w.InsertNoUndo(s)
}

// InsertNoUndo is Insert without its own undo group, for callers (the
// incremental inserter) that already hold one open.
func (w *Window) InsertNoUndo(s string) {
	for _, sel := range w.selections {
		w.buf.Insert(sel.Begin(), s)
	}
	w.refresh()
}

// Append splices s at every selection's end.
func (w *Window) Append(s string) {
	w.buf.BeginUndoGroup()
	defer w.buf.EndUndoGroup()
	w.AppendNoUndo(s)
}

// AppendNoUndo is Append without its own undo group.
func (w *Window) AppendNoUndo(s string) {
	for _, sel := range w.selections {
		w.buf.Insert(sel.End(), s)
	}
	w.refresh()
}

// Erase removes [sel.begin, sel.end) for every selection.
func (w *Window) Erase() {
	w.buf.BeginUndoGroup()
	defer w.buf.EndUndoGroup()
	w.EraseNoUndo()
}

// EraseNoUndo is Erase without its own undo group.
func (w *Window) EraseNoUndo() {
	for _, sel := range w.selections {
		w.buf.Erase(sel.Begin(), sel.End())
	}
	w.refresh()
}

// Replace erases then inserts s, as one undo step (spec.md §8.6,
// scenario S3): a single undo() call after Replace must restore the
// buffer's prior contents.
func (w *Window) Replace(s string) {
	w.buf.BeginUndoGroup()
	defer w.buf.EndUndoGroup()
	w.EraseNoUndo()
	w.InsertNoUndo(s)
}

// Undo delegates to the Buffer, returning whether any work was undone.
func (w *Window) Undo() bool {
	done := w.buf.Undo()
	w.refresh()
	return done
}

// Redo delegates to the Buffer, returning whether any work was redone.
func (w *Window) Redo() bool {
	done := w.buf.Redo()
	w.refresh()
	return done
}
