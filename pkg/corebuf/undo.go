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

package corebuf

import "github.com/google/uuid"

// BeginUndoGroup opens (possibly nests) an undo group. Only the
// outermost call snapshots the buffer; this is what lets
// Window.Replace's erase+insert (spec.md §4.4) and IncrementalInserter's
// whole session (spec.md §4.10) each collapse into a single undo step,
// generalizing gott's one-inverse-operation-per-Perform-call discipline
// (pkg/editor/editor.go Perform/undo) into a nestable group.
func (b *Buffer) BeginUndoGroup() {
	if b.undoDepth == 0 {
		b.undoBase = cloneRows(b.rows)
		b.undoBaseID = uuid.New()
	}
	b.undoDepth++
}

// EndUndoGroup closes one level of undo group. When the outermost group
// closes, if the buffer actually changed since BeginUndoGroup, the
// pre-edit snapshot is pushed onto the undo stack and the redo stack is
// cleared.
func (b *Buffer) EndUndoGroup() {
	if b.undoDepth == 0 {
		return
	}
	b.undoDepth--
	if b.undoDepth > 0 {
		return
	}
	if !rowsEqual(b.undoBase, b.rows) {
		b.undoStack = append(b.undoStack, snapshot{id: b.undoBaseID, rows: b.undoBase})
		b.lastGroupID = b.undoBaseID
		b.redoStack = nil
	}
	b.undoBase = nil
}

// LastUndoGroupID returns the uuid of the most recent undo group that
// actually changed the buffer, for callers (cmd/corewin's logging) that
// want a stable token to correlate log lines with a single compound
// edit.
func (b *Buffer) LastUndoGroupID() uuid.UUID {
	return b.lastGroupID
}

// Undo restores the buffer to the state before the most recent closed
// undo group and reports whether anything was undone.
func (b *Buffer) Undo() bool {
	if len(b.undoStack) == 0 {
		return false
	}
	last := len(b.undoStack) - 1
	b.redoStack = append(b.redoStack, snapshot{id: b.undoStack[last].id, rows: cloneRows(b.rows)})
	b.rows = b.undoStack[last].rows
	b.lastGroupID = b.undoStack[last].id
	b.undoStack = b.undoStack[:last]
	b.modified = true
	b.clampMarks()
	return true
}

// Redo reapplies the most recently undone group and reports whether
// anything was redone.
func (b *Buffer) Redo() bool {
	if len(b.redoStack) == 0 {
		return false
	}
	last := len(b.redoStack) - 1
	b.undoStack = append(b.undoStack, snapshot{id: b.redoStack[last].id, rows: cloneRows(b.rows)})
	b.rows = b.redoStack[last].rows
	b.lastGroupID = b.redoStack[last].id
	b.redoStack = b.redoStack[:last]
	b.modified = true
	b.clampMarks()
	return true
}

func (b *Buffer) clampMarks() {
	for m := range b.marks {
		m.line, m.col = b.clamp(m.Coord())
	}
}

func cloneRows(rows []*Row) []*Row {
	out := make([]*Row, len(rows))
	for i, r := range rows {
		out[i] = &Row{Text: append([]rune{}, r.Text...)}
	}
	return out
}

func rowsEqual(a, b []*Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if string(a[i].Text) != string(b[i].Text) {
			return false
		}
	}
	return true
}
