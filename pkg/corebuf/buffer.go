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

// Package corebuf is the concrete Buffer the rest of corewin is built
// against: pkg/window and pkg/inserter hold a *corebuf.Buffer directly.
// It is line-oriented the way gott's editor/row.go and editor/buffer.go
// are, generalized to support mark-based BufferIterator stability and
// nested undo groups instead of gott's one-inverse-operation-per-call
// undo stack.
package corebuf

import (
	"strings"

	"github.com/google/uuid"

	"github.com/corewin/corewin/pkg/coord"
)

// Row is one line of text, without its trailing newline.
type Row struct {
	Text []rune
}

func newRow(s string) *Row {
	return &Row{Text: []rune(s)}
}

func (r *Row) String() string {
	return string(r.Text)
}

// Buffer is a line-oriented text store. It owns every Mark ever handed
// out by Begin/IteratorAt and keeps them valid across Insert/Erase,
// which is the concrete rendering of the "iterator stability contract"
// spec.md requires of an external Buffer (see SPEC_FULL.md's Mark
// section and Design Notes' option (a)).
type Buffer struct {
	name     string
	readOnly bool
	rows     []*Row
	modified bool

	marks map[*Mark]struct{}

	undoDepth   int
	undoBase    []*Row // snapshot captured at the outermost BeginUndoGroup
	undoBaseID  uuid.UUID
	lastGroupID uuid.UUID
	undoStack   []snapshot
	redoStack   []snapshot
}

type snapshot struct {
	id   uuid.UUID // diagnostic token, logged by cmd/corewin around undo/redo
	rows []*Row
}

// New creates an empty, named buffer with a single empty row.
func New(name string) *Buffer {
	b := &Buffer{
		name:  name,
		rows:  []*Row{newRow("")},
		marks: make(map[*Mark]struct{}),
	}
	return b
}

// LoadString replaces the buffer's content with s and clears undo
// history and modified state, mirroring gott's Buffer.LoadBytes
// (editor/buffer.go).
func (b *Buffer) LoadString(s string) {
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, len(lines))
	for i, l := range lines {
		b.rows[i] = newRow(l)
	}
	b.modified = false
	b.undoStack = nil
	b.redoStack = nil
	for m := range b.marks {
		m.line, m.col = 0, 0
	}
}

func (b *Buffer) Name() string      { return b.name }
func (b *Buffer) IsModified() bool  { return b.modified }
func (b *Buffer) SetReadOnly(v bool) { b.readOnly = v }
func (b *Buffer) ReadOnly() bool    { return b.readOnly }

// String returns the buffer's full text.
func (b *Buffer) String() string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// RowCount returns the number of rows (always >= 1).
func (b *Buffer) RowCount() int { return len(b.rows) }

// RowText returns the text of a row with no mark bookkeeping, for bulk
// read paths (rendering) that don't need iterator stability.
func (b *Buffer) RowText(line int) string {
	if line < 0 || line >= len(b.rows) {
		return ""
	}
	return b.rows[line].String()
}

func (b *Buffer) rowLen(line int) int {
	if line < 0 || line >= len(b.rows) {
		return 0
	}
	return len(b.rows[line].Text)
}

func (b *Buffer) clamp(bc coord.Buffer) (int, int) {
	line := bc.Line
	if line < 0 {
		line = 0
	}
	if len(b.rows) == 0 {
		return 0, 0
	}
	if line >= len(b.rows) {
		line = len(b.rows) - 1
	}
	col := bc.Column
	if col < 0 {
		col = 0
	}
	max := b.rowLen(line)
	if col > max {
		col = max
	}
	return line, col
}

// Begin returns a Mark at the start of the buffer.
func (b *Buffer) Begin() *Mark {
	return b.register(0, 0)
}

// IteratorAt returns a Mark at bc, clamped into the buffer's legal
// range. See DESIGN.md for the Open-Question decision to clamp
// rather than propagate negative/overflowing coordinates.
func (b *Buffer) IteratorAt(bc coord.Buffer) *Mark {
	line, col := b.clamp(bc)
	return b.register(line, col)
}

func (b *Buffer) register(line, col int) *Mark {
	m := &Mark{buf: b, line: line, col: col}
	b.marks[m] = struct{}{}
	return m
}

// Release unregisters a mark that is no longer referenced, so it stops
// being fixed up on every mutation. Safe to call more than once.
func (b *Buffer) Release(m *Mark) {
	delete(b.marks, m)
}

// LineAndColumnAt returns m's buffer-space position.
func (b *Buffer) LineAndColumnAt(m *Mark) coord.Buffer {
	return coord.Buffer{Line: m.line, Column: m.col}
}

// Slice returns the text in [begin, end), end exclusive, matching the
// external Buffer.string(begin, end) contract of spec.md §6.
func (b *Buffer) Slice(begin, end *Mark) string {
	if !begin.Less(end) && *begin != *end {
		begin, end = end, begin
	}
	if begin.line == end.line {
		row := b.rows[begin.line]
		lo, hi := begin.col, end.col
		if hi > len(row.Text) {
			hi = len(row.Text)
		}
		if lo > hi {
			lo = hi
		}
		return string(row.Text[lo:hi])
	}
	var sb strings.Builder
	sb.WriteString(string(b.rows[begin.line].Text[begin.col:]))
	for l := begin.line + 1; l < end.line; l++ {
		sb.WriteByte('\n')
		sb.WriteString(b.rows[l].String())
	}
	sb.WriteByte('\n')
	hi := end.col
	if hi > b.rowLen(end.line) {
		hi = b.rowLen(end.line)
	}
	sb.WriteString(string(b.rows[end.line].Text[:hi]))
	return sb.String()
}
