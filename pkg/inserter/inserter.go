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

// Package inserter implements IncrementalInserter, the scoped,
// exclusive-borrow session that drives interactive character-at-a-time
// editing (spec.md §4.10).
//
// gott has nothing like this: "insert mode" there is just a boolean on
// Editor plus an ad hoc InsertOperation struct
// (pkg/editor/editor.go's SetInsertOperation/GetInsertOperation) that
// buffers typed runes until Escape, with no notion of per-mode caret
// placement or exclusivity assertion. This package generalizes that
// single on/off flag into a constructor-acquired, Close-released
// session object, the way a mutex guard or file handle is modeled in
// idiomatic Go, with a mode table covering every vi-style entry point
// (`i`, `a`, `c`, `o`, `A`, `O`, `I`) instead of gott's single insert
// path.
package inserter

import (
	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/corebuf"
	"github.com/corewin/corewin/pkg/selection"
	"github.com/corewin/corewin/pkg/window"
)

// Mode selects where an IncrementalInserter places each selection's
// caret on entry (spec.md §4.10's table).
type Mode int

const (
	Insert Mode = iota
	Append
	Change
	OpenLineBelow
	AppendAtLineEnd
	OpenLineAbove
	InsertAtLineBegin
)

// IncrementalInserter is bound to exactly one Window for its lifetime;
// at most one may be active on a window at a time (spec.md §5, §8.7).
type IncrementalInserter struct {
	win  *window.Window
	mode Mode
}

// New acquires win's exclusive inserter slot, opens an undo group, and
// reshapes every selection to a caret at its mode-dependent position,
// per spec.md §4.10 steps 1-4. It panics if win already has an active
// inserter (spec.md §7's fatal "two inserters active" programmer
// error).
func New(win *window.Window, mode Mode) *IncrementalInserter {
	ins := &IncrementalInserter{win: win, mode: mode}
	win.AcquireInserter(ins)
	buf := win.Buffer()
	buf.BeginUndoGroup()

	if mode == Change {
		win.EraseNoUndo()
	}

	for _, sel := range win.SelectionSet() {
		target := positionFor(buf, sel, mode)
		reshapeTo(buf, sel, target)
	}
	win.RefreshDisplay()
	return ins
}

// Close runs spec.md §4.10's destructor: nudge every cursor left by one
// display column, release the window's exclusive inserter slot, and
// close the undo group opened at construction. Callers must call Close
// exactly once, typically via defer, mirroring the scoped-resource
// discipline spec.md §5 requires.
func (ins *IncrementalInserter) Close() {
	win := ins.win
	for _, sel := range win.SelectionSet() {
		nudgeLeftOneDisplayColumn(win, sel)
	}
	win.ReleaseInserter(ins)
	win.Buffer().EndUndoGroup()
	win.RefreshDisplay()
}

// positionFor computes the mode-dependent caret target for sel,
// spec.md §4.10's table. Row text never contains a literal '\n' (rows
// are implicitly newline-joined), so "retreat to the previous \n" and
// "advance to the next \n" reduce to plain column-0 / end-of-row
// coordinate arithmetic with no character walking required.
func positionFor(buf *corebuf.Buffer, sel *selection.Selection, mode Mode) coord.Buffer {
	switch mode {
	case Insert:
		return buf.LineAndColumnAt(sel.Begin())
	case Append, Change:
		var m *corebuf.Mark
		if mode == Append {
			m = sel.End()
		} else {
			m = sel.Begin()
		}
		return buf.LineAndColumnAt(m)
	case AppendAtLineEnd:
		bc := buf.LineAndColumnAt(sel.End().Minus(1))
		return lineEndCoord(buf, bc.Line)
	case OpenLineBelow:
		bc := buf.LineAndColumnAt(sel.End().Minus(1))
		end := lineEndCoord(buf, bc.Line)
		buf.Insert(buf.IteratorAt(end), "\n")
		return coord.Buffer{Line: end.Line + 1, Column: 0}
	case OpenLineAbove:
		bc := buf.LineAndColumnAt(sel.Begin())
		begin := lineBeginCoord(bc.Line)
		buf.Insert(buf.IteratorAt(begin), "\n")
		return coord.Buffer{Line: begin.Line, Column: 0}
	case InsertAtLineBegin:
		bc := buf.LineAndColumnAt(sel.Begin())
		return lineBeginCoord(bc.Line)
	default:
		return buf.LineAndColumnAt(sel.Begin())
	}
}

func lineEndCoord(buf *corebuf.Buffer, line int) coord.Buffer {
	return coord.Buffer{Line: line, Column: len([]rune(buf.RowText(line)))}
}

func lineBeginCoord(line int) coord.Buffer {
	return coord.Buffer{Line: line, Column: 0}
}

// reshapeTo collapses sel to a caret at target, preserving Captures and
// releasing the marks it replaces.
func reshapeTo(buf *corebuf.Buffer, sel *selection.Selection, target coord.Buffer) {
	sel.First.Release()
	sel.Last.Release()
	first := buf.IteratorAt(target)
	sel.First = first
	sel.Last = first.Clone()
}

// nudgeLeftOneDisplayColumn moves sel's cursor one display column left
// (DisplayCoord(0,-1)), through the window's current display mapping so
// it accounts for filters (e.g. expanded tabs) that change the
// buffer-to-display ratio, per spec.md §4.10's destructor step 1.
func nudgeLeftOneDisplayColumn(win *window.Window, sel *selection.Selection) {
	db := win.Display()
	if db.Empty() {
		return
	}
	buf := win.Buffer()
	dc := db.LineAndColumnAt(buf, win.Position(), sel.Last)
	dc.Column--
	target := db.IteratorAt(buf, win.Position(), dc)
	sel.First.Release()
	sel.Last.Release()
	sel.First = target
	sel.Last = target.Clone()
}
