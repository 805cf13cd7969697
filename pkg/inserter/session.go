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

package inserter

import (
	"strings"

	"github.com/corewin/corewin/pkg/coord"
)

// Insert delegates to the window's noundo insert, so repeated keystrokes
// within one session commit as part of the single undo group opened at
// construction (spec.md §4.10), then explicitly advances every
// selection's caret past the inserted text.
//
// Buffer.Insert ties a mark sitting exactly at the insertion point to
// the *start* of the new text (spec.md §8 scenario S1 requires this for
// a bulk insert). An interactive session instead wants each keystroke
// to land after the character it just typed, so every caret the window
// left in place is here walked forward by s's own length rather than
// relying on the passive mark-shift rule a single bulk insert uses.
func (ins *IncrementalInserter) Insert(s string) {
	if s == "" {
		return
	}
	win := ins.win
	buf := win.Buffer()
	sels := win.SelectionSet()
	win.InsertNoUndo(s)
	// Each caret is tied to the start of its own inserted text, and any
	// insert before it on the same line has already shifted it, so its
	// position read now is where that text begins.
	for _, sel := range sels {
		start := buf.LineAndColumnAt(sel.Begin())
		reshapeTo(buf, sel, advanceCoord(start, s))
	}
	win.RefreshDisplay()
}

// advanceCoord returns the buffer coordinate start moves to after s is
// inserted there, mirroring corebuf.Buffer.Insert's own line-splitting.
func advanceCoord(start coord.Buffer, s string) coord.Buffer {
	pieces := strings.Split(s, "\n")
	if len(pieces) == 1 {
		return coord.Buffer{Line: start.Line, Column: start.Column + len([]rune(pieces[0]))}
	}
	last := pieces[len(pieces)-1]
	return coord.Buffer{Line: start.Line + len(pieces) - 1, Column: len([]rune(last))}
}

// InsertCapture inserts sel.Capture(i) at each selection's begin,
// independently per selection (unlike Insert, which splices the same
// string everywhere).
func (ins *IncrementalInserter) InsertCapture(i int) {
	buf := ins.win.Buffer()
	for _, sel := range ins.win.SelectionSet() {
		buf.Insert(sel.Begin(), sel.Capture(i))
	}
	ins.win.RefreshDisplay()
}

// Erase implements backspace semantics: shift each selection's anchor
// and cursor left by one buffer position, then erase the now-covered
// range.
func (ins *IncrementalInserter) Erase() {
	for _, sel := range ins.win.SelectionSet() {
		sel.First.Dec()
		sel.Last.Dec()
	}
	ins.win.EraseNoUndo()
}

// MoveCursor re-resolves each selection's current display position, adds
// offset, and collapses the selection to a caret there.
func (ins *IncrementalInserter) MoveCursor(offset coord.Display) {
	win := ins.win
	buf := win.Buffer()
	db := win.Display()
	for _, sel := range win.SelectionSet() {
		dc := db.LineAndColumnAt(buf, win.Position(), sel.Last).Add(offset)
		target := db.IteratorAt(buf, win.Position(), dc)
		sel.First.Release()
		sel.Last.Release()
		sel.First = target
		sel.Last = target.Clone()
	}
	win.RefreshDisplay()
}
