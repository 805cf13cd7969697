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

package display

import (
	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/corebuf"
)

// IteratorAt implements spec.md §4.3's iterator_at: walk atoms for the
// one whose coord strictly exceeds windowPos, delegate to the preceding
// atom; fall back to raw buffer arithmetic when windowPos is negative
// or past the last atom (used during scroll adjustment).
func (d *Buffer) IteratorAt(buf *corebuf.Buffer, position coord.Buffer, windowPos coord.Display) *corebuf.Mark {
	if d.Empty() {
		return buf.Begin()
	}
	if windowPos.Line >= 0 && windowPos.Column >= 0 {
		var prev *Atom
		for _, a := range d.Atoms {
			if windowPos.Less(a.Coord) {
				break
			}
			prev = a
		}
		if prev != nil {
			if m, ok := prev.iteratorAt(buf, windowPos); ok {
				return m
			}
		}
	}
	return buf.IteratorAt(position.Add(coord.Buffer{Line: windowPos.Line, Column: windowPos.Column}))
}

// iteratorAt resolves windowPos to a Mark assuming it falls within a's
// vertical span; returns ok=false if it doesn't (caller falls through).
func (a *Atom) iteratorAt(buf *corebuf.Buffer, windowPos coord.Display) (*corebuf.Mark, bool) {
	row := windowPos.Line - a.Coord.Line
	if row < 0 || row >= len(a.Lines) {
		return nil, false
	}
	cells := a.Lines[row]
	start := a.startColumn(row)
	idx := windowPos.Column - start
	if len(cells) == 0 {
		origin := a.Begin.Coord()
		if row < len(a.LineStart) {
			origin = a.LineStart[row]
		}
		return buf.IteratorAt(origin), true
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(cells) {
		return buf.IteratorAt(cells[len(cells)-1].Source).Plus(1), true
	}
	return buf.IteratorAt(cells[idx].Source), true
}

// LineAndColumnAt implements spec.md §4.3's line_and_column_at: if the
// mark falls within [front.Begin, back.End), find the atom whose End is
// strictly after it and delegate; otherwise compute the raw buffer
// position and subtract the window's scroll origin, which may be
// negative or exceed dimensions (callers read that as "off-screen").
func (d *Buffer) LineAndColumnAt(buf *corebuf.Buffer, position coord.Buffer, it *corebuf.Mark) coord.Display {
	if d.Empty() {
		return coord.Origin
	}
	if it.Compare(d.Front().Begin) >= 0 && it.Compare(d.Back().End) < 0 {
		for _, a := range d.Atoms {
			if it.Compare(a.End) < 0 {
				if dc, ok := a.lineAndColumnAt(it); ok {
					return dc
				}
			}
		}
	}
	bc := buf.LineAndColumnAt(it)
	return coord.Display{Line: bc.Line - position.Line, Column: bc.Column - position.Column}
}

// lineAndColumnAt returns the display coordinate of the first cell
// whose Source equals it's buffer position; this is the leftmost cell
// when several cells share a Source (e.g. an expanded tab), matching
// spec.md §4.3's tie-break.
func (a *Atom) lineAndColumnAt(it *corebuf.Mark) (coord.Display, bool) {
	target := it.Coord()
	for row, cells := range a.Lines {
		start := a.startColumn(row)
		for col, c := range cells {
			if c.Source == target {
				return coord.Display{Line: a.Coord.Line + row, Column: start + col}, true
			}
		}
	}
	return coord.Display{}, false
}
