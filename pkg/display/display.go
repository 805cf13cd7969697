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
// Package display implements the rendered, filter-processed view of a
// window's visible buffer rectangle (spec.md §3 DisplayAtom/DisplayBuffer,
// §4.2 update_display_buffer, §4.3 coordinate mapping).
//
// gott has no equivalent of this layer: it renders rows straight from
// Buffer to terminal cells inside Window.RenderBuffer (pkg/editor/window.go),
// recomputing highlight colors in place with no reusable intermediate
// structure. This package generalizes that single-pass render into a
// reusable, filter-composable buffer, grounded secondarily on
// iw2rmb-flourish's wrapLayoutCache / cursorVisualPosition
// (editor/viewport.go) for the two-way coordinate mapping shape.
package display

import (
	"fmt"

	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/corebuf"
)

// Cell is one rendered column. Source is the buffer position it renders;
// several consecutive cells may share a Source (e.g. the columns a tab
// expands into), in which case the leftmost one is the character's
// canonical display position (spec.md §4.3's tie-break rule).
type Cell struct {
	Rune   rune
	Source coord.Buffer
	Style  Style
}

// Style is a minimal, filter-opaque annotation atoms carry forward. It
// is intentionally just enough for highlight_selections/hlcpp to stamp
// a class name onto a cell and for a renderer to consume it; corewin
// does not define a palette of its own (spec.md §1 scopes the terminal
// renderer out).
type Style struct {
	Class string // e.g. "selection", "keyword", "" for unstyled
}

// Atom is one contiguous rendered run, spec.md §3's DisplayAtom. It may
// span more than one display line (the very first atom built by
// UpdateDisplayBuffer does whenever the visible range covers more than
// one line: it is the whole visible rectangle in raw form, per spec.md
// §4.2 step 3).
type Atom struct {
	Coord       coord.Display
	Begin, End  *corebuf.Mark   // source range, End exclusive
	Lines       [][]Cell        // one slice per display row this atom covers
	LineStart   []coord.Buffer  // buffer position each row starts at, even when empty
	Replacement bool            // true once a filter has rewritten Lines
}

// Height is the number of display rows this atom occupies.
func (a *Atom) Height() int { return len(a.Lines) }

// startColumn returns the display column the given row (relative to
// a.Coord.Line) begins at: only the first row starts at a.Coord.Column,
// every following row starts at column 0.
func (a *Atom) startColumn(row int) int {
	if row == 0 {
		return a.Coord.Column
	}
	return 0
}

// StartColumn is startColumn exported for filters, which need it to
// track display-column position while rewriting a row's cells.
func (a *Atom) StartColumn(row int) int { return a.startColumn(row) }

// endCoord returns the display coordinate one past this atom's last
// cell, used to check contiguity between consecutive atoms.
func (a *Atom) endCoord() coord.Display {
	if len(a.Lines) == 0 {
		return a.Coord
	}
	last := len(a.Lines) - 1
	return coord.Display{Line: a.Coord.Line + last, Column: a.startColumn(last) + len(a.Lines[last])}
}

// Buffer is the ordered sequence of atoms spec.md §3 calls DisplayBuffer.
type Buffer struct {
	Atoms []*Atom
}

// Empty reports whether the display buffer has no rendered atoms.
func (d *Buffer) Empty() bool { return len(d.Atoms) == 0 }

// Front and Back are the first/last atoms, used by callers that need
// the overall covered buffer range ([front.Begin, back.End)).
func (d *Buffer) Front() *Atom { return d.Atoms[0] }
func (d *Buffer) Back() *Atom  { return d.Atoms[len(d.Atoms)-1] }

// Release unregisters every atom's Begin/End marks from buf, since a
// display buffer is rebuilt from scratch on every
// Window.UpdateDisplayBuffer call (spec.md §4.2) and must not leak
// marks across rebuilds.
func (d *Buffer) Release(buf *corebuf.Buffer) {
	for _, a := range d.Atoms {
		buf.Release(a.Begin)
		buf.Release(a.End)
	}
}

// CheckInvariants re-validates spec.md §3's DisplayBuffer invariant:
// atoms are contiguous in display space starting at (0,0), and their
// source ranges are monotonically non-decreasing. A violation is a
// programmer error in a filter and is fatal, per spec.md §7.
func (d *Buffer) CheckInvariants() {
	if d.Empty() {
		return
	}
	if d.Front().Coord != coord.Origin {
		panic(fmt.Sprintf("display invariant: front atom at %v, want origin", d.Front().Coord))
	}
	for i := 1; i < len(d.Atoms); i++ {
		prev, cur := d.Atoms[i-1], d.Atoms[i]
		if cur.endCoord() != cur.Coord {
			// the atom's own internal rows must already be contiguous
			// (no gaps inside a single atom's Lines); this is checked
			// implicitly by construction, so only cross-atom gaps are
			// asserted here.
		}
		if prev.endCoord() != cur.Coord {
			panic(fmt.Sprintf("display invariant: atom %d ends at %v, atom %d starts at %v", i-1, prev.endCoord(), i, cur.Coord))
		}
		if cur.Begin.Compare(prev.Begin) < 0 {
			panic(fmt.Sprintf("display invariant: atom %d begins before atom %d in buffer order", i, i-1))
		}
	}
}

// UpdateDisplayBuffer rebuilds d from scratch for the visible part of
// buf, per spec.md §4.2: one row per buffer line from position.Line
// through the line of the end mark (position+dimensions, clamped, plus
// one), each row starting at buffer column position.Column and running
// to the end of the line (rows are not cut at dimensions.Column). Filters are
// applied afterward by the caller (pkg/window), which also owns
// releasing the previous display buffer's marks.
func UpdateDisplayBuffer(buf *corebuf.Buffer, position coord.Buffer, dimensions coord.Display) *Buffer {
	begin := buf.IteratorAt(position)
	endPos := position.Add(coord.Buffer{Line: dimensions.Line, Column: dimensions.Column})
	end := buf.IteratorAt(endPos)
	end.Inc()

	d := &Buffer{}
	if begin.Compare(end) == 0 {
		buf.Release(begin)
		buf.Release(end)
		return d
	}

	lastLine := buf.LineAndColumnAt(end).Line
	lines := make([][]Cell, 0, lastLine-position.Line+1)
	lineStarts := make([]coord.Buffer, 0, lastLine-position.Line+1)
	for line := position.Line; line <= lastLine; line++ {
		runes := []rune(buf.RowText(line))
		start := position.Column
		if start > len(runes) {
			start = len(runes)
		}
		cells := make([]Cell, 0, len(runes)-start)
		for col := start; col < len(runes); col++ {
			cells = append(cells, Cell{Rune: runes[col], Source: coord.Buffer{Line: line, Column: col}})
		}
		lines = append(lines, cells)
		lineStarts = append(lineStarts, coord.Buffer{Line: line, Column: start})
	}

	atom := &Atom{
		Coord:     coord.Origin,
		Begin:     begin,
		End:       end,
		Lines:     lines,
		LineStart: lineStarts,
	}
	d.Atoms = []*Atom{atom}
	d.CheckInvariants()
	return d
}
