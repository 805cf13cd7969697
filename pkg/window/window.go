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

// Package window implements Window, the viewport/editing core that
// presents a rectangular view into a Buffer and drives every selection,
// cursor, scrolling and filter operation in corewin.
//
// gott's Window (pkg/editor/window.go) manages a single cursor point and
// directly renders a Buffer to termbox cells in one pass. This Window
// generalizes that into a multi-selection core that renders through an
// intermediate, filter-processed display.Buffer instead, the way
// iw2rmb-flourish's editor.Viewport separates layout from rendering.
package window

import (
	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/corebuf"
	"github.com/corewin/corewin/pkg/display"
	"github.com/corewin/corewin/pkg/filter"
	"github.com/corewin/corewin/pkg/selection"
)

// namedFilter pairs a registration id with its bound transform.
type namedFilter struct {
	id string
	fn filter.Func
}

// inserterToken is the type of the opaque value a Window's active
// inserter slot holds; pkg/inserter supplies its own pointer as the
// token so AcquireInserter/ReleaseInserter can assert identity.
type inserterToken interface{}

// Window is a view into a Buffer: a scroll position, a set of ordered
// selections (always non-empty, invariant §8.1), a filter chain and the
// display buffer those filters last produced.
type Window struct {
	buf        *corebuf.Buffer
	selections []*selection.Selection

	position   coord.Buffer
	dimensions coord.Display

	filters []namedFilter
	display *display.Buffer

	activeInserter inserterToken
}

// New returns a Window viewing buf at (0,0) with the given viewport
// size and a single caret selection at the buffer's start.
func New(buf *corebuf.Buffer, dimensions coord.Display) *Window {
	w := &Window{
		buf:        buf,
		dimensions: dimensions,
	}
	w.selections = []*selection.Selection{selection.New(buf.Begin())}
	w.refresh()
	return w
}

// Buffer returns the Buffer this window views.
func (w *Window) Buffer() *corebuf.Buffer { return w.buf }

// BufferName satisfies filter.Target.
func (w *Window) BufferName() string { return w.buf.Name() }

// Selections satisfies filter.Target, adapting the window's live
// selections to filter.Selection without handing filters mutable
// *selection.Selection values.
func (w *Window) Selections() []filter.Selection {
	out := make([]filter.Selection, len(w.selections))
	for i, s := range w.selections {
		out[i] = filterSelection{
			begin: w.buf.LineAndColumnAt(s.Begin()),
			end:   w.buf.LineAndColumnAt(s.End()),
		}
	}
	return out
}

type filterSelection struct {
	begin, end coord.Buffer
}

func (s filterSelection) BeginCoord() (int, int) { return s.begin.Line, s.begin.Column }
func (s filterSelection) EndCoord() (int, int)   { return s.end.Line, s.end.Column }

// primary is the selection status_line, scrolling, and single-caret
// collapse operate against: the last one in stored order, matching
// Kakoune's convention that the most recently added selection leads.
func (w *Window) primary() *selection.Selection {
	return w.selections[len(w.selections)-1]
}

// Display returns the window's current, filter-processed display
// buffer, valid until the next mutating operation.
func (w *Window) Display() *display.Buffer { return w.display }

// Position returns the buffer coordinate the viewport's origin maps to.
func (w *Window) Position() coord.Buffer { return w.position }

// Dimensions returns the viewport size in display rows/columns.
func (w *Window) Dimensions() coord.Display { return w.dimensions }

// Resize changes the viewport size and rebuilds the display buffer.
func (w *Window) Resize(dimensions coord.Display) {
	w.dimensions = dimensions
	w.rebuildDisplay()
}

// refresh runs scroll_to_keep_cursor_visible against the *current*
// display mapping (spec.md §4.7), then rebuilds the display buffer at
// the possibly-adjusted position. Every public edit, undo/redo,
// selection and cursor operation ends by calling this, so a caller never
// observes a display buffer stale with respect to the window's
// selections or scroll position. Resize and the filter operations only
// rebuild the display buffer and do not scroll.
func (w *Window) refresh() {
	w.scrollToKeepCursorVisible()
	w.rebuildDisplay()
}

func (w *Window) rebuildDisplay() {
	if w.display != nil {
		w.display.Release(w.buf)
	}
	db := display.UpdateDisplayBuffer(w.buf, w.position, w.dimensions)
	for _, nf := range w.filters {
		db = nf.fn(db)
		db.CheckInvariants()
	}
	w.display = db
}

// releaseSelections unregisters every mark owned by sels. Callers use
// this when discarding a whole selection set outright (clear_selections,
// a non-appending select, move_cursor_to) rather than reshaping it in
// place.
func releaseSelections(sels []*selection.Selection) {
	for _, s := range sels {
		s.First.Release()
		s.Last.Release()
	}
}
