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
	"testing"

	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/corebuf"
	"github.com/corewin/corewin/pkg/display"
	"github.com/corewin/corewin/pkg/filter"
	"github.com/corewin/corewin/pkg/selection"
)

func newTestWindow(t *testing.T, text string) (*corebuf.Buffer, *Window) {
	t.Helper()
	buf := corebuf.New("scratch")
	buf.LoadString(text)
	w := New(buf, coord.Display{Line: 24, Column: 80})
	return buf, w
}

func identityFilter(db *display.Buffer) *display.Buffer { return db }

func caretAt(buf *corebuf.Buffer, line, col int) *selection.Selection {
	return selection.New(buf.IteratorAt(coord.Buffer{Line: line, Column: col}))
}

func rangeSelection(buf *corebuf.Buffer, line, begin, end int) *selection.Selection {
	s := selection.New(buf.IteratorAt(coord.Buffer{Line: line, Column: begin}))
	s.Last.Release()
	s.Last = buf.IteratorAt(coord.Buffer{Line: line, Column: end})
	return s
}

// S1 — Insert into empty window.
func TestInsertIntoEmptyWindow(t *testing.T) {
	buf, w := newTestWindow(t, "")
	w.Insert("hello")
	if got := buf.String(); got != "hello" {
		t.Fatalf("buffer = %q, want %q", got, "hello")
	}
	pos := buf.LineAndColumnAt(w.primary().Last)
	if pos != (coord.Buffer{Line: 0, Column: 0}) {
		t.Fatalf("cursor = %v, want (0,0)", pos)
	}
	want := "scratch [+] -- 1,1 -- 1 sel -- "
	if got := w.StatusLine(); got != want {
		t.Fatalf("status line = %q, want %q", got, want)
	}
}

// S2 — Multi-caret insert.
func TestMultiCaretInsert(t *testing.T) {
	buf, w := newTestWindow(t, "ab\ncd")
	releaseSelections(w.selections)
	w.selections = []*selection.Selection{
		caretAt(buf, 0, 0),
		caretAt(buf, 1, 0),
	}
	w.Insert("X")
	if got := buf.String(); got != "Xab\nXcd" {
		t.Fatalf("buffer = %q, want %q", got, "Xab\nXcd")
	}
	if len(w.selections) != 2 {
		t.Fatalf("selections = %d, want 2", len(w.selections))
	}
}

// S3 — Replace atomicity.
func TestReplaceIsOneUndoStep(t *testing.T) {
	buf, w := newTestWindow(t, "foo")
	releaseSelections(w.selections)
	w.selections = []*selection.Selection{rangeSelection(buf, 0, 0, 2)}
	w.Replace("bar")
	if got := buf.String(); got != "bar" {
		t.Fatalf("buffer = %q, want %q", got, "bar")
	}
	if !w.Undo() {
		t.Fatalf("expected undo to report work done")
	}
	if got := buf.String(); got != "foo" {
		t.Fatalf("after undo buffer = %q, want %q", got, "foo")
	}
}

// S6 — Scroll.
func TestScrollKeepsCursorVisible(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	text := lines[0]
	for _, l := range lines[1:] {
		text += "\n" + l
	}
	buf, w := newTestWindow(t, text)
	w.Resize(coord.Display{Line: 3, Column: 80})
	w.MoveCursorTo(buf.IteratorAt(coord.Buffer{Line: 10, Column: 0}))
	if w.Position().Line != 8 {
		t.Fatalf("position.line = %d, want 8", w.Position().Line)
	}
}

func TestSelectionsNeverEmpty(t *testing.T) {
	_, w := newTestWindow(t, "abc")
	w.ClearSelections()
	if len(w.selections) == 0 {
		t.Fatalf("selections must never be empty")
	}
}

func TestAddFilterDuplicateIDFails(t *testing.T) {
	_, w := newTestWindow(t, "abc")
	if err := w.AddFilter("f", identityFilter); err != nil {
		t.Fatalf("unexpected error on first add: %v", err)
	}
	err := w.AddFilter("f", identityFilter)
	if _, ok := err.(*ErrFilterIDNotUnique); !ok {
		t.Fatalf("expected ErrFilterIDNotUnique, got %v", err)
	}
}

func TestRemoveFilterNoopWhenAbsent(t *testing.T) {
	_, w := newTestWindow(t, "abc")
	w.RemoveFilter("nonexistent")
}

func TestCompleteFilterID(t *testing.T) {
	_, w := newTestWindow(t, "abc")
	_ = w.AddFilter("expand_tabs", identityFilter)
	_ = w.AddFilter("expand_all", identityFilter)
	_ = w.AddFilter("hlcpp", identityFilter)
	got := w.CompleteFilterID("expand_tabs", len("expand"))
	if len(got) != 2 || got[0] != "expand_tabs" || got[1] != "expand_all" {
		t.Fatalf("complete_filterid = %v, want [expand_tabs expand_all]", got)
	}
}

// Drives highlight_selections through the real Window.Selections()
// pipeline rather than a hand-built filter.Selection, so the filter's
// range convention can't silently drift from what the window feeds it.
func TestHighlightSelectionsThroughWindowCoversExactlyTheCaret(t *testing.T) {
	buf, w := newTestWindow(t, "hello")
	releaseSelections(w.selections)
	w.selections = []*selection.Selection{caretAt(buf, 0, 0)}

	reg := filter.NewRegistry()
	if err := w.AddFilterFromRegistry(reg, "highlight_selections", nil); err != nil {
		t.Fatalf("AddFilterFromRegistry: %v", err)
	}

	row := w.Display().Atoms[0].Lines[0]
	for i, c := range row {
		want := i == 0
		got := c.Style.Class == "selection"
		if got != want {
			t.Errorf("cell %d selected=%v, want %v", i, got, want)
		}
	}
}

func TestMoveCursorAppendKeepsAnchor(t *testing.T) {
	buf, w := newTestWindow(t, "abcdef")
	releaseSelections(w.selections)
	w.selections = []*selection.Selection{rangeSelection(buf, 0, 1, 1)}
	w.MoveCursor(coord.Buffer{Column: 2}, true)
	sel := w.selections[0]
	begin := buf.LineAndColumnAt(sel.Begin())
	end := buf.LineAndColumnAt(sel.End())
	if begin.Column != 1 {
		t.Fatalf("anchor moved: begin = %v, want column 1", begin)
	}
	if end.Column != 4 {
		t.Fatalf("cursor end = %v, want column 4", end)
	}
}
