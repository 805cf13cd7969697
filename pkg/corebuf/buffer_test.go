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

import (
	"testing"

	"github.com/corewin/corewin/pkg/coord"
)

// TestInsertTiedMarkDoesNotShift is scenario S1 of spec.md §8: a mark
// sitting exactly at the insertion point stays put, referencing the
// start of the newly inserted text rather than its end.
func TestInsertTiedMarkDoesNotShift(t *testing.T) {
	b := New("t")
	m := b.Begin()
	b.Insert(m, "abc")
	if m.line != 0 || m.col != 0 {
		t.Fatalf("tied mark moved to (%d,%d), want (0,0)", m.line, m.col)
	}
	if got := b.String(); got != "abc" {
		t.Fatalf("content = %q, want %q", got, "abc")
	}
}

func TestInsertShiftsMarksStrictlyAfter(t *testing.T) {
	b := New("t")
	b.LoadString("0123456789")
	m := b.IteratorAt(coord.Buffer{Column: 5})
	b.Insert(b.IteratorAt(coord.Buffer{Column: 2}), "XY")
	if m.col != 7 {
		t.Fatalf("mark after insert = %d, want 7", m.col)
	}
}

func TestInsertSplitsAcrossLines(t *testing.T) {
	b := New("t")
	b.LoadString("abcdef")
	tail := b.IteratorAt(coord.Buffer{Column: 4})
	b.Insert(b.IteratorAt(coord.Buffer{Column: 2}), "X\nY")
	if got := b.String(); got != "abX\nYcdef" {
		t.Fatalf("content = %q, want %q", got, "abX\nYcdef")
	}
	if tail.line != 1 || tail.col != 3 {
		t.Fatalf("tail mark = (%d,%d), want (1,3)", tail.line, tail.col)
	}
}

func TestEraseCollapsesMarksInsideRange(t *testing.T) {
	b := New("t")
	b.LoadString("0123456789")
	inside := b.IteratorAt(coord.Buffer{Column: 4})
	begin := b.IteratorAt(coord.Buffer{Column: 2})
	end := b.IteratorAt(coord.Buffer{Column: 6})
	removed := b.Erase(begin, end)
	if removed != "2345" {
		t.Fatalf("removed = %q, want %q", removed, "2345")
	}
	if inside.line != 0 || inside.col != 2 {
		t.Fatalf("inside mark = (%d,%d), want (0,2)", inside.line, inside.col)
	}
	if got := b.String(); got != "016789" {
		t.Fatalf("content = %q, want %q", got, "016789")
	}
}

func TestEraseShiftsMarksAfterRangeBack(t *testing.T) {
	b := New("t")
	b.LoadString("0123456789")
	after := b.IteratorAt(coord.Buffer{Column: 8})
	b.Erase(b.IteratorAt(coord.Buffer{Column: 2}), b.IteratorAt(coord.Buffer{Column: 6}))
	if after.col != 4 {
		t.Fatalf("after mark col = %d, want 4", after.col)
	}
}

func TestUndoRedoRestoresContent(t *testing.T) {
	b := New("t")
	b.LoadString("hello")

	b.BeginUndoGroup()
	b.Erase(b.IteratorAt(coord.Buffer{Column: 0}), b.IteratorAt(coord.Buffer{Column: 5}))
	b.Insert(b.IteratorAt(coord.Buffer{Column: 0}), "goodbye")
	b.EndUndoGroup()

	if got := b.String(); got != "goodbye" {
		t.Fatalf("content after replace = %q, want %q", got, "goodbye")
	}

	if !b.Undo() {
		t.Fatalf("expected Undo to report work done")
	}
	if got := b.String(); got != "hello" {
		t.Fatalf("content after undo = %q, want %q (one undo should reverse the whole replace)", got, "hello")
	}

	if !b.Redo() {
		t.Fatalf("expected Redo to report work done")
	}
	if got := b.String(); got != "goodbye" {
		t.Fatalf("content after redo = %q, want %q", got, "goodbye")
	}
}

func TestNestedUndoGroupsCollapseIntoOneStep(t *testing.T) {
	b := New("t")
	b.LoadString("x")

	b.BeginUndoGroup()
	b.BeginUndoGroup()
	b.Insert(b.IteratorAt(coord.Buffer{Column: 1}), "1")
	b.EndUndoGroup()
	b.Insert(b.IteratorAt(coord.Buffer{Column: 2}), "2")
	b.EndUndoGroup()

	if got := b.String(); got != "x12" {
		t.Fatalf("content = %q, want %q", got, "x12")
	}
	if !b.Undo() {
		t.Fatalf("expected Undo to report work done")
	}
	if got := b.String(); got != "x" {
		t.Fatalf("content after single undo = %q, want %q", got, "x")
	}
	if b.Undo() {
		t.Fatalf("expected no further undo history")
	}
}

func TestUndoNoopWhenGroupMadeNoChange(t *testing.T) {
	b := New("t")
	b.LoadString("same")
	b.BeginUndoGroup()
	b.EndUndoGroup()
	if b.Undo() {
		t.Fatalf("expected Undo to report nothing to undo after a no-op group")
	}
}

func TestIteratorAtClampsOutOfRange(t *testing.T) {
	b := New("t")
	b.LoadString("abc")
	m := b.IteratorAt(coord.Buffer{Line: 5, Column: 99})
	if m.line != 0 || m.col != 3 {
		t.Fatalf("clamped mark = (%d,%d), want (0,3)", m.line, m.col)
	}
	m2 := b.IteratorAt(coord.Buffer{Line: -3, Column: -1})
	if m2.line != 0 || m2.col != 0 {
		t.Fatalf("clamped mark = (%d,%d), want (0,0)", m2.line, m2.col)
	}
}

func TestSliceAcrossLines(t *testing.T) {
	b := New("t")
	b.LoadString("abc\ndef\nghi")
	begin := b.IteratorAt(coord.Buffer{Line: 0, Column: 1})
	end := b.IteratorAt(coord.Buffer{Line: 2, Column: 2})
	if got := b.Slice(begin, end); got != "bc\ndef\ngh" {
		t.Fatalf("slice = %q, want %q", got, "bc\ndef\ngh")
	}
}

func TestReleaseStopsMarkFixup(t *testing.T) {
	b := New("t")
	b.LoadString("0123456789")
	m := b.IteratorAt(coord.Buffer{Column: 5})
	b.Release(m)
	b.Insert(b.IteratorAt(coord.Buffer{Column: 0}), "XX")
	if m.col != 5 {
		t.Fatalf("released mark was still fixed up: col = %d, want 5", m.col)
	}
}
