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

// Package selection implements the anchored, directional ranges that
// drive every editing operation in corewin. gott has no equivalent (it
// edits through a single cursor); this type is shaped after
// iw2rmb-flourish's buffer.Range/selectionState (buffer/edit.go,
// buffer.Selection), reworked so direction survives merges the way
// spec.md §3 requires, which flourish's always-normalized Range does
// not need to support.
package selection

import "github.com/corewin/corewin/pkg/corebuf"

// Selection is an anchored range: First is the anchor, Last is the
// cursor. Captures are populated by whatever selector produced the
// selection (typically a regex search, out of scope here per spec.md
// §1) and survive merges only if the caller copies them in.
type Selection struct {
	First, Last *corebuf.Mark
	Captures    []string
}

// New returns a caret selection at it. First and Last are always
// distinct Mark objects, even though they start at the same position:
// MergeWith and window-level reshaping release and replace First/Last
// independently, which would corrupt a shared mark if the two fields
// ever aliased the same object.
func New(it *corebuf.Mark) *Selection {
	return &Selection{First: it, Last: it.Clone()}
}

// Capture returns the i-th capture, or "" if i is out of range.
func (s *Selection) Capture(i int) string {
	if i < 0 || i >= len(s.Captures) {
		return ""
	}
	return s.Captures[i]
}

// forward reports whether the selection runs anchor-to-cursor in
// increasing buffer order.
func (s *Selection) forward() bool {
	return s.First.Compare(s.Last) <= 0
}

// Begin returns min(First, Last).
func (s *Selection) Begin() *corebuf.Mark {
	if s.forward() {
		return s.First
	}
	return s.Last
}

// End returns max(First, Last) + 1: the cursor cell is part of the
// selection, per spec.md §3.
func (s *Selection) End() *corebuf.Mark {
	if s.forward() {
		return s.Last.Plus(1)
	}
	return s.First.Plus(1)
}

// MergeWith grows s to cover other, preserving s's existing direction:
// a forward selection's anchor can only move further back (min), a
// reverse selection's anchor can only move further forward (max); the
// cursor always jumps to other's cursor. This is spec.md §3's merge
// rule and the property checked by invariant §8.5.
func (s *Selection) MergeWith(other *Selection) {
	keepFirst := true
	if s.forward() {
		keepFirst = !other.First.Less(s.First)
	} else {
		keepFirst = !s.First.Less(other.First)
	}
	if keepFirst {
		other.First.Release()
	} else {
		s.First.Release()
		s.First = other.First
	}
	s.Last.Release()
	s.Last = other.Last
}

// Clone returns an independent selection with its own marks, so editing
// one copy never moves the other out from under a caller that kept the
// original.
func (s *Selection) Clone() *Selection {
	return &Selection{
		First:    s.First.Clone(),
		Last:     s.Last.Clone(),
		Captures: append([]string{}, s.Captures...),
	}
}
