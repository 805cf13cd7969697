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

package filter

import (
	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/display"
)

// highlightSelectionsFactory builds highlight_selections, which stamps
// Style.Class = "selection" on every cell covered by one of the window's
// live selections at filter-apply time. It is bound to win.Selections so
// each render sees the window's current selections, not a snapshot taken
// when the filter was installed.
//
// gott's Window.RenderBuffer (pkg/editor/window.go) inlines this same
// "is this cell inside the cursor's selection" check directly into the
// render loop; here it is pulled out into its own composable pass.
func highlightSelectionsFactory(win Target, _ map[string]string) Func {
	return func(db *display.Buffer) *display.Buffer {
		sels := win.Selections()
		if len(sels) == 0 {
			return db
		}
		ranges := make([][2]coord.Buffer, len(sels))
		for i, s := range sels {
			bl, bc := s.BeginCoord()
			el, ec := s.EndCoord()
			ranges[i] = [2]coord.Buffer{{Line: bl, Column: bc}, {Line: el, Column: ec}}
		}
		for _, atom := range db.Atoms {
			for _, cells := range atom.Lines {
				for i := range cells {
					if coveredByAny(cells[i].Source, ranges) {
						cells[i].Style.Class = "selection"
					}
				}
			}
		}
		return db
	}
}

// coveredByAny reports whether src falls within [begin, end) of any
// range. end is exclusive, matching Selection.End()'s "one past the
// last covered cell" convention, so a caret (Begin()..End() spanning
// exactly one cell) highlights exactly that cell, not the one after it.
func coveredByAny(src coord.Buffer, ranges [][2]coord.Buffer) bool {
	for _, r := range ranges {
		if !src.Less(r[0]) && src.Less(r[1]) {
			return true
		}
	}
	return false
}
