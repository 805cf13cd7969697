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

import "fmt"

// StatusLine renders spec.md §4.9/§6's status format:
// "<name>[ [+]] -- L,C -- N sel -- [[Insert]]", with line/column
// one-based.
func (w *Window) StatusLine() string {
	modified := ""
	if w.buf.IsModified() {
		modified = " [+]"
	}
	pos := w.buf.LineAndColumnAt(w.primary().Last)
	insert := ""
	if w.activeInserter != nil {
		insert = "[Insert]"
	}
	return fmt.Sprintf("%s%s -- %d,%d -- %d sel -- %s",
		w.buf.Name(), modified, pos.Line+1, pos.Column+1, len(w.selections), insert)
}
