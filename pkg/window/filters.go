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
	"fmt"
	"strings"

	"github.com/corewin/corewin/pkg/filter"
)

// ErrFilterIDNotUnique is returned by AddFilter when id is already
// registered on this window (spec.md §7's single named error kind).
type ErrFilterIDNotUnique struct {
	ID string
}

func (e *ErrFilterIDNotUnique) Error() string {
	return fmt.Sprintf("window: filter id %q already registered", e.ID)
}

// AddFilter appends fn to the filter chain under id, failing if id is
// already present.
func (w *Window) AddFilter(id string, fn filter.Func) error {
	for _, nf := range w.filters {
		if nf.id == id {
			return &ErrFilterIDNotUnique{ID: id}
		}
	}
	w.filters = append(w.filters, namedFilter{id: id, fn: fn})
	w.rebuildDisplay()
	return nil
}

// AddFilterFromRegistry looks up name in reg, builds it bound to this
// window, and installs it under id == name (spec.md §6's
// add_filter_to_window: the registry is consulted only at install time;
// the window keeps its own bound copy from then on).
func (w *Window) AddFilterFromRegistry(reg *filter.Registry, name string, params map[string]string) error {
	fn, ok := reg.Build(name, w, params)
	if !ok {
		return fmt.Errorf("window: unknown filter %q", name)
	}
	return w.AddFilter(name, fn)
}

// RemoveFilter removes the first filter registered under id; a no-op if
// absent.
func (w *Window) RemoveFilter(id string) {
	for i, nf := range w.filters {
		if nf.id == id {
			w.filters = append(w.filters[:i:i], w.filters[i+1:]...)
			w.rebuildDisplay()
			return
		}
	}
}

// CompleteFilterID returns every registered filter id whose prefix of
// length cursorPos equals prefix[:cursorPos], in registration order.
func (w *Window) CompleteFilterID(prefix string, cursorPos int) []string {
	if cursorPos > len(prefix) {
		cursorPos = len(prefix)
	}
	want := prefix[:cursorPos]
	var out []string
	for _, nf := range w.filters {
		if strings.HasPrefix(nf.id, want) {
			out = append(out, nf.id)
		}
	}
	return out
}
