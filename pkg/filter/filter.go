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

// Package filter implements spec.md §4.2's display filters and §4.8's
// FilterRegistry. gott never separated "compute colors" from "render
// row" (editor/highlighter.go bakes colors directly into Row.Colors);
// this package generalizes that into pure DisplayBuffer -> DisplayBuffer
// transforms a Window can install and remove by name at runtime.
package filter

import "github.com/corewin/corewin/pkg/display"

// Func is a named display transform: spec.md §4.2 defines a filter as a
// pure function from DisplayBuffer to DisplayBuffer, applied in
// registration order with invariants re-checked after each pass.
type Func func(*display.Buffer) *display.Buffer

// Target is the slice of Window a filter factory needs: enough to build
// a closure bound to this window's live selections and buffer name,
// without pkg/filter importing pkg/window (which imports pkg/filter).
type Target interface {
	Selections() []Selection
	BufferName() string
}

// Selection is the minimal shape highlight_selections needs from a live
// selection; pkg/window's selections satisfy it directly.
type Selection interface {
	BeginCoord() (line, col int)
	EndCoord() (line, col int)
}

// Factory builds a bound Func for one window, given filter parameters
// (spec.md §6: "add_filter_to_window(Window&, name, params)").
type Factory func(win Target, params map[string]string) Func

// Registry is the process-wide, install-time-only lookup of named
// filter factories (spec.md §5): "a window holds its own callable copy
// and is independent of the registry" after installation.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a Registry pre-populated with corewin's three
// built-in filters, named exactly as spec.md §4.2 calls them.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("expand_tabs", expandTabsFactory)
	r.Register("highlight_selections", highlightSelectionsFactory)
	r.Register("hlcpp", hlcppFactory)
	return r
}

// Register adds or replaces a named factory.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Build locates name's factory and returns its bound Func, or
// (nil, false) if name is unknown.
func (r *Registry) Build(name string, win Target, params map[string]string) (Func, bool) {
	f, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return f(win, params), true
}
