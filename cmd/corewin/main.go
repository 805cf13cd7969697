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

// Command corewin is a demo terminal front end wiring corebuf.Buffer,
// window.Window and a termbox-go renderer together; it exercises the
// core end to end but is not part of it (spec.md §1 scopes any
// user-facing command set and terminal renderer out of the core
// itself).
//
// Grounded on gott.go's main(): read files named on the command line
// into buffers, open a log file, run an event loop rendering through a
// Screen each iteration. corewin generalizes the single-buffer flow
// into one window per file, each assigned a uuid.UUID session id, and
// replaces gott's hardcoded two-line info/message bar with Window's own
// status_line plus a lipgloss-styled trailer.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/corewin/corewin/config"
	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/corebuf"
	"github.com/corewin/corewin/pkg/filter"
	"github.com/corewin/corewin/pkg/window"
)

// session pairs a Window with the bookkeeping cmd/corewin itself needs
// (a stable id for logging, since corebuf/window have no notion of
// "session" at all).
type session struct {
	id  uuid.UUID
	win *window.Window
}

func main() {
	logPath := filepath.Join(os.TempDir(), "corewin.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer f.Close()
	log.SetOutput(f)

	cfg, err := config.Load(filepath.Join(configDir(), "corewin.toml"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	registry := filter.NewRegistry()

	filenames := os.Args[1:]
	if len(filenames) == 0 {
		filenames = []string{""}
	}

	sessions := make([]*session, 0, len(filenames))
	for _, name := range filenames {
		sessions = append(sessions, newSession(name, cfg, registry))
	}

	r, err := newRenderer()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	defer r.Close()

	runEventLoop(r, sessions)
}

func newSession(filename string, cfg config.Config, registry *filter.Registry) *session {
	name := filename
	if name == "" {
		name = "[No Name]"
	}
	buf := corebuf.New(name)
	if filename != "" {
		if data, err := os.ReadFile(filename); err == nil {
			buf.LoadString(string(data))
		} else if !os.IsNotExist(err) {
			log.Printf("read %q: %v", filename, err)
		}
	}

	dims := coord.Display{Line: 24, Column: 80}
	w := window.New(buf, dims)
	for _, fc := range cfg.DefaultFilters {
		if err := w.AddFilterFromRegistry(registry, fc.Name, fc.Params); err != nil {
			log.Printf("add filter %q: %v", fc.Name, err)
		}
	}

	id := uuid.New()
	log.Printf("session %s opened %q", id, name)
	return &session{id: id, win: w}
}

func configDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func statusFor(s *session) string {
	return fmt.Sprintf("%s  [%s]", s.win.StatusLine(), s.id.String()[:8])
}
