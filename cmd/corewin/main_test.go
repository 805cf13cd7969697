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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corewin/corewin/config"
	"github.com/corewin/corewin/pkg/filter"
)

func TestNewSessionLoadsFileContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	if err := os.WriteFile(path, []byte("abc\ndef"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	s := newSession(path, config.Default(), filter.NewRegistry())
	if got := s.win.Buffer().String(); got != "abc\ndef" {
		t.Fatalf("buffer content = %q, want %q", got, "abc\ndef")
	}
	if s.win.Buffer().Name() != path {
		t.Fatalf("buffer name = %q, want %q", s.win.Buffer().Name(), path)
	}
}

func TestNewSessionMissingFileStartsEmpty(t *testing.T) {
	s := newSession("", config.Default(), filter.NewRegistry())
	if got := s.win.Buffer().String(); got != "" {
		t.Fatalf("buffer content = %q, want empty", got)
	}
	if s.win.Buffer().Name() != "[No Name]" {
		t.Fatalf("buffer name = %q, want [No Name]", s.win.Buffer().Name())
	}
}

func TestStatusForIncludesSessionID(t *testing.T) {
	s := newSession("", config.Default(), filter.NewRegistry())
	status := statusFor(s)
	if !strings.Contains(status, s.id.String()[:8]) {
		t.Fatalf("status %q does not contain short id %q", status, s.id.String()[:8])
	}
	if !strings.Contains(status, "[No Name]") {
		t.Fatalf("status %q does not contain buffer name", status)
	}
}
