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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TabWidth != 8 {
		t.Fatalf("tab width = %d, want 8", cfg.TabWidth)
	}
	if len(cfg.DefaultFilters) != 2 {
		t.Fatalf("default filters = %d, want 2", len(cfg.DefaultFilters))
	}
	if got := cfg.DefaultFilters[0].Params["width"]; got != "8" {
		t.Fatalf("expand_tabs width param = %q, want %q", got, "8")
	}
}

func TestLoadThreadsTabWidthIntoExpandTabsParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corewin.toml")
	content := "tab_width = 4\n\n[[filters]]\nname = \"expand_tabs\"\n"
	if err := writeFile(path, content); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.DefaultFilters[0].Params["width"]; got != "4" {
		t.Fatalf("expand_tabs width param = %q, want %q", got, "4")
	}
}

func TestLoadDoesNotOverrideExplicitExpandTabsWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corewin.toml")
	content := "tab_width = 4\n\n[[filters]]\nname = \"expand_tabs\"\n[filters.params]\nwidth = \"2\"\n"
	if err := writeFile(path, content); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.DefaultFilters[0].Params["width"]; got != "2" {
		t.Fatalf("expand_tabs width param = %q, want %q (explicit param wins)", got, "2")
	}
}

func TestLoadOverridesTabWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corewin.toml")
	content := "tab_width = 4\n\n[[filters]]\nname = \"hlcpp\"\n"
	if err := writeFile(path, content); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TabWidth != 4 {
		t.Fatalf("tab width = %d, want 4", cfg.TabWidth)
	}
	if len(cfg.DefaultFilters) != 1 || cfg.DefaultFilters[0].Name != "hlcpp" {
		t.Fatalf("filters = %+v, want [{hlcpp}]", cfg.DefaultFilters)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corewin.toml")
	if err := writeFile(path, "tab_width = ["); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
