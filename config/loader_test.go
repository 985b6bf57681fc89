package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setupConfigEnv points the user and project config dirs at fresh temp dirs
// and returns the project root.
func setupConfigEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)

	ResetPathManager()
	t.Cleanup(ResetPathManager)
	if err := InitPaths(); err != nil {
		t.Fatalf("InitPaths() error = %v", err)
	}
	return project
}

func writeProjectConfig(t *testing.T, content string) {
	t.Helper()
	dir := GetProjectConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setupConfigEnv(t)

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error", cfg.Logging.Level)
	}
	if !cfg.Search.IncludeCompleted {
		t.Error("Search.IncludeCompleted should default to true")
	}
	if cfg.Render.Style != "auto" || cfg.Render.WordWrap != 100 {
		t.Errorf("Render = %+v, want auto/100", cfg.Render)
	}
	if GetTaskDir() != GetDefaultTaskDir() {
		t.Errorf("GetTaskDir() = %q, want default %q", GetTaskDir(), GetDefaultTaskDir())
	}
}

func TestLoadConfigFromProjectFile(t *testing.T) {
	setupConfigEnv(t)
	writeProjectConfig(t, `logging:
  level: debug
tasks:
  dir: /srv/tasks
search:
  includeCompleted: false
render:
  style: notty
  wordWrap: 60
`)

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Tasks.Dir != "/srv/tasks" || GetTaskDir() != "/srv/tasks" {
		t.Errorf("task dir = %q / %q, want /srv/tasks", cfg.Tasks.Dir, GetTaskDir())
	}
	if cfg.Search.IncludeCompleted || GetIncludeCompleted() {
		t.Error("includeCompleted should be false")
	}
	if GetRenderStyle() != "notty" || GetWordWrap() != 60 {
		t.Errorf("render = %q/%d, want notty/60", GetRenderStyle(), GetWordWrap())
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	setupConfigEnv(t)
	writeProjectConfig(t, "logging:\n  level: info\nrender:\n  style: dark\n")
	t.Setenv("DILIGENCE_RENDER_STYLE", "light")

	cfg, err := LoadConfig([]string{"--log-level", "warn", "--include-completed=false", "--dir=/tmp/x"})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("flag should beat file: Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Render.Style != "light" {
		t.Errorf("env should beat file: Render.Style = %q", cfg.Render.Style)
	}
	if cfg.Search.IncludeCompleted {
		t.Error("flag should disable includeCompleted")
	}
	if cfg.Tasks.Dir != "/tmp/x" {
		t.Errorf("Tasks.Dir = %q, want /tmp/x", cfg.Tasks.Dir)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	setupConfigEnv(t)
	writeProjectConfig(t, "logging: [unclosed\n")

	if _, err := LoadConfig(nil); err == nil {
		t.Error("expected error for malformed config.yaml")
	}
}

func TestGetWordWrapClampsNegative(t *testing.T) {
	setupConfigEnv(t)
	writeProjectConfig(t, "render:\n  wordWrap: -5\n")

	if _, err := LoadConfig(nil); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got := GetWordWrap(); got != 0 {
		t.Errorf("GetWordWrap() = %d, want 0", got)
	}
}

func TestGenerateRandomID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := GenerateRandomID()
		if len(id) != 6 {
			t.Fatalf("GenerateRandomID() = %q, want 6 chars", id)
		}
		for _, r := range id {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				t.Fatalf("GenerateRandomID() = %q contains %q", id, r)
			}
		}
		seen[id] = true
	}
	if len(seen) < 45 {
		t.Errorf("only %d distinct ids out of 50", len(seen))
	}
}
