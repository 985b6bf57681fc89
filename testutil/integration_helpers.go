package testutil

import (
	"testing"

	"github.com/derhamderham/diligence/config"
)

// TestEnv isolates config paths and provides a task directory for tests that
// go through config and bootstrap.
type TestEnv struct {
	TaskDir   string
	ConfigDir string
	t         *testing.T
}

// NewTestEnv points XDG_CONFIG_HOME and the working directory at temp dirs so
// tests never read a real config, and creates an empty task directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome) // t.Setenv handles restore on cleanup
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Chdir(t.TempDir()) // project root resolves here, away from any real .diligence dir
	config.ResetPathManager()
	t.Cleanup(config.ResetPathManager)

	if err := config.InitPaths(); err != nil {
		t.Fatalf("init paths: %v", err)
	}

	return &TestEnv{
		TaskDir:   t.TempDir(),
		ConfigDir: config.GetConfigDir(),
		t:         t,
	}
}

// AddTask writes a task file into the environment's task directory.
func (e *TestEnv) AddTask(id string, fx TaskFixture) {
	e.t.Helper()
	if err := CreateTestTask(e.TaskDir, id, fx); err != nil {
		e.t.Fatalf("create task %s: %v", id, err)
	}
}

// AddSections writes sections.yaml into the task directory.
func (e *TestEnv) AddSections(pairs ...[2]string) {
	e.t.Helper()
	if err := WriteSections(e.TaskDir, pairs...); err != nil {
		e.t.Fatalf("write sections: %v", err)
	}
}

// FlagArgs returns command line flags that point the store at TaskDir.
func (e *TestEnv) FlagArgs(extra ...string) []string {
	return append([]string{"--dir", e.TaskDir}, extra...)
}
