package bootstrap

import (
	"log/slog"

	"github.com/derhamderham/diligence/config"
	"github.com/derhamderham/diligence/store"
	"github.com/derhamderham/diligence/store/taskstore"
)

// BootstrapResult contains all initialized application components.
type BootstrapResult struct {
	Cfg       *config.Config
	LogLevel  slog.Level
	TaskStore *taskstore.TaskStore
	Store     store.Store
	Query     string
}

// Bootstrap orchestrates initialization for a parsed command line.
// config.InitPaths must have succeeded before calling it.
func Bootstrap(inv Invocation) (*BootstrapResult, error) {
	// Phase 1: Configuration and logging
	cfg, err := LoadConfig(inv.FlagArgs)
	if err != nil {
		return nil, err
	}
	logLevel := InitLogging(cfg)

	slog.Debug("resolved paths",
		"project_root", config.GetProjectRoot(),
		"config_dir", config.GetConfigDir(),
		"task_dir", config.GetTaskDir())

	// Phase 2: Store initialization
	taskStore, genericStore, err := InitStores()
	if err != nil {
		return nil, err
	}

	return &BootstrapResult{
		Cfg:       cfg,
		LogLevel:  logLevel,
		TaskStore: taskStore,
		Store:     genericStore,
		Query:     inv.Query(),
	}, nil
}
