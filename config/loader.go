package config

// Viper configuration loader: reads config.yaml from the project, user config and working directories

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from config.yaml
type Config struct {
	// Logging configuration
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging"`

	// Task directory configuration
	Tasks struct {
		Dir string `mapstructure:"dir"` // empty means <project root>/.diligence/tasks
	} `mapstructure:"tasks"`

	// Search configuration
	Search struct {
		IncludeCompleted bool `mapstructure:"includeCompleted"`
	} `mapstructure:"search"`

	// Result rendering configuration
	Render struct {
		Style    string `mapstructure:"style"`    // "auto", "dark", "light", "notty", ...
		WordWrap int    `mapstructure:"wordWrap"` // columns; 0 disables wrapping
	} `mapstructure:"render"`
}

var appConfig *Config

// LoadConfig loads configuration from config.yaml
// Priority order (first found wins): project config → user config → current directory (dev)
// Environment variables (DILIGENCE_*) and the given command line flags override file values.
// If config.yaml doesn't exist, it uses default values
func LoadConfig(args []string) (*Config, error) {
	// Reset viper to clear any previous configuration
	viper.Reset()

	viper.SetConfigName(configFileBase)
	viper.SetConfigType(configFileType)

	// Add search paths in priority order (first added = highest priority)
	for _, dir := range mustGetPathManager().ConfigSearchPaths() {
		viper.AddConfigPath(dir)
	}

	setDefaults()

	// Read the config file (if it exists)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	viper.SetEnvPrefix("DILIGENCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := bindFlags(args); err != nil {
		slog.Warn("failed to bind command line flags", "error", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}

	appConfig = cfg
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("logging.level", "error")
	viper.SetDefault("tasks.dir", "")
	viper.SetDefault("search.includeCompleted", true)
	viper.SetDefault("render.style", "auto")
	viper.SetDefault("render.wordWrap", 100)
}

// NewFlagSet returns the flag set shared by config binding and usage output.
func NewFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("diligence", pflag.ContinueOnError)
	flagSet.String("log-level", "", "Log level (debug, info, warn, error)")
	flagSet.String("dir", "", "Task directory (default <project root>/.diligence/tasks)")
	flagSet.String("style", "", "Result style (auto, dark, light, notty)")
	flagSet.Bool("include-completed", true, "Include completed tasks in results")
	flagSet.BoolP("version", "v", false, "Print version information")
	return flagSet
}

// flagKeys maps flag names to the config keys they override
var flagKeys = map[string]string{
	"log-level":         "logging.level",
	"dir":               "tasks.dir",
	"style":             "render.style",
	"include-completed": "search.includeCompleted",
}

// bindFlags binds supported command line flags to viper so they can override config values.
// Only flags that were actually given take precedence over the file.
func bindFlags(args []string) error {
	flagSet := NewFlagSet()
	flagSet.ParseErrorsWhitelist.UnknownFlags = true
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flagSet.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// GetConfig returns the loaded configuration
// If config hasn't been loaded yet, it loads it with no flag overrides
func GetConfig() *Config {
	if appConfig == nil {
		cfg, err := LoadConfig(nil)
		if err != nil {
			slog.Warn("failed to load config, using defaults", "error", err)
			setDefaults()
			cfg = &Config{}
			_ = viper.Unmarshal(cfg)
		}
		appConfig = cfg
	}
	return appConfig
}

// GetString is a convenience method to get a string value from config
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool is a convenience method to get a boolean value from config
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetInt is a convenience method to get an integer value from config
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetTaskDir returns the configured task directory, falling back to the
// project-local default
func GetTaskDir() string {
	if dir := strings.TrimSpace(viper.GetString("tasks.dir")); dir != "" {
		return dir
	}
	return GetDefaultTaskDir()
}

// GetIncludeCompleted reports whether completed tasks appear in results
func GetIncludeCompleted() bool {
	return viper.GetBool("search.includeCompleted")
}

// GetRenderStyle returns the glamour style name
func GetRenderStyle() string {
	style := strings.TrimSpace(viper.GetString("render.style"))
	if style == "" {
		return "auto"
	}
	return style
}

// GetWordWrap returns the render width, never negative
func GetWordWrap() int {
	width := viper.GetInt("render.wordWrap")
	if width < 0 {
		return 0
	}
	return width
}
