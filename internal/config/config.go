package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DirName is the directory holding config.json, both under $HOME and in a repo.
const DirName = ".todo"

// Config holds application configuration.
type Config struct {
	// DBPath is the SQLite database file. Relative paths resolve against the working directory.
	DBPath string `json:"db_path,omitempty"`

	// LogFile receives all log output. The TUI owns the terminal, so logs never go to stderr.
	LogFile string `json:"log_file,omitempty"`

	// LogLevel is a charmbracelet/log level name: debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// BusyTimeoutMS is passed to SQLite's busy_timeout pragma.
	BusyTimeoutMS int `json:"busy_timeout_ms,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
// LogFile has no default here; callers place it under the global config dir.
func DefaultConfig() *Config {
	return &Config{
		DBPath:        "./todo.db",
		LogLevel:      "info",
		BusyTimeoutMS: 5000,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.todo.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithRepo loads configuration from both global (~/.todo) and repo (.todo) directories.
// Repo config is found by walking upward from startDir to find the nearest .todo/config.json.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	return Merge(Merge(DefaultConfig(), global), repo), nil
}

// FindRepoConfig walks upward from startDir to find the nearest .todo/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	if startDir == "" {
		return ""
	}
	dir := startDir
	for {
		configPath := filepath.Join(dir, DirName, "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.DBPath = firstNonEmpty(overlay.DBPath, base.DBPath)
	result.LogFile = firstNonEmpty(overlay.LogFile, base.LogFile)
	result.LogLevel = firstNonEmpty(overlay.LogLevel, base.LogLevel)

	result.BusyTimeoutMS = overlay.BusyTimeoutMS
	if result.BusyTimeoutMS == 0 {
		result.BusyTimeoutMS = base.BusyTimeoutMS
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return strings.TrimSpace(a)
	}
	return strings.TrimSpace(b)
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
