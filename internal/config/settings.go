package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"aruba/internal/sandbox"
)

const (
	// DefaultSettingsPath is looked up in the working directory
	DefaultSettingsPath = ".aruba.json"

	// SettingsEnv points at an alternative settings file
	SettingsEnv = "ARUBA_SETTINGS"
)

// Settings represents the structure of .aruba.json
type Settings struct {
	AnnounceCmd    *bool       `json:"announce_cmd,omitempty"`
	AnnounceStderr *bool       `json:"announce_stderr,omitempty"`
	AnnounceStdout *bool       `json:"announce_stdout,omitempty"`
	Debug          *bool       `json:"debug,omitempty"`
	Env            StringArray `json:"env,omitempty"`
	MaxLogFiles    *int        `json:"max_log_files,omitempty"`
	Root           string      `json:"root,omitempty"`
	RubyBin        string      `json:"ruby_bin,omitempty"`
	RVMConfig      string      `json:"rvm_config,omitempty"`
	Shell          string      `json:"shell,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings reads settings from path, $ARUBA_SETTINGS or .aruba.json, in
// that order, then applies environment overrides.
// A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv(SettingsEnv)
	}
	if path == "" {
		path = DefaultSettingsPath
	}

	settings := &Settings{}
	data, err := os.ReadFile(ExpandPath(path))
	switch {
	case os.IsNotExist(err):
		// Not an error, use defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	default:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", path, err)
		}
	}

	settings.applyEnv()
	return settings, nil
}

// applyEnv lets ARUBA_* variables win over the file
func (s *Settings) applyEnv() {
	if v := os.Getenv("ARUBA_ROOT"); v != "" {
		s.Root = v
	}
	if v := os.Getenv("ARUBA_SHELL"); v != "" {
		s.Shell = v
	}
	if v := os.Getenv("ARUBA_RUBY"); v != "" {
		s.RubyBin = v
	}
	if s.RubyBin != "" {
		s.RubyBin = ExpandPath(s.RubyBin)
	}
}

// RootDir returns the sandbox root, defaulting to tmp/aruba
func (s *Settings) RootDir() string {
	if s.Root == "" {
		return sandbox.DefaultRoot
	}
	return ExpandPath(s.Root)
}

// RVMConfigPath returns the rvm alias file, defaulting to config/aruba-rvm.yml
func (s *Settings) RVMConfigPath() string {
	if s.RVMConfig == "" {
		return DefaultRVMConfigPath
	}
	return s.RVMConfig
}

// EnvPairs splits the configured KEY=VALUE entries. Entries without '=' are skipped.
func (s *Settings) EnvPairs() [][2]string {
	pairs := make([][2]string, 0, len(s.Env))
	for _, kv := range s.Env {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		pairs = append(pairs, [2]string{key, value})
	}
	return pairs
}

// BoolValue dereferences an optional flag
func BoolValue(b *bool) bool {
	return b != nil && *b
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return homeDir + path[1:]
		}
	}
	return path
}
