package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file looked up in the config directories.
const FileName = "dodge.yaml"

// LoadDodge loads Virus Dodge tuning.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
//
// An explicit customPath must exist and parse; the implicit locations are
// skipped silently when missing or broken.
func LoadDodge(customPath string) (DodgeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseDodge(data)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseDodge(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := ParseDodge(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath returns the first tuning file that exists in the implicit
// search locations, or "" when only the embedded default applies.
func ResolvePath() string {
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if user := userConfigPath(FileName); user != "" {
		paths = append(paths, user)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// ParseDodge decodes YAML on top of the hardcoded defaults, so a file only
// needs the keys it changes, and validates the result.
func ParseDodge(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
