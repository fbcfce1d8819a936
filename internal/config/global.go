// Where: cli/internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.lbx/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledgerbox/cli/internal/constants"
	"github.com/ledgerbox/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.lbx/config.yaml global configuration.
// It remembers publish inputs across runs.
type GlobalConfig struct {
	Version       int                      `yaml:"version"`
	RegistryUser  string                   `yaml:"registry_user,omitempty"`
	LastPublished map[string]PublishRecord `yaml:"last_published,omitempty"`
}

// PublishRecord stores the last successful publish for a project directory.
type PublishRecord struct {
	Version string `yaml:"version"`
	User    string `yaml:"user"`
	At      string `yaml:"at"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:       1,
		LastPublished: map[string]PublishRecord{},
	}
}

// GlobalConfigPath returns the path to the global config file.
// LBX_CONFIG_DIR overrides the default ~/.lbx directory.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(constants.EnvConfigDir)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// LoadGlobalConfig reads the global config, returning defaults when the
// file does not exist yet.
func LoadGlobalConfig() (GlobalConfig, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return GlobalConfig{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, err
	}

	cfg := GlobalConfig{}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.LastPublished == nil {
		cfg.LastPublished = map[string]PublishRecord{}
	}
	return cfg, nil
}

// SaveGlobalConfig writes the global config, creating the directory on
// first use.
func SaveGlobalConfig(cfg GlobalConfig) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
