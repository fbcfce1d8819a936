// Where: cli/internal/config/project.go
// What: Project marker discovery and project file loading.
// Why: Every command is gated on running inside a Ledgerbox checkout.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledgerbox/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// Project is the parsed ledgerbox.yml plus its resolved directory.
// All publish-related fields are optional defaults; flags and environment
// variables override them.
type Project struct {
	Dir string `yaml:"-"`

	Image        string   `yaml:"image,omitempty"`
	RegistryUser string   `yaml:"registry_user,omitempty"`
	Service      string   `yaml:"service,omitempty"`
	Platforms    []string `yaml:"platforms,omitempty"`
}

// FindProjectDir locates the nearest ancestor directory containing
// ledgerbox.yml, starting from start.
func FindProjectDir(start string) (string, bool) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	dir := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(dir, meta.MarkerFile)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// LoadProject reads and validates ledgerbox.yml in the given directory.
// The service name falls back to the stock compose service.
func LoadProject(dir string) (Project, error) {
	path := filepath.Join(dir, meta.MarkerFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validateProjectFile(content); err != nil {
		return Project{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	project := Project{}
	if err := yaml.Unmarshal(content, &project); err != nil {
		return Project{}, fmt.Errorf("parse %s: %w", path, err)
	}
	project.Dir = dir
	if strings.TrimSpace(project.Service) == "" {
		project.Service = meta.ServiceName
	}
	return project, nil
}
