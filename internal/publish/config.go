// Where: cli/internal/publish/config.go
// What: Publish configuration resolution and tag assembly.
// Why: Keep the defaults/env/flags override chain pure and testable.
package publish

import (
	"fmt"
	"strings"

	"github.com/ledgerbox/cli/internal/constants"
	"github.com/ledgerbox/cli/internal/meta"
)

// Config is the fully resolved build configuration consumed by one
// buildx invocation. It is never persisted.
type Config struct {
	RegistryUser string
	Image        string
	Version      string
	Platforms    []string
	ExtraTags    []string
	Push         bool
	NoCache      bool
}

// Flags carries the raw CLI flag values for the publish command.
// Empty strings mean "not given".
type Flags struct {
	User      string
	Image     string
	Version   string
	Platforms string
	Tags      []string
	NoPush    bool
	NoCache   bool
}

// Inputs gathers every configuration source, weakest first: built-in
// defaults, project file, remembered global config, environment, flags.
type Inputs struct {
	ProjectUser      string
	ProjectImage     string
	ProjectPlatforms []string
	RememberedUser   string
	Env              func(string) string
	Flags            Flags
}

// Resolve layers the sources into one Config. Later sources override
// earlier ones field by field.
func Resolve(in Inputs) (Config, error) {
	env := in.Env
	if env == nil {
		env = func(string) string { return "" }
	}

	cfg := Config{
		Image:     meta.DefaultImage,
		Version:   meta.DefaultVersion,
		Platforms: SplitPlatforms(meta.DefaultPlatforms),
		Push:      true,
	}

	if in.ProjectImage != "" {
		cfg.Image = in.ProjectImage
	}
	if len(in.ProjectPlatforms) > 0 {
		cfg.Platforms = normalizePlatforms(in.ProjectPlatforms)
	}
	cfg.RegistryUser = firstNonEmpty(in.Flags.User, env(constants.EnvRegistryUser), in.ProjectUser, in.RememberedUser)

	if value := env(constants.EnvImage); value != "" {
		cfg.Image = value
	}
	if value := env(constants.EnvVersion); value != "" {
		cfg.Version = value
	}
	if value := env(constants.EnvPlatforms); value != "" {
		cfg.Platforms = SplitPlatforms(value)
	}

	if in.Flags.Image != "" {
		cfg.Image = in.Flags.Image
	}
	if in.Flags.Version != "" {
		cfg.Version = in.Flags.Version
	}
	if in.Flags.Platforms != "" {
		cfg.Platforms = SplitPlatforms(in.Flags.Platforms)
	}
	cfg.ExtraTags = append([]string{}, in.Flags.Tags...)
	cfg.Push = !in.Flags.NoPush
	cfg.NoCache = in.Flags.NoCache

	if cfg.RegistryUser == "" {
		return Config{}, fmt.Errorf("registry user is not set (use --user or %s)", constants.EnvRegistryUser)
	}
	if len(cfg.Platforms) == 0 {
		return Config{}, fmt.Errorf("platform list is empty")
	}
	return cfg, nil
}

// Tags returns the full image reference list: the version tag first,
// then one reference per extra tag in the order given.
func (c Config) Tags() []string {
	tags := make([]string, 0, 1+len(c.ExtraTags))
	tags = append(tags, c.ref(c.Version))
	for _, tag := range c.ExtraTags {
		tags = append(tags, c.ref(tag))
	}
	return tags
}

func (c Config) ref(tag string) string {
	return fmt.Sprintf("%s/%s:%s", c.RegistryUser, c.Image, tag)
}

// SplitPlatforms parses a comma-separated platform list, preserving
// order and dropping blanks and duplicates.
func SplitPlatforms(value string) []string {
	return normalizePlatforms(strings.Split(value, ","))
}

func normalizePlatforms(raw []string) []string {
	seen := map[string]bool{}
	var platforms []string
	for _, part := range raw {
		platform := strings.TrimSpace(part)
		if platform == "" || seen[platform] {
			continue
		}
		seen[platform] = true
		platforms = append(platforms, platform)
	}
	return platforms
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
