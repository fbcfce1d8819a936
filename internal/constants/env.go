// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Publisher Configuration
	EnvRegistryUser = "LBX_REGISTRY_USER"
	EnvImage        = "LBX_IMAGE"
	EnvVersion      = "LBX_VERSION"
	EnvPlatforms    = "LBX_PLATFORMS"

	// CLI Behavior
	EnvConfigDir   = "LBX_CONFIG_DIR"
	EnvInteractive = "LBX_INTERACTIVE"
)
