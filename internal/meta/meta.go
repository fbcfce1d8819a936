// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project identity in one place instead of scattered literals.
package meta

const (
	// Project Identity
	AppName   = "lbx"
	Slug      = "ledgerbox"
	EnvPrefix = "LBX"

	// Project Layout
	MarkerFile     = "ledgerbox.yml"
	CredentialFile = "data/credentials.json"

	// Docker Resources
	ServiceName = "ledgerbox"
	BuilderName = "lbx-builder"

	// Publish Defaults
	DefaultImage     = "ledgerbox"
	DefaultVersion   = "latest"
	DefaultPlatforms = "linux/amd64,linux/arm64"

	// Directory Layout
	HomeDir = ".lbx"
)
