// Where: cli/internal/docker/detect.go
// What: Tooling availability detection.
// Why: Resolve docker/buildx/compose capabilities once, then dispatch on the result.
package docker

import (
	"context"
	"os/exec"
)

// ComposeCapability identifies which compose command form is usable.
type ComposeCapability int

const (
	// ComposeAbsent means neither command form is available.
	ComposeAbsent ComposeCapability = iota
	// ComposeModern is the `docker compose` plugin.
	ComposeModern
	// ComposeLegacy is the standalone `docker-compose` binary.
	ComposeLegacy
)

// String returns the command form for display.
func (c ComposeCapability) String() string {
	switch c {
	case ComposeModern:
		return "docker compose"
	case ComposeLegacy:
		return "docker-compose"
	}
	return "absent"
}

var lookPath = exec.LookPath

// HasDocker reports whether the docker binary is on PATH.
func HasDocker() bool {
	_, err := lookPath("docker")
	return err == nil
}

// HasBuildx reports whether the buildx extension responds.
func HasBuildx(ctx context.Context, runner CommandRunner) bool {
	return runner.RunQuiet(ctx, "", "docker", "buildx", "version") == nil
}

// DetectCompose probes for the compose plugin first, then the legacy binary.
func DetectCompose(ctx context.Context, runner CommandRunner) ComposeCapability {
	if err := runner.RunQuiet(ctx, "", "docker", "compose", "version"); err == nil {
		return ComposeModern
	}
	if err := runner.RunQuiet(ctx, "", "docker-compose", "version"); err == nil {
		return ComposeLegacy
	}
	return ComposeAbsent
}
