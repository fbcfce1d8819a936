// Where: cli/internal/app/deps.go
// What: Command dependency interfaces and runner-backed adapters.
// Why: Centralize construction so handlers stay mockable.
package app

import (
	"context"

	"github.com/ledgerbox/cli/internal/docker"
)

// ResetDeps groups the collaborators of the reset-admin command.
type ResetDeps struct {
	Detector  ComposeDetector
	Restarter Restarter
}

// PublishDeps groups the collaborators of the publish command.
type PublishDeps struct {
	Toolchain    Toolchain
	Bootstrapper BuilderBootstrapper
	Builder      ImageBuilder
}

// ComposeDetector reports which compose command form is available.
type ComposeDetector interface {
	Detect() docker.ComposeCapability
}

// Restarter restarts a compose service in a project directory.
type Restarter interface {
	Restart(projectDir, service string, capability docker.ComposeCapability) error
}

// Toolchain reports availability of the docker binary and its buildx extension.
type Toolchain interface {
	HasDocker() bool
	HasBuildx() bool
}

// BuilderBootstrapper ensures a named buildx builder instance is usable.
type BuilderBootstrapper interface {
	Ensure(name string) error
}

// ImageBuilder runs one buildx build invocation.
type ImageBuilder interface {
	Build(opts docker.BuildOptions) error
}

// NewComposeDetector creates a ComposeDetector probing via the runner.
func NewComposeDetector(runner docker.CommandRunner) ComposeDetector {
	return detectorFunc(func() docker.ComposeCapability {
		return docker.DetectCompose(context.Background(), runner)
	})
}

type detectorFunc func() docker.ComposeCapability

func (fn detectorFunc) Detect() docker.ComposeCapability {
	return fn()
}

// NewRestarter creates a Restarter backed by the compose CLI.
func NewRestarter(runner docker.CommandRunner) Restarter {
	return restarterFunc(func(projectDir, service string, capability docker.ComposeCapability) error {
		return docker.RestartService(context.Background(), runner, docker.RestartOptions{
			ProjectDir: projectDir,
			Service:    service,
			Capability: capability,
		})
	})
}

type restarterFunc func(projectDir, service string, capability docker.ComposeCapability) error

func (fn restarterFunc) Restart(projectDir, service string, capability docker.ComposeCapability) error {
	return fn(projectDir, service, capability)
}

// NewToolchain creates a Toolchain probing the PATH and the buildx plugin.
func NewToolchain(runner docker.CommandRunner) Toolchain {
	return toolchainImpl{runner: runner}
}

type toolchainImpl struct {
	runner docker.CommandRunner
}

func (t toolchainImpl) HasDocker() bool {
	return docker.HasDocker()
}

func (t toolchainImpl) HasBuildx() bool {
	return docker.HasBuildx(context.Background(), t.runner)
}

// NewBootstrapper creates a BuilderBootstrapper backed by buildx.
func NewBootstrapper(runner docker.CommandRunner) BuilderBootstrapper {
	return bootstrapperFunc(func(name string) error {
		return docker.EnsureBuilder(context.Background(), runner, name)
	})
}

type bootstrapperFunc func(name string) error

func (fn bootstrapperFunc) Ensure(name string) error {
	return fn(name)
}

// NewImageBuilder creates an ImageBuilder backed by buildx.
func NewImageBuilder(runner docker.CommandRunner) ImageBuilder {
	return builderFunc(func(opts docker.BuildOptions) error {
		return docker.BuildImage(context.Background(), runner, opts)
	})
}

type builderFunc func(opts docker.BuildOptions) error

func (fn builderFunc) Build(opts docker.BuildOptions) error {
	return fn(opts)
}
