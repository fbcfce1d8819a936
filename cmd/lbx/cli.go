// Where: cli/cmd/lbx/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/ledgerbox/cli/internal/app"
	"github.com/ledgerbox/cli/internal/docker"
)

var (
	getwd           = os.Getwd
	newDockerClient = docker.NewClient
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// It initializes the Docker client and the runner-backed command adapters.
// Returns the dependencies, a closer for cleanup, and any initialization error.
func buildDependencies() (app.Dependencies, io.Closer, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	client, err := newDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	runner := docker.ExecRunner{}
	deps := app.Dependencies{
		WorkDir: workDir,
		Out:     os.Stdout,
		Client:  client,
		Reset: app.ResetDeps{
			Detector:  app.NewComposeDetector(runner),
			Restarter: app.NewRestarter(runner),
		},
		Publish: app.PublishDeps{
			Toolchain:    app.NewToolchain(runner),
			Bootstrapper: app.NewBootstrapper(runner),
			Builder:      app.NewImageBuilder(runner),
		},
	}

	return deps, asCloser(client), nil
}

// asCloser attempts to cast the Docker client to an io.Closer.
// The SDK client implements Close; the interface keeps tests free of it.
func asCloser(client docker.Client) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
