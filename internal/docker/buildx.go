// Where: cli/internal/docker/buildx.go
// What: Buildx builder bootstrap and build invocation.
// Why: Assemble one multi-platform build command in a consistent way.
package docker

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// BuildOptions contains configuration for a single buildx build invocation.
type BuildOptions struct {
	ProjectDir string
	Platforms  []string
	Tags       []string
	NoCache    bool
	Push       bool
	Verbose    bool
}

// EnsureBuilder makes sure a named buildx builder instance exists and is
// selected. Existing builders are switched to; missing ones are created.
func EnsureBuilder(ctx context.Context, runner CommandRunner, name string) error {
	if err := runner.RunQuiet(ctx, "", "docker", "buildx", "inspect", name); err == nil {
		return runner.RunQuiet(ctx, "", "docker", "buildx", "use", name)
	}
	return runner.RunQuiet(ctx, "", "docker", "buildx", "create", "--name", name, "--use")
}

// BuildArgs assembles the argv passed to docker for a buildx build.
// The build context is always the project root.
func BuildArgs(opts BuildOptions) []string {
	args := []string{"buildx", "build", "--platform", strings.Join(opts.Platforms, ",")}
	for _, tag := range opts.Tags {
		args = append(args, "-t", tag)
	}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	if opts.Push {
		args = append(args, "--push")
	} else {
		args = append(args, "--load")
	}
	return append(args, ".")
}

// BuildImage runs the assembled buildx build in the project directory.
func BuildImage(ctx context.Context, runner CommandRunner, opts BuildOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}

	args := BuildArgs(opts)
	if opts.Verbose {
		return runner.Run(ctx, opts.ProjectDir, "docker", args...)
	}
	output, err := runner.RunOutput(ctx, opts.ProjectDir, "docker", args...)
	if err != nil {
		if len(output) > 0 {
			_, _ = os.Stderr.Write(output)
		}
		return fmt.Errorf("buildx build failed: %w", err)
	}
	return nil
}
