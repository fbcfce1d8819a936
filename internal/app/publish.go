// Where: cli/internal/app/publish.go
// What: Publish command implementation.
// Why: Resolve build configuration and run one multi-platform buildx build.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ledgerbox/cli/internal/config"
	"github.com/ledgerbox/cli/internal/docker"
	"github.com/ledgerbox/cli/internal/meta"
	"github.com/ledgerbox/cli/internal/publish"
	"github.com/ledgerbox/cli/internal/ui"
)

// runPublish executes the 'publish' command which builds the service image
// for the configured platforms and pushes it to the registry (or loads it
// into the local image store with --no-push).
func runPublish(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	project, err := resolveProject(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	if deps.Publish.Toolchain == nil || deps.Publish.Builder == nil {
		fmt.Fprintln(out, "publish: not implemented")
		return 1
	}

	if !deps.Publish.Toolchain.HasDocker() {
		return exitWithError(out, fmt.Errorf("docker is not installed (https://docs.docker.com/get-docker/)"))
	}
	if !deps.Publish.Toolchain.HasBuildx() {
		return exitWithError(out, fmt.Errorf("docker buildx is not available; install the buildx plugin"))
	}

	globalCfg, err := config.LoadGlobalConfig()
	if err != nil {
		return exitWithError(out, err)
	}

	cfg, err := publish.Resolve(publish.Inputs{
		ProjectUser:      project.RegistryUser,
		ProjectImage:     project.Image,
		ProjectPlatforms: project.Platforms,
		RememberedUser:   globalCfg.RegistryUser,
		Env:              os.Getenv,
		Flags: publish.Flags{
			User:      cli.Publish.User,
			Image:     cli.Publish.Image,
			Version:   cli.Publish.Version,
			Platforms: cli.Publish.Platforms,
			Tags:      cli.Publish.Tag,
			NoPush:    cli.Publish.NoPush,
			NoCache:   cli.Publish.NoCache,
		},
	})
	if err != nil {
		return exitWithError(out, err)
	}

	if deps.Publish.Bootstrapper != nil {
		if err := deps.Publish.Bootstrapper.Ensure(meta.BuilderName); err != nil {
			console.Warn(fmt.Sprintf("builder %q bootstrap failed: %v", meta.BuilderName, err))
		}
	}

	platforms := cfg.Platforms
	if !cfg.Push && len(platforms) > 1 {
		console.Warn(fmt.Sprintf("--no-push loads into the local image store, which supports a single platform; using %s", platforms[0]))
		platforms = platforms[:1]
	}

	tags := cfg.Tags()
	opts := docker.BuildOptions{
		ProjectDir: project.Dir,
		Platforms:  platforms,
		Tags:       tags,
		NoCache:    cfg.NoCache,
		Push:       cfg.Push,
		Verbose:    cli.Publish.Verbose,
	}
	if err := deps.Publish.Builder.Build(opts); err != nil {
		return exitWithError(out, err)
	}

	if cfg.Push {
		console.Success("Published:")
	} else {
		console.Success("Built:")
	}
	for _, tag := range tags {
		console.ItemPlain(tag)
	}
	if cfg.Push {
		console.Info("Pull with: docker pull " + tags[0])
	}

	rememberPublish(globalCfg, project.Dir, cfg, nowFunc(deps)())
	return 0
}

// rememberPublish records the publish in the global config. Best effort;
// a read-only home directory must not fail the command.
func rememberPublish(globalCfg config.GlobalConfig, projectDir string, cfg publish.Config, at time.Time) {
	globalCfg.RegistryUser = cfg.RegistryUser
	globalCfg.LastPublished[projectDir] = config.PublishRecord{
		Version: cfg.Version,
		User:    cfg.RegistryUser,
		At:      at.UTC().Format(time.RFC3339),
	}
	_ = config.SaveGlobalConfig(globalCfg)
}
