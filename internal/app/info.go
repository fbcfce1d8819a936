// Where: cli/internal/app/info.go
// What: Info view for config/state output.
// Why: Give operators a quick view of tooling and project status.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ledgerbox/cli/internal/config"
	"github.com/ledgerbox/cli/internal/credentials"
	"github.com/ledgerbox/cli/internal/docker"
	"github.com/ledgerbox/cli/internal/meta"
	"github.com/ledgerbox/cli/internal/ui"
	"github.com/ledgerbox/cli/internal/version"
)

// runInfo displays configuration details and current project status.
// Used by Run when lbx is invoked without arguments.
func runInfo(_ CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	console.Header("⚙️ ", "Config")
	console.Item("version", version.GetVersion())
	if path, err := config.GlobalConfigPath(); err == nil {
		console.Item("path", path)
	}

	console.Header("🐳", "Docker")
	if deps.Client != nil && docker.PingDaemon(context.Background(), deps.Client) {
		console.Item("daemon", "reachable")
	} else {
		console.Item("daemon", "unreachable")
	}
	if deps.Reset.Detector != nil {
		console.Item("compose", deps.Reset.Detector.Detect())
	}
	if deps.Publish.Toolchain != nil {
		if deps.Publish.Toolchain.HasBuildx() {
			console.Item("buildx", "available")
		} else {
			console.Item("buildx", "missing")
		}
	}

	project, err := resolveProject(deps)
	if err != nil {
		console.Info("Not inside a Ledgerbox project.")
		console.ItemPlain(fmt.Sprintf("Run lbx from a directory containing %s.", meta.MarkerFile))
		return 0
	}

	console.Header("📦", "Project")
	console.Item("dir", project.Dir)
	console.Item("service", project.Service)
	if project.Image != "" {
		console.Item("image", project.Image)
	}
	if credentials.Exists(credentials.Path(project.Dir)) {
		console.Item("credentials", "present")
	} else {
		console.Item("credentials", "absent")
	}

	if globalCfg, err := config.LoadGlobalConfig(); err == nil {
		if record, ok := globalCfg.LastPublished[project.Dir]; ok {
			console.Header("🚀", "Last publish")
			console.Item("version", record.Version)
			console.Item("user", record.User)
			console.Item("at", record.At)
		}
	}

	return 0
}
