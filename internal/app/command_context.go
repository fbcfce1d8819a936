// Where: cli/internal/app/command_context.go
// What: Shared helpers for CLI commands.
// Why: Reduce duplicated project resolution and error exits across commands.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/ledgerbox/cli/internal/config"
	"github.com/ledgerbox/cli/internal/meta"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// resolveProject locates the project root from the working directory and
// loads ledgerbox.yml. Commands that mutate project state are gated on it.
func resolveProject(deps Dependencies) (config.Project, error) {
	start := deps.WorkDir
	if start == "" {
		start = "."
	}
	dir, ok := config.FindProjectDir(start)
	if !ok {
		return config.Project{}, fmt.Errorf("not inside a Ledgerbox project (%s not found)", meta.MarkerFile)
	}
	return config.LoadProject(dir)
}

func nowFunc(deps Dependencies) func() time.Time {
	if deps.Now != nil {
		return deps.Now
	}
	return time.Now
}

func sleepFunc(deps Dependencies) func(time.Duration) {
	if deps.Sleep != nil {
		return deps.Sleep
	}
	return time.Sleep
}
