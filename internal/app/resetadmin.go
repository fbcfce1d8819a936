// Where: cli/internal/app/resetadmin.go
// What: Reset-admin command implementation.
// Why: Coordinate the backup, delete, and restart flow with recovery.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ledgerbox/cli/internal/credentials"
	"github.com/ledgerbox/cli/internal/docker"
	"github.com/ledgerbox/cli/internal/ui"
)

// restartSettleDelay is how long the service gets to regenerate its
// credential file after a restart.
const restartSettleDelay = 3 * time.Second

// runResetAdmin executes the 'reset-admin' command. It backs up and deletes
// the credential state file, restarts the service so it mints fresh admin
// credentials, and displays the result. If the restart fails after the
// delete, the file is restored from the backup just written.
func runResetAdmin(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	project, err := resolveProject(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	if deps.Reset.Detector == nil || deps.Reset.Restarter == nil {
		fmt.Fprintln(out, "reset-admin: not implemented")
		return 1
	}

	credPath := credentials.Path(project.Dir)
	if !credentials.Exists(credPath) {
		console.Info("No credential file found.")
		console.ItemPlain(fmt.Sprintf("Ledgerbox will create fresh admin credentials when the %q service next starts.", project.Service))
		return 0
	}

	if lines, err := credentials.AdminLines(credPath); err == nil && len(lines) > 0 {
		console.Header("🔑", "Current admin credentials:")
		for _, line := range lines {
			console.ItemPlain(line)
		}
	}

	if !cli.ResetAdmin.Yes {
		confirmed, err := confirm(deps, "Reset admin credentials?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted. Nothing was changed.")
			return 0
		}
	}

	// Resolve the compose command form before touching the file, so a
	// missing compose installation never leaves the service credential-less.
	capability := deps.Reset.Detector.Detect()
	if capability == docker.ComposeAbsent {
		return exitWithError(out, fmt.Errorf("neither 'docker compose' nor 'docker-compose' is available"))
	}

	backupPath, err := credentials.Backup(credPath, nowFunc(deps)())
	if err != nil {
		return exitWithError(out, err)
	}
	console.Success("Backup written: " + backupPath)

	if err := credentials.Remove(credPath); err != nil {
		return exitWithError(out, err)
	}

	console.Info(fmt.Sprintf("Restarting service %q via %s...", project.Service, capability))
	if err := deps.Reset.Restarter.Restart(project.Dir, project.Service, capability); err != nil {
		if restoreErr := credentials.Restore(backupPath, credPath); restoreErr != nil {
			fmt.Fprintf(out, "restore from backup failed: %v\n", restoreErr)
		} else {
			console.Warn("Restart failed; the credential file was restored from the backup.")
		}
		return exitWithError(out, fmt.Errorf("restart service: %w", err))
	}

	sleepFunc(deps)(restartSettleDelay)

	if credentials.Exists(credPath) {
		if lines, err := credentials.AdminLines(credPath); err == nil && len(lines) > 0 {
			console.Header("🔑", "New admin credentials:")
			for _, line := range lines {
				console.ItemPlain(line)
			}
		}
	} else {
		console.Warn("The credential file has not been recreated yet.")
		console.ItemPlain(fmt.Sprintf("Check the service logs: %s logs %s", capability, project.Service))
	}

	if deps.Client != nil {
		if state, err := docker.ServiceContainerState(context.Background(), deps.Client, project.Service); err == nil && state != "" {
			console.Item("Service", state)
		}
	}

	console.Success("Admin credentials reset.")
	return 0
}
