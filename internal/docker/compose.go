// Where: cli/internal/docker/compose.go
// What: Compose restart helpers and SDK container queries.
// Why: Restart the service via whichever compose form exists and report its state.
package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

const composeServiceLabel = "com.docker.compose.service"

// Client defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type Client interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	Ping(ctx context.Context) (types.Ping, error)
}

// RestartOptions describes a compose service restart.
type RestartOptions struct {
	ProjectDir string
	Service    string
	Capability ComposeCapability
}

// RestartService restarts a compose service using the detected command form.
// ComposeAbsent is an error; callers are expected to detect before mutating.
func RestartService(ctx context.Context, runner CommandRunner, opts RestartOptions) error {
	switch opts.Capability {
	case ComposeModern:
		return runner.Run(ctx, opts.ProjectDir, "docker", "compose", "restart", opts.Service)
	case ComposeLegacy:
		return runner.Run(ctx, opts.ProjectDir, "docker-compose", "restart", opts.Service)
	}
	return fmt.Errorf("neither 'docker compose' nor 'docker-compose' is available")
}

// ServiceContainerState returns the state of the first container labeled
// with the given compose service name, or "" when no such container exists.
func ServiceContainerState(ctx context.Context, client Client, service string) (string, error) {
	labelFilter := filters.NewArgs()
	labelFilter.Add("label", fmt.Sprintf("%s=%s", composeServiceLabel, service))

	containers, err := client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: labelFilter,
	})
	if err != nil {
		return "", err
	}

	for _, ctr := range containers {
		if ctr.Labels == nil || ctr.Labels[composeServiceLabel] != service {
			continue
		}
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		if name == "" {
			return ctr.State, nil
		}
		return fmt.Sprintf("%s (%s)", ctr.State, name), nil
	}
	return "", nil
}

// PingDaemon reports whether the Docker daemon answers.
func PingDaemon(ctx context.Context, client Client) bool {
	if client == nil {
		return false
	}
	_, err := client.Ping(ctx)
	return err == nil
}
