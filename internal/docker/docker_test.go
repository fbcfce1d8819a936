// Where: cli/internal/docker/docker_test.go
// What: Tests for SDK-backed container queries.
// Why: Verify label filtering and state reporting.
package docker

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
)

type fakeClient struct {
	containers []container.Summary
	listErr    error
	pingErr    error
}

func (f *fakeClient) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	return f.containers, f.listErr
}

func (f *fakeClient) Ping(_ context.Context) (types.Ping, error) {
	return types.Ping{}, f.pingErr
}

func TestServiceContainerState(t *testing.T) {
	client := &fakeClient{containers: []container.Summary{
		{
			Names:  []string{"/ledgerbox-ledgerbox-1"},
			State:  "running",
			Labels: map[string]string{composeServiceLabel: "ledgerbox"},
		},
	}}

	state, err := ServiceContainerState(context.Background(), client, "ledgerbox")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if state != "running (ledgerbox-ledgerbox-1)" {
		t.Fatalf("unexpected state: %s", state)
	}
}

func TestServiceContainerStateIgnoresOtherServices(t *testing.T) {
	client := &fakeClient{containers: []container.Summary{
		{
			Names:  []string{"/other-1"},
			State:  "running",
			Labels: map[string]string{composeServiceLabel: "other"},
		},
	}}

	state, err := ServiceContainerState(context.Background(), client, "ledgerbox")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if state != "" {
		t.Fatalf("expected empty state, got %s", state)
	}
}

func TestServiceContainerStateError(t *testing.T) {
	client := &fakeClient{listErr: errors.New("daemon down")}

	if _, err := ServiceContainerState(context.Background(), client, "ledgerbox"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPingDaemon(t *testing.T) {
	if PingDaemon(context.Background(), nil) {
		t.Fatal("expected false for nil client")
	}
	if !PingDaemon(context.Background(), &fakeClient{}) {
		t.Fatal("expected true")
	}
	if PingDaemon(context.Background(), &fakeClient{pingErr: errors.New("down")}) {
		t.Fatal("expected false on ping error")
	}
}

func TestHasBuildx(t *testing.T) {
	if !HasBuildx(context.Background(), &fakeRunner{}) {
		t.Fatal("expected buildx available")
	}
	runner := &fakeRunner{fail: map[string]error{"docker buildx version": errors.New("unknown command")}}
	if HasBuildx(context.Background(), runner) {
		t.Fatal("expected buildx unavailable")
	}
}
