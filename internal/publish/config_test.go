// Where: cli/internal/publish/config_test.go
// What: Tests for publish config resolution.
// Why: Ensure the override chain and tag assembly behave as documented.
package publish

import (
	"reflect"
	"testing"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(Inputs{Flags: Flags{User: "alice"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Image != "ledgerbox" {
		t.Fatalf("unexpected image: %s", cfg.Image)
	}
	if cfg.Version != "latest" {
		t.Fatalf("unexpected version: %s", cfg.Version)
	}
	if !reflect.DeepEqual(cfg.Platforms, []string{"linux/amd64", "linux/arm64"}) {
		t.Fatalf("unexpected platforms: %v", cfg.Platforms)
	}
	if !cfg.Push || cfg.NoCache {
		t.Fatalf("unexpected push/cache defaults: %+v", cfg)
	}
}

func TestResolveEnvOverridesProject(t *testing.T) {
	cfg, err := Resolve(Inputs{
		ProjectImage:     "books",
		ProjectPlatforms: []string{"linux/amd64"},
		Env: envMap(map[string]string{
			"LBX_IMAGE":     "books-dev",
			"LBX_PLATFORMS": "linux/arm64",
		}),
		Flags: Flags{User: "alice"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Image != "books-dev" {
		t.Fatalf("unexpected image: %s", cfg.Image)
	}
	if !reflect.DeepEqual(cfg.Platforms, []string{"linux/arm64"}) {
		t.Fatalf("unexpected platforms: %v", cfg.Platforms)
	}
}

func TestResolveFlagsOverrideEnv(t *testing.T) {
	cfg, err := Resolve(Inputs{
		Env: envMap(map[string]string{
			"LBX_REGISTRY_USER": "envuser",
			"LBX_VERSION":       "v0.9.0",
		}),
		Flags: Flags{
			User:      "flaguser",
			Version:   "v1.0.0",
			Platforms: "linux/amd64",
			NoPush:    true,
			NoCache:   true,
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.RegistryUser != "flaguser" {
		t.Fatalf("unexpected user: %s", cfg.RegistryUser)
	}
	if cfg.Version != "v1.0.0" {
		t.Fatalf("unexpected version: %s", cfg.Version)
	}
	if cfg.Push {
		t.Fatal("expected push disabled")
	}
	if !cfg.NoCache {
		t.Fatal("expected cache disabled")
	}
}

func TestResolveUsesRememberedUserAsLastResort(t *testing.T) {
	cfg, err := Resolve(Inputs{RememberedUser: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.RegistryUser != "alice" {
		t.Fatalf("unexpected user: %s", cfg.RegistryUser)
	}
}

func TestResolveMissingUser(t *testing.T) {
	if _, err := Resolve(Inputs{}); err == nil {
		t.Fatal("expected error for missing registry user")
	}
}

func TestTagsContainsVersionThenExtras(t *testing.T) {
	cfg := Config{
		RegistryUser: "alice",
		Image:        "ledgerbox",
		Version:      "v1.0.0",
		ExtraTags:    []string{"latest", "stable"},
	}

	expected := []string{
		"alice/ledgerbox:v1.0.0",
		"alice/ledgerbox:latest",
		"alice/ledgerbox:stable",
	}
	if got := cfg.Tags(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected tags: %v", got)
	}
}

func TestTagsWithoutExtras(t *testing.T) {
	cfg := Config{RegistryUser: "alice", Image: "ledgerbox", Version: "v2.1.0"}

	got := cfg.Tags()
	if len(got) != 1 || got[0] != "alice/ledgerbox:v2.1.0" {
		t.Fatalf("unexpected tags: %v", got)
	}
}

func TestSplitPlatforms(t *testing.T) {
	got := SplitPlatforms(" linux/amd64, linux/arm64 ,,linux/amd64 ")
	if !reflect.DeepEqual(got, []string{"linux/amd64", "linux/arm64"}) {
		t.Fatalf("unexpected platforms: %v", got)
	}
}
