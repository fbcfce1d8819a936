// Where: cli/internal/docker/fake_runner_test.go
// What: Recording CommandRunner fake shared by the package tests.
// Why: Assert exact argv and working directories without running docker.
package docker

import (
	"context"
	"strings"
)

// fakeRunner records invocations and fails any command whose argv starts
// with a registered prefix.
type fakeRunner struct {
	calls [][]string
	dirs  []string
	fail  map[string]error
}

func (f *fakeRunner) record(dir, name string, args []string) error {
	argv := append([]string{name}, args...)
	f.calls = append(f.calls, argv)
	f.dirs = append(f.dirs, dir)
	for prefix, err := range f.fail {
		if strings.HasPrefix(strings.Join(argv, " "), prefix) {
			return err
		}
	}
	return nil
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	return f.record(dir, name, args)
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	return []byte(""), f.record(dir, name, args)
}

func (f *fakeRunner) RunQuiet(_ context.Context, dir, name string, args ...string) error {
	return f.record(dir, name, args)
}
