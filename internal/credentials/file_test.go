// Where: cli/internal/credentials/file_test.go
// What: Tests for credential file handling.
// Why: Backup paths and contents are the tool's only safety net.
package credentials

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

const sampleCredentials = `{
  "adminUsername": "admin",
  "adminPassword": "s3cret-pass",
  "installID": "c0ffee"
}
`

func writeCredentialFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(path, []byte(sampleCredentials), 0o600); err != nil {
		t.Fatalf("write credential file: %v", err)
	}
	return path
}

func TestPathJoinsProjectDir(t *testing.T) {
	got := Path("/srv/ledgerbox")
	want := filepath.Join("/srv/ledgerbox", "data", "credentials.json")
	if got != want {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestAdminLinesMatchesAdminFieldsOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeCredentialFile(t, dir)

	lines, err := AdminLines(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	expected := []string{
		`"adminUsername": "admin"`,
		`"adminPassword": "s3cret-pass"`,
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestBackupPathAndContent(t *testing.T) {
	dir := t.TempDir()
	path := writeCredentialFile(t, dir)
	stamp := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)

	backupPath, err := Backup(path, stamp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if backupPath != path+".backup.20260831-140509" {
		t.Fatalf("unexpected backup path: %s", backupPath)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read original: %v", err)
	}
	backup, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !reflect.DeepEqual(original, backup) {
		t.Fatal("backup content differs from original")
	}
}

func TestBackupMissingFile(t *testing.T) {
	if _, err := Backup(filepath.Join(t.TempDir(), "nope.json"), time.Now()); err == nil {
		t.Fatal("expected error")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeCredentialFile(t, dir)

	backupPath, err := Backup(path, time.Now())
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if err := Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if Exists(path) {
		t.Fatal("expected original gone")
	}

	if err := Restore(backupPath, path); err != nil {
		t.Fatalf("restore: %v", err)
	}
	restored, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read restored: %v", err)
	}
	if string(restored) != sampleCredentials {
		t.Fatal("restored content differs")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(filepath.Join(dir, "missing.json")) {
		t.Fatal("expected missing file to not exist")
	}
	if Exists(dir) {
		t.Fatal("expected directory to not count")
	}
	path := writeCredentialFile(t, dir)
	if !Exists(path) {
		t.Fatal("expected file to exist")
	}
}
