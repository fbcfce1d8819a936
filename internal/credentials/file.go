// Where: cli/internal/credentials/file.go
// What: Credential state file handling (display, backup, delete, restore).
// Why: The file is owned by the service; the CLI only shuffles bytes around it.
package credentials

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledgerbox/cli/internal/meta"
)

// BackupStampLayout is the fixed-width timestamp appended to backup paths.
const BackupStampLayout = "20060102-150405"

// adminFields are the credential file fields shown to the operator.
// The file is matched line by line; its JSON schema is not enforced here.
var adminFields = []string{"adminUsername", "adminPassword"}

// Path returns the credential file location for a project root.
func Path(projectDir string) string {
	return filepath.Join(projectDir, filepath.FromSlash(meta.CredentialFile))
}

// Exists reports whether the credential file is present.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// AdminLines returns the trimmed lines of the credential file that mention
// an admin field name, in file order.
func AdminLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(scanner.Text()), ","))
		for _, field := range adminFields {
			if strings.Contains(line, field) {
				lines = append(lines, line)
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Backup copies the credential file to a timestamped sibling path and
// returns that path. The copy is byte-identical to the original.
func Backup(path string, now time.Time) (string, error) {
	backupPath := fmt.Sprintf("%s.backup.%s", path, now.Format(BackupStampLayout))
	if err := copyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("backup credential file: %w", err)
	}
	return backupPath, nil
}

// Remove deletes the credential file.
func Remove(path string) error {
	return os.Remove(path)
}

// Restore copies a backup back to the original credential path.
func Restore(backupPath, path string) error {
	if err := copyFile(backupPath, path); err != nil {
		return fmt.Errorf("restore credential file: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
