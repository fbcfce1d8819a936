// Where: cli/internal/app/interaction.go
// What: TTY detection and confirmation prompts.
// Why: Destructive commands require explicit operator consent.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ledgerbox/cli/internal/constants"
	"github.com/mattn/go-isatty"
)

var isTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// confirm asks the operator a yes/no question. An injected Confirm takes
// precedence (tests); interactive terminals get a huh prompt; everything
// else falls back to a line read. Anything other than y declines.
func confirm(deps Dependencies, message string) (bool, error) {
	if deps.Confirm != nil {
		return deps.Confirm(message)
	}
	if isTerminal(os.Stdin) && os.Getenv(constants.EnvInteractive) != "0" {
		return huhConfirm(message)
	}
	return promptYesNo(message)
}

func huhConfirm(message string) (bool, error) {
	confirmed := false
	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func promptYesNo(message string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y", nil
}
