// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/ledgerbox/cli/internal/docker"
	"github.com/ledgerbox/cli/internal/meta"
	"github.com/ledgerbox/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	WorkDir string
	Out     io.Writer
	Now     func() time.Time
	Sleep   func(time.Duration)
	Confirm func(message string) (bool, error)
	Client  docker.Client
	Reset   ResetDeps
	Publish PublishDeps
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file"`

	ResetAdmin ResetAdminCmd `cmd:"" name:"reset-admin" help:"Reset the admin credentials and restart the service"`
	Publish    PublishCmd    `cmd:"" help:"Build and push multi-arch images"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// ResetAdminCmd resets the admin credential file and restarts the service.
type ResetAdminCmd struct {
	Yes bool `short:"y" help:"Skip confirmation prompt"`
}

// PublishCmd builds the service image for multiple platforms and pushes it.
type PublishCmd struct {
	User      string   `short:"u" help:"Registry username (namespace)"`
	Image     string   `help:"Image name"`
	Version   string   `help:"Version tag"`
	Platforms string   `short:"p" help:"Comma-separated target platforms"`
	Tag       []string `short:"t" help:"Additional tag (repeatable)"`
	NoPush    bool     `name:"no-push" help:"Load into the local image store instead of pushing"`
	NoCache   bool     `name:"no-cache" help:"Do not use cache when building"`
	Verbose   bool     `short:"v" help:"Stream build output"`
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	// Handle no arguments: show current location and status
	if len(args) == 0 {
		return runInfo(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name(meta.AppName), kong.Writers(out, out))
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		fmt.Fprintf(out, "%s (see 'lbx --help')\n", err)
		return 1
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"reset-admin":     runResetAdmin,
		"publish":         runPublish,
		"completion bash": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}
