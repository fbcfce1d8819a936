// Where: cli/internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ledgerbox/cli/internal/meta"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

// commandNames extracts the visible top-level command names from the kong model.
func commandNames(cli CLI) []string {
	parser, err := kong.New(&cli)
	if err != nil {
		return nil
	}

	var commands []string
	for _, node := range parser.Model.Children {
		if node.Hidden || strings.HasPrefix(node.Name, "__") {
			continue
		}
		commands = append(commands, node.Name)
	}
	return commands
}

func runCompletionBash(cli CLI, out io.Writer) int {
	opts := strings.Join(commandNames(cli), " ")

	script := `_%[1]s_completion() {
    local cur prev cmd
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    cmd="${COMP_WORDS[1]}"
    opts="%[2]s"

    if [[ "${cmd}" == "completion" ]]; then
        COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
}
complete -F _%[1]s_completion %[1]s
`
	fmt.Fprintf(out, script, meta.AppName, opts)
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	var lines []string
	for _, name := range commandNames(cli) {
		lines = append(lines, fmt.Sprintf("        '%s'", name))
	}

	script := `#compdef %[1]s
_%[1]s() {
    local -a commands
    commands=(
%[2]s
    )
    if (( CURRENT == 2 )); then
        _describe 'command' commands
    elif [[ "${words[2]}" == "completion" ]]; then
        _values 'shell' bash zsh fish
    fi
}
_%[1]s "$@"
`
	fmt.Fprintf(out, script, meta.AppName, strings.Join(lines, "\n"))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	for _, name := range commandNames(cli) {
		fmt.Fprintf(out, "complete -c %s -n '__fish_use_subcommand' -a '%s'\n", meta.AppName, name)
	}
	fmt.Fprintf(out, "complete -c %s -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n", meta.AppName)
	return 0
}
