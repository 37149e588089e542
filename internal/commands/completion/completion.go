package completion

import (
	"context"
	"io"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_commitlens_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _commitlens_bash_autocomplete commitlens
`

const zshCompletionScript = `#compdef commitlens

_commitlens() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _commitlens commitlens
`

type CompletionCommand struct{}

func NewCompletionCommand() *CompletionCommand {
	return &CompletionCommand{}
}

func (c *CompletionCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: t.GetMessage("completion.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:   "bash",
				Usage:  t.GetMessage("completion.bash_usage", 0, nil),
				Action: printScript(bashCompletionScript),
			},
			{
				Name:   "zsh",
				Usage:  t.GetMessage("completion.zsh_usage", 0, nil),
				Action: printScript(zshCompletionScript),
			},
		},
	}
}

func printScript(script string) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		_, err := io.WriteString(cmd.Root().Writer, script)
		return err
	}
}
