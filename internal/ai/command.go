package ai

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/logger"
)

// CommandProvider runs an external executable. The prompt is written to its
// stdin, unless an argument equals the {{prompt}} placeholder, in which case
// that argument is replaced by the prompt. No shell is involved, so the diff
// is never interpreted.
type CommandProvider struct {
	command string
	args    []string
}

var _ TextProvider = (*CommandProvider)(nil)

func NewCommandProvider(command string, args []string) (*CommandProvider, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.ErrGeneratorCommandMissing
	}
	return &CommandProvider{
		command: command,
		args:    append([]string(nil), args...),
	}, nil
}

func (p *CommandProvider) Name() string {
	return string(config.ProviderCommand)
}

func (p *CommandProvider) Model() string {
	return p.command
}

func (p *CommandProvider) Complete(ctx context.Context, prompt string) (string, error) {
	path, err := exec.LookPath(p.command)
	if err != nil {
		return "", errors.ErrGeneratorUnavailable.WithError(err).WithContext("command", p.command)
	}

	args, usesPlaceholder := expandArgs(p.args, prompt)

	cmd := exec.CommandContext(ctx, path, args...)
	if !usesPlaceholder {
		cmd.Stdin = strings.NewReader(prompt)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug(ctx, "running generator", "command", p.command, "args", len(args), "stdin", !usesPlaceholder)

	if err := cmd.Run(); err != nil {
		return "", errors.ErrAIGeneration.WithError(err).
			WithContext("command", p.command).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func expandArgs(args []string, prompt string) ([]string, bool) {
	expanded := make([]string, len(args))
	replaced := false
	for i, arg := range args {
		if arg == config.PromptPlaceholder {
			expanded[i] = prompt
			replaced = true
			continue
		}
		expanded[i] = arg
	}
	return expanded, replaced
}
