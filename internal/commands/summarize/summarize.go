package summarize

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/commitlens/commitlens/internal/commands/completion_helper"
	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/models"
	"github.com/commitlens/commitlens/internal/providers"
	"github.com/commitlens/commitlens/internal/ui"
	"github.com/urfave/cli/v3"
)

type (
	// Summarizer is satisfied by *services.SummaryService.
	Summarizer interface {
		Summarize(ctx context.Context, opts models.SummaryOptions) (*models.Summary, error)
	}

	// ServiceProvider builds the Summarizer for one run, once flags are known.
	ServiceProvider func(ctx context.Context, cfg *config.Config, t *i18n.Translations, opts providers.ServiceOptions) (Summarizer, error)

	// ClipboardWriter copies text to the system clipboard.
	ClipboardWriter func(text string) error
)

type SummarizeCommandFactory struct {
	newService ServiceProvider
	copyText   ClipboardWriter
}

func NewSummarizeCommandFactory(newService ServiceProvider) *SummarizeCommandFactory {
	return &SummarizeCommandFactory{
		newService: newService,
		copyText:   clipboard.WriteAll,
	}
}

// DefaultServiceProvider wires the real git backend and generator.
func DefaultServiceProvider(ctx context.Context, cfg *config.Config, t *i18n.Translations, opts providers.ServiceOptions) (Summarizer, error) {
	svc, err := providers.NewSummaryService(ctx, cfg, t, opts)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (f *SummarizeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "summarize",
		Aliases:       []string{"s"},
		Usage:         t.GetMessage("summarize.usage", 0, nil),
		Flags:         f.CreateFlags(t, cfg),
		Action:        f.CreateAction(t, cfg),
		ShellComplete: completion_helper.DefaultFlagComplete,
	}
}

// CreateFlags returns a fresh flag set; the root command and the summarize
// subcommand each need their own instances.
func (f *SummarizeCommandFactory) CreateFlags(t *i18n.Translations, cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Value:   cfg.CommitType,
			Usage:   t.GetMessage("flags.type", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   t.GetMessage("flags.verbose", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("flags.debug", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "generate",
			Aliases: []string{"g"},
			Value:   cfg.Generator.Provider != config.ProviderNone && cfg.Generator.Provider != "",
			Usage:   t.GetMessage("flags.generate", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Value:   cfg.Language,
			Usage:   t.GetMessage("flags.lang", 0, nil),
		},
		&cli.StringFlag{
			Name:  "backend",
			Value: cfg.GitBackend,
			Usage: t.GetMessage("flags.backend", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "copy",
			Aliases: []string{"c"},
			Value:   cfg.CopyToClipboard,
			Usage:   t.GetMessage("flags.copy", 0, nil),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("flags.output", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: t.GetMessage("flags.json", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: t.GetMessage("flags.no_cache", 0, nil),
		},
	}
}

func (f *SummarizeCommandFactory) CreateAction(t *i18n.Translations, cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		stdout, stderr := writers(command)

		verbose := command.Bool("verbose")
		logger.Initialize(command.Bool("debug"), verbose)

		runCfg := *cfg
		if err := config.ApplySetting(&runCfg, "language", command.String("lang")); err != nil {
			return errors.ErrConfigInvalid.WithError(err)
		}
		if err := config.ApplySetting(&runCfg, "git_backend", command.String("backend")); err != nil {
			return errors.ErrConfigInvalid.WithError(err)
		}
		if runCfg.Language != t.Language() {
			if err := t.SetLanguage(runCfg.Language); err != nil {
				return errors.ErrConfigInvalid.WithError(err)
			}
		}

		generate := command.Bool("generate")
		svc, err := f.newService(ctx, &runCfg, t, providers.ServiceOptions{
			Generate: generate,
			NoCache:  command.Bool("no-cache"),
		})
		if err != nil {
			return err
		}

		opts := models.SummaryOptions{
			CommitType: command.String("type"),
			Generate:   generate,
			NoCache:    command.Bool("no-cache"),
		}

		var summary *models.Summary
		run := func() error {
			var runErr error
			summary, runErr = svc.Summarize(ctx, opts)
			return runErr
		}
		if generate {
			err = ui.WithSpinner(t.GetMessage("ui.generating", 0, nil), t.GetMessage("ui.generated", 0, nil), run)
		} else {
			err = run()
		}
		if err != nil {
			return err
		}

		if summary.Cached {
			logger.Info(ctx, t.GetMessage("ui.cached", 0, nil))
		}

		if command.Bool("json") {
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return errors.ErrWriteOutput.WithError(err)
			}
			return f.deliver(t, command, stdout, stderr, string(data)+"\n", string(data))
		}

		if verbose && !summary.Empty {
			ui.ShowChangeTree(stderr, summary.Changes,
				t.GetMessage("ui.changes_tree", 0, map[string]interface{}{"Count": len(summary.Changes)}),
				func(s models.StatusCode) string {
					if key := s.MessageKey(); key != "" {
						return t.GetMessage(key, 0, nil)
					}
					return s.Raw
				})
		}

		text := RenderText(summary, t)
		clip := text
		if summary.Generated {
			clip = summary.Message
		}
		return f.deliver(t, command, stdout, stderr, text, clip)
	}
}

// RenderText is the plain-text result: the no-changes line, or the report
// followed by the generated message when there is one.
func RenderText(summary *models.Summary, t *i18n.Translations) string {
	if summary.Empty {
		return summary.Message + "\n"
	}

	var sb strings.Builder
	sb.WriteString(summary.Report)
	if summary.Generated {
		sb.WriteString("\n")
		sb.WriteString(t.GetMessage("ui.suggested_message", 0, nil))
		sb.WriteString("\n")
		sb.WriteString(summary.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (f *SummarizeCommandFactory) deliver(t *i18n.Translations, command *cli.Command, stdout, stderr io.Writer, text, clip string) error {
	if path := command.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return errors.ErrWriteOutput.WithError(err).WithContext("path", path)
		}
		ui.PrintSuccess(stderr, t.GetMessage("ui.saved_to", 0, map[string]interface{}{"Path": path}))
	} else if _, err := io.WriteString(stdout, text); err != nil {
		return errors.ErrWriteOutput.WithError(err)
	}

	if command.Bool("copy") {
		if err := f.copyText(strings.TrimRight(clip, "\n")); err != nil {
			return errors.ErrClipboard.WithError(err)
		}
		ui.PrintSuccess(stderr, t.GetMessage("ui.copied", 0, nil))
	}
	return nil
}

func writers(command *cli.Command) (io.Writer, io.Writer) {
	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	if root := command.Root(); root != nil {
		if root.Writer != nil {
			stdout = root.Writer
		}
		if root.ErrWriter != nil {
			stderr = root.ErrWriter
		}
	}
	return stdout, stderr
}
