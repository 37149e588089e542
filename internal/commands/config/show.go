package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := output(command)
			notSet := t.GetMessage("config.not_set", 0, nil)
			orNotSet := func(v string) string {
				if v == "" {
					return notSet
				}
				return v
			}

			ui.PrintKeyValue(w, t.GetMessage("config.file", 0, nil), cfg.PathFile)
			ui.PrintKeyValue(w, "language", cfg.Language)
			ui.PrintKeyValue(w, "commit_type", cfg.CommitType)
			ui.PrintKeyValue(w, "git_backend", cfg.GitBackend)
			ui.PrintKeyValue(w, "git_binary", orNotSet(cfg.GitBinary))
			ui.PrintKeyValue(w, "copy_to_clipboard", fmt.Sprint(cfg.CopyToClipboard))
			ui.PrintKeyValue(w, "generator_provider", string(cfg.Generator.Provider))
			ui.PrintKeyValue(w, "generator_command", orNotSet(cfg.Generator.Command))
			ui.PrintKeyValue(w, "generator_args", orNotSet(strings.Join(cfg.Generator.Args, " ")))
			ui.PrintKeyValue(w, "gemini_api_key", orNotSet(maskAPIKey(cfg.Generator.GeminiAPIKey)))
			ui.PrintKeyValue(w, "model", orNotSet(string(cfg.Generator.Model)))
			ui.PrintKeyValue(w, "temperature", fmt.Sprint(cfg.Generator.Temperature))
			ui.PrintKeyValue(w, "max_tokens", fmt.Sprint(cfg.Generator.MaxTokens))
			ui.PrintKeyValue(w, "timeout_seconds", fmt.Sprint(cfg.Generator.TimeoutSeconds))
			ui.PrintKeyValue(w, "max_diff_bytes", fmt.Sprint(cfg.Generator.MaxDiffBytes))
			ui.PrintKeyValue(w, "cache_enabled", fmt.Sprint(cfg.Cache.Enabled))
			ui.PrintKeyValue(w, "cache_ttl_hours", fmt.Sprint(cfg.Cache.TTLHours))
			ui.PrintKeyValue(w, "cache_dir", cfg.DefaultCacheDir())
			return nil
		},
	}
}

// maskAPIKey keeps the last four characters.
func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
