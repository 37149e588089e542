package config

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/commitlens/commitlens/internal/commands/completion_helper"
	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "set",
		Usage:         t.GetMessage("config.set_usage", 0, nil),
		ArgsUsage:     t.GetMessage("config.set_args", 0, nil),
		ShellComplete: completion_helper.WordComplete(config.SettingKeys),
		Action: func(ctx context.Context, command *cli.Command) error {
			if command.Args().Len() < 2 {
				return errors.ErrConfigInvalid.
					WithError(stderrors.New(t.GetMessage("config.missing_args", 0, nil))).
					WithSuggestion(t.GetMessage("config.keys", 0, nil) + ": " + strings.Join(config.SettingKeys(), ", "))
			}

			key := command.Args().Get(0)
			value := strings.Join(command.Args().Slice()[1:], " ")

			if err := config.ApplySetting(cfg, key, value); err != nil {
				if stderrors.Is(err, config.ErrUnknownKey) {
					return errors.ErrUnknownConfigKey.
						WithContext("key", key).
						WithSuggestion(t.GetMessage("config.keys", 0, nil) + ": " + strings.Join(config.SettingKeys(), ", "))
				}
				return errors.ErrConfigInvalid.WithError(err)
			}

			if err := config.SaveConfig(cfg); err != nil {
				return errors.ErrConfigInvalid.WithError(err)
			}

			shown := value
			if strings.Contains(strings.ToLower(key), "key") {
				shown = maskAPIKey(value)
			}
			ui.PrintSuccess(output(command), t.GetMessage("config.saved", 0, map[string]interface{}{
				"Key":   key,
				"Value": shown,
			}))
			return nil
		},
	}
}
