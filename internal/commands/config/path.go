package config

import (
	"context"
	"fmt"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newPathCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: t.GetMessage("config.path_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			_, err := fmt.Fprintln(output(command), cfg.PathFile)
			return err
		},
	}
}
