package cache

import (
	"context"

	"github.com/commitlens/commitlens/internal/cache"
	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/ui"
	"github.com/urfave/cli/v3"
)

// CacheCommand exposes the on-disk message cache under "cache".
type CacheCommand struct{}

func NewCacheCommand() *CacheCommand {
	return &CacheCommand{}
}

func (c *CacheCommand) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: t.GetMessage("cache.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "clean",
				Usage: t.GetMessage("cache.clean_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					dir := cfg.DefaultCacheDir()
					removed, err := cache.Purge(dir)
					if err != nil {
						return err
					}
					logger.Debug(ctx, "cache purged", "dir", dir, "entries", removed)

					ui.PrintSuccess(cmd.Root().Writer, t.GetMessage("cache.cleaned", 0, map[string]interface{}{
						"Count": removed,
					}))
					return nil
				},
			},
		},
	}
}
