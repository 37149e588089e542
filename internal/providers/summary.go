package providers

import (
	"context"
	"time"

	"github.com/commitlens/commitlens/internal/ai"
	"github.com/commitlens/commitlens/internal/cache"
	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/git"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/services"
)

// ServiceOptions selects what a summary run needs wired.
type ServiceOptions struct {
	// Dir is the repository directory, "" for the current one.
	Dir      string
	Generate bool
	NoCache  bool
}

// NewSummaryService builds the git backend and, when generation is
// requested, the generator with its response cache.
func NewSummaryService(ctx context.Context, cfg *config.Config, t *i18n.Translations, opts ServiceOptions) (*services.SummaryService, error) {
	gitService, err := git.NewService(cfg, opts.Dir)
	if err != nil {
		return nil, errors.ErrConfigInvalid.WithError(err)
	}
	logger.Debug(ctx, "git backend selected", "backend", gitService.Backend())

	if !opts.Generate {
		return services.NewSummaryService(gitService, t), nil
	}

	generator, err := NewGenerator(ctx, cfg, responseCache(ctx, cfg, opts.NoCache))
	if err != nil {
		return nil, err
	}

	return services.NewSummaryService(gitService, t, services.WithGenerator(generator)), nil
}

// responseCache returns nil when caching is off or the directory cannot be
// used; generation still works without it.
func responseCache(ctx context.Context, cfg *config.Config, noCache bool) ai.ResponseCache {
	if noCache || !cfg.Cache.Enabled {
		return nil
	}

	c, err := cache.NewCache(cfg.DefaultCacheDir(), time.Duration(cfg.Cache.TTLHours)*time.Hour)
	if err != nil {
		logger.Warn(ctx, "response cache disabled", "error", errors.ErrCache.WithError(err))
		return nil
	}
	return c
}
