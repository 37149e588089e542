package providers

import (
	"context"
	"time"

	"github.com/commitlens/commitlens/internal/ai"
	"github.com/commitlens/commitlens/internal/ai/gemini"
	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/errors"
)

// NewTextProvider creates the TextProvider for the configured provider.
func NewTextProvider(ctx context.Context, cfg config.GeneratorConfig) (ai.TextProvider, error) {
	switch cfg.Provider {
	case config.ProviderNone, "":
		return nil, errors.ErrGeneratorDisabled
	case config.ProviderCommand:
		provider, err := ai.NewCommandProvider(cfg.Command, cfg.Args)
		if err != nil {
			return nil, err
		}
		return provider, nil
	case config.ProviderGemini:
		provider, err := gemini.NewProvider(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.ErrUnknownProvider.WithContext("provider", string(cfg.Provider))
	}
}

// NewGenerator wires the configured provider with prompt limits, timeout and,
// when c is not nil, the response cache.
func NewGenerator(ctx context.Context, cfg *config.Config, c ai.ResponseCache) (ai.Generator, error) {
	provider, err := NewTextProvider(ctx, cfg.Generator)
	if err != nil {
		return nil, err
	}

	opts := []ai.Option{
		ai.WithMaxDiffBytes(cfg.Generator.MaxDiffBytes),
		ai.WithTimeout(time.Duration(cfg.Generator.TimeoutSeconds) * time.Second),
	}
	if c != nil {
		opts = append(opts, ai.WithCache(c))
	}

	return ai.NewMessageGenerator(provider, opts...), nil
}
