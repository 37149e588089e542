package ai

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/models"
)

type cachedMessage struct {
	Message string `json:"message"`
}

// MessageGenerator builds the prompt, consults the response cache and asks
// the provider for a commit message.
type MessageGenerator struct {
	provider     TextProvider
	cache        ResponseCache
	maxDiffBytes int
	timeout      time.Duration
}

var _ Generator = (*MessageGenerator)(nil)

type Option func(*MessageGenerator)

// WithCache enables the response cache; a nil cache leaves it disabled.
func WithCache(c ResponseCache) Option {
	return func(g *MessageGenerator) {
		g.cache = c
	}
}

func WithMaxDiffBytes(n int) Option {
	return func(g *MessageGenerator) {
		g.maxDiffBytes = n
	}
}

// WithTimeout bounds every provider call; zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(g *MessageGenerator) {
		g.timeout = d
	}
}

func NewMessageGenerator(provider TextProvider, opts ...Option) *MessageGenerator {
	g := &MessageGenerator{provider: provider}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *MessageGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.Generation, error) {
	prompt, err := BuildPrompt(req, g.maxDiffBytes)
	if err != nil {
		return nil, errors.ErrAIGeneration.WithError(err)
	}

	result := &models.Generation{
		Provider: g.provider.Name(),
		Model:    g.provider.Model(),
	}

	var hash string
	if g.cache != nil {
		hash = g.cache.GenerateHash(result.Provider, result.Model, prompt)
		if msg, ok := g.lookup(ctx, hash); ok {
			result.Message = msg
			result.Cached = true
			logger.Info(ctx, "using cached message", "provider", result.Provider)
			return result, nil
		}
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.provider.Complete(callCtx, prompt)
	if err != nil {
		if stderrors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, errors.ErrAITimeout.WithError(err).WithContext("timeout", g.timeout.String())
		}
		return nil, err
	}

	text = CleanMessage(text)
	if text == "" {
		return nil, errors.ErrEmptyAIOutput.WithContext("provider", result.Provider)
	}
	if !IsConventional(text) {
		logger.Debug(ctx, "generated message is not a conventional commit header", "provider", result.Provider)
	}
	result.Message = text

	logger.Info(ctx, "message generated",
		"provider", result.Provider,
		"model", result.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes", len(prompt))

	if g.cache != nil {
		if err := g.cache.Set(hash, cachedMessage{Message: text}); err != nil {
			logger.Warn(ctx, "could not store generated message", "error", errors.ErrCache.WithError(err))
		}
	}

	return result, nil
}

func (g *MessageGenerator) lookup(ctx context.Context, hash string) (string, bool) {
	raw, found, err := g.cache.Get(hash)
	if err != nil {
		logger.Warn(ctx, "could not read cached message", "error", errors.ErrCache.WithError(err))
		return "", false
	}
	if !found {
		return "", false
	}

	var cached cachedMessage
	if err := json.Unmarshal(raw, &cached); err != nil || strings.TrimSpace(cached.Message) == "" {
		return "", false
	}
	return cached.Message, true
}
