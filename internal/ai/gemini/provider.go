package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/commitlens/commitlens/internal/config"
	domainErrors "github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/logger"
)

// Provider answers prompts with a Gemini model.
type Provider struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func NewProvider(ctx context.Context, cfg config.GeneratorConfig) (*Provider, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, classifyError(err)
	}

	modelName := string(cfg.Model)
	if modelName == "" {
		modelName = string(config.DefaultModelForProvider(config.ProviderGemini))
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(cfg.Temperature)
	if cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(cfg.MaxTokens)
	}

	return &Provider{
		client:    client,
		model:     model,
		modelName: modelName,
	}, nil
}

func (p *Provider) Name() string {
	return string(config.ProviderGemini)
}

func (p *Provider) Model() string {
	return p.modelName
}

func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Error(ctx, "gemini API call failed", err, "model", p.modelName)
		return "", classifyError(err)
	}

	text := formatResponse(resp)
	if strings.TrimSpace(text) == "" {
		return "", domainErrors.ErrEmptyAIOutput.WithContext("model", p.modelName)
	}
	return text, nil
}

// Close releases the underlying client.
func (p *Provider) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				formattedContent.WriteString(string(text))
			}
		}
		// first candidate only
		break
	}
	return formattedContent.String()
}

func classifyError(err error) error {
	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "quota") ||
		strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "resource exhausted"):
		return domainErrors.ErrGeminiQuotaExceeded.WithError(err)
	case strings.Contains(errMsg, "api key") ||
		strings.Contains(errMsg, "unauthorized") ||
		strings.Contains(errMsg, "unauthenticated"):
		return domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
	default:
		return domainErrors.ErrAIGeneration.WithError(fmt.Errorf("gemini: %w", err))
	}
}
