package ai

import (
	"context"
	"encoding/json"

	"github.com/commitlens/commitlens/internal/models"
)

// Generator produces a commit message for a summarized change set.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.Generation, error)
}

// TextProvider sends a finished prompt to a model and returns its raw answer.
type TextProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g.: "command", "gemini")
	Name() string

	// Model returns the model or executable that answers (e.g.: "gemini-1.5-flash", "ollama")
	Model() string
}

// ResponseCache is the subset of *cache.Cache the generator needs.
type ResponseCache interface {
	GenerateHash(parts ...string) string
	Get(hash string) (json.RawMessage, bool, error)
	Set(hash string, response interface{}) error
}
