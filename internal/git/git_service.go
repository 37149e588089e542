package git

import (
	"context"
	"fmt"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/models"
)

// ChangeLister reports the files with uncommitted changes, in the order the
// backend produces them.
type ChangeLister interface {
	ListChanges(ctx context.Context) (models.ChangeSet, error)
}

// DiffSource returns the diff body forwarded to the text generator.
type DiffSource interface {
	GetDiff(ctx context.Context) (string, error)
}

// Service is implemented by both backends.
type Service interface {
	ChangeLister
	DiffSource
	Backend() string
}

// NewService returns the backend selected by cfg.GitBackend, operating on
// dir ("" means the current directory).
func NewService(cfg *config.Config, dir string) (Service, error) {
	switch cfg.GitBackend {
	case "", config.BackendCLI:
		return NewCLIService(cfg.GitBinary, dir), nil
	case config.BackendNative:
		return NewNativeService(dir), nil
	default:
		return nil, fmt.Errorf("unsupported git backend: %s", cfg.GitBackend)
	}
}
