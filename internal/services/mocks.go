package services

import (
	"context"

	"github.com/commitlens/commitlens/internal/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockChangeSource struct {
		mock.Mock
	}

	MockGenerator struct {
		mock.Mock
	}
)

func (m *MockChangeSource) ListChanges(ctx context.Context) (models.ChangeSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.ChangeSet), args.Error(1)
}

func (m *MockChangeSource) GetDiff(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.Generation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Generation), args.Error(1)
}
