package services

import (
	"context"
	stderrors "errors"

	"github.com/commitlens/commitlens/internal/ai"
	"github.com/commitlens/commitlens/internal/analysis"
	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/models"
)

const defaultCommitType = "feat"

type (
	// ChangeSource is what the service needs from a git backend.
	ChangeSource interface {
		ListChanges(ctx context.Context) (models.ChangeSet, error)
		GetDiff(ctx context.Context) (string, error)
	}

	// Messages resolves locale text. *i18n.Translations satisfies it.
	Messages interface {
		analysis.Localizer
		Language() string
	}
)

// SummaryService runs one inspection pass: list, analyze and optionally
// generate.
type SummaryService struct {
	git       ChangeSource
	messages  Messages
	pipeline  *analysis.Pipeline
	generator ai.Generator
}

type SummaryServiceOption func(*SummaryService)

func WithGenerator(g ai.Generator) SummaryServiceOption {
	return func(s *SummaryService) {
		s.generator = g
	}
}

func WithPipeline(p *analysis.Pipeline) SummaryServiceOption {
	return func(s *SummaryService) {
		s.pipeline = p
	}
}

func NewSummaryService(git ChangeSource, messages Messages, opts ...SummaryServiceOption) *SummaryService {
	s := &SummaryService{
		git:      git,
		messages: messages,
		pipeline: analysis.NewPipeline(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns Summary{Empty: true} with the "no changes" message when
// nothing changed; the pipeline and the generator are not invoked then.
func (s *SummaryService) Summarize(ctx context.Context, opts models.SummaryOptions) (*models.Summary, error) {
	commitType := opts.CommitType
	if commitType == "" {
		commitType = defaultCommitType
	}

	changes, err := s.git.ListChanges(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		CommitType: commitType,
		Changes:    changes,
	}

	if len(changes) == 0 {
		summary.Empty = true
		summary.Message = s.messages.GetMessage("summary.no_changes", 0, map[string]interface{}{
			"Type": commitType,
		})
		logger.Info(ctx, "no changes detected")
		return summary, nil
	}

	summary.Report = s.pipeline.Run(changes, analysis.Options{Messages: s.messages})
	logger.Info(ctx, "changes analyzed", "changes", len(changes), "strategies", len(s.pipeline.Names()))

	if !opts.Generate {
		return summary, nil
	}
	if s.generator == nil {
		return nil, errors.ErrGeneratorDisabled
	}

	diff, err := s.git.GetDiff(ctx)
	if err != nil {
		if !stderrors.Is(err, errors.ErrNoDiff) {
			return nil, err
		}
		logger.Warn(ctx, "no diff available, generating from the report only")
		diff = ""
	}

	generation, err := s.generator.Generate(ctx, models.GenerationRequest{
		Locale:     s.messages.Language(),
		CommitType: commitType,
		Report:     summary.Report,
		Diff:       diff,
	})
	if err != nil {
		return nil, err
	}

	summary.Message = generation.Message
	summary.Generated = true
	summary.Cached = generation.Cached
	return summary, nil
}
