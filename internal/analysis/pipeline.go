package analysis

import (
	"strings"

	"github.com/commitlens/commitlens/internal/models"
)

// Fragment is the output of one strategy.
type Fragment struct {
	Strategy string
	Text     string
}

// Pipeline runs a fixed list of strategies in registration order.
type Pipeline struct {
	strategies []Strategy
}

// DefaultStrategies is the built-in registry: file list, directory summary
// and type summary, in that order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		FileListStrategy{},
		DirectorySummaryStrategy{},
		TypeSummaryStrategy{},
	}
}

// NewPipeline uses DefaultStrategies when none are given.
func NewPipeline(strategies ...Strategy) *Pipeline {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Pipeline{strategies: strategies}
}

// Names lists the strategy names in the order they run.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.strategies))
	for _, s := range p.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Analyze runs every strategy on the same ChangeSet. No strategy sees the
// output of another.
func (p *Pipeline) Analyze(cs models.ChangeSet, opts Options) []Fragment {
	fragments := make([]Fragment, 0, len(p.strategies))
	for _, s := range p.strategies {
		fragments = append(fragments, Fragment{
			Strategy: s.Name(),
			Text:     s.Analyze(cs, opts),
		})
	}
	return fragments
}

// Run returns the fragments joined by a blank line.
func (p *Pipeline) Run(cs models.ChangeSet, opts Options) string {
	fragments := p.Analyze(cs, opts)
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		texts = append(texts, f.Text)
	}
	return strings.Join(texts, "\n")
}
