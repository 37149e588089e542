package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/models"
	"github.com/commitlens/commitlens/internal/providers"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func init() {
	color.NoColor = true
}

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, opts models.SummaryOptions) (*models.Summary, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Summary), args.Error(1)
}

type testEnv struct {
	cfg     *config.Config
	t       *i18n.Translations
	service *MockSummarizer
	factory *SummarizeCommandFactory
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	copied  []string
	built   []providers.ServiceOptions
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Language = "en"
	cfg.PathFile = filepath.Join(t.TempDir(), "config.json")

	env := &testEnv{
		cfg:     cfg,
		t:       trans,
		service: new(MockSummarizer),
		stdout:  new(bytes.Buffer),
		stderr:  new(bytes.Buffer),
	}
	env.factory = NewSummarizeCommandFactory(func(_ context.Context, _ *config.Config, _ *i18n.Translations, opts providers.ServiceOptions) (Summarizer, error) {
		env.built = append(env.built, opts)
		return env.service, nil
	})
	env.factory.copyText = func(text string) error {
		env.copied = append(env.copied, text)
		return nil
	}
	return env
}

func (e *testEnv) run(args ...string) error {
	app := &cli.Command{
		Name:      "commitlens",
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Commands:  []*cli.Command{e.factory.CreateCommand(e.t, e.cfg)},
	}
	return app.Run(context.Background(), append([]string{"commitlens", "summarize"}, args...))
}

const sampleReport = "Changed files:\n1. main.go (modified)\n"

func TestSummarizeCommand(t *testing.T) {
	t.Run("should print the report", func(t *testing.T) {
		// Arrange
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, models.SummaryOptions{CommitType: "feat"}).
			Return(&models.Summary{CommitType: "feat", Report: sampleReport}, nil)

		// Act
		err := env.run()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, sampleReport, env.stdout.String())
		assert.Equal(t, []providers.ServiceOptions{{}}, env.built)
		env.service.AssertExpectations(t)
	})

	t.Run("should print the no-changes message", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).
			Return(&models.Summary{CommitType: "fix", Empty: true, Message: "fix: no changed files"}, nil)

		err := env.run("--type", "fix")

		require.NoError(t, err)
		assert.Equal(t, "fix: no changed files\n", env.stdout.String())
	})

	t.Run("should print the generated message after the report", func(t *testing.T) {
		// Arrange
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, models.SummaryOptions{CommitType: "fix", Generate: true, NoCache: true}).
			Return(&models.Summary{CommitType: "fix", Report: sampleReport, Message: "fix: handle nil", Generated: true}, nil)

		// Act
		err := env.run("-t", "fix", "-g", "--no-cache")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, sampleReport+"\nSuggested message:\nfix: handle nil\n", env.stdout.String())
		assert.Equal(t, []providers.ServiceOptions{{Generate: true, NoCache: true}}, env.built)
	})

	t.Run("should print json", func(t *testing.T) {
		env := setupTestEnv(t)
		expected := &models.Summary{
			CommitType: "feat",
			Changes:    models.ChangeSet{models.NewChangeRecord("M", "main.go")},
			Report:     sampleReport,
		}
		env.service.On("Summarize", mock.Anything, mock.Anything).Return(expected, nil)

		err := env.run("--json")

		require.NoError(t, err)
		var got models.Summary
		require.NoError(t, json.Unmarshal(env.stdout.Bytes(), &got))
		assert.Equal(t, *expected, got)
	})

	t.Run("should write to the output file", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).
			Return(&models.Summary{CommitType: "feat", Report: sampleReport}, nil)
		path := filepath.Join(t.TempDir(), "summary.txt")

		err := env.run("-o", path)

		require.NoError(t, err)
		assert.Empty(t, env.stdout.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sampleReport, string(data))
		assert.Contains(t, env.stderr.String(), "Result saved to "+path)
	})

	t.Run("should fail when the output file cannot be written", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).
			Return(&models.Summary{CommitType: "feat", Report: sampleReport}, nil)

		err := env.run("-o", filepath.Join(t.TempDir(), "missing", "summary.txt"))

		assert.ErrorIs(t, err, errors.ErrWriteOutput)
	})

	t.Run("should copy the generated message", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).
			Return(&models.Summary{CommitType: "feat", Report: sampleReport, Message: "feat: add x", Generated: true}, nil)

		err := env.run("-g", "-c")

		require.NoError(t, err)
		assert.Equal(t, []string{"feat: add x"}, env.copied)
		assert.Contains(t, env.stderr.String(), "Copied to clipboard")
	})

	t.Run("should copy the report when nothing was generated", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).
			Return(&models.Summary{CommitType: "feat", Report: sampleReport}, nil)

		err := env.run("--copy")

		require.NoError(t, err)
		assert.Equal(t, []string{"Changed files:\n1. main.go (modified)"}, env.copied)
	})

	t.Run("should report clipboard failures", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).
			Return(&models.Summary{CommitType: "feat", Report: sampleReport}, nil)
		env.factory.copyText = func(string) error { return assert.AnError }

		err := env.run("-c")

		assert.ErrorIs(t, err, errors.ErrClipboard)
	})

	t.Run("should switch the output language", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).
			Return(&models.Summary{CommitType: "feat", Empty: true, Message: "feat: sin archivos modificados"}, nil)

		err := env.run("-l", "es")

		require.NoError(t, err)
		assert.Equal(t, "es", env.t.Language())
		assert.Equal(t, "en", env.cfg.Language, "flags do not change the loaded config")
	})

	t.Run("should reject an unsupported language before building the service", func(t *testing.T) {
		env := setupTestEnv(t)

		err := env.run("--lang", "fr")

		assert.ErrorIs(t, err, errors.ErrConfigInvalid)
		assert.Empty(t, env.built)
		env.service.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	})

	t.Run("should reject an unknown backend", func(t *testing.T) {
		env := setupTestEnv(t)

		err := env.run("--backend", "svn")

		assert.ErrorIs(t, err, errors.ErrConfigInvalid)
	})

	t.Run("should propagate service errors", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).Return(nil, errors.ErrNotInGitRepo)

		err := env.run()

		assert.ErrorIs(t, err, errors.ErrNotInGitRepo)
		assert.Empty(t, env.stdout.String())
	})

	t.Run("should print the change tree in verbose mode", func(t *testing.T) {
		env := setupTestEnv(t)
		env.service.On("Summarize", mock.Anything, mock.Anything).Return(&models.Summary{
			CommitType: "feat",
			Changes:    models.ChangeSet{models.NewChangeRecord("A", "src/new.go")},
			Report:     sampleReport,
		}, nil)

		err := env.run("-v")

		require.NoError(t, err)
		assert.Contains(t, env.stderr.String(), "Changes (1):")
		assert.Contains(t, env.stderr.String(), "new.go (added)")
		assert.Equal(t, sampleReport, env.stdout.String())
	})
}

func TestRenderText(t *testing.T) {
	trans, err := i18n.NewTranslations("pt", "")
	require.NoError(t, err)

	t.Run("empty summary", func(t *testing.T) {
		text := RenderText(&models.Summary{Empty: true, Message: "feat: sem arquivos alterados"}, trans)

		assert.Equal(t, "feat: sem arquivos alterados\n", text)
	})

	t.Run("report only", func(t *testing.T) {
		text := RenderText(&models.Summary{Report: "r\n"}, trans)

		assert.Equal(t, "r\n", text)
	})
}
