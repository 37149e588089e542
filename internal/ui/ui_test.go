package ui

import (
	"bytes"
	"fmt"
	"testing"

	domainErrors "github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/models"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestHandleAppError(t *testing.T) {
	t.Run("prints type, message and suggestion", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		trans, err := i18n.NewTranslations("es", "")
		require.NoError(t, err)

		// Act
		HandleAppError(&buf, domainErrors.ErrNotInGitRepo, trans)

		// Assert
		out := buf.String()
		assert.Contains(t, out, "GIT: Not in a git repository")
		assert.Contains(t, out, "💡 Prueba: ")
		assert.Contains(t, out, "git init")
	})

	t.Run("uses english defaults without translations", func(t *testing.T) {
		var buf bytes.Buffer
		appErr := domainErrors.ErrAIGeneration.
			WithError(fmt.Errorf("boom")).
			WithSuggestion("first\nsecond")

		HandleAppError(&buf, appErr, nil)

		out := buf.String()
		assert.Contains(t, out, "Details: boom")
		assert.Contains(t, out, "💡 Try: first\n")
		assert.Contains(t, out, "       second\n")
	})

	t.Run("prints stderr context", func(t *testing.T) {
		var buf bytes.Buffer
		appErr := domainErrors.ErrListChanges.WithContext("stderr", "fatal: bad object\n")

		HandleAppError(&buf, appErr, nil)

		assert.Contains(t, buf.String(), "fatal: bad object")
	})

	t.Run("prints plain errors", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, fmt.Errorf("plain failure"), nil)

		assert.Contains(t, buf.String(), "plain failure")
	})

	t.Run("ignores nil", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, nil, nil)

		assert.Empty(t, buf.String())
	})
}

func TestShowChangeTree(t *testing.T) {
	describe := func(s models.StatusCode) string { return s.Raw }

	t.Run("prints directories before files", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		changes := models.ChangeSet{
			models.NewChangeRecord("M", "main.go"),
			models.NewChangeRecord("A", "internal/git/porcelain.go"),
			models.NewChangeRecord("D", "internal/old.go"),
		}

		// Act
		ShowChangeTree(&buf, changes, "Changes", describe)

		// Assert
		expected := "\n" + StatsEmoji + " Changes\n" +
			"├── internal/\n" +
			"│   ├── git/\n" +
			"│   │   └── porcelain.go (A)\n" +
			"│   └── old.go (D)\n" +
			"└── main.go (M)\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("keeps a file and a directory with the same name apart", func(t *testing.T) {
		var buf bytes.Buffer
		changes := models.ChangeSet{
			models.NewChangeRecord("??", "docs"),
			models.NewChangeRecord("M", "docs/index.md"),
		}

		ShowChangeTree(&buf, changes, "Changes", describe)

		assert.Contains(t, buf.String(), "├── docs/\n│   └── index.md (M)\n")
		assert.Contains(t, buf.String(), "└── docs (??)\n")
	})

	t.Run("prints nothing for an empty set", func(t *testing.T) {
		var buf bytes.Buffer

		ShowChangeTree(&buf, nil, "Changes", describe)

		assert.Empty(t, buf.String())
	})
}

func TestPrintSection(t *testing.T) {
	var buf bytes.Buffer

	PrintSection(&buf, "Report", "line one\nline two\n\n")

	assert.Equal(t, "\n"+StatsEmoji+" Report\nline one\nline two\n", buf.String())
}
