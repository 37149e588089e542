package completion

import (
	"bytes"
	"context"
	"testing"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestCompletionCommand(t *testing.T) {
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	tests := []struct {
		shell    string
		expected string
	}{
		{shell: "bash", expected: bashCompletionScript},
		{shell: "zsh", expected: zshCompletionScript},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var out bytes.Buffer
			app := &cli.Command{
				Name:     "commitlens",
				Writer:   &out,
				Commands: []*cli.Command{NewCompletionCommand().CreateCommand(translations, config.DefaultConfig())},
			}

			err := app.Run(context.Background(), []string{"commitlens", "completion", tt.shell})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}
