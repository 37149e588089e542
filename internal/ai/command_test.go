package ai

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/commitlens/commitlens/internal/errors"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestNewCommandProvider(t *testing.T) {
	t.Run("should require a command", func(t *testing.T) {
		provider, err := NewCommandProvider(" ", nil)

		assert.Nil(t, provider)
		assert.True(t, errors.Is(err, domainErrors.ErrGeneratorCommandMissing))
	})

	t.Run("should copy args", func(t *testing.T) {
		args := []string{"-m", "llama3"}
		provider, err := NewCommandProvider("ollama", args)
		require.NoError(t, err)

		args[1] = "changed"

		assert.Equal(t, []string{"-m", "llama3"}, provider.args)
		assert.Equal(t, "command", provider.Name())
		assert.Equal(t, "ollama", provider.Model())
	})
}

func TestCommandProvider_Complete(t *testing.T) {
	t.Run("should pass the prompt on stdin", func(t *testing.T) {
		requireTool(t, "cat")
		provider, err := NewCommandProvider("cat", nil)
		require.NoError(t, err)

		out, err := provider.Complete(context.Background(), "feat: $(whoami)\n")

		require.NoError(t, err)
		assert.Equal(t, "feat: $(whoami)\n", out)
	})

	t.Run("should replace the placeholder with a single argument", func(t *testing.T) {
		requireTool(t, "echo")
		provider, err := NewCommandProvider("echo", []string{"-n", "{{prompt}}"})
		require.NoError(t, err)

		out, err := provider.Complete(context.Background(), "a b; c && d")

		require.NoError(t, err)
		assert.Equal(t, "a b; c && d", out)
	})

	t.Run("should report a failing command", func(t *testing.T) {
		requireTool(t, "false")
		provider, err := NewCommandProvider("false", nil)
		require.NoError(t, err)

		_, err = provider.Complete(context.Background(), "prompt")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrAIGeneration))
		assert.True(t, domainErrors.IsExternalToolError(err))
	})

	t.Run("should report a missing executable", func(t *testing.T) {
		provider, err := NewCommandProvider("commitlens-missing-generator", nil)
		require.NoError(t, err)

		_, err = provider.Complete(context.Background(), "prompt")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrGeneratorUnavailable))
	})
}

func TestExpandArgs(t *testing.T) {
	args, replaced := expandArgs([]string{"run", "{{prompt}}", "x{{prompt}}"}, "P")

	assert.True(t, replaced)
	assert.Equal(t, []string{"run", "P", "x{{prompt}}"}, args)

	args, replaced = expandArgs(nil, "P")
	assert.False(t, replaced)
	assert.Empty(t, args)
}
