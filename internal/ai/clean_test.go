package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "  feat: add x \n", expected: "feat: add x"},
		{name: "fenced", input: "```\nfeat: add x\n```", expected: "feat: add x"},
		{name: "fenced with language", input: "```text\nfix: y\n\nbody\n```\n", expected: "fix: y\n\nbody"},
		{name: "quoted", input: `"docs: update readme"`, expected: "docs: update readme"},
		{name: "inner quotes are kept", input: `"a" and "b"`, expected: `"a" and "b"`},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanMessage(tt.input))
		})
	}
}

func TestIsConventional(t *testing.T) {
	assert.True(t, IsConventional("feat(ui): add tree\n\nlonger body"))
	assert.False(t, IsConventional("Added a tree"))
}
