package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConventionalCommit(t *testing.T) {
	tests := []struct {
		line  string
		match bool
		typ   string
		scope string
	}{
		{line: "feat: add tree view", match: true, typ: "feat"},
		{line: "fix(git): handle quoted paths", match: true, typ: "fix", scope: "git"},
		{line: "refactor!: drop the cli backend", match: true, typ: "refactor"},
		{line: "Add tree view", match: false},
		{line: "feature: add tree view", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			matches := ConventionalCommit.FindStringSubmatch(tt.line)
			if !tt.match {
				assert.Nil(t, matches)
				return
			}
			if assert.NotNil(t, matches) {
				assert.Equal(t, tt.typ, matches[1])
				assert.Equal(t, tt.scope, matches[3])
			}
		})
	}
}

func TestMarkdownCodeBlock(t *testing.T) {
	matches := MarkdownCodeBlock.FindStringSubmatch("```text\nfeat: add x\n\nbody\n```")
	if assert.NotNil(t, matches) {
		assert.Equal(t, "feat: add x\n\nbody", matches[1])
	}

	assert.Nil(t, MarkdownCodeBlock.FindStringSubmatch("feat: add ```x```"))
}
