package ai

import (
	"strings"

	"github.com/commitlens/commitlens/internal/regex"
)

// CleanMessage removes the wrapping models like to add around an answer: a
// fenced code block or a pair of double quotes.
func CleanMessage(text string) string {
	text = strings.TrimSpace(text)
	if m := regex.MarkdownCodeBlock.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	if m := regex.QuotedString.FindStringSubmatch(text); m != nil && !strings.Contains(m[1], `"`) {
		text = strings.TrimSpace(m[1])
	}
	return text
}

// IsConventional reports whether the first line of msg looks like a
// conventional commit header.
func IsConventional(msg string) bool {
	first, _, _ := strings.Cut(msg, "\n")
	return regex.ConventionalCommit.MatchString(strings.TrimSpace(first))
}
