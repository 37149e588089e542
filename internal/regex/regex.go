package regex

import "regexp"

var (
	// ConventionalCommit matches a "type(scope)!: subject" first line.
	ConventionalCommit = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\(([^)]+)\))?(!)?:\s*(.+)`)

	// MarkdownCodeBlock matches text wrapped entirely in a fenced block.
	MarkdownCodeBlock = regexp.MustCompile("(?s)^```[A-Za-z]*\n?(.*?)\n?```$")

	// QuotedString matches text wrapped entirely in double quotes.
	QuotedString = regexp.MustCompile(`(?s)^"(.*)"$`)
)
