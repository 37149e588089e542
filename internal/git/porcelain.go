package git

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/models"
)

const (
	statusCodeWidth = 2
	pathOffset      = 3
	renameArrow     = " -> "
)

// ParsePorcelain parses `git status --porcelain` (v1) output. Blank lines
// are skipped. Every other line must be "XY <path>", where XY is the
// two-character status code; "XY <orig> -> <path>" is accepted for renames
// and copies, and C-quoted paths are unquoted.
func ParsePorcelain(output string) (models.ChangeSet, error) {
	changes := make(models.ChangeSet, 0)

	for i, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := parsePorcelainLine(line)
		if err != nil {
			return nil, errors.ErrParseStatus.WithError(err).
				WithContext("line", i+1).
				WithContext("text", line)
		}
		changes = append(changes, record)
	}

	return changes, nil
}

func parsePorcelainLine(line string) (models.ChangeRecord, error) {
	if len(line) <= pathOffset || line[statusCodeWidth] != ' ' {
		return models.ChangeRecord{}, fmt.Errorf("malformed status line %q", line)
	}

	code := strings.TrimSpace(line[:statusCodeWidth])
	if code == "" {
		return models.ChangeRecord{}, fmt.Errorf("missing status code in %q", line)
	}

	field := strings.TrimSpace(line[pathOffset:])
	if field == "" {
		return models.ChangeRecord{}, fmt.Errorf("missing path in %q", line)
	}

	var origPath, path string
	var err error
	if strings.ContainsAny(code, "RC") {
		origPath, path, err = splitRename(field)
	} else {
		path, err = unquotePath(field)
	}
	if err != nil {
		return models.ChangeRecord{}, err
	}

	record := models.NewChangeRecord(code, path)
	record.OrigPath = origPath
	return record, nil
}

// splitRename handles "<orig> -> <path>". A field without an arrow is a
// plain path.
func splitRename(field string) (string, string, error) {
	first, rest, err := takePath(field)
	if err != nil {
		return "", "", err
	}
	if rest == "" {
		return "", first, nil
	}
	if !strings.HasPrefix(rest, renameArrow) {
		return "", "", fmt.Errorf("unexpected text after path: %q", rest)
	}

	second, tail, err := takePath(rest[len(renameArrow):])
	if err != nil {
		return "", "", err
	}
	if tail != "" {
		return "", "", fmt.Errorf("unexpected text after rename target: %q", tail)
	}
	return first, second, nil
}

// takePath reads one path from the start of s and returns the remainder.
func takePath(s string) (string, string, error) {
	if strings.HasPrefix(s, `"`) {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted path %q: %w", s, err)
		}
		path, err := strconv.Unquote(quoted)
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted path %q: %w", quoted, err)
		}
		return path, s[len(quoted):], nil
	}
	if i := strings.Index(s, renameArrow); i >= 0 {
		return s[:i], s[i:], nil
	}
	return s, "", nil
}

func unquotePath(field string) (string, error) {
	if !strings.HasPrefix(field, `"`) {
		return field, nil
	}
	path, err := strconv.Unquote(field)
	if err != nil {
		return "", fmt.Errorf("invalid quoted path %q: %w", field, err)
	}
	return path, nil
}

// quotePath quotes a path the way git does when it would not survive the
// line format unquoted.
func quotePath(p string) string {
	if p != strings.TrimSpace(p) || strings.ContainsAny(p, "\"\\\n\t") || strings.Contains(p, renameArrow) {
		return strconv.Quote(p)
	}
	return p
}

func formatPorcelainLine(code, origPath, path string) string {
	if origPath != "" {
		return code + " " + quotePath(origPath) + renameArrow + quotePath(path)
	}
	return code + " " + quotePath(path)
}
