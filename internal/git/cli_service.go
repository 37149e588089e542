package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/models"
)

const defaultGitBinary = "git"

// CLIService talks to the git executable.
type CLIService struct {
	binary string
	dir    string
}

func NewCLIService(binary, dir string) *CLIService {
	if binary == "" {
		binary = defaultGitBinary
	}
	return &CLIService{binary: binary, dir: dir}
}

func (s *CLIService) Backend() string {
	return "cli"
}

func (s *CLIService) ListChanges(ctx context.Context) (models.ChangeSet, error) {
	output, err := s.runGitCommand(ctx, errors.ErrListChanges, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return nil, err
	}

	changes, err := ParsePorcelain(output)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "listed changes", "backend", s.Backend(), "count", len(changes))
	return changes, nil
}

// GetDiff concatenates the staged diff, the unstaged diff and the content of
// untracked files. ErrNoDiff is returned when all three are empty.
func (s *CLIService) GetDiff(ctx context.Context) (string, error) {
	staged, err := s.runGitCommand(ctx, errors.ErrGetDiff, "diff", "--cached")
	if err != nil {
		return "", err
	}

	unstaged, err := s.runGitCommand(ctx, errors.ErrGetDiff, "diff")
	if err != nil {
		return "", err
	}

	untracked, err := s.untrackedContent(ctx)
	if err != nil {
		return "", err
	}

	combined := staged + unstaged + untracked
	if strings.TrimSpace(combined) == "" {
		return "", errors.ErrNoDiff
	}

	logger.Debug(ctx, "collected diff", "backend", s.Backend(), "bytes", len(combined))
	return combined, nil
}

func (s *CLIService) untrackedContent(ctx context.Context) (string, error) {
	output, err := s.runGitCommand(ctx, errors.ErrGetDiff, "ls-files", "--others", "--exclude-standard", "--full-name")
	if err != nil {
		return "", err
	}

	root, err := s.repoRoot(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, file := range strings.Split(output, "\n") {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}
		name, err := unquotePath(file)
		if err != nil {
			return "", errors.ErrGetDiff.WithError(err)
		}
		b.WriteString(newFileSection(name, readUntracked(ctx, filepath.Join(root, name))))
	}
	return b.String(), nil
}

func readUntracked(ctx context.Context, path string) []byte {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn(ctx, "could not read untracked file", "path", path, "error", err)
		return nil
	}
	return content
}

func newFileSection(path string, content []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== New file: %s ===\n", path)
	switch {
	case bytes.IndexByte(content, 0) >= 0:
		b.WriteString("(binary file)\n")
	default:
		b.Write(content)
		if len(content) > 0 && content[len(content)-1] != '\n' {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// repoRoot resolves the top-level directory, which --full-name paths are
// relative to.
func (s *CLIService) repoRoot(ctx context.Context) (string, error) {
	output, err := s.runGitCommand(ctx, errors.ErrListChanges, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// runGitCommand runs git with args. Failures are reported as the given
// sentinel carrying the exit error and git's stderr.
func (s *CLIService) runGitCommand(ctx context.Context, sentinel *errors.AppError, args ...string) (string, error) {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		return "", errors.ErrGitNotFound.WithError(err).WithContext("binary", s.binary)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = s.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug(ctx, "running git", "args", strings.Join(args, " "), "dir", s.dir)

	if err := cmd.Run(); err != nil {
		errOutput := strings.TrimSpace(stderr.String())
		if strings.Contains(errOutput, "not a git repository") {
			return "", errors.ErrNotInGitRepo.WithError(err).WithContext("stderr", errOutput)
		}
		return "", sentinel.WithError(err).
			WithContext("command", "git "+strings.Join(args, " ")).
			WithContext("stderr", errOutput)
	}

	return stdout.String(), nil
}
