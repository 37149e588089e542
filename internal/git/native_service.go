package git

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	gitindex "github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/logger"
	"github.com/commitlens/commitlens/internal/models"
)

// NativeService reads the repository with go-git, without a git executable.
type NativeService struct {
	dir string
}

func NewNativeService(dir string) *NativeService {
	if dir == "" {
		dir = "."
	}
	return &NativeService{dir: dir}
}

func (s *NativeService) Backend() string {
	return "native"
}

type worktreeState struct {
	repo   *gitlib.Repository
	root   string
	status gitlib.Status
	paths  []string
}

func (s *NativeService) open(sentinel *errors.AppError) (*worktreeState, error) {
	repo, err := gitlib.PlainOpenWithOptions(s.dir, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, gitlib.ErrRepositoryNotExists) {
			return nil, errors.ErrNotInGitRepo.WithError(err).WithContext("dir", s.dir)
		}
		return nil, sentinel.WithError(err).WithContext("dir", s.dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, sentinel.WithError(err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, sentinel.WithError(err)
	}

	paths := make([]string, 0, len(status))
	for path, st := range status {
		if st.Staging == gitlib.Unmodified && st.Worktree == gitlib.Unmodified {
			continue
		}
		paths = append(paths, path)
	}
	// go-git returns a map; git itself reports paths in byte order.
	sort.Strings(paths)

	return &worktreeState{
		repo:   repo,
		root:   wt.Filesystem.Root(),
		status: status,
		paths:  paths,
	}, nil
}

// ListChanges renders every status entry as a porcelain line and parses the
// result, so both backends share one status parser.
func (s *NativeService) ListChanges(ctx context.Context) (models.ChangeSet, error) {
	state, err := s.open(errors.ErrListChanges)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(state.paths))
	for _, path := range state.paths {
		st := state.status[path]
		origPath := ""
		if st.Staging == gitlib.Renamed || st.Staging == gitlib.Copied {
			origPath = st.Extra
		}
		lines = append(lines, formatPorcelainLine(porcelainCode(st), origPath, path))
	}

	changes, err := ParsePorcelain(strings.Join(lines, "\n"))
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "listed changes", "backend", s.Backend(), "count", len(changes))
	return changes, nil
}

func porcelainCode(st *gitlib.FileStatus) string {
	return string([]byte{byte(st.Staging), byte(st.Worktree)})
}

type localChange struct {
	path string
	from *object.File
	to   *object.File
}

// GetDiff renders HEAD against the index, the index against the worktree and
// untracked files against nothing, as unified diffs.
func (s *NativeService) GetDiff(ctx context.Context) (string, error) {
	state, err := s.open(errors.ErrGetDiff)
	if err != nil {
		return "", err
	}

	head, err := headTree(state.repo)
	if err != nil {
		return "", errors.ErrGetDiff.WithError(err)
	}
	idx, err := state.repo.Storer.Index()
	if err != nil {
		return "", errors.ErrGetDiff.WithError(err)
	}

	var staged, unstaged []localChange
	for _, path := range state.paths {
		st := state.status[path]

		if st.Staging != gitlib.Unmodified && st.Staging != gitlib.Untracked {
			change, err := buildChange(path,
				func() (*object.File, error) { return fileFromTree(head, path) },
				func() (*object.File, error) { return fileFromIndex(idx, state.repo, path) })
			if err != nil {
				return "", errors.ErrGetDiff.WithError(err).WithContext("path", path)
			}
			if change != nil {
				staged = append(staged, *change)
			}
		}

		if st.Worktree != gitlib.Unmodified {
			from := func() (*object.File, error) { return fileFromIndex(idx, state.repo, path) }
			if st.Worktree == gitlib.Untracked {
				from = func() (*object.File, error) { return nil, nil }
			}
			change, err := buildChange(path, from,
				func() (*object.File, error) { return fileFromDisk(state.root, path) })
			if err != nil {
				return "", errors.ErrGetDiff.WithError(err).WithContext("path", path)
			}
			if change != nil {
				unstaged = append(unstaged, *change)
			}
		}
	}

	diff, err := renderLocalDiff(append(staged, unstaged...))
	if err != nil {
		return "", errors.ErrGetDiff.WithError(err)
	}
	if strings.TrimSpace(diff) == "" {
		return "", errors.ErrNoDiff
	}

	logger.Debug(ctx, "collected diff", "backend", s.Backend(), "bytes", len(diff))
	return diff, nil
}

func buildChange(path string, from, to func() (*object.File, error)) (*localChange, error) {
	fromFile, err := from()
	if err != nil {
		return nil, err
	}
	toFile, err := to()
	if err != nil {
		return nil, err
	}
	if fromFile == nil && toFile == nil {
		return nil, nil
	}
	return &localChange{path: path, from: fromFile, to: toFile}, nil
}

func headTree(repo *gitlib.Repository) (*object.Tree, error) {
	ref, err := repo.Head()
	if err != nil {
		if stderrors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}
	return commit.Tree()
}

func fileFromTree(tree *object.Tree, path string) (*object.File, error) {
	if tree == nil {
		return nil, nil
	}
	f, err := tree.File(path)
	if stderrors.Is(err, object.ErrFileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func fileFromIndex(idx *gitindex.Index, repo *gitlib.Repository, path string) (*object.File, error) {
	if idx == nil || repo == nil {
		return nil, nil
	}
	entry, err := idx.Entry(path)
	if stderrors.Is(err, gitindex.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	blob, err := object.GetBlob(repo.Storer, entry.Hash)
	if err != nil {
		return nil, err
	}
	return object.NewFile(entry.Name, entry.Mode, blob), nil
}

func fileFromDisk(root, path string) (*object.File, error) {
	file, err := os.Open(filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	mem := &plumbing.MemoryObject{}
	mem.SetType(plumbing.BlobObject)
	if _, err := mem.Write(data); err != nil {
		return nil, err
	}
	blob, err := object.DecodeBlob(mem)
	if err != nil {
		return nil, err
	}

	mode := filemode.Regular
	if info, err := file.Stat(); err == nil {
		if m, err := filemode.NewFromOSFileMode(info.Mode()); err == nil {
			mode = m
		}
	}
	return object.NewFile(path, mode, blob), nil
}

func renderLocalDiff(diffs []localChange) (string, error) {
	var b strings.Builder
	for _, d := range diffs {
		fmt.Fprintf(&b, "diff --git a/%s b/%s\n", d.path, d.path)

		binary, err := binaryChange(d)
		if err != nil {
			return "", err
		}
		if binary {
			b.WriteString("(binary files differ)\n")
			continue
		}

		fromLines, err := fileLines(d.from)
		if err != nil {
			return "", err
		}
		toLines, err := fileLines(d.to)
		if err != nil {
			return "", err
		}

		fromName, toName := "a/"+d.path, "b/"+d.path
		if d.from == nil {
			fromName = "/dev/null"
		}
		if d.to == nil {
			toName = "/dev/null"
		}

		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        fromLines,
			B:        toLines,
			FromFile: fromName,
			ToFile:   toName,
			Context:  3,
		})
		if err != nil {
			return "", err
		}
		if text == "" {
			b.WriteString("(no textual changes)\n")
			continue
		}
		b.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func binaryChange(ch localChange) (bool, error) {
	for _, f := range []*object.File{ch.from, ch.to} {
		if f == nil {
			continue
		}
		bin, err := f.IsBinary()
		if err != nil {
			return false, err
		}
		if bin {
			return true, nil
		}
	}
	return false, nil
}

func fileLines(f *object.File) ([]string, error) {
	if f == nil {
		return []string{}, nil
	}
	content, err := f.Contents()
	if err != nil {
		return nil, err
	}
	return difflib.SplitLines(content), nil
}
