package analysis

import (
	"fmt"
	"strings"

	"github.com/commitlens/commitlens/internal/models"
)

type FileListStrategy struct{}

func (FileListStrategy) Name() string { return "file_list" }

// Analyze emits "N. <dir>/<basename> (<status>)" per record, numbered from 1.
// Root files carry no directory prefix.
func (FileListStrategy) Analyze(cs models.ChangeSet, opts Options) string {
	var b strings.Builder
	b.WriteString(opts.message(msgFileListHeader))
	b.WriteString("\n")

	for i, r := range cs {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, displayPath(r), opts.describeStatus(r.Status))
	}
	return b.String()
}

func displayPath(r models.ChangeRecord) string {
	dir := r.Dir()
	if dir == models.RootDir {
		return r.Base()
	}
	return dir + "/" + r.Base()
}

type DirectorySummaryStrategy struct{}

func (DirectorySummaryStrategy) Name() string { return "directory_summary" }

// Analyze groups records by directory in first-seen order. Each directory
// gets a count line and one bullet per basename in ChangeSet order.
func (DirectorySummaryStrategy) Analyze(cs models.ChangeSet, opts Options) string {
	groups := newOrderedGroups[string]()
	for _, r := range cs {
		groups.add(r.Dir(), r.Base())
	}

	var b strings.Builder
	b.WriteString(opts.message(msgDirectoryHeader))
	b.WriteString("\n")

	groups.each(func(dir string, names []string) {
		fmt.Fprintf(&b, "%s (%d file(s)):\n", opts.directoryLabel(dir), len(names))
		for _, name := range names {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	})
	return b.String()
}

type TypeSummaryStrategy struct{}

func (TypeSummaryStrategy) Name() string { return "type_summary" }

// Analyze counts records per status code, in first-seen order.
func (TypeSummaryStrategy) Analyze(cs models.ChangeSet, opts Options) string {
	groups := newOrderedGroups[models.StatusCode]()
	for _, r := range cs {
		groups.add(r.Status.Raw, r.Status)
	}

	var b strings.Builder
	b.WriteString(opts.message(msgTypeHeader))
	b.WriteString("\n")

	groups.each(func(_ string, codes []models.StatusCode) {
		fmt.Fprintf(&b, "- %d file(s) %s\n", len(codes), opts.describeStatus(codes[0]))
	})
	return b.String()
}
