// Package analysis turns a ChangeSet into text reports. Every strategy is a
// pure function of its input: no I/O, no shared state, no mutation.
package analysis

import (
	"github.com/commitlens/commitlens/internal/models"
)

// Localizer resolves message IDs to locale text. *i18n.Translations
// satisfies it.
type Localizer interface {
	GetMessage(messageID string, count int, templateData interface{}) string
}

// Options is passed to every strategy of a pipeline run.
type Options struct {
	// Messages may be nil, in which case English words are used.
	Messages Localizer
}

// Strategy renders one report fragment from a ChangeSet. Implementations
// never fail: an empty ChangeSet still yields a (header-only) fragment.
type Strategy interface {
	Name() string
	Analyze(cs models.ChangeSet, opts Options) string
}

const (
	msgFileListHeader  = "report.file_list_header"
	msgDirectoryHeader = "report.directory_header"
	msgTypeHeader      = "report.type_header"
	msgRootDir         = "report.root_dir"
)

var fallbackMessages = map[string]string{
	"status.modified":  "modified",
	"status.added":     "added",
	"status.deleted":   "deleted",
	"status.renamed":   "renamed",
	"status.untracked": "untracked",
	msgFileListHeader:  "Changed files:",
	msgDirectoryHeader: "Summary by directory:",
	msgTypeHeader:      "Summary by type:",
	msgRootDir:         "root",
}

func (o Options) message(id string) string {
	if o.Messages == nil {
		return fallbackMessages[id]
	}
	return o.Messages.GetMessage(id, 0, nil)
}

// describeStatus returns the locale word for a status; unknown codes render
// as the raw code.
func (o Options) describeStatus(s models.StatusCode) string {
	key := s.MessageKey()
	if key == "" {
		return s.Raw
	}
	return o.message(key)
}

func (o Options) directoryLabel(dir string) string {
	if dir == models.RootDir {
		return o.message(msgRootDir)
	}
	return dir
}
