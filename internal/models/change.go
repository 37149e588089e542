package models

import (
	"path"
	"strings"
)

// StatusKind is the closed set of change kinds reported for a file.
type StatusKind int

const (
	StatusOther StatusKind = iota
	StatusModified
	StatusAdded
	StatusDeleted
	StatusRenamed
	StatusUntracked
)

// RootDir marks files that live at the repository root.
const RootDir = "."

type (
	// StatusCode describes how a file changed. Raw keeps the code exactly as the
	// version-control tool reported it (trimmed), so unknown codes survive.
	StatusCode struct {
		Kind StatusKind `json:"kind"`
		Raw  string     `json:"raw"`
	}

	// ChangeRecord is one file's status/path pair.
	ChangeRecord struct {
		Status   StatusCode `json:"status"`
		Path     string     `json:"path"`
		OrigPath string     `json:"orig_path,omitempty"`
	}

	// ChangeSet keeps the order reported by the tool. Paths are not deduplicated.
	ChangeSet []ChangeRecord
)

var (
	Modified  = StatusCode{Kind: StatusModified, Raw: "M"}
	Added     = StatusCode{Kind: StatusAdded, Raw: "A"}
	Deleted   = StatusCode{Kind: StatusDeleted, Raw: "D"}
	Renamed   = StatusCode{Kind: StatusRenamed, Raw: "R"}
	Untracked = StatusCode{Kind: StatusUntracked, Raw: "??"}
)

// Other wraps a code outside the known set.
func Other(raw string) StatusCode {
	return StatusCode{Kind: StatusOther, Raw: raw}
}

// ParseStatusCode maps a raw two-character porcelain code to a StatusCode.
// Only the exact codes M, A, D, R and ?? are recognised; combinations such as
// "MM" or "AM" are kept verbatim as Other.
func ParseStatusCode(raw string) StatusCode {
	code := strings.TrimSpace(raw)
	switch code {
	case "M":
		return Modified
	case "A":
		return Added
	case "D":
		return Deleted
	case "R":
		return Renamed
	case "??":
		return Untracked
	default:
		return Other(code)
	}
}

// MessageKey returns the translation key describing the status, or "" for Other.
func (s StatusCode) MessageKey() string {
	switch s.Kind {
	case StatusModified:
		return "status.modified"
	case StatusAdded:
		return "status.added"
	case StatusDeleted:
		return "status.deleted"
	case StatusRenamed:
		return "status.renamed"
	case StatusUntracked:
		return "status.untracked"
	default:
		return ""
	}
}

// String returns the raw code.
func (s StatusCode) String() string {
	return s.Raw
}

// NewChangeRecord builds a record from a raw status code and a path.
func NewChangeRecord(rawStatus, filePath string) ChangeRecord {
	return ChangeRecord{
		Status: ParseStatusCode(rawStatus),
		Path:   strings.TrimSpace(filePath),
	}
}

// Dir returns the directory part of the path, RootDir when there is none.
func (r ChangeRecord) Dir() string {
	dir := path.Dir(r.Path)
	if dir == "" || dir == "/" {
		return RootDir
	}
	return dir
}

// Base returns the last element of the path.
func (r ChangeRecord) Base() string {
	return path.Base(r.Path)
}

// Paths lists the record paths in order.
func (cs ChangeSet) Paths() []string {
	paths := make([]string, 0, len(cs))
	for _, r := range cs {
		paths = append(paths, r.Path)
	}
	return paths
}
