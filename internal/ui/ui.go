package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	domainErrors "github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/i18n"
	"github.com/commitlens/commitlens/internal/models"
	"github.com/fatih/color"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	LensEmoji    = "🔎"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	StatsEmoji   = Accent.Sprint("📊")
)

var activeSpinner *SmartSpinner

// SmartSpinner wraps a spinner drawn on stderr so stdout stays clean for
// the report and the message.
type SmartSpinner struct {
	spinner *spinner.Spinner
	out     io.Writer
}

func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithWriter(os.Stderr),
		spinner.WithSuffix(" "+LensEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s, out: os.Stderr}
}

// Start starts the spinner and registers it as the active one.
func (s *SmartSpinner) Start() {
	activeSpinner = s
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
	if activeSpinner == s {
		activeSpinner = nil
	}
}

// StopActiveSpinner stops whatever spinner is running, if any.
func StopActiveSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
	}
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + LensEmoji + " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(s.out, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(s.out, msg)
}

// WithSpinner runs fn while a spinner shows message. The spinner is stopped
// before returning either way.
func WithSpinner(message, done string, fn func() error) error {
	s := NewSmartSpinner(message)
	s.Start()

	start := time.Now()
	err := fn()
	if err != nil {
		s.Stop()
		return err
	}

	s.Stop()
	PrintDuration(s.out, done, time.Since(start))
	return nil
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintDuration(w io.Writer, msg string, duration time.Duration) {
	durationStr := Dim.Sprintf("(%s)", duration.Round(10*time.Millisecond))
	_, _ = fmt.Fprintf(w, "%s %s %s\n", SuccessEmoji, Success.Sprint(msg), durationStr)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// PrintSection prints a colored title followed by body. Used for the report
// and the suggested message.
func PrintSection(w io.Writer, title, body string) {
	_, _ = fmt.Fprintf(w, "\n%s %s\n", StatsEmoji, Accent.Sprint(title))
	_, _ = fmt.Fprintln(w, strings.TrimRight(body, "\n"))
}

// HandleAppError prints err in a friendly way. t may be nil, in which case
// English defaults are used.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	StopActiveSpinner()

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	suggestionColor := color.New(color.FgCyan)

	_, _ = fmt.Fprintln(w)
	_, _ = Error.Fprintf(w, "❌ %s: %s\n", appErr.Type, appErr.Message)

	if appErr.Err != nil {
		details := "Details"
		if t != nil {
			details = t.GetMessage("ui_error.details", 0, nil)
		}
		_, _ = Dim.Fprintf(w, "   %s: %v\n", details, appErr.Err)
	}
	if stderr, ok := appErr.Context["stderr"].(string); ok && stderr != "" {
		_, _ = Dim.Fprintf(w, "   %s\n", strings.TrimSpace(stderr))
	}

	if appErr.Suggestion != "" {
		_, _ = fmt.Fprintln(w)
		tryPrefix := "💡 Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = suggestionColor.Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}

type treeNode struct {
	name     string
	isFile   bool
	change   *models.ChangeRecord
	children map[string]*treeNode
}

// ShowChangeTree prints the change set as a directory tree. describe turns a
// status into the label shown next to each file.
func ShowChangeTree(w io.Writer, changes models.ChangeSet, header string, describe func(models.StatusCode) string) {
	if len(changes) == 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s %s\n", StatsEmoji, header)
	printTree(w, buildFileTree(changes), "", true, describe)
}

// buildFileTree keys directories as "name/" so a file and a directory with
// the same name do not collide.
func buildFileTree(changes models.ChangeSet) *treeNode {
	root := &treeNode{children: make(map[string]*treeNode)}

	for i := range changes {
		parts := strings.Split(changes[i].Path, "/")
		current := root

		for j, part := range parts {
			isFile := j == len(parts)-1
			key := part
			if !isFile {
				key += "/"
			}

			child := current.children[key]
			if child == nil {
				child = &treeNode{
					name:     part,
					isFile:   isFile,
					children: make(map[string]*treeNode),
				}
				current.children[key] = child
			}
			if isFile {
				child.change = &changes[i]
			}
			current = child
		}
	}
	return root
}

func printTree(w io.Writer, node *treeNode, prefix string, isLast bool, describe func(models.StatusCode) string) {
	if node.name != "" {
		connector := "├── "
		if isLast {
			connector = "└── "
		}

		name := node.name
		if !node.isFile {
			name = Info.Sprint(name + "/")
		}

		label := ""
		if node.isFile && node.change != nil {
			label = statusColor(node.change.Status).Sprintf(" (%s)", describe(node.change.Status))
		}

		_, _ = fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, name, label)
	}

	childPrefix := prefix
	if node.name != "" {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}

	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	// directories first, then files, each alphabetically
	sort.Slice(keys, func(i, j int) bool {
		a, b := node.children[keys[i]], node.children[keys[j]]
		if a.isFile != b.isFile {
			return !a.isFile
		}
		return keys[i] < keys[j]
	})

	for i, key := range keys {
		printTree(w, node.children[key], childPrefix, i == len(keys)-1, describe)
	}
}

func statusColor(status models.StatusCode) *color.Color {
	switch status.Kind {
	case models.StatusAdded, models.StatusUntracked:
		return color.New(color.FgGreen)
	case models.StatusDeleted:
		return color.New(color.FgRed)
	case models.StatusRenamed:
		return color.New(color.FgYellow)
	default:
		return Dim
	}
}
