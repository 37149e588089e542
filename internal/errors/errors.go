package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches sentinels by type and message so that copies produced by the
// With* helpers still compare equal to the value they were derived from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// IsExternalToolError reports whether err comes from one of the external
// collaborators: the git executable/library or the text generator.
func IsExternalToolError(err error) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Type == TypeGit || appErr.Type == TypeAI
}

// Git errors
var (
	ErrGitNotFound = NewAppError(TypeGit, "git executable not found", nil).
			WithSuggestion("Install git or set the binary path: commitlens config set git_binary <path>")

	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Run the command inside a git checkout, or initialize one: git init")

	ErrListChanges = NewAppError(TypeGit, "Failed to list changed files", nil).
			WithSuggestion("Check the repository state: git status")

	ErrParseStatus = NewAppError(TypeGit, "Unexpected git status output", nil)

	ErrGetDiff = NewAppError(TypeGit, "Failed to get diff", nil).
			WithSuggestion("Check the repository state: git diff")

	ErrNoDiff = NewAppError(TypeGit, "No differences detected", nil).
			WithSuggestion("Make sure your changes are saved to disk")
)

// Configuration errors
var (
	ErrConfigInvalid = NewAppError(TypeConfiguration, "Configuration is not valid", nil).
				WithSuggestion("Review it with: commitlens config show")

	ErrUnknownConfigKey = NewAppError(TypeConfiguration, "Unknown configuration key", nil).
				WithSuggestion("See the available keys with: commitlens config show")

	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Run: commitlens config set gemini_api_key <key>")

	ErrGeneratorCommandMissing = NewAppError(TypeConfiguration, "Text generation command is not configured", nil).
					WithSuggestion("Run: commitlens config set generator_command <executable>")

	ErrUnknownProvider = NewAppError(TypeConfiguration, "Unknown text generation provider", nil).
				WithSuggestion("Supported providers: none, command, gemini")

	ErrGeneratorDisabled = NewAppError(TypeConfiguration, "Text generation is disabled", nil).
				WithSuggestion("Pick a provider: commitlens config set generator_provider command")
)

// AI errors
var (
	ErrGeneratorUnavailable = NewAppError(TypeAI, "Text generation command could not be started", nil).
				WithSuggestion("Check that the configured executable is installed and in your PATH")

	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your provider configuration")

	ErrEmptyAIOutput = NewAppError(TypeAI, "Text generation returned an empty response", nil).
				WithSuggestion("This is likely a temporary issue, please try again")

	ErrAITimeout = NewAppError(TypeAI, "Text generation timed out", nil).
			WithSuggestion("Raise the limit: commitlens config set timeout_seconds <seconds>")

	ErrGeminiAPIKeyInvalid = NewAppError(TypeAI, "Gemini API key is invalid", nil).
				WithSuggestion("Check your API key at: https://makersuite.google.com/app/apikey")

	ErrGeminiQuotaExceeded = NewAppError(TypeAI, "Gemini API quota exceeded", nil).
				WithSuggestion("Wait a few minutes and try again, or check your quota in Google AI Studio")
)

// Internal errors
var (
	ErrClipboard = NewAppError(TypeInternal, "Failed to copy to clipboard", nil).
			WithSuggestion("On Linux install xclip, xsel or wl-clipboard")

	ErrWriteOutput = NewAppError(TypeInternal, "Failed to write output file", nil).
			WithSuggestion("Check that the directory exists and is writable")

	ErrCache = NewAppError(TypeInternal, "Response cache is not available", nil).
		WithSuggestion("Clean it with: commitlens cache clean")
)
