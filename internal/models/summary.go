package models

type (
	// Summary is the result of one inspection pass.
	Summary struct {
		CommitType string    `json:"commit_type"`
		Changes    ChangeSet `json:"changes"`
		Report     string    `json:"report,omitempty"`
		Message    string    `json:"message,omitempty"`
		Empty      bool      `json:"empty"`
		Generated  bool      `json:"generated"`
		Cached     bool      `json:"cached,omitempty"`
	}

	// GenerationRequest carries everything the text generator receives.
	GenerationRequest struct {
		Locale     string
		CommitType string
		Report     string
		Diff       string
	}

	// Generation is the opaque text returned by a generator.
	Generation struct {
		Message  string
		Provider string
		Model    string
		Cached   bool
	}

	// SummaryOptions tunes a single inspection pass.
	SummaryOptions struct {
		CommitType string
		Generate   bool
		NoCache    bool
	}
)
