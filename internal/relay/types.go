package relay

import "webhook-relay/internal/model"

const DefaultTrimLimit = 500

var (
	DefaultIgnoreActions = []string{
		"labeled",
		"unlabeled",
		"assigned",
		"unassigned",
		"review_requested",
		"review_request_removed",
		"deleted",
		"milestoned",
		"demilestoned",
	}
	DefaultIgnoreKeys    = []string{"changes"}
	DefaultIgnoreSenders = []string{"codecov[bot]", "dependabot[bot]"}
	DefaultCIMarkers     = []string{"# [Codecov]", "## [Codecov]"}
)

// FilterConfig holds the suppression denylists.
type FilterConfig struct {
	IgnoreActions []string
	IgnoreKeys    []string
	IgnoreSenders []string
}

// Config configures the relay use case.
type Config struct {
	Filter    FilterConfig
	CIMarkers []string
	TrimLimit int
}

// DefaultConfig returns the built-in denylists and limits.
func DefaultConfig() Config {
	return Config{
		Filter: FilterConfig{
			IgnoreActions: append([]string(nil), DefaultIgnoreActions...),
			IgnoreKeys:    append([]string(nil), DefaultIgnoreKeys...),
			IgnoreSenders: append([]string(nil), DefaultIgnoreSenders...),
		},
		CIMarkers: append([]string(nil), DefaultCIMarkers...),
		TrimLimit: DefaultTrimLimit,
	}
}

// --- UseCase Inputs ---

type ProcessInput struct {
	Event model.Event
}

// --- UseCase Outputs ---

type ProcessOutput struct {
	Category   model.Category
	Suppressed bool
	Reason     string
	Text       string
	Dispatched bool
}
