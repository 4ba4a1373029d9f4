package domain

import "strings"

type Longevity string

const (
	LongevityEvergreen Longevity = "evergreen"
	LongevitySeasonal  Longevity = "seasonal"
	LongevityTrending  Longevity = "trending"
)

type FactCheckStatus string

const (
	FactCheckVerified    FactCheckStatus = "verified"
	FactCheckNeedsReview FactCheckStatus = "needs_review"
	FactCheckOpinion     FactCheckStatus = "opinion"
)

// TopicCandidate is a topic as decoded from a model response, before
// validation and deduplication. Candidates are never mutated; a correction
// is a new candidate.
type TopicCandidate struct {
	Title           string          `json:"title"`
	Hook            string          `json:"hook"`
	CoreValue       string          `json:"core_value"`
	EmotionalDriver string          `json:"emotional_driver"`
	FormatType      string          `json:"format_type"`
	Tone            string          `json:"tone"`
	Longevity       Longevity       `json:"longevity"`
	FactCheckStatus FactCheckStatus `json:"fact_check_status"`
	DateRangeStart  string          `json:"date_range_start,omitempty"`
	DateRangeEnd    string          `json:"date_range_end,omitempty"`
	OrderIndex      int             `json:"order_index"`
}

// HasRequiredFields reports whether the candidate carries the three
// fields every accepted topic must have.
func (c *TopicCandidate) HasRequiredFields() bool {
	return strings.TrimSpace(c.Title) != "" &&
		strings.TrimSpace(c.Hook) != "" &&
		strings.TrimSpace(c.CoreValue) != ""
}

// Topic is a persisted, deduplicated candidate.
type Topic struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	TopicCandidate
}
