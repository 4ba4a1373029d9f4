package domain

// ScriptSection is one beat of a short-form script in delivery order.
type ScriptSection struct {
	Label       string `json:"label"`
	Text        string `json:"text"`
	DurationSec int    `json:"duration_sec"`
}

// Script is a full script generated for one topic.
type Script struct {
	ID               string          `json:"id"`
	TopicID          string          `json:"topic_id"`
	ProjectID        string          `json:"project_id"`
	Title            string          `json:"title"`
	Hook             string          `json:"hook"`
	Sections         []ScriptSection `json:"sections"`
	CallToAction     string          `json:"call_to_action"`
	Tone             string          `json:"tone"`
	EstimatedSec     int             `json:"estimated_sec"`
	OnScreenText     []string        `json:"on_screen_text,omitempty"`
	BRollSuggestions []string        `json:"b_roll_suggestions,omitempty"`
}
