package domain

// TopicGenerationRequest asks for Count topics for one creator project.
// Month/Year select the regional context window; CustomEvents are
// caller-supplied dates the topics may reference.
type TopicGenerationRequest struct {
	ProjectID    string          `json:"project_id"`
	Profile      *CreatorProfile `json:"profile"`
	Count        int             `json:"count"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	CustomEvents []CustomEvent   `json:"custom_events,omitempty"`
}

// TopicGenerationResult reports what actually survived validation and
// deduplication. Accepted may be fewer than requested; that is a success,
// not an error.
type TopicGenerationResult struct {
	Topics    []*Topic `json:"topics"`
	Requested int      `json:"requested"`
	Accepted  int      `json:"accepted"`
	Rejected  int      `json:"rejected"`
	Provider  string   `json:"provider"`
	Model     string   `json:"model"`
}

type ScriptGenerationRequest struct {
	ProjectID string          `json:"project_id"`
	Profile   *CreatorProfile `json:"profile"`
	Topics    []*Topic        `json:"topics"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
}

type ScriptGenerationResult struct {
	Scripts  []*Script `json:"scripts"`
	Provider string    `json:"provider"`
	Model    string    `json:"model"`
}

type BatchPlanRequest struct {
	ProjectID string          `json:"project_id"`
	Profile   *CreatorProfile `json:"profile"`
	Scripts   []*Script       `json:"scripts"`
}

// BatchPlanResult carries the filming clusters plus which strategy
// produced them ("model" or "heuristic").
type BatchPlanResult struct {
	Clusters []FilmingCluster `json:"clusters"`
	Strategy string           `json:"strategy"`
	Provider string           `json:"provider,omitempty"`
	Model    string           `json:"model,omitempty"`
}
