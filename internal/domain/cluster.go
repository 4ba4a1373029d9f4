package domain

// FilmingCluster groups scripts that can be shot back to back with the
// same setup. Produced either by the model planner or by the heuristic
// fallback; immutable once returned.
type FilmingCluster struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	ScriptIDs         []string `json:"script_ids"`
	SuggestedOutfit   string   `json:"suggested_outfit"`
	SuggestedLocation string   `json:"suggested_location"`
	SuggestedLighting string   `json:"suggested_lighting"`
	Props             []string `json:"props"`
	EnergyLevel       string   `json:"energy_level"`
	EstimatedMinutes  int      `json:"estimated_minutes"`
}
