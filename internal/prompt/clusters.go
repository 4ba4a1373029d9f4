package prompt

import (
	"fmt"
	"strings"
)

// BuildClusterPrompt renders the filming batch-plan prompt: group the
// scripts into clusters that can be shot back to back with one setup.
func BuildClusterPrompt(vars ClusterPromptVars) string {
	scriptLines := make([]string, 0, len(vars.Scripts))
	for _, s := range vars.Scripts {
		scriptLines = append(scriptLines, fmt.Sprintf("- id=%s | %q | tone=%s | ~%ds",
			s.ID, s.Title, s.Tone, s.EstimatedSec))
	}

	return fmt.Sprintf(`You are a filming-day producer for a solo short-form creator.
Group the scripts below into filming clusters. Scripts in one cluster share
an outfit, location and energy level so they can be shot back to back.

## Creator
- Niche: %s

## Scripts to cluster (%d total)
%s

## Response Format (JSON ONLY)
Return ONLY a JSON object, no prose, no markdown, no code fences:
{
  "clusters": [
    {
      "name": "string, short session name",
      "description": "string, why these belong together",
      "script_ids": ["every id appears in exactly one cluster"],
      "suggested_outfit": "string",
      "suggested_location": "string",
      "suggested_lighting": "string",
      "props": ["string"],
      "energy_level": "low|medium|high",
      "estimated_minutes": number, total filming time for the cluster
    }
  ]
}

**Rules**:
- Every script id above appears in exactly one cluster
- 2 to 6 scripts per cluster; group by tone and energy first
- estimated_minutes should budget roughly 10 minutes per script plus setup`,
		vars.Profile.Niche,
		len(vars.Scripts),
		strings.Join(scriptLines, "\n"),
	)
}
