package prompt

import "fmt"

// BuildScriptPrompt renders the script-generation prompt for one topic.
func BuildScriptPrompt(vars ScriptPromptVars) string {
	return fmt.Sprintf(`You are a short-form video scriptwriter working for a solo creator.
Write one complete script (30-60 seconds spoken) for the topic below.

## Creator Profile
- Niche: %s
- Audience: %s
- Catchphrases (weave in naturally where they fit): %s
- Hard boundaries (never violate): %s

## Audience Region: %s (%s)
Write in %s spelling and vocabulary.

**Terminology for this audience:**
%s

**Cultural context:**
%s

## Topic
- Title: %s
- Hook: %s
- Core value: %s
- Tone: %s
- Format: %s

## Response Format (JSON ONLY)
Return ONLY a JSON object, no prose, no markdown, no code fences:
{
  "title": "string, may refine the topic title",
  "hook": "string, the first 3 seconds, spoken word for word",
  "sections": [
    {"label": "string, e.g. setup, point 1, payoff", "text": "spoken text", "duration_sec": number}
  ],
  "call_to_action": "string, one closing line",
  "tone": "%s",
  "estimated_sec": number, total spoken duration,
  "on_screen_text": ["string, short overlay captions"],
  "b_roll_suggestions": ["string, shots to cut to"]
}

**Rules**:
- The hook must deliver on the topic's hook line, reworded for speech
- 3 to 5 sections; estimated_sec between 30 and 60
- Conversational spoken register, no stage directions inside "text"
- Respect every boundary listed above without exception`,
		vars.Profile.Niche,
		vars.Profile.Audience,
		joinOrPlaceholder(vars.Profile.Catchphrases, "; "),
		joinOrPlaceholder(vars.Profile.Boundaries, "; "),
		vars.Context.Target.CountryName,
		vars.Context.Target.LanguageVariant,
		vars.Context.Target.LanguageVariant,
		renderLines(vars.Context.Terminology),
		renderLines(vars.Context.CulturalNotes),
		vars.Topic.Title,
		vars.Topic.Hook,
		vars.Topic.CoreValue,
		vars.Topic.Tone,
		vars.Topic.FormatType,
		vars.Topic.Tone,
	)
}
