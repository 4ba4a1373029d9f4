package prompt

import (
	"fmt"
	"strings"

	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/util"
)

const nonePlaceholder = "(none this month)"

// BuildTopicPrompt renders the topic-generation prompt. Pure and
// deterministic: the same vars always produce the same string, and every
// section header is present even when its data is empty so the prompt
// structure never drifts between calls.
func BuildTopicPrompt(vars TopicPromptVars) string {
	return fmt.Sprintf(`You are a short-form video content strategist for a solo creator.
Generate exactly %d video topic ideas tailored to the creator and audience below.

## Creator Profile
- Niche: %s
- Audience: %s
- Catchphrases: %s
- Hard boundaries (never violate): %s

## Audience Region: %s (%s)
Write titles and hooks in %s spelling and vocabulary.

**Holidays and events this month (%02d/%d):**
%s

**Custom events from the creator:**
%s

**Terminology for this audience:**
%s

**Cultural context:**
%s

## Tone Distribution
Spread the %d topics across these tones (counts per tone):
%s

## Do NOT duplicate
These titles already exist. Every new title must be clearly distinct from all of them:
%s

## Response Format (JSON ONLY)
Return ONLY a JSON array, no prose, no markdown, no code fences:
[
  {
    "title": "string, <= 80 chars, hook-style",
    "hook": "string, attention-grabbing opening line",
    "core_value": "string, what the viewer gets out of it",
    "emotional_driver": "curiosity|surprise|nostalgia|inspiration|humor",
    "format_type": "string, e.g. talking head, tutorial, storytime",
    "tone": "one of the tones listed above",
    "longevity": "evergreen|seasonal|trending",
    "fact_check_status": "verified|needs_review|opinion",
    "date_range_start": "YYYY-MM-DD or empty string",
    "date_range_end": "YYYY-MM-DD or empty string",
    "order_index": number starting at 0
  }
]

**Rules**:
- Exactly %d objects in the array
- Seasonal topics must tie to a listed holiday, event or the current season
- Respect every boundary listed above without exception
- No title may duplicate or closely paraphrase a "Do NOT duplicate" entry`,
		vars.Count,
		vars.Profile.Niche,
		vars.Profile.Audience,
		joinOrPlaceholder(vars.Profile.Catchphrases, "; "),
		joinOrPlaceholder(vars.Profile.Boundaries, "; "),
		vars.Context.Target.CountryName,
		vars.Context.Target.LanguageVariant,
		vars.Context.Target.LanguageVariant,
		vars.Context.Month,
		vars.Context.Year,
		renderHolidaySection(vars.Context.Holidays),
		renderCustomEvents(vars.Context.CustomEvents),
		renderLines(vars.Context.Terminology),
		renderLines(vars.Context.CulturalNotes),
		vars.Count,
		renderToneTargets(vars.ToneTargets),
		renderPriorTitles(vars.PriorTitles),
		vars.Count,
	)
}

func joinOrPlaceholder(items []string, sep string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, sep)
}

func renderHolidaySection(holidays []domain.Holiday) string {
	if len(holidays) == 0 {
		return nonePlaceholder
	}
	lines := make([]string, 0, len(holidays))
	for _, h := range holidays {
		lines = append(lines, fmt.Sprintf("- %s %s [%s/%s]: %s",
			h.Date, h.Name, h.Type, h.Relevance, h.Description))
	}
	return strings.Join(lines, "\n")
}

func renderCustomEvents(events []domain.CustomEvent) string {
	if len(events) == 0 {
		return nonePlaceholder
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		desc := e.Description
		if desc == "" {
			desc = "no description"
		}
		lines = append(lines, fmt.Sprintf("- %s %s: %s", e.Date, e.Name, desc))
	}
	return strings.Join(lines, "\n")
}

func renderLines(items []string) string {
	if len(items) == 0 {
		return nonePlaceholder
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

func renderToneTargets(targets []ToneTarget) string {
	if len(targets) == 0 {
		return nonePlaceholder
	}
	lines := make([]string, 0, len(targets))
	for _, t := range targets {
		lines = append(lines, fmt.Sprintf("- %s: %d videos", t.Tone, t.Count))
	}
	return strings.Join(lines, "\n")
}

// renderPriorTitles keeps only the most recent MaxPriorTopics titles;
// oldest entries are dropped first.
func renderPriorTitles(titles []string) string {
	recent := util.LastN(titles, constants.Generation.MaxPriorTopics)
	if len(recent) == 0 {
		return nonePlaceholder
	}
	lines := make([]string, 0, len(recent))
	for _, title := range recent {
		lines = append(lines, fmt.Sprintf("- %q", title))
	}
	return strings.Join(lines, "\n")
}
