package region

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/util"
)

// Resolver answers regional questions by merging two catalog configs: the
// creator's conventions with the target audience's holidays, terminology
// and culture. It holds no state beyond the read-only catalog.
type Resolver struct {
	catalog *Catalog
}

func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Catalog exposes the underlying catalog for enumeration endpoints.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// HolidaysInMonth returns the config's holidays whose date starts with
// the requested YYYY-MM prefix, preserving catalog order.
func (r *Resolver) HolidaysInMonth(countryCode string, year, month int) []domain.Holiday {
	prefix := fmt.Sprintf("%04d-%02d", year, month)

	cfg := r.catalog.Config(countryCode)
	var out []domain.Holiday
	for _, h := range cfg.Holidays {
		if strings.HasPrefix(h.Date, prefix) {
			out = append(out, h)
		}
	}
	return out
}

// HolidaysInRange returns holidays with startDate <= date <= endDate.
// ISO dates sort lexically in chronological order, so this is a plain
// string comparison. Malformed bounds simply match nothing; this path is
// reachable from generated content and must not panic.
func (r *Resolver) HolidaysInRange(countryCode, startDate, endDate string) []domain.Holiday {
	cfg := r.catalog.Config(countryCode)
	var out []domain.Holiday
	for _, h := range cfg.Holidays {
		if h.Date >= startDate && h.Date <= endDate {
			out = append(out, h)
		}
	}
	return out
}

// SeasonLabel maps a month to its season for the given hemisphere. Pure
// bucket membership, no calendar math.
func SeasonLabel(month int, hemisphere domain.Hemisphere) string {
	var northern string
	switch month {
	case 12, 1, 2:
		northern = "Winter"
	case 3, 4, 5:
		northern = "Spring"
	case 6, 7, 8:
		northern = "Summer"
	case 9, 10, 11:
		northern = "Autumn"
	default:
		return ""
	}

	if hemisphere != domain.HemisphereSouthern {
		return northern
	}

	switch northern {
	case "Winter":
		return "Summer"
	case "Spring":
		return "Autumn"
	case "Summer":
		return "Winter"
	default:
		return "Spring"
	}
}

// CulturalContext builds a human-readable list for the month: one bullet
// per in-month holiday (any year) followed by exactly one seasonal label.
func (r *Resolver) CulturalContext(countryCode string, month int) []string {
	cfg := r.catalog.Config(countryCode)
	monthPart := fmt.Sprintf("-%02d-", month)

	var lines []string
	for _, h := range cfg.Holidays {
		if strings.Contains(h.Date, monthPart) {
			lines = append(lines, fmt.Sprintf("%s (%s): %s", h.Name, h.Date, h.Description))
		}
	}

	lines = append(lines, fmt.Sprintf("Season: %s", SeasonLabel(month, cfg.Hemisphere)))
	return lines
}

// TranslateTerm substitutes a term from one region's vocabulary into
// another's. The term is matched case-insensitively against the from
// region's words to recover the pivot key, then the key is looked up in
// the to region's map. Unknown terms come back unchanged; absence of a
// mapping is the steady state for most words, not an error.
func (r *Resolver) TranslateTerm(term, fromCode, toCode string) string {
	from := r.catalog.Config(fromCode)
	to := r.catalog.Config(toCode)

	normalized := util.Normalize(term)
	if normalized == "" {
		return term
	}

	key := ""
	for pivot, word := range from.Terminology {
		if util.Normalize(word) == normalized {
			key = pivot
			break
		}
	}
	if key == "" {
		// The term may already be the pivot form
		if _, ok := from.Terminology[normalized]; ok {
			key = normalized
		}
	}
	if key == "" {
		return term
	}

	if translated, ok := to.Terminology[key]; ok && translated != "" {
		return translated
	}
	return term
}

// TerminologySubstitutions renders the "say this, not that" lines for a
// creator writing for a target audience. Only pivot keys whose words
// differ between the two regions produce a line; output order is stable.
func (r *Resolver) TerminologySubstitutions(creatorCode, targetCode string) []string {
	creator := r.catalog.Config(creatorCode)
	target := r.catalog.Config(targetCode)

	keys := make([]string, 0, len(creator.Terminology))
	for key := range creator.Terminology {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		creatorWord := creator.Terminology[key]
		targetWord, ok := target.Terminology[key]
		if !ok || targetWord == "" {
			continue
		}
		if util.Normalize(creatorWord) == util.Normalize(targetWord) {
			continue
		}
		lines = append(lines, fmt.Sprintf("say %q, not %q", targetWord, creatorWord))
	}
	return lines
}

// BuildPromptContext composes the merged view consumed by the prompt
// builders. Unknown country codes fall back to the default region, so
// this always succeeds.
func (r *Resolver) BuildPromptContext(creatorCode, targetCode string, month, year int, customEvents []domain.CustomEvent) *domain.RegionalPromptContext {
	creator := r.catalog.Config(creatorCode)
	target := r.catalog.Config(targetCode)

	return &domain.RegionalPromptContext{
		Creator:       creator,
		Target:        target,
		Month:         month,
		Year:          year,
		Holidays:      r.HolidaysInMonth(targetCode, year, month),
		Terminology:   r.TerminologySubstitutions(creatorCode, targetCode),
		CulturalNotes: r.CulturalContext(targetCode, month),
		CustomEvents:  customEvents,
	}
}
