package dedupe

import (
	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/util"
	"go.uber.org/zap"
)

// Deduplicator rejects topic candidates whose titles exactly match or
// are near-duplicates of titles already seen. Threshold is the inherited
// 0.80 similarity cutoff, surfaced in config as a tunable.
type Deduplicator struct {
	threshold float64
	logger    *zap.Logger
}

func NewDeduplicator(threshold float64, logger *zap.Logger) *Deduplicator {
	if threshold <= 0 || threshold > 1 {
		threshold = constants.Generation.TitleSimilarityThreshold
	}
	return &Deduplicator{threshold: threshold, logger: logger}
}

// FilterUnique walks candidates in input order (first seen wins) and
// keeps those that survive, in order:
//  1. drop candidates missing title, hook or core value (silently;
//     partial success beats failing the batch)
//  2. drop exact matches against the seen set (normalized lowercase+trim)
//  3. drop candidates whose similarity against ANY seen title exceeds
//     the threshold
// Accepted titles join the seen set, so later candidates in the same
// batch are checked against earlier accepted ones too.
func (d *Deduplicator) FilterUnique(candidates []domain.TopicCandidate, existingTitles []string) []domain.TopicCandidate {
	seen := make([]string, 0, len(existingTitles)+len(candidates))
	seenSet := make(map[string]struct{}, len(existingTitles)+len(candidates))
	for _, title := range existingTitles {
		normalized := util.Normalize(util.CollapseWhitespace(title))
		if _, dup := seenSet[normalized]; dup {
			continue
		}
		seenSet[normalized] = struct{}{}
		seen = append(seen, normalized)
	}

	accepted := make([]domain.TopicCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.HasRequiredFields() {
			d.logger.Debug("Dropping candidate with missing required fields",
				zap.String("title", candidate.Title))
			continue
		}

		normalized := util.Normalize(util.CollapseWhitespace(candidate.Title))

		if _, dup := seenSet[normalized]; dup {
			d.logger.Debug("Dropping exact duplicate title",
				zap.String("title", candidate.Title))
			continue
		}

		if match, score := d.closestMatch(normalized, seen); score > d.threshold {
			d.logger.Debug("Dropping near-duplicate title",
				zap.String("title", candidate.Title),
				zap.String("matched", match),
				zap.Float64("similarity", score))
			continue
		}

		accepted = append(accepted, candidate)
		seenSet[normalized] = struct{}{}
		seen = append(seen, normalized)
	}

	return accepted
}

// closestMatch returns the best-scoring seen title. Quadratic in the
// worst case, which is fine: batches are tens of titles, not thousands.
func (d *Deduplicator) closestMatch(normalized string, seen []string) (string, float64) {
	best := ""
	bestScore := 0.0
	for _, title := range seen {
		if score := Similarity(normalized, title); score > bestScore {
			best = title
			bestScore = score
		}
	}
	return best, bestScore
}
