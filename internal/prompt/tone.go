package prompt

import (
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/util"
)

// ToneTargets converts a tone-mix distribution into per-tone video counts
// via round(percent/100 * videosNeeded), half away from zero. The rounded
// counts are deliberately NOT corrected to sum to videosNeeded: when the
// percentages don't divide evenly the slack is a documented property of
// the pipeline, and silently reshuffling counts would change which tones
// gain or lose a video between runs.
func ToneTargets(mix []domain.ToneShare, videosNeeded int) []ToneTarget {
	targets := make([]ToneTarget, 0, len(mix))
	for _, share := range mix {
		targets = append(targets, ToneTarget{
			Tone:  share.Tone,
			Count: util.RoundRatio(share.Percent, 100, videosNeeded),
		})
	}
	return targets
}
