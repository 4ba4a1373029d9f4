package dedupe

import "github.com/AndrewK67/shorts-studio/internal/util"

// EditDistance computes the classic Levenshtein distance between two
// strings: unit-cost insert, delete and substitute over runes. Two rows
// of the DP matrix are enough.
func EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = util.Min(util.Min(curr[j-1]+1, prev[j]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity returns the Levenshtein ratio of two strings:
// (maxLen - distance) / maxLen, in [0, 1]. Identical strings score 1,
// including two empty strings.
func Similarity(a, b string) float64 {
	maxLen := util.Max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-EditDistance(a, b)) / float64(maxLen)
}
