package scoring

import (
	"sort"

	"github.com/mauv0809/bvtracker/internal/points"
)

// FallbackPair is returned when no pair of ranks produces the requested points.
var FallbackPair = [2]points.Rank{6, 7}

// InferOpponentRanks reconstructs a plausible opponent pair for a points-only
// win. Several pairs can share a rounded average; the closest matched pair
// wins, then the stronger one.
func InferOpponentRanks(target int) (points.Rank, points.Rank) {
	var candidates [][2]points.Rank
	ranks := points.Ranks()
	for i, r1 := range ranks {
		for _, r2 := range ranks[i:] {
			if WinPoints(r1, r2) == target {
				candidates = append(candidates, [2]points.Rank{r1, r2})
			}
		}
	}

	if len(candidates) == 0 {
		return FallbackPair[0], FallbackPair[1]
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := spread(candidates[i]), spread(candidates[j])
		if di != dj {
			return di < dj
		}
		return candidates[i][0]+candidates[i][1] < candidates[j][0]+candidates[j][1]
	})
	return candidates[0][0], candidates[0][1]
}

func spread(pair [2]points.Rank) points.Rank {
	if pair[0] > pair[1] {
		return pair[0] - pair[1]
	}
	return pair[1] - pair[0]
}
