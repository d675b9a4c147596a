package scoring

import (
	"math"
	"sort"

	"firstballot/prospects/internal/models"
)

// minComparisonGames filters out small-sample pro seasons.
const minComparisonGames = 8

// maxComparisons caps the returned shortlist.
const maxComparisons = 3

// ppgRange is an inclusive fantasy points-per-game window.
type ppgRange struct {
	Min float64
	Max float64
}

// tierPPGRanges maps a prospect tier to the pro production band it projects
// to, for the stats-free fallback.
var tierPPGRanges = map[string]ppgRange{
	"Tier 1": {18, 30},
	"Tier 2": {15, 22},
	"Tier 3": {12, 18},
	"Tier 4": {8, 15},
	"Tier 5": {0, 12},
}

var defaultPPGRange = ppgRange{0, 20}

// FindStatsBasedComparisons ranks pro players by statistical similarity to the
// prospect's aggregated college line and returns up to 3 display names, best
// match first. Candidates must share the position, have played at least 8
// games, and score above zero. Missing stats or an empty pool return no
// comparisons.
func FindStatsBasedComparisons(stats models.StatLine, position string, pool []models.NFLPlayerProfile) []string {
	if stats == nil || len(pool) == 0 {
		return nil
	}

	pos := normalizePosition(position)

	type scored struct {
		name  string
		score float64
	}
	var candidates []scored

	for _, p := range pool {
		if normalizePosition(p.Position) != pos || p.GamesPlayed < minComparisonGames {
			continue
		}
		score := similarityScore(stats, p, pos)
		if score > 0 {
			candidates = append(candidates, scored{name: p.DisplayName, score: score})
		}
	}

	// Stable keeps pool order for ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	names := make([]string, 0, maxComparisons)
	for _, c := range candidates {
		if len(names) == maxComparisons {
			break
		}
		names = append(names, c.name)
	}
	return names
}

// similarityScore is a crude per-game-production heuristic comparing college
// rates against pro fantasy scoring, clamped to [0,1].
func similarityScore(stats models.StatLine, p models.NFLPlayerProfile, position string) float64 {
	score := 0.0

	switch position {
	case "QB":
		if stats.Has(models.StatPassYardsPG) && p.FantasyPPG > 0 {
			// ~25 passing yards per fantasy point.
			collegePPG := stats.Get(models.StatPassYardsPG) / 25
			score += 1.0 - math.Abs(collegePPG-p.FantasyPPG)/math.Max(collegePPG, p.FantasyPPG)
		}
		if stats.Has(models.StatCompletionPct) {
			// Accuracy signal; no pro-side field to compare against, so a
			// flat credit keeps stat-rich profiles ahead of bare ones.
			score += 0.5
		}

	case "RB", "WR", "TE":
		if stats.Has(models.StatRecYardsPG) && p.FantasyPPG > 0 {
			collegePPG := stats.Get(models.StatRecYardsPG) / 10
			score += 1.0 - math.Abs(collegePPG-p.FantasyPPG)/math.Max(collegePPG, p.FantasyPPG)
		}
		if position == "RB" && stats.Has(models.StatRushYardsPG) {
			score += 0.3
		}
	}

	return math.Max(0.0, math.Min(1.0, score))
}

// FindTierBasedComparisons is the fallback when no college stats exist: it
// filters the pool to the position and the tier's expected fantasy-PPG band
// and returns up to 3 names sorted by PPG descending. An empty band or pool
// returns no comparisons.
func FindTierBasedComparisons(position, tier string, pool []models.NFLPlayerProfile) []string {
	pos := normalizePosition(position)

	band, ok := tierPPGRanges[tier]
	if !ok {
		band = defaultPPGRange
	}

	var matches []models.NFLPlayerProfile
	for _, p := range pool {
		if normalizePosition(p.Position) != pos || p.GamesPlayed < minComparisonGames {
			continue
		}
		if p.FantasyPPG < band.Min || p.FantasyPPG > band.Max {
			continue
		}
		matches = append(matches, p)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FantasyPPG > matches[j].FantasyPPG
	})

	names := make([]string, 0, maxComparisons)
	for _, p := range matches {
		if len(names) == maxComparisons {
			break
		}
		names = append(names, p.DisplayName)
	}
	return names
}
