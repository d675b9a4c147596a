package scoring

import "math"

// PhysicalThresholds holds the ideal height/weight window for a position, used
// for tier adjustments.
type PhysicalThresholds struct {
	HeightMin float64
	HeightMax float64
	WeightMin float64
	WeightMax float64
}

// physicalThresholds are the tier-adjustment windows. These are deliberately
// distinct from the grading ideals in grading.go; the two tables drifted apart
// in production and both sets of consumers expect their own numbers.
var physicalThresholds = map[string]PhysicalThresholds{
	"QB": {HeightMin: 75, HeightMax: 79, WeightMin: 210, WeightMax: 250},
	"RB": {HeightMin: 68, HeightMax: 72, WeightMin: 210, WeightMax: 230},
	"WR": {HeightMin: 72, HeightMax: 78, WeightMin: 185, WeightMax: 225},
	"TE": {HeightMin: 76, HeightMax: 82, WeightMin: 240, WeightMax: 270},
}

// AdjustTierForPhysicals nudges a rank-based tier by height/weight fit.
//
// Height inside the ideal window boosts lower tiers (base >= 3) by half a tier;
// more than 2 inches under the window penalizes QB/TE a full tier; more than
// 2 inches over penalizes RB half a tier. Weight inside the window boosts lower
// tiers by half a tier; more than 15 lbs under penalizes RB/TE a full tier;
// more than 30 lbs over penalizes RB a full tier.
//
// The accumulated adjustment is added to the base and rounded half-up, then
// clamped to [1,5]. Note the function itself is symmetric; callers that only
// want upgrades (the valuation path) compare against their own tier and keep
// the better of the two.
//
// Missing height and weight, or an unknown position, return the base unchanged.
func AdjustTierForPhysicals(position string, height, weight *float64, baseTierNumeric int) int {
	if height == nil && weight == nil {
		return baseTierNumeric
	}

	t, ok := physicalThresholds[normalizePosition(position)]
	if !ok {
		return baseTierNumeric
	}

	adjustment := 0.0

	if height != nil {
		h := *height
		switch {
		case h >= t.HeightMin && h <= t.HeightMax:
			if baseTierNumeric >= 3 {
				adjustment += 0.5
			}
		case h < t.HeightMin-2:
			// Height matters most for QB and TE.
			if p := normalizePosition(position); p == "QB" || p == "TE" {
				adjustment -= 1
			}
		case h > t.HeightMax+2:
			if normalizePosition(position) == "RB" {
				adjustment -= 0.5
			}
		}
	}

	if weight != nil {
		w := *weight
		switch {
		case w >= t.WeightMin && w <= t.WeightMax:
			if baseTierNumeric >= 3 {
				adjustment += 0.5
			}
		case w < t.WeightMin-15:
			if p := normalizePosition(position); p == "RB" || p == "TE" {
				adjustment -= 1
			}
		case w > t.WeightMax+30:
			if normalizePosition(position) == "RB" {
				adjustment -= 1
			}
		}
	}

	adjusted := roundHalfUp(float64(baseTierNumeric) + adjustment)
	return clampInt(adjusted, 1, 5)
}

// PhysicalScore rates how well height/weight match the position's ideal window
// on a 0..1 scale. Each present axis scores 1.0 at the window center, falling
// off linearly to 0 at either window edge; the axes are averaged. Missing
// measurements or an unknown position score a neutral 0.5.
func PhysicalScore(position string, height, weight *float64) float64 {
	if height == nil && weight == nil {
		return 0.5
	}

	t, ok := physicalThresholds[normalizePosition(position)]
	if !ok {
		return 0.5
	}

	score := 0.0
	axes := 0

	if height != nil {
		score += axisScore(*height, t.HeightMin, t.HeightMax)
		axes++
	}
	if weight != nil {
		score += axisScore(*weight, t.WeightMin, t.WeightMax)
		axes++
	}

	if axes == 0 {
		return 0.5
	}
	return score / float64(axes)
}

// axisScore is the linear falloff from the ideal-range center, normalized by
// half the range width.
func axisScore(value, idealMin, idealMax float64) float64 {
	center := (idealMin + idealMax) / 2
	maxDistance := (idealMax - idealMin) / 2
	distance := math.Abs(value - center)
	return math.Max(0, 1.0-distance/maxDistance)
}

// roundHalfUp rounds to the nearest integer with .5 rounding away from zero
// toward positive infinity (3.5 -> 4, 2.5 -> 3). The convention is load-bearing
// for tier adjustment and pinned by tests at the .5 boundaries.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
