package scoring

import (
	"math"
	"strings"
)

// ValuationTierParams drive the hybrid exponential-tiered value curve:
//
//	value(rank) = BaseValue * e^(-Decay * (rank - TierStart)) + TierFloor
//
// Rank ranges are contiguous and exhaustive; the floors and bases are chosen so
// the curve is non-increasing across tier boundaries.
type ValuationTierParams struct {
	MinRank   int
	MaxRank   int
	BaseValue float64
	TierFloor float64
	Decay     float64
	TierStart int
}

var valuationParams = []ValuationTierParams{
	{1, 12, 70.0, 26.0, 0.1, 1},
	{13, 36, 52.0, 15.0, 0.07, 13},
	{37, 72, 35.0, 8.0, 0.05, 37},
	{73, 9999, 15.0, 3.0, 0.02, 73},
}

// positionMultipliers model positional scarcity: QBs and TEs carry a premium,
// RBs a discount for short shelf life.
var positionMultipliers = map[string]float64{
	"QB": 1.4,
	"RB": 0.8,
	"WR": 1.0,
	"TE": 1.2,
}

// unrankedValue is the sentinel for prospects outside the rankable range.
const unrankedValue = 1.0

// ProspectValue computes a prospect's valuation from rank using tiered
// exponential decay, multiplied by the position premium when a position is
// given. Ranks outside (0, 1000] return the unranked sentinel 1.0. The result
// is rounded to 2 decimals for storage.
func ProspectValue(rank int, position string) float64 {
	if rank <= 0 || rank > 1000 {
		return unrankedValue
	}

	params := valuationParams[len(valuationParams)-1]
	for _, p := range valuationParams {
		if rank >= p.MinRank && rank <= p.MaxRank {
			params = p
			break
		}
	}

	value := params.BaseValue*math.Exp(-params.Decay*float64(rank-params.TierStart)) + params.TierFloor

	if position != "" {
		value *= PositionMultiplier(position)
	}

	return round2(value)
}

// PositionMultiplier returns the scarcity multiplier for a position, 1.0 for
// anything unrecognized.
func PositionMultiplier(position string) float64 {
	if m, ok := positionMultipliers[normalizePosition(position)]; ok {
		return m
	}
	return 1.0
}

func normalizePosition(position string) string {
	return strings.ToUpper(strings.TrimSpace(position))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
