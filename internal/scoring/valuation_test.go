package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProspectValue_KnownPoints(t *testing.T) {
	// Tier starts collapse the exponential to e^0, so the curve is base+floor.
	assert.InDelta(t, 96.0, ProspectValue(1, ""), 0.01)
	assert.InDelta(t, 67.0, ProspectValue(13, ""), 0.01)
	assert.InDelta(t, 43.0, ProspectValue(37, ""), 0.01)
	assert.InDelta(t, 18.0, ProspectValue(73, ""), 0.01)
}

func TestProspectValue_PositionMultipliers(t *testing.T) {
	// (70*e^0 + 26) * 1.4 for the top-ranked QB.
	assert.InDelta(t, 134.40, ProspectValue(1, "QB"), 0.01)
	// RB discount on the same rank.
	assert.InDelta(t, 76.80, ProspectValue(1, "RB"), 0.01)
	assert.InDelta(t, 96.0, ProspectValue(1, "WR"), 0.01)
	assert.InDelta(t, 115.20, ProspectValue(1, "TE"), 0.01)
	// Unknown positions get no multiplier.
	assert.InDelta(t, 96.0, ProspectValue(1, "K"), 0.01)
	// Lowercase input is normalized.
	assert.InDelta(t, 134.40, ProspectValue(1, "qb"), 0.01)
}

func TestProspectValue_UnrankedSentinel(t *testing.T) {
	for _, rank := range []int{0, -1, 1001, 5000} {
		assert.Equal(t, 1.0, ProspectValue(rank, "QB"), "rank=%d", rank)
	}
}

func TestProspectValue_ExponentialDecay(t *testing.T) {
	// Rank 5 within tier 1: 70*e^(-0.1*4) + 26.
	want := math.Round((70*math.Exp(-0.4)+26)*100) / 100
	assert.Equal(t, want, ProspectValue(5, ""))
}

func TestProspectValue_StrictlyDecreasingWithinTiers(t *testing.T) {
	// Past rank ~250 the decay term shrinks below the 2-decimal rounding
	// granularity, so strictness is only checked where it is observable.
	tiers := [][2]int{{1, 12}, {13, 36}, {37, 72}, {73, 200}}

	for _, pos := range []string{"", "QB", "RB", "WR", "TE"} {
		for _, bounds := range tiers {
			prev := math.Inf(1)
			for rank := bounds[0]; rank <= bounds[1]; rank++ {
				v := ProspectValue(rank, pos)
				assert.Less(t, v, prev, "pos=%q rank=%d", pos, rank)
				prev = v
			}
		}
	}
}

func TestProspectValue_NonIncreasingDeepRanks(t *testing.T) {
	prev := math.Inf(1)
	for rank := 73; rank <= 1000; rank++ {
		v := ProspectValue(rank, "")
		assert.LessOrEqual(t, v, prev, "rank=%d", rank)
		prev = v
	}
}

func TestProspectValue_AlwaysPositive(t *testing.T) {
	for rank := 1; rank <= 1000; rank++ {
		assert.Greater(t, ProspectValue(rank, "RB"), 0.0)
	}
}

func TestProspectValue_Deterministic(t *testing.T) {
	for _, rank := range []int{1, 12, 13, 72, 73, 500} {
		assert.Equal(t, ProspectValue(rank, "TE"), ProspectValue(rank, "TE"))
	}
}

func TestPositionMultiplier(t *testing.T) {
	assert.Equal(t, 1.4, PositionMultiplier("QB"))
	assert.Equal(t, 0.8, PositionMultiplier("RB"))
	assert.Equal(t, 1.0, PositionMultiplier("WR"))
	assert.Equal(t, 1.2, PositionMultiplier("TE"))
	assert.Equal(t, 1.0, PositionMultiplier("K"))
	assert.Equal(t, 1.0, PositionMultiplier(""))
	assert.Equal(t, 0.8, PositionMultiplier("rb"))
}
