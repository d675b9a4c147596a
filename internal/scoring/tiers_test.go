package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFromRank_Breakpoints(t *testing.T) {
	tests := []struct {
		name        string
		rank        int
		wantTier    string
		wantDisplay string
		wantNumeric int
	}{
		{"top pick", 1, "Tier 1", "Elite Prospect", 1},
		{"last of tier 1", 5, "Tier 1", "Elite Prospect", 1},
		{"first of tier 2", 6, "Tier 2", "Elite Prospect", 2},
		{"last of tier 2", 12, "Tier 2", "Elite Prospect", 2},
		{"first of tier 3", 13, "Tier 3", "First Round", 3},
		{"last of tier 3", 18, "Tier 3", "First Round", 3},
		{"first of tier 4", 19, "Tier 4", "First Round", 4},
		{"last of tier 4", 25, "Tier 4", "First Round", 4},
		{"first of tier 5", 26, "Tier 5", "First Round", 5},
		{"second round display", 50, "Tier 5", "Second Round", 5},
		{"third round display", 100, "Tier 5", "Third Round", 5},
		{"mid round display", 150, "Tier 5", "Mid Round", 5},
		{"late round display", 250, "Tier 5", "Late Round", 5},
		{"undrafted display", 400, "Tier 5", "Undrafted", 5},
		{"deep rank", 9999, "Tier 5", "Undrafted", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, display, numeric := TierFromRank(tt.rank)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantDisplay, display)
			assert.Equal(t, tt.wantNumeric, numeric)
		})
	}
}

func TestTierFromRank_InvalidRank(t *testing.T) {
	for _, rank := range []int{0, -1, -100} {
		tier, display, numeric := TierFromRank(rank)
		assert.Equal(t, "Tier 5", tier)
		assert.Equal(t, "Undrafted", display)
		assert.Equal(t, 5, numeric)
	}
}

func TestTierFromRank_TotalOverDomain(t *testing.T) {
	// Every positive rank maps to exactly one tier in both schemes.
	for rank := 1; rank <= 500; rank++ {
		_, _, numeric := TierFromRank(rank)
		assert.GreaterOrEqual(t, numeric, 1)
		assert.LessOrEqual(t, numeric, 5)
	}
}

func TestTierFromValuation_Breakpoints(t *testing.T) {
	tests := []struct {
		valuation   float64
		wantTier    string
		wantNumeric int
	}{
		{134.4, "Tier 1", 1},
		{50.0, "Tier 1", 1},
		{49.99, "Tier 2", 2},
		{30.0, "Tier 2", 2},
		{29.99, "Tier 3", 3},
		{20.0, "Tier 3", 3},
		{19.99, "Tier 4", 4},
		{10.0, "Tier 4", 4},
		{9.99, "Tier 5", 5},
		{1.0, "Tier 5", 5},
	}

	for _, tt := range tests {
		tier, numeric := TierFromValuation(tt.valuation)
		assert.Equal(t, tt.wantTier, tier, "valuation=%v", tt.valuation)
		assert.Equal(t, tt.wantNumeric, numeric, "valuation=%v", tt.valuation)
	}
}

func TestTierFromValuation_InvalidValues(t *testing.T) {
	for _, v := range []float64{0, -1, -50.5} {
		tier, numeric := TierFromValuation(v)
		assert.Equal(t, "Tier 5", tier)
		assert.Equal(t, 5, numeric)
	}
}

func TestTierName(t *testing.T) {
	assert.Equal(t, "Tier 1", TierName(1))
	assert.Equal(t, "Tier 6", TierName(6))
	assert.Equal(t, "Tier 5", TierName(0))
	assert.Equal(t, "Tier 5", TierName(99))
}
