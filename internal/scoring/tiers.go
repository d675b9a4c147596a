package scoring

// Prospect tiers come in several historically divergent schemes that downstream
// consumers depend on individually:
//
//   - a 5-level numeric scheme keyed on rank ("Tier 1".."Tier 5")
//   - a 7-level display scheme keyed on rank ("Elite Prospect".."Undrafted")
//   - a 5-level scheme keyed on valuation
//   - a 6-level scheme keyed on overall grade (see grading.go)
//
// The breakpoints are intentionally NOT aligned across schemes. Each is exposed
// as its own function and must not be unified.

// TierBreakpoint maps an inclusive rank range to a numeric tier.
type TierBreakpoint struct {
	MinRank int
	MaxRank int
	Name    string
	Numeric int
}

// tierBreakpoints is checked in ascending order; first match wins.
var tierBreakpoints = []TierBreakpoint{
	{1, 5, "Tier 1", 1},
	{6, 12, "Tier 2", 2},
	{13, 18, "Tier 3", 3},
	{19, 25, "Tier 4", 4},
	{26, 9999, "Tier 5", 5},
}

// displayTierBreakpoints produces human labels for the frontend. Ranges differ
// from the numeric scheme above and the two must stay independent.
var displayTierBreakpoints = []TierBreakpoint{
	{1, 12, "Elite Prospect", 0},
	{13, 36, "First Round", 0},
	{37, 72, "Second Round", 0},
	{73, 120, "Third Round", 0},
	{121, 200, "Mid Round", 0},
	{201, 300, "Late Round", 0},
	{301, 9999, "Undrafted", 0},
}

// ValuationBreakpoint maps a minimum valuation to a tier. Checked from highest
// threshold down; first match wins.
type ValuationBreakpoint struct {
	MinValue float64
	Name     string
	Numeric  int
}

var valuationBreakpoints = []ValuationBreakpoint{
	{50.0, "Tier 1", 1},
	{30.0, "Tier 2", 2},
	{20.0, "Tier 3", 3},
	{10.0, "Tier 4", 4},
	{0.0, "Tier 5", 5},
}

// tierNames maps numeric tiers back to their names.
var tierNames = map[int]string{
	1: "Tier 1",
	2: "Tier 2",
	3: "Tier 3",
	4: "Tier 4",
	5: "Tier 5",
	6: "Tier 6",
}

// TierFromRank returns the numeric-scheme tier name, the display tier label and
// the numeric tier for a prospect rank. Ranks <= 0 fall back to Tier 5 /
// Undrafted.
func TierFromRank(rank int) (tier string, displayTier string, numeric int) {
	tier = "Tier 5"
	displayTier = "Undrafted"
	numeric = 5

	if rank <= 0 {
		return tier, displayTier, numeric
	}

	for _, bp := range tierBreakpoints {
		if rank >= bp.MinRank && rank <= bp.MaxRank {
			tier = bp.Name
			numeric = bp.Numeric
			break
		}
	}

	for _, bp := range displayTierBreakpoints {
		if rank >= bp.MinRank && rank <= bp.MaxRank {
			displayTier = bp.Name
			break
		}
	}

	return tier, displayTier, numeric
}

// TierFromValuation classifies a prospect by its computed valuation instead of
// rank, so a positional premium (QB, TE) can lift a player into a higher tier.
// Zero or negative valuations fall back to Tier 5.
func TierFromValuation(valuation float64) (tier string, numeric int) {
	if valuation <= 0 {
		return "Tier 5", 5
	}

	for _, bp := range valuationBreakpoints {
		if valuation >= bp.MinValue {
			return bp.Name, bp.Numeric
		}
	}

	return "Tier 5", 5
}

// TierName returns the canonical name for a numeric tier, or "Tier 5" for
// values outside the known schemes.
func TierName(numeric int) string {
	if name, ok := tierNames[numeric]; ok {
		return name
	}
	return "Tier 5"
}
