package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firstballot/prospects/internal/models"
)

func proPlayer(name, pos string, ppg float64, games int) models.NFLPlayerProfile {
	return models.NFLPlayerProfile{
		DisplayName: name,
		Position:    pos,
		FantasyPPG:  ppg,
		GamesPlayed: games,
	}
}

func TestFindStatsBasedComparisons_EmptyInputs(t *testing.T) {
	pool := []models.NFLPlayerProfile{proPlayer("A", "WR", 15, 16)}
	stats := models.StatLine{models.StatRecYardsPG: 80}

	assert.Nil(t, FindStatsBasedComparisons(nil, "WR", pool))
	assert.Nil(t, FindStatsBasedComparisons(stats, "WR", nil))
}

func TestFindStatsBasedComparisons_FiltersPositionAndGames(t *testing.T) {
	stats := models.StatLine{models.StatRecYardsPG: 100} // college PPG proxy 10
	pool := []models.NFLPlayerProfile{
		proPlayer("Right Pos", "WR", 10, 16),
		proPlayer("Wrong Pos", "RB", 10, 16),
		proPlayer("Small Sample", "WR", 10, 5),
		proPlayer("Lowercase Pos", "wr", 10, 12),
	}

	got := FindStatsBasedComparisons(stats, "WR", pool)
	assert.Equal(t, []string{"Right Pos", "Lowercase Pos"}, got)
}

func TestFindStatsBasedComparisons_BestMatchFirstCapThree(t *testing.T) {
	stats := models.StatLine{models.StatRecYardsPG: 120} // proxy 12 PPG
	pool := []models.NFLPlayerProfile{
		proPlayer("Far", "WR", 24, 16),   // ratio score 0.5
		proPlayer("Exact", "WR", 12, 16), // 1.0
		proPlayer("Close", "WR", 15, 16), // 0.8
		proPlayer("Near", "WR", 13, 16),  // ~0.923
		proPlayer("Mid", "WR", 18, 16),   // ~0.667
	}

	got := FindStatsBasedComparisons(stats, "WR", pool)
	assert.Equal(t, []string{"Exact", "Near", "Close"}, got)
}

func TestFindStatsBasedComparisons_ZeroScoreExcluded(t *testing.T) {
	// No per-game receiving stat and no rushing stat leaves every candidate
	// at zero similarity.
	stats := models.StatLine{models.StatRecYards: 2000}
	pool := []models.NFLPlayerProfile{
		proPlayer("A", "WR", 15, 16),
		proPlayer("B", "WR", 10, 16),
	}

	assert.Empty(t, FindStatsBasedComparisons(stats, "WR", pool))
}

func TestFindStatsBasedComparisons_QBSignals(t *testing.T) {
	// 500 passing yards per game proxies to 20 fantasy PPG.
	stats := models.StatLine{
		models.StatPassYardsPG:   500,
		models.StatCompletionPct: 68.0,
	}
	pool := []models.NFLPlayerProfile{
		proPlayer("Match", "QB", 20, 17),
		proPlayer("Backup", "QB", 10, 16), // 0.5 ratio + 0.5 accuracy credit
		proPlayer("Injured", "QB", 20, 4),
	}

	got := FindStatsBasedComparisons(stats, "QB", pool)
	assert.Equal(t, []string{"Match", "Backup"}, got)
}

func TestFindStatsBasedComparisons_RBRushingCredit(t *testing.T) {
	withRush := models.StatLine{
		models.StatRecYardsPG:  20, // proxy 2 PPG
		models.StatRushYardsPG: 90,
	}
	withoutRush := models.StatLine{models.StatRecYardsPG: 20}
	pool := []models.NFLPlayerProfile{proPlayer("Back", "RB", 2, 16)}

	// Both find the match; the rushing credit only changes the score, which
	// is already clamped at 1.0 for the exact PPG match.
	assert.Equal(t, []string{"Back"}, FindStatsBasedComparisons(withRush, "RB", pool))
	assert.Equal(t, []string{"Back"}, FindStatsBasedComparisons(withoutRush, "RB", pool))
}

func TestFindStatsBasedComparisons_StableTieOrder(t *testing.T) {
	stats := models.StatLine{models.StatRecYardsPG: 100}
	pool := []models.NFLPlayerProfile{
		proPlayer("First", "TE", 10, 16),
		proPlayer("Second", "TE", 10, 16),
		proPlayer("Third", "TE", 10, 16),
		proPlayer("Fourth", "TE", 10, 16),
	}

	got := FindStatsBasedComparisons(stats, "TE", pool)
	assert.Equal(t, []string{"First", "Second", "Third"}, got)
}

func TestFindTierBasedComparisons_BandFilterAndOrder(t *testing.T) {
	pool := []models.NFLPlayerProfile{
		proPlayer("Low", "WR", 18.5, 16),
		proPlayer("Star", "WR", 25, 17),
		proPlayer("Edge", "WR", 30, 16),   // inclusive upper bound
		proPlayer("Floor", "WR", 18, 16),  // inclusive lower bound
		proPlayer("Under", "WR", 17.9, 16),
		proPlayer("Over", "WR", 30.1, 16),
		proPlayer("RB Guy", "RB", 25, 16),
		proPlayer("Hurt", "WR", 25, 3),
	}

	got := FindTierBasedComparisons("WR", "Tier 1", pool)
	assert.Equal(t, []string{"Edge", "Star", "Low"}, got)
}

func TestFindTierBasedComparisons_UnknownTierUsesDefaultBand(t *testing.T) {
	pool := []models.NFLPlayerProfile{
		proPlayer("In", "TE", 12, 16),
		proPlayer("Out", "TE", 21, 16), // above the 0-20 default band
	}

	got := FindTierBasedComparisons("TE", "Tier 9", pool)
	assert.Equal(t, []string{"In"}, got)
}

func TestFindTierBasedComparisons_Empty(t *testing.T) {
	assert.Empty(t, FindTierBasedComparisons("QB", "Tier 1", nil))

	pool := []models.NFLPlayerProfile{proPlayer("A", "QB", 5, 16)}
	assert.Empty(t, FindTierBasedComparisons("QB", "Tier 1", pool))
}
