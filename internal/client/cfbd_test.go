package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RateLimits(t *testing.T) {
	c := NewClient("http://example.test", "key", time.Second, 0, 5)
	assert.Equal(t, 5, cap(c.rateLimiter))
	assert.Nil(t, c.pace, "Non-positive rate disables pacing")

	c = NewClient("http://example.test", "key", time.Second, 120, 0)
	assert.Equal(t, 20, cap(c.rateLimiter), "Non-positive burst falls back to the default")
	assert.NotNil(t, c.pace)
}

func TestPivotSeasonStats(t *testing.T) {
	rows := []StatRow{
		{Season: 2023, PlayerID: 42, Category: "passing", StatType: "YDS", Stat: 3200},
		{Season: 2023, PlayerID: 42, Category: "passing", StatType: "TD", Stat: 28},
		{Season: 2023, PlayerID: 42, Category: "passing", StatType: "INT", Stat: 7},
		{Season: 2023, PlayerID: 42, Category: "rushing", StatType: "YDS", Stat: 310},
		{Season: 2023, PlayerID: 42, Category: "general", StatType: "games", Stat: 12},
		{Season: 2024, PlayerID: 42, Category: "passing", StatType: "YDS", Stat: 3650},
		{Season: 2024, PlayerID: 42, Category: "general", StatType: "games", Stat: 13},
		// Another player's rows are skipped.
		{Season: 2024, PlayerID: 99, Category: "passing", StatType: "YDS", Stat: 9999},
	}

	seasons := PivotSeasonStats(rows, 42)
	require.Len(t, seasons, 2, "Should produce one entry per season")

	first := seasons[0]
	assert.Equal(t, 2023, first.Season)
	require.NotNil(t, first.PassingYards)
	assert.Equal(t, 3200.0, *first.PassingYards)
	require.NotNil(t, first.PassingINTs)
	assert.Equal(t, 7.0, *first.PassingINTs)
	require.NotNil(t, first.RushingYards)
	assert.Equal(t, 310.0, *first.RushingYards)
	require.NotNil(t, first.Games)
	assert.Equal(t, 12, *first.Games)
	assert.Nil(t, first.Receptions, "Untouched fields stay nil")

	second := seasons[1]
	assert.Equal(t, 2024, second.Season)
	require.NotNil(t, second.PassingYards)
	assert.Equal(t, 3650.0, *second.PassingYards)
	assert.Nil(t, second.PassingTouchdowns)
}

func TestPivotSeasonStats_ReceivingAndEmpty(t *testing.T) {
	rows := []StatRow{
		{Season: 2024, PlayerID: 7, Category: "receiving", StatType: "REC", Stat: 78},
		{Season: 2024, PlayerID: 7, Category: "receiving", StatType: "YDS", Stat: 1150},
		{Season: 2024, PlayerID: 7, Category: "receiving", StatType: "TD", Stat: 11},
	}

	seasons := PivotSeasonStats(rows, 7)
	require.Len(t, seasons, 1)
	require.NotNil(t, seasons[0].ReceivingYards)
	assert.Equal(t, 1150.0, *seasons[0].ReceivingYards)
	require.NotNil(t, seasons[0].Receptions)
	assert.Equal(t, 78.0, *seasons[0].Receptions)

	assert.Empty(t, PivotSeasonStats(rows, 1), "No rows for the player yields no seasons")
	assert.Empty(t, PivotSeasonStats(nil, 7), "Nil input yields no seasons")
}
