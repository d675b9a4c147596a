//go:build integration

package repository

import (
	"database/sql"
	"encoding/json"
	"testing"

	"firstballot/prospects/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProspectRepository_Upsert(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	prospect := &models.Prospect{
		Name:      "Test Runner",
		Position:  "RB",
		Rank:      4,
		DraftYear: 2026,
		School:    sql.NullString{String: "Georgia", Valid: true},
		Height:    sql.NullFloat64{Float64: 70, Valid: true},
		Weight:    sql.NullFloat64{Float64: 215, Valid: true},
	}

	// Insert new prospect
	err := db.Prospects.Upsert(ctx, prospect)
	require.NoError(t, err, "Should successfully insert prospect")
	assert.NotZero(t, prospect.ID, "Should assign an ID")

	// Verify prospect was created
	retrieved, err := db.Prospects.GetByName(ctx, "Test Runner", 2026)
	require.NoError(t, err, "Should retrieve inserted prospect")
	assert.Equal(t, prospect.Position, retrieved.Position, "Positions should match")
	assert.Equal(t, prospect.Rank, retrieved.Rank, "Ranks should match")

	// Update rank, leave measurables alone
	prospect.Rank = 2
	prospect.Height = sql.NullFloat64{}
	err = db.Prospects.Upsert(ctx, prospect)
	require.NoError(t, err, "Should successfully update prospect")

	// Verify rank moved and the earlier height survived the COALESCE
	updated, err := db.Prospects.GetByName(ctx, "Test Runner", 2026)
	require.NoError(t, err, "Should retrieve updated prospect")
	assert.Equal(t, 2, updated.Rank, "Rank should be updated")
	require.True(t, updated.Height.Valid, "Height should be preserved")
	assert.Equal(t, 70.0, updated.Height.Float64, "Height should be preserved")
}

func TestProspectRepository_UpsertWithStats(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	stats, err := json.Marshal(models.StatLine{
		models.StatRecYards:   2100,
		models.StatRecTDs:     17,
		models.StatTotalGames: 27,
	})
	require.NoError(t, err)

	prospect := &models.Prospect{
		Name:         "Test Receiver",
		Position:     "WR",
		Rank:         11,
		DraftYear:    2026,
		CollegeStats: stats,
		CollegeGames: sql.NullInt32{Int32: 27, Valid: true},
	}

	err = db.Prospects.Upsert(ctx, prospect)
	require.NoError(t, err, "Should insert prospect with stats")

	retrieved, err := db.Prospects.GetByID(ctx, prospect.ID)
	require.NoError(t, err, "Should retrieve prospect")

	line := retrieved.StatLineValue()
	require.NotNil(t, line, "Should decode college stats")
	assert.Equal(t, 2100.0, line.Get(models.StatRecYards), "Stats should round-trip")
}

func TestProspectRepository_UpdateEvaluation(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	prospect := &models.Prospect{
		Name:      "Test Passer",
		Position:  "QB",
		Rank:      1,
		DraftYear: 2026,
	}
	require.NoError(t, db.Prospects.Upsert(ctx, prospect))

	prospect.Tier = sql.NullString{String: "Tier 1", Valid: true}
	prospect.TierNumeric = sql.NullInt32{Int32: 1, Valid: true}
	prospect.DisplayTier = sql.NullString{String: "Elite Prospect", Valid: true}
	prospect.Valuation = sql.NullFloat64{Float64: 134.4, Valid: true}
	prospect.PositionMultiplier = sql.NullFloat64{Float64: 1.4, Valid: true}
	prospect.NFLComparisons = sql.NullString{String: "Pro One, Pro Two", Valid: true}

	err := db.Prospects.UpdateEvaluation(ctx, prospect)
	require.NoError(t, err, "Should persist evaluation fields")

	retrieved, err := db.Prospects.GetByID(ctx, prospect.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tier 1", retrieved.Tier.String, "Tier should persist")
	assert.Equal(t, int32(1), retrieved.TierNumeric.Int32, "Tier numeric should persist")
	assert.Equal(t, 134.4, retrieved.Valuation.Float64, "Valuation should persist")
	assert.Equal(t, "Pro One, Pro Two", retrieved.NFLComparisons.String, "Comparisons should persist")
}

func TestProspectRepository_UpdateGrades(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	prospect := &models.Prospect{
		Name:      "Test Tight End",
		Position:  "TE",
		Rank:      30,
		DraftYear: 2026,
	}
	require.NoError(t, db.Prospects.Upsert(ctx, prospect))

	prospect.OverallGrade = sql.NullFloat64{Float64: 72.4, Valid: true}
	prospect.GradeTier = sql.NullString{String: "Starter", Valid: true}
	prospect.HSRecruitingScore = sql.NullFloat64{Float64: 65, Valid: true}
	prospect.CollegeProductionScore = sql.NullFloat64{Float64: 85, Valid: true}
	prospect.DraftProjectionScore = sql.NullFloat64{Float64: 60, Valid: true}
	prospect.PhysicalMeasurablesScore = sql.NullFloat64{Float64: 90, Valid: true}
	prospect.ExpertConsensusScore = sql.NullFloat64{Float64: 60, Valid: true}

	err := db.Prospects.UpdateGrades(ctx, prospect)
	require.NoError(t, err, "Should persist grade fields")

	retrieved, err := db.Prospects.GetByID(ctx, prospect.ID)
	require.NoError(t, err)
	assert.Equal(t, 72.4, retrieved.OverallGrade.Float64, "Overall grade should persist")
	assert.Equal(t, "Starter", retrieved.GradeTier.String, "Grade tier should persist")
	assert.Equal(t, 85.0, retrieved.CollegeProductionScore.Float64, "Component should persist")
}

func TestProspectRepository_UpdateGradeTier(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	prospect := &models.Prospect{
		Name:      "Test Sleeper",
		Position:  "WR",
		Rank:      140,
		DraftYear: 2026,
	}
	require.NoError(t, db.Prospects.Upsert(ctx, prospect))

	err := db.Prospects.UpdateGradeTier(ctx, prospect.ID, "Tier 4", 4)
	require.NoError(t, err, "Should update tier from grade")

	retrieved, err := db.Prospects.GetByID(ctx, prospect.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tier 4", retrieved.Tier.String)
	assert.Equal(t, int32(4), retrieved.TierNumeric.Int32)

	// Unknown ID errors
	err = db.Prospects.UpdateGradeTier(ctx, 99999, "Tier 1", 1)
	assert.Error(t, err, "Should error for non-existent prospect")
}

func TestProspectRepository_ListByDraftYear(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	prospects := []*models.Prospect{
		{Name: "Class A", Position: "QB", Rank: 3, DraftYear: 2031},
		{Name: "Class B", Position: "RB", Rank: 1, DraftYear: 2031},
		{Name: "Class C", Position: "WR", Rank: 2, DraftYear: 2031},
	}
	for _, p := range prospects {
		require.NoError(t, db.Prospects.Upsert(ctx, p))
	}

	class, err := db.Prospects.ListByDraftYear(ctx, 2031)
	require.NoError(t, err, "Should list draft class")
	require.Len(t, class, 3, "Should return the whole class")
	assert.Equal(t, "Class B", class[0].Name, "Should order by rank")
	assert.Equal(t, "Class C", class[1].Name)

	byPos, err := db.Prospects.ListByPosition(ctx, 2031, "RB")
	require.NoError(t, err, "Should list by position")
	require.Len(t, byPos, 1)
	assert.Equal(t, "Class B", byPos[0].Name)

	count, err := db.Prospects.CountByDraftYear(ctx, 2031)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "Count should match class size")
}

func TestProspectRepository_GetNotFound(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	_, err := db.Prospects.GetByID(ctx, 99999)
	assert.Error(t, err, "Should return error for non-existent prospect")

	_, err = db.Prospects.GetByName(ctx, "Nobody", 1999)
	assert.Error(t, err, "Should return error for non-existent name")
}
