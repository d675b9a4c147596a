package pipeline

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstballot/prospects/internal/client"
	"firstballot/prospects/internal/models"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func TestRecruitLookup_NormalizesNames(t *testing.T) {
	rows := []client.RecruitRow{
		{Name: "  Jalen Star ", Stars: intp(5)},
		{Name: "Marcus Deep", Stars: intp(3)},
		{Name: ""},
		{Name: "Marcus Deep", Stars: intp(4)},
	}

	lookup := recruitLookup(rows)
	require.Len(t, lookup, 2)

	star, ok := lookup["jalen star"]
	require.True(t, ok, "Names are trimmed and lowercased")
	assert.Equal(t, 5, *star.Stars)

	dup, ok := lookup["marcus deep"]
	require.True(t, ok)
	assert.Equal(t, 4, *dup.Stars, "Duplicate names keep the later row")
}

func TestApplyRecruit_FillsOnlyMissingColumns(t *testing.T) {
	p := &models.Prospect{
		Name:    "Sourced Stars",
		HSStars: sql.NullInt32{Int32: 4, Valid: true},
	}

	applyRecruit(p, client.RecruitRow{
		Name:    "Sourced Stars",
		Stars:   intp(5),
		Ranking: intp(12),
		Rating:  floatp(0.991),
	})

	assert.Equal(t, int32(4), p.HSStars.Int32, "Sourced stars are kept")
	require.True(t, p.HSRank.Valid)
	assert.Equal(t, int32(12), p.HSRank.Int32)
	require.True(t, p.HSRating.Valid)
	assert.Equal(t, 0.991, p.HSRating.Float64)
}

func TestApplyRecruit_NilFieldsLeaveColumnsNull(t *testing.T) {
	p := &models.Prospect{Name: "Thin Row"}

	applyRecruit(p, client.RecruitRow{Name: "Thin Row", Stars: intp(3)})

	require.True(t, p.HSStars.Valid)
	assert.Equal(t, int32(3), p.HSStars.Int32)
	assert.False(t, p.HSRank.Valid)
	assert.False(t, p.HSRating.Valid)
}
