package repository

import (
	"context"
	"fmt"

	"firstballot/prospects/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// ProspectRepository handles dynasty prospect database operations
type ProspectRepository struct {
	db *Database
}

// Upsert inserts or updates a prospect keyed by (name, draft_year). Ranking
// feeds re-run nightly, so the identity columns are refreshed in place.
func (r *ProspectRepository) Upsert(ctx context.Context, p *models.Prospect) error {
	query := `
		INSERT INTO dynasty_prospects (
			name, position, rank, draft_year, school,
			height, weight, forty_time,
			hs_stars, hs_rank, hs_rating,
			college_stats, college_games,
			draft_round_projection, draft_pick_projection
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (name, draft_year) DO UPDATE SET
			position = EXCLUDED.position,
			rank = EXCLUDED.rank,
			school = COALESCE(EXCLUDED.school, dynasty_prospects.school),
			height = COALESCE(EXCLUDED.height, dynasty_prospects.height),
			weight = COALESCE(EXCLUDED.weight, dynasty_prospects.weight),
			forty_time = COALESCE(EXCLUDED.forty_time, dynasty_prospects.forty_time),
			hs_stars = COALESCE(EXCLUDED.hs_stars, dynasty_prospects.hs_stars),
			hs_rank = COALESCE(EXCLUDED.hs_rank, dynasty_prospects.hs_rank),
			hs_rating = COALESCE(EXCLUDED.hs_rating, dynasty_prospects.hs_rating),
			college_stats = COALESCE(EXCLUDED.college_stats, dynasty_prospects.college_stats),
			college_games = COALESCE(EXCLUDED.college_games, dynasty_prospects.college_games),
			draft_round_projection = COALESCE(EXCLUDED.draft_round_projection, dynasty_prospects.draft_round_projection),
			draft_pick_projection = COALESCE(EXCLUDED.draft_pick_projection, dynasty_prospects.draft_pick_projection),
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		p.Name, p.Position, p.Rank, p.DraftYear, p.School,
		p.Height, p.Weight, p.FortyTime,
		p.HSStars, p.HSRank, p.HSRating,
		p.CollegeStats, p.CollegeGames,
		p.DraftRoundProjection, p.DraftPickProjection,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert prospect: %w", err)
	}

	log.Debug().
		Int("id", p.ID).
		Str("name", p.Name).
		Str("position", p.Position).
		Int("rank", p.Rank).
		Msg("Prospect upserted")

	return nil
}

const prospectColumns = `
	id, name, position, rank, draft_year, school,
	height, weight, forty_time,
	hs_stars, hs_rank, hs_rating,
	college_stats, college_games,
	draft_round_projection, draft_pick_projection,
	tier, tier_numeric, display_tier, valuation, position_multiplier,
	overall_grade, grade_tier,
	hs_recruiting_score, college_production_score, draft_projection_score,
	physical_measurables_score, expert_consensus_score,
	nfl_comparisons,
	created_at, updated_at
`

func scanProspect(row pgx.Row) (*models.Prospect, error) {
	var p models.Prospect
	err := row.Scan(
		&p.ID, &p.Name, &p.Position, &p.Rank, &p.DraftYear, &p.School,
		&p.Height, &p.Weight, &p.FortyTime,
		&p.HSStars, &p.HSRank, &p.HSRating,
		&p.CollegeStats, &p.CollegeGames,
		&p.DraftRoundProjection, &p.DraftPickProjection,
		&p.Tier, &p.TierNumeric, &p.DisplayTier, &p.Valuation, &p.PositionMultiplier,
		&p.OverallGrade, &p.GradeTier,
		&p.HSRecruitingScore, &p.CollegeProductionScore, &p.DraftProjectionScore,
		&p.PhysicalMeasurablesScore, &p.ExpertConsensusScore,
		&p.NFLComparisons,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a prospect by its database ID
func (r *ProspectRepository) GetByID(ctx context.Context, id int) (*models.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM dynasty_prospects WHERE id = $1`

	p, err := scanProspect(r.db.Pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("prospect not found: id=%d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prospect: %w", err)
	}

	return p, nil
}

// GetByName retrieves a prospect by name within a draft class
func (r *ProspectRepository) GetByName(ctx context.Context, name string, draftYear int) (*models.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM dynasty_prospects WHERE name = $1 AND draft_year = $2`

	p, err := scanProspect(r.db.Pool.QueryRow(ctx, query, name, draftYear))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("prospect not found: name=%s draft_year=%d", name, draftYear)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prospect: %w", err)
	}

	return p, nil
}

// ListByDraftYear retrieves a draft class ordered by rank
func (r *ProspectRepository) ListByDraftYear(ctx context.Context, draftYear int) ([]*models.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM dynasty_prospects WHERE draft_year = $1 ORDER BY rank`

	rows, err := r.db.Pool.Query(ctx, query, draftYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list prospects: %w", err)
	}
	defer rows.Close()

	var prospects []*models.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prospect: %w", err)
		}
		prospects = append(prospects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prospects: %w", err)
	}

	return prospects, nil
}

// ListByPosition retrieves a draft class filtered by position, ordered by rank
func (r *ProspectRepository) ListByPosition(ctx context.Context, draftYear int, position string) ([]*models.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM dynasty_prospects WHERE draft_year = $1 AND position = $2 ORDER BY rank`

	rows, err := r.db.Pool.Query(ctx, query, draftYear, position)
	if err != nil {
		return nil, fmt.Errorf("failed to list prospects by position: %w", err)
	}
	defer rows.Close()

	var prospects []*models.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prospect: %w", err)
		}
		prospects = append(prospects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prospects: %w", err)
	}

	return prospects, nil
}

// UpdateEvaluation persists the computed tier, valuation, and comparison
// fields for a prospect after a pipeline run.
func (r *ProspectRepository) UpdateEvaluation(ctx context.Context, p *models.Prospect) error {
	query := `
		UPDATE dynasty_prospects SET
			tier = $1,
			tier_numeric = $2,
			display_tier = $3,
			valuation = $4,
			position_multiplier = $5,
			nfl_comparisons = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		p.Tier, p.TierNumeric, p.DisplayTier,
		p.Valuation, p.PositionMultiplier,
		p.NFLComparisons, p.ID,
	).Scan(&p.UpdatedAt)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("prospect not found: id=%d", p.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update prospect evaluation: %w", err)
	}

	return nil
}

// UpdateGrades persists the five-factor grade breakdown for a prospect.
func (r *ProspectRepository) UpdateGrades(ctx context.Context, p *models.Prospect) error {
	query := `
		UPDATE dynasty_prospects SET
			overall_grade = $1,
			grade_tier = $2,
			hs_recruiting_score = $3,
			college_production_score = $4,
			draft_projection_score = $5,
			physical_measurables_score = $6,
			expert_consensus_score = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		p.OverallGrade, p.GradeTier,
		p.HSRecruitingScore, p.CollegeProductionScore, p.DraftProjectionScore,
		p.PhysicalMeasurablesScore, p.ExpertConsensusScore,
		p.ID,
	).Scan(&p.UpdatedAt)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("prospect not found: id=%d", p.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update prospect grades: %w", err)
	}

	return nil
}

// UpdateGradeTier overwrites the coarse tier columns from the grade-derived
// scheme. Used by the regrade tool's tier-update mode.
func (r *ProspectRepository) UpdateGradeTier(ctx context.Context, id int, tier string, tierNumeric int) error {
	query := `
		UPDATE dynasty_prospects SET
			tier = $1,
			tier_numeric = $2,
			updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.db.Pool.Exec(ctx, query, tier, tierNumeric, id)
	if err != nil {
		return fmt.Errorf("failed to update prospect tier: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("prospect not found: id=%d", id)
	}

	return nil
}

// Delete deletes a prospect
func (r *ProspectRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM dynasty_prospects WHERE id = $1`

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete prospect: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("prospect not found: id=%d", id)
	}

	log.Debug().Int("id", id).Msg("Prospect deleted")
	return nil
}

// CountByDraftYear returns the number of prospects in a draft class
func (r *ProspectRepository) CountByDraftYear(ctx context.Context, draftYear int) (int, error) {
	query := `SELECT COUNT(*) FROM dynasty_prospects WHERE draft_year = $1`

	var count int
	err := r.db.Pool.QueryRow(ctx, query, draftYear).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count prospects: %w", err)
	}

	return count, nil
}
