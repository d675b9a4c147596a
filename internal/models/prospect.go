package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Prospect represents a dynasty prospect row with its computed scoring fields.
type Prospect struct {
	ID        int    `db:"id"`
	Name      string `db:"name"`
	Position  string `db:"position"`
	Rank      int    `db:"rank"`
	DraftYear int    `db:"draft_year"`

	School sql.NullString `db:"school"`

	// Measurables
	Height    sql.NullFloat64 `db:"height"`
	Weight    sql.NullFloat64 `db:"weight"`
	FortyTime sql.NullFloat64 `db:"forty_time"`

	// HS recruiting pedigree
	HSStars  sql.NullInt32   `db:"hs_stars"`
	HSRank   sql.NullInt32   `db:"hs_rank"`
	HSRating sql.NullFloat64 `db:"hs_rating"`

	// College production (JSONB)
	CollegeStats json.RawMessage `db:"college_stats"`
	CollegeGames sql.NullInt32   `db:"college_games"`

	// Draft projection
	DraftRoundProjection sql.NullInt32 `db:"draft_round_projection"`
	DraftPickProjection  sql.NullInt32 `db:"draft_pick_projection"`

	// Computed: tiering and valuation
	Tier               sql.NullString  `db:"tier"`
	TierNumeric        sql.NullInt32   `db:"tier_numeric"`
	DisplayTier        sql.NullString  `db:"display_tier"`
	Valuation          sql.NullFloat64 `db:"valuation"`
	PositionMultiplier sql.NullFloat64 `db:"position_multiplier"`

	// Computed: grading
	OverallGrade             sql.NullFloat64 `db:"overall_grade"`
	GradeTier                sql.NullString  `db:"grade_tier"`
	HSRecruitingScore        sql.NullFloat64 `db:"hs_recruiting_score"`
	CollegeProductionScore   sql.NullFloat64 `db:"college_production_score"`
	DraftProjectionScore     sql.NullFloat64 `db:"draft_projection_score"`
	PhysicalMeasurablesScore sql.NullFloat64 `db:"physical_measurables_score"`
	ExpertConsensusScore     sql.NullFloat64 `db:"expert_consensus_score"`

	// Computed: comparisons, comma-joined display names
	NFLComparisons sql.NullString `db:"nfl_comparisons"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// StatLineValue decodes the JSONB college_stats column, nil when absent.
func (p *Prospect) StatLineValue() StatLine {
	if len(p.CollegeStats) == 0 {
		return nil
	}
	var line StatLine
	if err := json.Unmarshal(p.CollegeStats, &line); err != nil {
		return nil
	}
	return line
}

// HeightPtr returns height as an optional value for the scoring functions.
func (p *Prospect) HeightPtr() *float64 {
	return nullFloatPtr(p.Height)
}

// WeightPtr returns weight as an optional value for the scoring functions.
func (p *Prospect) WeightPtr() *float64 {
	return nullFloatPtr(p.Weight)
}

// FortyTimePtr returns the forty-yard-dash time as an optional value.
func (p *Prospect) FortyTimePtr() *float64 {
	return nullFloatPtr(p.FortyTime)
}

// HSStarsPtr returns HS stars as an optional value.
func (p *Prospect) HSStarsPtr() *int {
	return nullIntPtr(p.HSStars)
}

// HSRankPtr returns the HS national rank as an optional value.
func (p *Prospect) HSRankPtr() *int {
	return nullIntPtr(p.HSRank)
}

// HSRatingPtr returns the HS composite rating as an optional value.
func (p *Prospect) HSRatingPtr() *float64 {
	return nullFloatPtr(p.HSRating)
}

// ProjRoundPtr returns the draft round projection as an optional value.
func (p *Prospect) ProjRoundPtr() *int {
	return nullIntPtr(p.DraftRoundProjection)
}

// ProjPickPtr returns the draft pick projection as an optional value.
func (p *Prospect) ProjPickPtr() *int {
	return nullIntPtr(p.DraftPickProjection)
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullIntPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

// ProspectInput is used for creating/updating prospects from ranking feeds.
type ProspectInput struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Rank      int    `json:"rank"`
	DraftYear int    `json:"draft_year"`

	School *string `json:"school,omitempty"`

	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	FortyTime *float64 `json:"forty_time,omitempty"`

	HSStars  *int     `json:"hs_stars,omitempty"`
	HSRank   *int     `json:"hs_rank,omitempty"`
	HSRating *float64 `json:"hs_rating,omitempty"`

	CollegeStats StatLine `json:"college_stats,omitempty"`
	CollegeGames *int     `json:"college_games,omitempty"`

	DraftRoundProjection *int `json:"draft_round_projection,omitempty"`
	DraftPickProjection  *int `json:"draft_pick_projection,omitempty"`
}

// ToProspect converts ProspectInput to the Prospect model.
func (pi *ProspectInput) ToProspect() *Prospect {
	p := &Prospect{
		Name:      pi.Name,
		Position:  pi.Position,
		Rank:      pi.Rank,
		DraftYear: pi.DraftYear,
	}

	if pi.School != nil {
		p.School = sql.NullString{String: *pi.School, Valid: true}
	}
	if pi.Height != nil {
		p.Height = sql.NullFloat64{Float64: *pi.Height, Valid: true}
	}
	if pi.Weight != nil {
		p.Weight = sql.NullFloat64{Float64: *pi.Weight, Valid: true}
	}
	if pi.FortyTime != nil {
		p.FortyTime = sql.NullFloat64{Float64: *pi.FortyTime, Valid: true}
	}
	if pi.HSStars != nil {
		p.HSStars = sql.NullInt32{Int32: int32(*pi.HSStars), Valid: true}
	}
	if pi.HSRank != nil {
		p.HSRank = sql.NullInt32{Int32: int32(*pi.HSRank), Valid: true}
	}
	if pi.HSRating != nil {
		p.HSRating = sql.NullFloat64{Float64: *pi.HSRating, Valid: true}
	}
	if pi.CollegeStats != nil {
		if data, err := json.Marshal(pi.CollegeStats); err == nil {
			p.CollegeStats = data
		}
	}
	if pi.CollegeGames != nil {
		p.CollegeGames = sql.NullInt32{Int32: int32(*pi.CollegeGames), Valid: true}
	}
	if pi.DraftRoundProjection != nil {
		p.DraftRoundProjection = sql.NullInt32{Int32: int32(*pi.DraftRoundProjection), Valid: true}
	}
	if pi.DraftPickProjection != nil {
		p.DraftPickProjection = sql.NullInt32{Int32: int32(*pi.DraftPickProjection), Valid: true}
	}

	return p
}
