package pipeline

import (
	"database/sql"
	"strings"

	"firstballot/prospects/internal/models"
	"firstballot/prospects/internal/scoring"
)

// Evaluation is the computed market view of one prospect: valuation, tier,
// and NFL comparisons. It is kept separate from the Prospect model so the
// computation stays testable without a database.
type Evaluation struct {
	Valuation          float64
	PositionMultiplier float64
	Tier               string
	TierNumeric        int
	DisplayTier        string
	Comparisons        []string

	// PhysicalUpgrade marks that measurables moved the prospect into a
	// better tier than the valuation alone supported.
	PhysicalUpgrade bool
}

// Evaluate computes the valuation, tier, and comparison shortlist for a
// prospect. Measurables are judged against the rank-based tier, and the
// adjusted tier only sticks when it beats the valuation-based one, so a
// prospect whose height or weight profile works against them keeps the
// valuation tier while a strong profile moves them up.
func Evaluate(p *models.Prospect, pool []models.NFLPlayerProfile) Evaluation {
	value := scoring.ProspectValue(p.Rank, p.Position)
	tier, tierNumeric := scoring.TierFromValuation(value)
	_, displayTier, rankTierNumeric := scoring.TierFromRank(p.Rank)

	ev := Evaluation{
		Valuation:          value,
		PositionMultiplier: scoring.PositionMultiplier(p.Position),
		Tier:               tier,
		TierNumeric:        tierNumeric,
		DisplayTier:        displayTier,
	}

	if p.HeightPtr() != nil || p.WeightPtr() != nil {
		adjusted := scoring.AdjustTierForPhysicals(p.Position, p.HeightPtr(), p.WeightPtr(), rankTierNumeric)
		if adjusted < tierNumeric {
			ev.TierNumeric = adjusted
			ev.Tier = scoring.TierName(adjusted)
			ev.PhysicalUpgrade = true
		}
	}

	if stats := p.StatLineValue(); stats != nil {
		ev.Comparisons = scoring.FindStatsBasedComparisons(stats, p.Position, pool)
	} else {
		ev.Comparisons = scoring.FindTierBasedComparisons(p.Position, ev.Tier, pool)
	}

	return ev
}

// ApplyTo writes the evaluation into the prospect's computed columns.
func (e Evaluation) ApplyTo(p *models.Prospect) {
	p.Tier = sql.NullString{String: e.Tier, Valid: true}
	p.TierNumeric = sql.NullInt32{Int32: int32(e.TierNumeric), Valid: true}
	p.DisplayTier = sql.NullString{String: e.DisplayTier, Valid: true}
	p.Valuation = sql.NullFloat64{Float64: e.Valuation, Valid: true}
	p.PositionMultiplier = sql.NullFloat64{Float64: e.PositionMultiplier, Valid: true}
	p.NFLComparisons = sql.NullString{String: strings.Join(e.Comparisons, ", "), Valid: len(e.Comparisons) > 0}
}

// Grade runs the five-factor grading engine over a prospect's stored inputs.
// Prospects without a sourced draft projection get one estimated from rank, so
// upcoming classes still carry a rank-derived draft-capital score.
func Grade(p *models.Prospect, weights scoring.Weights) scoring.GradeResult {
	games := 0
	if p.CollegeGames.Valid {
		games = int(p.CollegeGames.Int32)
	}

	projRound := p.ProjRoundPtr()
	projPick := p.ProjPickPtr()
	if projRound == nil {
		round, pick := scoring.EstimateDraftSlot(p.Rank)
		projRound = &round
		projPick = pick
	}

	in := scoring.GradeInput{
		Position:     p.Position,
		Rank:         p.Rank,
		HSStars:      p.HSStarsPtr(),
		HSRank:       p.HSRankPtr(),
		HSRating:     p.HSRatingPtr(),
		CollegeStats: p.StatLineValue(),
		CollegeGames: games,
		ProjRound:    projRound,
		ProjPick:     projPick,
		Height:       p.HeightPtr(),
		Weight:       p.WeightPtr(),
		FortyTime:    p.FortyTimePtr(),
	}

	return scoring.ProspectGrade(in, weights)
}

// ApplyGrade writes a grade result into the prospect's computed columns.
func ApplyGrade(p *models.Prospect, res scoring.GradeResult) {
	p.OverallGrade = sql.NullFloat64{Float64: res.Overall, Valid: true}
	p.GradeTier = sql.NullString{String: res.GradeTier, Valid: true}
	p.HSRecruitingScore = sql.NullFloat64{Float64: res.HSRecruiting, Valid: true}
	p.CollegeProductionScore = sql.NullFloat64{Float64: res.CollegeProduction, Valid: true}
	p.DraftProjectionScore = sql.NullFloat64{Float64: res.DraftProjection, Valid: true}
	p.PhysicalMeasurablesScore = sql.NullFloat64{Float64: res.PhysicalMeasurables, Valid: true}
	p.ExpertConsensusScore = sql.NullFloat64{Float64: res.ExpertConsensus, Valid: true}
}
