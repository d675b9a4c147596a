package scoring

import (
	"math"

	"firstballot/prospects/internal/models"
)

// Weights configure the five-factor overall grade. Two call sites historically
// used different sets (the 10% HS "gold standard" and a 20% HS variant), so the
// weights are injected rather than hardcoded.
type Weights struct {
	HSRecruiting        float64
	CollegeProduction   float64
	DraftProjection     float64
	PhysicalMeasurables float64
	ExpertConsensus     float64
}

// DefaultWeights is the gold-standard configuration: 4-5 star recruit,
// high college production, first-round draft capital, elite measurables,
// strong consensus.
var DefaultWeights = Weights{
	HSRecruiting:        0.10,
	CollegeProduction:   0.30,
	DraftProjection:     0.25,
	PhysicalMeasurables: 0.15,
	ExpertConsensus:     0.20,
}

// HistoricalWeights is the alternate configuration used when regrading past
// classes, where recruiting pedigree carries more signal.
var HistoricalWeights = Weights{
	HSRecruiting:        0.20,
	CollegeProduction:   0.20,
	DraftProjection:     0.25,
	PhysicalMeasurables: 0.15,
	ExpertConsensus:     0.20,
}

// Sum returns the total of all factor weights. A valid configuration sums
// to 1.0.
func (w Weights) Sum() float64 {
	return w.HSRecruiting + w.CollegeProduction + w.DraftProjection +
		w.PhysicalMeasurables + w.ExpertConsensus
}

// GradeInput carries everything the grading engine looks at. All pointer
// fields are optional; missing factors degrade to a neutral 50.
type GradeInput struct {
	Position     string
	Rank         int
	HSStars      *int
	HSRank       *int
	HSRating     *float64
	CollegeStats models.StatLine
	CollegeGames int
	ProjRound    *int
	ProjPick     *int
	Height       *float64
	Weight       *float64
	FortyTime    *float64
}

// GradeResult is the component breakdown plus the 0-100 overall and its label.
type GradeResult struct {
	Overall             float64
	HSRecruiting        float64
	CollegeProduction   float64
	DraftProjection     float64
	PhysicalMeasurables float64
	ExpertConsensus     float64
	GradeTier           string
}

// idealMeasurables are the grading-side height/weight windows with the
// position-specific height/weight blend fraction. They differ from the
// tier-adjustment thresholds in physical.go on purpose.
type idealRange struct {
	HeightMin, HeightMax float64
	WeightMin, WeightMax float64
	HeightBlend          float64
}

var idealMeasurables = map[string]idealRange{
	"QB": {74, 78, 215, 240, 0.6},
	"RB": {69, 73, 205, 230, 0.4},
	"WR": {71, 76, 185, 220, 0.5},
	"TE": {75, 79, 240, 270, 0.5},
}

// ProspectGrade computes the weighted five-factor grade for a prospect.
func ProspectGrade(in GradeInput, weights Weights) GradeResult {
	hs := ScoreHSRecruiting(in.HSStars, in.HSRank, in.HSRating)
	production := ScoreCollegeProduction(in.Position, in.CollegeStats, in.CollegeGames)
	draft := ScoreDraftProjection(in.ProjRound, in.ProjPick)
	physical := ScorePhysicalMeasurables(in.Position, in.Height, in.Weight, in.FortyTime)
	consensus := ScoreExpertConsensus(in.Rank)

	overall := hs*weights.HSRecruiting +
		production*weights.CollegeProduction +
		draft*weights.DraftProjection +
		physical*weights.PhysicalMeasurables +
		consensus*weights.ExpertConsensus

	overall = math.Min(100, math.Max(0, overall))

	return GradeResult{
		Overall:             round2(overall),
		HSRecruiting:        hs,
		CollegeProduction:   production,
		DraftProjection:     draft,
		PhysicalMeasurables: physical,
		ExpertConsensus:     consensus,
		GradeTier:           GradeTier(overall),
	}
}

// ScoreHSRecruiting rates the high-school recruiting profile 0-100. The gold
// standard is a 5-star, top-10 national rank, 0.99+ composite rating. Internal
// blend: stars 50%, national rank 30%, rating 20%; each missing component is a
// neutral 50.
func ScoreHSRecruiting(stars, nationalRank *int, rating *float64) float64 {
	starScore := 50.0
	if stars != nil {
		switch *stars {
		case 5:
			starScore = 100
		case 4:
			starScore = 80
		case 3:
			starScore = 55
		case 2:
			starScore = 30
		case 1:
			starScore = 10
		}
	}

	rankScore := 50.0
	if nationalRank != nil {
		switch r := *nationalRank; {
		case r <= 5:
			rankScore = 100
		case r <= 10:
			rankScore = 95
		case r <= 25:
			rankScore = 90
		case r <= 50:
			rankScore = 85
		case r <= 100:
			rankScore = 75
		case r <= 200:
			rankScore = 65
		case r <= 300:
			rankScore = 55
		default:
			rankScore = 40
		}
	}

	ratingScore := 50.0
	if rating != nil {
		switch r := *rating; {
		case r >= 0.9980:
			ratingScore = 100
		case r >= 0.9900:
			ratingScore = 90
		case r >= 0.9500:
			ratingScore = 75
		case r >= 0.9000:
			ratingScore = 60
		case r >= 0.8500:
			ratingScore = 45
		default:
			ratingScore = 30
		}
	}

	return round1(starScore*0.50 + rankScore*0.30 + ratingScore*0.20)
}

// ScoreCollegeProduction rates aggregated college production 0-100. Buckets
// are position-specific: QBs on passing yards per game with a TD:INT bonus,
// RBs on combined rush+receiving yardage with a receiving bonus, WRs/TEs on
// receiving yardage with a TD bonus. No stats scores a neutral 50.
func ScoreCollegeProduction(position string, stats models.StatLine, games int) float64 {
	if stats == nil {
		return 50.0
	}

	score := 50.0

	switch normalizePosition(position) {
	case "QB":
		passYds := stats.Get(models.StatPassYards)
		passTDs := stats.Get(models.StatPassTDs)
		passINT := stats.Get(models.StatPassINTs)

		// Per-game rate over at least a 30-game baseline so short careers
		// don't inflate the number.
		g := float64(games)
		if g < 30 {
			g = 30
		}
		ypg := passYds / g

		switch {
		case ypg >= 300:
			score = 95
		case ypg >= 250:
			score = 85
		case ypg >= 200:
			score = 70
		case ypg >= 150:
			score = 55
		default:
			score = 40
		}

		if passINT > 0 {
			ratio := passTDs / passINT
			if ratio >= 3.0 {
				score += 5
			} else if ratio >= 2.0 {
				score += 2
			}
		}

	case "RB":
		rushYds := stats.Get(models.StatRushYards)
		recYds := stats.Get(models.StatRecYards)
		totalYds := rushYds + recYds

		switch {
		case totalYds >= 4000:
			score = 95
		case totalYds >= 3000:
			score = 85
		case totalYds >= 2000:
			score = 70
		case totalYds >= 1000:
			score = 55
		default:
			score = 40
		}

		// Dual-threat bonus.
		if recYds >= 500 {
			score += 5
		}

	case "WR", "TE":
		recYds := stats.Get(models.StatRecYards)
		recTDs := stats.Get(models.StatRecTDs)

		switch {
		case recYds >= 3000:
			score = 95
		case recYds >= 2000:
			score = 85
		case recYds >= 1500:
			score = 70
		case recYds >= 800:
			score = 55
		default:
			score = 40
		}

		if recTDs >= 20 {
			score += 5
		} else if recTDs >= 10 {
			score += 2
		}
	}

	return math.Min(100, math.Max(0, round1(score)))
}

// EstimateDraftSlot estimates a projected draft round and pick from consensus
// rank, for classes where no projection has been sourced yet. Picks are only
// estimated through the third round; later rounds and non-positive ranks
// return a nil pick.
func EstimateDraftSlot(rank int) (round int, pick *int) {
	estPick := func(v int) *int { return &v }

	switch {
	case rank <= 0:
		return 6, nil
	case rank <= 5:
		return 1, estPick(rank * 2)
	case rank <= 12:
		return 1, estPick(10 + (rank-5)*2)
	case rank <= 24:
		return 2, estPick(32 + (rank - 12))
	case rank <= 36:
		return 3, estPick(64 + (rank - 24))
	case rank <= 50:
		return 4, nil
	case rank <= 75:
		return 5, nil
	default:
		return 6, nil
	}
}

// ScoreDraftProjection rates projected draft capital 0-100. The round sets the
// base; early-round pick projections override it for rounds 1 and 2. Unknown
// round scores a neutral 50.
func ScoreDraftProjection(projectedRound, projectedPick *int) float64 {
	if projectedRound == nil {
		return 50.0
	}

	roundScores := map[int]float64{1: 90, 2: 75, 3: 60, 4: 45, 5: 35, 6: 25, 7: 15}
	score, ok := roundScores[*projectedRound]
	if !ok {
		score = 10
	}

	if projectedPick != nil {
		pick := *projectedPick
		switch *projectedRound {
		case 1:
			switch {
			case pick <= 5:
				score = 100
			case pick <= 10:
				score = 97
			case pick <= 16:
				score = 94
			case pick <= 24:
				score = 91
			}
		case 2:
			switch {
			case pick <= 40:
				score = 80
			case pick <= 50:
				score = 77
			}
		}
	}

	return round1(score)
}

// ScorePhysicalMeasurables rates height/weight fit for the position 0-100,
// blended by the position's height fraction, with a forty-yard-dash
// bonus/penalty for RB/WR. Missing height and weight score a neutral 50.
// Unknown positions are measured against the WR window.
func ScorePhysicalMeasurables(position string, height, weight, fortyTime *float64) float64 {
	if height == nil && weight == nil {
		return 50.0
	}

	ideals, ok := idealMeasurables[normalizePosition(position)]
	if !ok {
		ideals = idealMeasurables["WR"]
	}

	heightScore := 50.0
	if height != nil {
		h := *height
		switch {
		case h >= ideals.HeightMin && h <= ideals.HeightMax:
			heightScore = 90
		case h < ideals.HeightMin:
			// -10 per inch under.
			heightScore = math.Max(30, 90-(ideals.HeightMin-h)*10)
		default:
			// -5 per inch over; tall is rarely a problem.
			heightScore = math.Max(50, 90-(h-ideals.HeightMax)*5)
		}
	}

	weightScore := 50.0
	if weight != nil {
		w := *weight
		switch {
		case w >= ideals.WeightMin && w <= ideals.WeightMax:
			weightScore = 90
		case w < ideals.WeightMin:
			weightScore = math.Max(30, 90-(ideals.WeightMin-w)*0.5)
		default:
			weightScore = math.Max(40, 90-(w-ideals.WeightMax)*0.3)
		}
	}

	score := heightScore*ideals.HeightBlend + weightScore*(1-ideals.HeightBlend)

	if fortyTime != nil {
		if p := normalizePosition(position); p == "RB" || p == "WR" {
			switch {
			case *fortyTime <= 4.35:
				score += 10
			case *fortyTime <= 4.45:
				score += 5
			case *fortyTime >= 4.60:
				score -= 10
			}
		}
	}

	return math.Min(100, math.Max(0, round1(score)))
}

// ScoreExpertConsensus rates the prospect's consensus ranking 0-100. Missing
// or invalid rank scores a neutral 50; ranks past 50 decay linearly to a floor
// of 20.
func ScoreExpertConsensus(rank int) float64 {
	if rank <= 0 {
		return 50.0
	}

	switch {
	case rank <= 3:
		return 100
	case rank <= 5:
		return 95
	case rank <= 10:
		return 88
	case rank <= 15:
		return 80
	case rank <= 20:
		return 70
	case rank <= 30:
		return 60
	case rank <= 40:
		return 50
	case rank <= 50:
		return 40
	default:
		return math.Max(20, float64(40-(rank-50)))
	}
}

// GradeTier converts an overall grade to its descriptive label.
func GradeTier(grade float64) string {
	switch {
	case grade >= 90:
		return "Elite"
	case grade >= 80:
		return "Blue Chip"
	case grade >= 70:
		return "Starter"
	case grade >= 60:
		return "Rotational"
	case grade >= 50:
		return "Depth"
	default:
		return "Longshot"
	}
}

// TierFromGrade derives the coarse 6-level tier used when grading runs in
// database tier-update mode. Its breakpoints are independent of GradeTier and
// of the rank/valuation tier schemes.
func TierFromGrade(grade float64) (tier string, numeric int) {
	switch {
	case grade >= 85:
		return "Tier 1", 1
	case grade >= 75:
		return "Tier 2", 2
	case grade >= 65:
		return "Tier 3", 3
	case grade >= 55:
		return "Tier 4", 4
	case grade >= 45:
		return "Tier 5", 5
	default:
		return "Tier 6", 6
	}
}
