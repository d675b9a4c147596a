package pipeline

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"firstballot/prospects/internal/cache"
	"firstballot/prospects/internal/client"
	"firstballot/prospects/internal/config"
	"firstballot/prospects/internal/metrics"
	"firstballot/prospects/internal/models"
	"firstballot/prospects/internal/repository"
	"firstballot/prospects/internal/scoring"
)

// Pipeline runs the full prospect evaluation: enrichment from the college
// stats API, valuation and tiering, grading, and NFL comparisons.
type Pipeline struct {
	cfg    *config.Config
	client *client.Client
	db     *repository.Database
	cache  *cache.RedisCache

	// recruits caches name-keyed recruiting classes by year so each class is
	// fetched at most once per run.
	recruits map[int]map[string]client.RecruitRow
}

// New creates a pipeline. The cache may be nil when Redis is unavailable.
func New(cfg *config.Config, cl *client.Client, db *repository.Database, rc *cache.RedisCache) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		client:   cl,
		db:       db,
		cache:    rc,
		recruits: make(map[int]map[string]client.RecruitRow),
	}
}

// Weights returns the grading weight preset selected by configuration.
func (p *Pipeline) Weights() scoring.Weights {
	if p.cfg.GradeWeightPreset == "historical" {
		return scoring.HistoricalWeights
	}
	return scoring.DefaultWeights
}

// Run evaluates the configured draft class end to end.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	log.Info().
		Int("draft_year", p.cfg.DraftYear).
		Msg("Starting evaluation run")

	prospects, err := p.db.Prospects.ListByDraftYear(ctx, p.cfg.DraftYear)
	if err != nil {
		metrics.RecordEvaluationRun("full", "error", time.Since(start).Seconds())
		return fmt.Errorf("failed to load draft class: %w", err)
	}
	metrics.ProspectsInClass.Set(float64(len(prospects)))

	if len(prospects) == 0 {
		log.Warn().Int("draft_year", p.cfg.DraftYear).Msg("Draft class is empty, nothing to evaluate")
		metrics.RecordEvaluationRun("full", "success", time.Since(start).Seconds())
		return nil
	}

	pool, err := p.loadComparisonPool(ctx)
	if err != nil {
		// Comparisons degrade gracefully, everything else still runs.
		log.Error().Err(err).Msg("Failed to load NFL comparison pool, continuing without comparisons")
		metrics.RecordError("pipeline", "comparison_pool")
		pool = nil
	}

	weights := p.Weights()
	tierCounts := make(map[string]int)
	evaluated := 0

	batchSize := p.cfg.PipelineBatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	for i, prospect := range prospects {
		if err := ctx.Err(); err != nil {
			metrics.RecordEvaluationRun("full", "cancelled", time.Since(start).Seconds())
			return err
		}

		if i > 0 && i%batchSize == 0 {
			log.Info().
				Int("processed", i).
				Int("class_size", len(prospects)).
				Msg("Evaluation progress")
		}

		if p.cfg.EnrichmentEnabled && len(prospect.CollegeStats) == 0 {
			if err := p.Enrich(ctx, prospect); err != nil {
				log.Warn().
					Err(err).
					Str("name", prospect.Name).
					Msg("Enrichment failed, evaluating with available data")
				metrics.RecordError("pipeline", "enrichment")
			}
		}

		if err := p.evaluateAndPersist(ctx, prospect, pool, weights); err != nil {
			log.Error().
				Err(err).
				Str("name", prospect.Name).
				Msg("Failed to evaluate prospect")
			metrics.RecordError("pipeline", "evaluation")
			continue
		}

		evaluated++
		if prospect.Tier.Valid {
			tierCounts[prospect.Tier.String]++
		}
	}

	metrics.UpdateTierDistribution(tierCounts)
	metrics.RecordEvaluationRun("full", "success", time.Since(start).Seconds())

	log.Info().
		Int("evaluated", evaluated).
		Int("class_size", len(prospects)).
		Dur("duration", time.Since(start)).
		Msg("Evaluation run complete")

	return nil
}

// evaluateAndPersist computes and stores one prospect's evaluation and grade.
func (p *Pipeline) evaluateAndPersist(ctx context.Context, prospect *models.Prospect, pool []models.NFLPlayerProfile, weights scoring.Weights) error {
	ev := Evaluate(prospect, pool)
	ev.ApplyTo(prospect)

	if ev.PhysicalUpgrade {
		metrics.RecordPhysicalUpgrade()
		log.Debug().
			Str("name", prospect.Name).
			Int("tier", ev.TierNumeric).
			Msg("Measurables upgraded prospect tier")
	}

	if err := p.db.Prospects.UpdateEvaluation(ctx, prospect); err != nil {
		return fmt.Errorf("failed to persist evaluation: %w", err)
	}
	metrics.RecordProspectEvaluated()

	res := Grade(prospect, weights)
	ApplyGrade(prospect, res)

	if err := p.db.Prospects.UpdateGrades(ctx, prospect); err != nil {
		return fmt.Errorf("failed to persist grades: %w", err)
	}
	metrics.RecordProspectGraded()

	log.Debug().
		Str("name", prospect.Name).
		Str("tier", ev.Tier).
		Float64("valuation", ev.Valuation).
		Float64("grade", res.Overall).
		Msg("Prospect evaluated")

	return nil
}

// Enrich pulls college production from the stats API and stores the
// aggregated line on the prospect.
func (p *Pipeline) Enrich(ctx context.Context, prospect *models.Prospect) error {
	results, err := p.client.SearchPlayers(ctx, prospect.Name, prospect.Position)
	if err != nil {
		return fmt.Errorf("player search failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no college player match for %q", prospect.Name)
	}

	match := results[0]

	var seasons []models.SeasonStat
	if cached := p.cache.GetCollegeSeasons(ctx, match.ID); cached != nil {
		metrics.RecordCacheHit()
		seasons = cached
	} else {
		metrics.RecordCacheMiss()

		// One lookup per career year; CFBD scopes season stats by year+team.
		for year := p.cfg.DraftYear - 4; year < p.cfg.DraftYear; year++ {
			rows, err := p.client.FetchPlayerSeasonStats(ctx, year, match.Team)
			if err != nil {
				log.Warn().
					Err(err).
					Int("year", year).
					Str("team", match.Team).
					Msg("Season stats fetch failed")
				continue
			}
			seasons = append(seasons, client.PivotSeasonStats(rows, match.ID)...)
		}

		if len(seasons) > 0 {
			p.cache.SetCollegeSeasons(ctx, match.ID, seasons,
				time.Duration(p.cfg.CacheTTLCollegeStats)*time.Second)
		}
	}

	line := models.AggregateSeasons(seasons, prospect.Position)
	if line == nil {
		return fmt.Errorf("no season stats found for %q", prospect.Name)
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to encode stat line: %w", err)
	}
	prospect.CollegeStats = data
	prospect.CollegeGames = sql.NullInt32{Int32: int32(line.Games()), Valid: true}

	// Fill measurables from the roster record when the feed lacked them.
	if !prospect.Height.Valid && match.Height != nil {
		prospect.Height = sql.NullFloat64{Float64: float64(*match.Height), Valid: true}
	}
	if !prospect.Weight.Valid && match.Weight != nil {
		prospect.Weight = sql.NullFloat64{Float64: float64(*match.Weight), Valid: true}
	}

	if !prospect.HSStars.Valid || !prospect.HSRank.Valid || !prospect.HSRating.Valid {
		p.enrichRecruiting(ctx, prospect)
	}

	if err := p.db.Prospects.Upsert(ctx, prospect); err != nil {
		return fmt.Errorf("failed to store enriched prospect: %w", err)
	}

	log.Debug().
		Str("name", prospect.Name).
		Int("games", line.Games()).
		Int("seasons", len(seasons)).
		Msg("Prospect enriched with college stats")

	return nil
}

// enrichRecruiting backfills missing HS pedigree from the recruiting
// rankings. Prospects are matched by name across the class years a member of
// this draft class could plausibly have signed in, most common career length
// first.
func (p *Pipeline) enrichRecruiting(ctx context.Context, prospect *models.Prospect) {
	nameKey := recruitKey(prospect.Name)
	if nameKey == "" {
		return
	}

	for _, offset := range []int{3, 4, 5, 2} {
		r, ok := p.recruitingClass(ctx, p.cfg.DraftYear-offset)[nameKey]
		if !ok {
			continue
		}
		applyRecruit(prospect, r)
		log.Debug().
			Str("name", prospect.Name).
			Int("class_year", p.cfg.DraftYear-offset).
			Msg("Prospect enriched with recruiting pedigree")
		return
	}
}

// recruitingClass returns the name-keyed recruiting lookup for a class year,
// fetching it at most once per run. A failed fetch caches an empty lookup so a
// flaky year is not retried for every prospect.
func (p *Pipeline) recruitingClass(ctx context.Context, year int) map[string]client.RecruitRow {
	if lookup, ok := p.recruits[year]; ok {
		return lookup
	}

	var lookup map[string]client.RecruitRow
	rows, err := p.client.FetchRecruits(ctx, year)
	if err != nil {
		log.Warn().Err(err).Int("year", year).Msg("Recruiting class fetch failed")
		metrics.RecordError("pipeline", "recruiting")
		lookup = map[string]client.RecruitRow{}
	} else {
		lookup = recruitLookup(rows)
	}

	p.recruits[year] = lookup
	return lookup
}

// recruitLookup keys recruiting rows by normalized name. Duplicate names keep
// the later row.
func recruitLookup(rows []client.RecruitRow) map[string]client.RecruitRow {
	lookup := make(map[string]client.RecruitRow, len(rows))
	for _, r := range rows {
		if key := recruitKey(r.Name); key != "" {
			lookup[key] = r
		}
	}
	return lookup
}

func recruitKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// applyRecruit fills the prospect's missing HS pedigree columns from a
// recruiting row. Columns already sourced are left alone.
func applyRecruit(prospect *models.Prospect, r client.RecruitRow) {
	if !prospect.HSStars.Valid && r.Stars != nil {
		prospect.HSStars = sql.NullInt32{Int32: int32(*r.Stars), Valid: true}
	}
	if !prospect.HSRank.Valid && r.Ranking != nil {
		prospect.HSRank = sql.NullInt32{Int32: int32(*r.Ranking), Valid: true}
	}
	if !prospect.HSRating.Valid && r.Rating != nil {
		prospect.HSRating = sql.NullFloat64{Float64: *r.Rating, Valid: true}
	}
}

// loadComparisonPool returns the NFL skill-player pool, cached in Redis.
func (p *Pipeline) loadComparisonPool(ctx context.Context) ([]models.NFLPlayerProfile, error) {
	season := p.cfg.ComparisonSeason

	if pool := p.cache.GetNFLPool(ctx, season); pool != nil {
		metrics.RecordCacheHit()
		metrics.ComparisonPoolSize.Set(float64(len(pool)))
		return pool, nil
	}
	metrics.RecordCacheMiss()

	pool, err := p.db.Players.ListSkillPlayers(ctx, season, p.cfg.MinComparisonGames)
	if err != nil {
		return nil, err
	}

	p.cache.SetNFLPool(ctx, season, pool, time.Duration(p.cfg.CacheTTLNFLPool)*time.Second)
	metrics.ComparisonPoolSize.Set(float64(len(pool)))

	return pool, nil
}

// Regrade recomputes grades for the configured draft class without touching
// valuations. When applyTiers is set, the coarse tier columns are overwritten
// from the grade-derived scheme.
func (p *Pipeline) Regrade(ctx context.Context, applyTiers bool) error {
	start := time.Now()

	prospects, err := p.db.Prospects.ListByDraftYear(ctx, p.cfg.DraftYear)
	if err != nil {
		metrics.RecordEvaluationRun("regrade", "error", time.Since(start).Seconds())
		return fmt.Errorf("failed to load draft class: %w", err)
	}

	weights := p.Weights()
	graded := 0

	for _, prospect := range prospects {
		if err := ctx.Err(); err != nil {
			metrics.RecordEvaluationRun("regrade", "cancelled", time.Since(start).Seconds())
			return err
		}

		res := Grade(prospect, weights)
		ApplyGrade(prospect, res)

		if err := p.db.Prospects.UpdateGrades(ctx, prospect); err != nil {
			log.Error().Err(err).Str("name", prospect.Name).Msg("Failed to persist grades")
			metrics.RecordError("pipeline", "regrade")
			continue
		}
		metrics.RecordProspectGraded()

		if applyTiers {
			tier, numeric := scoring.TierFromGrade(res.Overall)
			if err := p.db.Prospects.UpdateGradeTier(ctx, prospect.ID, tier, numeric); err != nil {
				log.Error().Err(err).Str("name", prospect.Name).Msg("Failed to persist grade tier")
				metrics.RecordError("pipeline", "regrade")
				continue
			}
		}

		graded++
	}

	metrics.RecordEvaluationRun("regrade", "success", time.Since(start).Seconds())

	log.Info().
		Int("graded", graded).
		Int("class_size", len(prospects)).
		Bool("tiers_applied", applyTiers).
		Dur("duration", time.Since(start)).
		Msg("Regrade complete")

	return nil
}
