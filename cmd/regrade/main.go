// Command regrade re-runs the five-factor grading engine over a stored draft
// class without touching valuations or fetching new data. With -apply-tiers it
// also rewrites the coarse tier columns from the grade-derived scheme, which
// is how historical classes get tiered for backtesting.
package main

import (
	"context"
	"flag"
	"fmt"

	"firstballot/prospects/internal/config"
	"firstballot/prospects/internal/pipeline"
	"firstballot/prospects/internal/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	applyTiers := flag.Bool("apply-tiers", false, "overwrite tier columns from the grade-derived scheme")
	flag.Parse()

	ctx := context.Background()
	cfg := config.MustLoad()

	db, err := repository.NewDatabase(ctx, repository.Config{
		Host:     cfg.DatabaseHost,
		Port:     fmt.Sprintf("%d", cfg.DatabasePort),
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Database: cfg.DatabaseName,
		SSLMode:  cfg.DatabaseSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Validate database connectivity before doing any work
	log.Info().Msg("Validating service health...")
	if err := db.Health(ctx); err != nil {
		log.Fatal().Err(err).Msg("Database health check failed")
	}

	count, err := db.Prospects.CountByDraftYear(ctx, cfg.DraftYear)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count draft class")
	}
	if count == 0 {
		log.Info().Int("draft_year", cfg.DraftYear).Msg("Draft class is empty. Exiting.")
		return
	}

	log.Info().
		Int("draft_year", cfg.DraftYear).
		Int("count", count).
		Str("weights", cfg.GradeWeightPreset).
		Bool("apply_tiers", *applyTiers).
		Msg("Starting regrade")

	// The regrade needs no API client or cache, only the database.
	pipe := pipeline.New(cfg, nil, db, nil)
	if err := pipe.Regrade(ctx, *applyTiers); err != nil {
		log.Fatal().Err(err).Msg("Regrade failed")
	}
}
