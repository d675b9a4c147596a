package repository

import (
	"context"
	"fmt"

	"firstballot/prospects/internal/models"

	"github.com/rs/zerolog/log"
)

// PlayerRepository reads the pro player comparison pool. The
// nfl_player_stats table is written by a separate stats loader; this
// service only queries it, plus a maintenance upsert for backfills.
type PlayerRepository struct {
	db *Database
}

// ListSkillPlayers retrieves the comparison pool for a season: QB/RB/WR/TE
// profiles with at least minGames played, ordered by fantasy PPG descending.
func (r *PlayerRepository) ListSkillPlayers(ctx context.Context, season, minGames int) ([]models.NFLPlayerProfile, error) {
	query := `
		SELECT id, player_display_name, position, season, fantasy_ppg, games_played,
		       created_at, updated_at
		FROM nfl_player_stats
		WHERE season = $1
		  AND games_played >= $2
		  AND position IN ('QB', 'RB', 'WR', 'TE')
		ORDER BY fantasy_ppg DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, season, minGames)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill players: %w", err)
	}
	defer rows.Close()

	var players []models.NFLPlayerProfile
	for rows.Next() {
		var p models.NFLPlayerProfile
		err := rows.Scan(
			&p.ID, &p.DisplayName, &p.Position, &p.Season,
			&p.FantasyPPG, &p.GamesPlayed,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}

	log.Debug().
		Int("season", season).
		Int("count", len(players)).
		Msg("Loaded NFL comparison pool")

	return players, nil
}

// ListByPosition retrieves the comparison pool restricted to one position.
func (r *PlayerRepository) ListByPosition(ctx context.Context, season, minGames int, position string) ([]models.NFLPlayerProfile, error) {
	query := `
		SELECT id, player_display_name, position, season, fantasy_ppg, games_played,
		       created_at, updated_at
		FROM nfl_player_stats
		WHERE season = $1
		  AND games_played >= $2
		  AND position = $3
		ORDER BY fantasy_ppg DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, season, minGames, position)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by position: %w", err)
	}
	defer rows.Close()

	var players []models.NFLPlayerProfile
	for rows.Next() {
		var p models.NFLPlayerProfile
		err := rows.Scan(
			&p.ID, &p.DisplayName, &p.Position, &p.Season,
			&p.FantasyPPG, &p.GamesPlayed,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}

	return players, nil
}

// UpsertProfile inserts or updates a player season row, keyed by
// (player_display_name, season). Used by backfill tooling only.
func (r *PlayerRepository) UpsertProfile(ctx context.Context, p *models.NFLPlayerProfile) error {
	query := `
		INSERT INTO nfl_player_stats (
			player_display_name, position, season, fantasy_ppg, games_played
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (player_display_name, season) DO UPDATE SET
			position = EXCLUDED.position,
			fantasy_ppg = EXCLUDED.fantasy_ppg,
			games_played = EXCLUDED.games_played,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		p.DisplayName, p.Position, p.Season, p.FantasyPPG, p.GamesPlayed,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert player profile: %w", err)
	}

	return nil
}

// CountBySeason returns the pool size for a season
func (r *PlayerRepository) CountBySeason(ctx context.Context, season int) (int, error) {
	query := `SELECT COUNT(*) FROM nfl_player_stats WHERE season = $1`

	var count int
	err := r.db.Pool.QueryRow(ctx, query, season).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}

	return count, nil
}
