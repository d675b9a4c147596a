package models

import "time"

// NFLPlayerProfile is a pro player's season profile used as the comparison
// pool. Rows come from the collaborator-owned nfl_player_stats table and are
// read-only here.
type NFLPlayerProfile struct {
	ID          int       `db:"id"`
	DisplayName string    `db:"player_display_name"`
	Position    string    `db:"position"`
	Season      int       `db:"season"`
	FantasyPPG  float64   `db:"fantasy_ppg"`
	GamesPlayed int       `db:"games_played"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
