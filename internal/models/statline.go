package models

// StatLine is a prospect's aggregated college production, stored as JSONB in
// the dynasty_prospects table. Keys are flat snake_case stat names so the
// scoring and comparison engines can treat the line generically.
type StatLine map[string]float64

// Stat keys shared across the scoring and comparison engines.
const (
	StatSeasons       = "seasons"
	StatTotalGames    = "total_games"
	StatPassYards     = "pass_yds"
	StatPassTDs       = "pass_tds"
	StatPassINTs      = "pass_int"
	StatPassAttempts  = "pass_att"
	StatPassComp      = "pass_comp"
	StatRushYards     = "rush_yds"
	StatRushTDs       = "rush_tds"
	StatRushAttempts  = "rush_att"
	StatReceptions    = "rec"
	StatRecYards      = "rec_yds"
	StatRecTDs        = "rec_tds"
	StatTargets       = "targets"
	StatPassYardsPG   = "pass_yds_per_game"
	StatPassTDsPG     = "pass_tds_per_game"
	StatCompletionPct = "completion_pct"
	StatRushYardsPG   = "rush_yds_per_game"
	StatReceptionsPG  = "rec_per_game"
	StatRecYardsPG    = "rec_yds_per_game"
	StatTargetsPG     = "targets_per_game"
	StatYardsPerCatch = "yards_per_catch"
)

// Get returns the value for key, 0 if absent.
func (s StatLine) Get(key string) float64 {
	return s[key]
}

// Has reports whether key is present in the line.
func (s StatLine) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Games returns the aggregated game count as an int.
func (s StatLine) Games() int {
	return int(s.Get(StatTotalGames))
}

// SeasonStat is one season row from the college stats API, normalized to the
// fields the aggregator cares about. Pointer fields distinguish "not reported"
// from zero.
type SeasonStat struct {
	Season             int      `json:"season"`
	Games              *int     `json:"games,omitempty"`
	PassingYards       *float64 `json:"passingYards,omitempty"`
	PassingTouchdowns  *float64 `json:"passingTouchdowns,omitempty"`
	PassingINTs        *float64 `json:"passingInterceptions,omitempty"`
	PassingAttempts    *float64 `json:"passingAttempts,omitempty"`
	PassingCompletions *float64 `json:"passingCompletions,omitempty"`
	RushingYards       *float64 `json:"rushingYards,omitempty"`
	RushingTouchdowns  *float64 `json:"rushingTouchdowns,omitempty"`
	RushingAttempts    *float64 `json:"rushingAttempts,omitempty"`
	Receptions         *float64 `json:"receptions,omitempty"`
	ReceivingYards     *float64 `json:"receivingYards,omitempty"`
	ReceivingTDs       *float64 `json:"receivingTouchdowns,omitempty"`
	Targets            *float64 `json:"targets,omitempty"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// AggregateSeasons folds per-season stat rows into a single StatLine for the
// position, including per-game rates when a game count is available. QBs keep
// passing plus rushing totals; RB/WR/TE keep rushing plus receiving totals.
func AggregateSeasons(seasons []SeasonStat, position string) StatLine {
	if len(seasons) == 0 {
		return nil
	}

	agg := StatLine{
		StatSeasons:    float64(len(seasons)),
		StatTotalGames: 0,
	}

	games := 0.0
	for _, s := range seasons {
		if s.Games != nil {
			games += float64(*s.Games)
		}
	}
	agg[StatTotalGames] = games

	switch position {
	case "QB":
		for _, s := range seasons {
			agg[StatPassYards] += deref(s.PassingYards)
			agg[StatPassTDs] += deref(s.PassingTouchdowns)
			agg[StatPassINTs] += deref(s.PassingINTs)
			agg[StatPassAttempts] += deref(s.PassingAttempts)
			agg[StatPassComp] += deref(s.PassingCompletions)
			agg[StatRushYards] += deref(s.RushingYards)
			agg[StatRushTDs] += deref(s.RushingTouchdowns)
			agg[StatRushAttempts] += deref(s.RushingAttempts)
		}
		if games > 0 {
			agg[StatPassYardsPG] = agg[StatPassYards] / games
			agg[StatPassTDsPG] = agg[StatPassTDs] / games
			agg[StatRushYardsPG] = agg[StatRushYards] / games
			if agg[StatPassAttempts] > 0 {
				agg[StatCompletionPct] = agg[StatPassComp] / agg[StatPassAttempts] * 100
			} else {
				agg[StatCompletionPct] = 0
			}
		}

	case "RB", "WR", "TE":
		for _, s := range seasons {
			agg[StatRushYards] += deref(s.RushingYards)
			agg[StatRushTDs] += deref(s.RushingTouchdowns)
			agg[StatRushAttempts] += deref(s.RushingAttempts)
			agg[StatReceptions] += deref(s.Receptions)
			agg[StatRecYards] += deref(s.ReceivingYards)
			agg[StatRecTDs] += deref(s.ReceivingTDs)
			agg[StatTargets] += deref(s.Targets)
		}
		if games > 0 {
			agg[StatRushYardsPG] = agg[StatRushYards] / games
			agg[StatReceptionsPG] = agg[StatReceptions] / games
			agg[StatRecYardsPG] = agg[StatRecYards] / games
			agg[StatTargetsPG] = agg[StatTargets] / games
			if agg[StatReceptions] > 0 {
				agg[StatYardsPerCatch] = agg[StatRecYards] / agg[StatReceptions]
			} else {
				agg[StatYardsPerCatch] = 0
			}
		}
	}

	return agg
}
