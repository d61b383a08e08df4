package models

// TypeStats is the made/attempts breakdown for one shot type.
type TypeStats struct {
	Type       ShotType `json:"type"`
	Attempts   int      `json:"attempts"`
	Made       int      `json:"made"`
	Percentage int      `json:"percentage"`
}

// TeamStats aggregates every shot in scope. Percentage is the rounded make
// ratio, 0 when there are no attempts.
type TeamStats struct {
	TotalShots  int         `json:"total_shots"`
	MadeShots   int         `json:"made_shots"`
	Percentage  int         `json:"percentage"`
	Points      int         `json:"points"`
	StatsByType []TypeStats `json:"stats_by_type"`
}

// PlayerStats aggregates the shots whose player_name matches the player's
// current name. A renamed player therefore reports nothing for shots recorded
// under the old name.
type PlayerStats struct {
	PlayerID    string      `json:"player_id"`
	Name        string      `json:"name"`
	Attempts    int         `json:"attempts"`
	Made        int         `json:"made"`
	Percentage  int         `json:"percentage"`
	Points      int         `json:"points"`
	StatsByType []TypeStats `json:"stats_by_type"`
}

type StatsResponse struct {
	Scope   string        `json:"scope"`
	Team    TeamStats     `json:"team"`
	Players []PlayerStats `json:"players"`
}
