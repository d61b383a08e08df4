// Package stats derives shooting aggregates from a snapshot of games and
// players. Everything here is pure: no store access, no mutation, no error
// returns. Empty input yields zero-valued stats.
package stats

import (
	"math"

	"core/models"
)

// ScopeAll selects the shots of every game.
const ScopeAll = "all"

// SelectShots flattens the shot sequences covered by scope. For ScopeAll that
// is every game's shots in game-list order then per-game insertion order; for
// a game id it is that game's sequence verbatim. An unknown id selects
// nothing.
func SelectShots(games []models.Game, scope string) []models.Shot {
	shots := []models.Shot{}

	if scope == ScopeAll {
		for _, game := range games {
			shots = append(shots, game.Shots...)
		}
		return shots
	}

	for _, game := range games {
		if game.ID == scope {
			return append(shots, game.Shots...)
		}
	}

	return shots
}

// Team computes the aggregate shooting line for the shots in scope.
func Team(games []models.Game, scope string) models.TeamStats {
	shots := SelectShots(games, scope)
	made := countMade(shots)

	return models.TeamStats{
		TotalShots:  len(shots),
		MadeShots:   made,
		Percentage:  percentage(made, len(shots)),
		Points:      points(shots),
		StatsByType: byType(shots),
	}
}

// Players computes one line per roster player, in roster order. Shots are
// joined by player_name equality with the player's current name, so shots
// recorded under a previous name stay unattributed.
func Players(games []models.Game, players []models.Player, scope string) []models.PlayerStats {
	shots := SelectShots(games, scope)

	result := make([]models.PlayerStats, 0, len(players))
	for _, player := range players {
		own := []models.Shot{}
		for _, shot := range shots {
			if shot.PlayerName == player.Name {
				own = append(own, shot)
			}
		}

		made := countMade(own)
		result = append(result, models.PlayerStats{
			PlayerID:    player.ID,
			Name:        player.Name,
			Attempts:    len(own),
			Made:        made,
			Percentage:  percentage(made, len(own)),
			Points:      points(own),
			StatsByType: byType(own),
		})
	}

	return result
}

func byType(shots []models.Shot) []models.TypeStats {
	breakdown := make([]models.TypeStats, 0, len(models.ShotTypes))

	for _, shotType := range models.ShotTypes {
		attempts := 0
		made := 0
		for _, shot := range shots {
			if shot.Type != shotType {
				continue
			}
			attempts++
			if shot.Result == models.ShotResultConvertido {
				made++
			}
		}

		breakdown = append(breakdown, models.TypeStats{
			Type:       shotType,
			Attempts:   attempts,
			Made:       made,
			Percentage: percentage(made, attempts),
		})
	}

	return breakdown
}

func countMade(shots []models.Shot) int {
	made := 0
	for _, shot := range shots {
		if shot.Result == models.ShotResultConvertido {
			made++
		}
	}
	return made
}

// points sums the point values of converted shots only.
func points(shots []models.Shot) int {
	total := 0
	for _, shot := range shots {
		if shot.Result == models.ShotResultConvertido {
			total += models.PointsForType[shot.Type]
		}
	}
	return total
}

// percentage rounds the make ratio to the nearest integer, half up.
func percentage(made, attempts int) int {
	if attempts == 0 {
		return 0
	}
	return int(math.Round(float64(made) / float64(attempts) * 100))
}
