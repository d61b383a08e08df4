package store

import (
	"errors"

	"core/models"
)

var ErrNotFound = errors.New("record not found")

// Store is the keyed persistence contract the trackers run against. Inserts
// return the created row including its server-assigned id. Implemented by the
// gorm-backed store in production and by the in-memory store in tests.
type Store interface {
	// FindTeamByOwner returns the owner's team, or nil when none exists yet.
	FindTeamByOwner(ownerUserID string) (*models.Team, error)
	CreateTeam(team models.Team) (*models.Team, error)
	UpdateTeamName(id, name string) error

	CreatePlayer(player models.Player) (*models.Player, error)
	DeletePlayer(id string) error
	ListPlayers(teamID string) ([]models.Player, error)

	CreateGame(game models.Game) (*models.Game, error)
	// ListGamesWithShots returns the team's games newest-first, each joined
	// with its shots in insertion order.
	ListGamesWithShots(teamID string) ([]models.Game, error)

	CreateShot(shot models.Shot) (*models.Shot, error)
}
