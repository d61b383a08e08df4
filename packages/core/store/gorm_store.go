package store

import (
	"errors"

	"core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore persists records in the relational backend through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindTeamByOwner(ownerUserID string) (*models.Team, error) {
	var team models.Team

	result := s.db.Where("owner_user_id = ?", ownerUserID).Limit(1).First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *GormStore) CreateTeam(team models.Team) (*models.Team, error) {
	team.ID = uuid.NewString()

	if err := s.db.Create(&team).Error; err != nil {
		return nil, err
	}

	return &team, nil
}

func (s *GormStore) UpdateTeamName(id, name string) error {
	result := s.db.Model(&models.Team{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *GormStore) CreatePlayer(player models.Player) (*models.Player, error) {
	player.ID = uuid.NewString()

	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}

	return &player, nil
}

func (s *GormStore) DeletePlayer(id string) error {
	result := s.db.Delete(&models.Player{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *GormStore) ListPlayers(teamID string) ([]models.Player, error) {
	var players []models.Player

	result := s.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *GormStore) CreateGame(game models.Game) (*models.Game, error) {
	game.ID = uuid.NewString()
	if game.Shots == nil {
		game.Shots = []models.Shot{}
	}

	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

func (s *GormStore) ListGamesWithShots(teamID string) ([]models.Game, error) {
	var games []models.Game

	result := s.db.Where("team_id = ?", teamID).
		Preload("Shots", func(db *gorm.DB) *gorm.DB {
			return db.Order("shots.timestamp ASC")
		}).
		Order("created_at DESC").
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range games {
		if games[i].Shots == nil {
			games[i].Shots = []models.Shot{}
		}
	}

	return games, nil
}

func (s *GormStore) CreateShot(shot models.Shot) (*models.Shot, error) {
	shot.ID = uuid.NewString()

	if err := s.db.Create(&shot).Error; err != nil {
		return nil, err
	}

	return &shot, nil
}
