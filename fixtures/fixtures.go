package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	authModels "auth/models"
	"core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

var demoPlayers = []string{"Ana", "Leo", "Marta", "Diego", "Lucía"}

var demoGames = []string{"vs Rivals", "vs Lakers", "Entrenamiento"}

// GenerateTestData seeds a demo user with a team, a roster and a few games of
// random shots.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	now := time.Now()
	user := authModels.User{
		ID:        uuid.NewString(),
		Email:     "demo@shottracker.local",
		Name:      "Demo Coach",
		LastLogin: &now,
	}
	if err := f.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	team := models.Team{
		ID:          uuid.NewString(),
		Name:        "Halcones",
		OwnerUserID: user.ID,
	}
	if err := f.db.Create(&team).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	players := make([]models.Player, 0, len(demoPlayers))
	for _, name := range demoPlayers {
		players = append(players, models.Player{
			ID:     uuid.NewString(),
			Name:   name,
			TeamID: team.ID,
		})
	}
	if err := f.db.Create(&players).Error; err != nil {
		return fmt.Errorf("failed to create players: %w", err)
	}

	totalShots := 0
	totalPoints := 0
	for i, gameName := range demoGames {
		createdAt := now.AddDate(0, 0, i-len(demoGames))
		game := models.Game{
			ID:        uuid.NewString(),
			Name:      gameName,
			Date:      createdAt.Format("02/01/2006"),
			TeamID:    team.ID,
			CreatedAt: createdAt,
		}
		if err := f.db.Create(&game).Error; err != nil {
			return fmt.Errorf("failed to create game %s: %w", gameName, err)
		}

		shots := f.randomShots(game, createdAt, players)
		if err := f.db.Create(&shots).Error; err != nil {
			return fmt.Errorf("failed to create shots for %s: %w", gameName, err)
		}

		totalShots += len(shots)
		for _, shot := range shots {
			if shot.Result == models.ShotResultConvertido {
				totalPoints += models.PointsForType[shot.Type]
			}
		}
	}

	log.Printf("Fixtures done: 1 team, %d players, %d games, %d shots (%d points scored)",
		len(players), len(demoGames), totalShots, totalPoints)
	return nil
}

func (f *Fixtures) randomShots(game models.Game, start time.Time, players []models.Player) []models.Shot {
	count := 15 + rand.Intn(20)

	shots := make([]models.Shot, 0, count)
	for i := 0; i < count; i++ {
		shotType := models.ShotTypes[rand.Intn(len(models.ShotTypes))]
		result := models.ShotResultFallado
		if rand.Intn(100) < 45 {
			result = models.ShotResultConvertido
		}

		shots = append(shots, models.Shot{
			ID:         uuid.NewString(),
			Type:       shotType,
			Result:     result,
			PlayerName: players[rand.Intn(len(players))].Name,
			GameID:     game.ID,
			Timestamp:  start.Add(time.Duration(i) * time.Minute).UnixMilli(),
		})
	}

	return shots
}

// Clean removes every seeded record. Order respects the foreign keys.
func (f *Fixtures) Clean() error {
	log.Println("Cleaning fixtures...")

	for _, table := range []string{"shots", "games", "players", "teams", "users"} {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clean %s: %w", table, err)
		}
	}

	return nil
}
