package store

import (
	"sync"

	"core/models"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process memory. It backs the test suites and
// is handy for running the API without a database. ForceError makes every
// subsequent call fail, which is how the confirm-after-write behaviour is
// exercised in tests.
type MemoryStore struct {
	mu      sync.Mutex
	teams   []models.Team
	players []models.Player
	games   []models.Game
	shots   []models.Shot
	err     error

	teamWrites int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ForceError makes every following store call return err. Pass nil to clear.
func (s *MemoryStore) ForceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *MemoryStore) FindTeamByOwner(ownerUserID string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	for _, team := range s.teams {
		if team.OwnerUserID == ownerUserID {
			t := team
			return &t, nil
		}
	}

	return nil, nil
}

func (s *MemoryStore) CreateTeam(team models.Team) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	team.ID = uuid.NewString()
	s.teams = append(s.teams, team)
	s.teamWrites++

	t := team
	return &t, nil
}

func (s *MemoryStore) UpdateTeamName(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams[i].Name = name
			s.teamWrites++
			return nil
		}
	}

	return ErrNotFound
}

func (s *MemoryStore) CreatePlayer(player models.Player) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	player.ID = uuid.NewString()
	s.players = append(s.players, player)

	p := player
	return &p, nil
}

func (s *MemoryStore) DeletePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	for i := range s.players {
		if s.players[i].ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (s *MemoryStore) ListPlayers(teamID string) ([]models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	players := []models.Player{}
	for _, p := range s.players {
		if p.TeamID == teamID {
			players = append(players, p)
		}
	}

	return players, nil
}

func (s *MemoryStore) CreateGame(game models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	game.ID = uuid.NewString()
	game.Shots = []models.Shot{}
	s.games = append(s.games, game)

	g := game
	return &g, nil
}

func (s *MemoryStore) ListGamesWithShots(teamID string) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	// s.games is in creation order; the contract is newest-first.
	games := []models.Game{}
	for i := len(s.games) - 1; i >= 0; i-- {
		g := s.games[i]
		if g.TeamID != teamID {
			continue
		}
		g.Shots = []models.Shot{}
		for _, shot := range s.shots {
			if shot.GameID == g.ID {
				g.Shots = append(g.Shots, shot)
			}
		}
		games = append(games, g)
	}

	return games, nil
}

func (s *MemoryStore) CreateShot(shot models.Shot) (*models.Shot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	shot.ID = uuid.NewString()
	s.shots = append(s.shots, shot)

	sh := shot
	return &sh, nil
}

// TeamWrites reports how many create/update calls hit the teams collection.
// Used by the debounce coalescing tests.
func (s *MemoryStore) TeamWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamWrites
}
