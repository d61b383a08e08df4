package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"core/models"
	"core/store"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// TeamNameQuietPeriod is the debounce window for team-name saves: rapid
// renames coalesce into a single write issued after this much inactivity.
const TeamNameQuietPeriod = time.Second

// GameDateFormat renders the locale calendar date stored on a game (es-ES
// day/month/year, matching the dates already in the store).
const GameDateFormat = "02/01/2006"

var (
	ErrNoActiveGame  = errors.New("no active game selected")
	ErrShotSelection = errors.New("shot type, result and player are all required")
)

// Session holds one user's in-memory tracking state: the team, its roster,
// its games and the active-game pointer, plus the shot-entry wizard. All
// mutations go through the operations below; every store-backed mutation
// applies its in-memory effect only after the store call succeeds.
type Session struct {
	mu     sync.Mutex
	userID string
	store  store.Store
	clock  clockwork.Clock
	log    zerolog.Logger

	team       *models.Team
	teamName   string
	players    []models.Player
	games      []models.Game
	activeGame *models.Game
	wizard     *Wizard

	saveTimer   clockwork.Timer
	savePending bool
	lastUsed    time.Time
}

func New(userID string, st store.Store, clock clockwork.Clock, log zerolog.Logger) *Session {
	return &Session{
		userID: userID,
		store:  st,
		clock:  clock,
		log:    log.With().Str("user_id", userID).Logger(),
		wizard: NewWizard(),
	}
}

// Load pulls the user's team, roster and games (newest-first, shots joined)
// from the store. At most one team is loaded per user.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	team, err := s.store.FindTeamByOwner(s.userID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load team")
		return err
	}
	if team == nil {
		return nil
	}

	players, err := s.store.ListPlayers(team.ID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load players")
		return err
	}

	games, err := s.store.ListGamesWithShots(team.ID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load games")
		return err
	}

	s.team = team
	s.teamName = team.Name
	s.players = players
	s.games = games
	return nil
}

// SetTeamName updates the in-memory name immediately and schedules the
// persistence write. Each call cancels any pending write and restarts the
// quiet period, so only the last value within the window is persisted.
func (s *Session) SetTeamName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.teamName = name
	if s.team != nil {
		s.team.Name = name
	}

	s.savePending = true
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = s.clock.AfterFunc(TeamNameQuietPeriod, s.saveTeamName)
}

// FlushTeamName issues any pending team-name write immediately. The idle
// janitor calls this before evicting a session so a scheduled save is never
// lost.
func (s *Session) FlushTeamName() {
	s.saveTeamName()
}

// saveTeamName performs the debounced write: the first save creates the team
// row and captures its assigned id, later saves update it in place.
func (s *Session) saveTeamName() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.savePending {
		return
	}
	s.savePending = false

	name := strings.TrimSpace(s.teamName)
	if name == "" {
		return
	}

	if s.team == nil {
		team, err := s.store.CreateTeam(models.Team{Name: s.teamName, OwnerUserID: s.userID})
		if err != nil {
			s.log.Error().Err(err).Msg("failed to create team")
			return
		}
		s.team = team
		return
	}

	if err := s.store.UpdateTeamName(s.team.ID, s.teamName); err != nil {
		s.log.Error().Err(err).Str("team_id", s.team.ID).Msg("failed to save team name")
	}
}

// AddPlayer persists a new roster player and appends it in memory once the
// store confirms. An empty trimmed name, or the absence of a persisted team,
// makes this a no-op.
func (s *Session) AddPlayer(name string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	name = strings.TrimSpace(name)
	if name == "" || s.team == nil {
		return nil, nil
	}

	player, err := s.store.CreatePlayer(models.Player{Name: name, TeamID: s.team.ID})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to add player")
		return nil, err
	}

	s.players = append(s.players, *player)
	return player, nil
}

// RemovePlayer deletes the player from the store first and drops it from the
// roster only after the delete succeeds. Historical shots keep the player's
// name.
func (s *Session) RemovePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.store.DeletePlayer(id); err != nil {
		s.log.Error().Err(err).Str("player_id", id).Msg("failed to remove player")
		return err
	}

	for i := range s.players {
		if s.players[i].ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			break
		}
	}
	return nil
}

// CreateGame persists a new game stamped with today's calendar date, prepends
// it to the game list and makes it the active game. Empty names and a missing
// team are silent no-ops.
func (s *Session) CreateGame(name string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	name = strings.TrimSpace(name)
	if name == "" || s.team == nil {
		return nil, nil
	}

	game, err := s.store.CreateGame(models.Game{
		Name:   name,
		Date:   s.clock.Now().Format(GameDateFormat),
		TeamID: s.team.ID,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create game")
		return nil, err
	}

	s.games = append([]models.Game{*game}, s.games...)
	active := *game
	s.activeGame = &active
	return game, nil
}

// SelectGame moves the active-game pointer to an existing game. It mutates no
// data and reports whether the id was found.
func (s *Session) SelectGame(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i := range s.games {
		if s.games[i].ID == id {
			active := s.games[i]
			s.activeGame = &active
			return true
		}
	}
	return false
}

// recordShot persists a shot against the active game and, once confirmed,
// appends it to the active game and to its mirror in the game list so the two
// views stay identical.
func (s *Session) recordShot(t models.ShotType, r models.ShotResult, playerName string) (*models.Shot, error) {
	if s.activeGame == nil {
		return nil, ErrNoActiveGame
	}
	if !t.Valid() || !r.Valid() || playerName == "" {
		return nil, ErrShotSelection
	}

	shot, err := s.store.CreateShot(models.Shot{
		Type:       t,
		Result:     r,
		PlayerName: playerName,
		GameID:     s.activeGame.ID,
		Timestamp:  s.clock.Now().UnixMilli(),
	})
	if err != nil {
		s.log.Error().Err(err).Str("game_id", s.activeGame.ID).Msg("failed to record shot")
		return nil, err
	}

	s.activeGame.Shots = append(s.activeGame.Shots, *shot)
	for i := range s.games {
		if s.games[i].ID == s.activeGame.ID {
			s.games[i].Shots = append(s.games[i].Shots, *shot)
			break
		}
	}
	return shot, nil
}

// ChooseShotType starts a wizard pass.
func (s *Session) ChooseShotType(t models.ShotType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.wizard.ChooseType(t)
}

func (s *Session) ChooseShotResult(r models.ShotResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.wizard.ChooseResult(r)
}

func (s *Session) ChooseShotPlayer(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.wizard.ChoosePlayer(name)
}

func (s *Session) WizardBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.wizard.Back()
}

func (s *Session) CancelShot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.wizard.Cancel()
}

// ConfirmShot records the wizard's completed selection. The wizard resets
// only after the store confirms the shot; a failed write leaves the wizard
// awaiting confirmation with its selections intact.
func (s *Session) ConfirmShot() (*models.Shot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.wizard.Complete() {
		return nil, ErrWizardOrder
	}

	t, r, player := s.wizard.Selection()
	shot, err := s.recordShot(t, r, player)
	if err != nil {
		return nil, err
	}

	s.wizard.Cancel()
	return shot, nil
}

// WizardView is the current state of the shot-entry flow.
type WizardView struct {
	State      WizardState       `json:"state"`
	Type       models.ShotType   `json:"type,omitempty"`
	Result     models.ShotResult `json:"result,omitempty"`
	PlayerName string            `json:"player_name,omitempty"`
}

func (s *Session) Wizard() WizardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, r, player := s.wizard.Selection()
	return WizardView{
		State:      s.wizard.State(),
		Type:       t,
		Result:     r,
		PlayerName: player,
	}
}

// Snapshot is a copy of the session's data state, safe to hand to the stats
// engine or serialize.
type Snapshot struct {
	TeamID       string          `json:"team_id"`
	TeamName     string          `json:"team_name"`
	Players      []models.Player `json:"players"`
	Games        []models.Game   `json:"games"`
	ActiveGameID string          `json:"active_game_id"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		TeamName: s.teamName,
		Players:  append([]models.Player{}, s.players...),
		Games:    make([]models.Game, 0, len(s.games)),
	}
	if s.team != nil {
		snap.TeamID = s.team.ID
	}
	if s.activeGame != nil {
		snap.ActiveGameID = s.activeGame.ID
	}
	for _, game := range s.games {
		g := game
		g.Shots = append([]models.Shot{}, game.Shots...)
		snap.Games = append(snap.Games, g)
	}
	return snap
}

// ActiveGame returns a copy of the game currently receiving shots, or nil.
func (s *Session) ActiveGame() *models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeGame == nil {
		return nil
	}
	g := *s.activeGame
	g.Shots = append([]models.Shot{}, s.activeGame.Shots...)
	return &g
}

func (s *Session) touch() {
	s.lastUsed = s.clock.Now()
}

// LastUsed reports when the session last served an operation.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}
