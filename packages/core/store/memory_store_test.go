package store

import (
	"errors"
	"testing"

	"core/models"
)

func TestFindTeamByOwner(t *testing.T) {
	s := NewMemoryStore()

	team, err := s.FindTeamByOwner("user-1")
	if err != nil || team != nil {
		t.Fatalf("missing team: got (%v, %v), want (nil, nil)", team, err)
	}

	created, err := s.CreateTeam(models.Team{Name: "Halcones", OwnerUserID: "user-1"})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("no id assigned on create")
	}

	team, err = s.FindTeamByOwner("user-1")
	if err != nil {
		t.Fatal(err)
	}
	if team == nil || team.ID != created.ID {
		t.Errorf("lookup returned %v, want the created team", team)
	}
}

func TestUpdateTeamNameUnknownID(t *testing.T) {
	s := NewMemoryStore()

	if err := s.UpdateTeamName("no-such-team", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDeletePlayerUnknownID(t *testing.T) {
	s := NewMemoryStore()

	if err := s.DeletePlayer("no-such-player"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListGamesNewestFirstWithShotsJoined(t *testing.T) {
	s := NewMemoryStore()
	team, _ := s.CreateTeam(models.Team{Name: "Halcones", OwnerUserID: "user-1"})

	g1, _ := s.CreateGame(models.Game{Name: "vs Rivals", TeamID: team.ID})
	g2, _ := s.CreateGame(models.Game{Name: "vs Lakers", TeamID: team.ID})

	s.CreateShot(models.Shot{GameID: g1.ID, PlayerName: "Ana", Timestamp: 1})
	s.CreateShot(models.Shot{GameID: g1.ID, PlayerName: "Leo", Timestamp: 2})
	s.CreateShot(models.Shot{GameID: g2.ID, PlayerName: "Ana", Timestamp: 3})

	games, err := s.ListGamesWithShots(team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	if games[0].ID != g2.ID || games[1].ID != g1.ID {
		t.Error("games not newest-first")
	}
	if len(games[0].Shots) != 1 || len(games[1].Shots) != 2 {
		t.Fatalf("shot join wrong: %d and %d", len(games[0].Shots), len(games[1].Shots))
	}
	if games[1].Shots[0].PlayerName != "Ana" || games[1].Shots[1].PlayerName != "Leo" {
		t.Error("shots not in recording order")
	}
}

func TestListGamesScopedToTeam(t *testing.T) {
	s := NewMemoryStore()
	mine, _ := s.CreateTeam(models.Team{Name: "Halcones", OwnerUserID: "user-1"})
	theirs, _ := s.CreateTeam(models.Team{Name: "Panteras", OwnerUserID: "user-2"})

	s.CreateGame(models.Game{Name: "vs Rivals", TeamID: mine.ID})
	s.CreateGame(models.Game{Name: "derby", TeamID: theirs.ID})

	games, err := s.ListGamesWithShots(mine.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 || games[0].Name != "vs Rivals" {
		t.Errorf("got %v, want only this team's games", games)
	}
}

func TestForceError(t *testing.T) {
	s := NewMemoryStore()
	forced := errors.New("boom")

	s.ForceError(forced)
	if _, err := s.CreateTeam(models.Team{Name: "x"}); !errors.Is(err, forced) {
		t.Errorf("CreateTeam = %v, want forced error", err)
	}
	if _, err := s.ListGamesWithShots("t"); !errors.Is(err, forced) {
		t.Errorf("ListGamesWithShots = %v, want forced error", err)
	}

	s.ForceError(nil)
	if _, err := s.CreateTeam(models.Team{Name: "x"}); err != nil {
		t.Errorf("error not cleared: %v", err)
	}
}
