package stats

import (
	"testing"

	"core/models"
)

func shot(t models.ShotType, r models.ShotResult, player string) models.Shot {
	return models.Shot{Type: t, Result: r, PlayerName: player}
}

func game(id string, shots ...models.Shot) models.Game {
	return models.Game{ID: id, Name: "game " + id, Shots: shots}
}

func TestTeamEmptyInput(t *testing.T) {
	got := Team(nil, ScopeAll)

	if got.TotalShots != 0 || got.MadeShots != 0 || got.Percentage != 0 || got.Points != 0 {
		t.Errorf("empty input: got %+v, want all zero", got)
	}
	if len(got.StatsByType) != 3 {
		t.Fatalf("expected 3 type rows, got %d", len(got.StatsByType))
	}
	for _, row := range got.StatsByType {
		if row.Attempts != 0 || row.Made != 0 || row.Percentage != 0 {
			t.Errorf("type %s: got %+v, want zeros", row.Type, row)
		}
	}
}

func TestTeamPercentageRounding(t *testing.T) {
	games := []models.Game{game("g1",
		shot(models.ShotTypeDoble, models.ShotResultConvertido, "Ana"),
		shot(models.ShotTypeDoble, models.ShotResultConvertido, "Ana"),
		shot(models.ShotTypeDoble, models.ShotResultFallado, "Ana"),
	)}

	got := Team(games, ScopeAll)
	if got.Percentage != 67 {
		t.Errorf("2 of 3 made: percentage = %d, want 67", got.Percentage)
	}
}

func TestTeamInvariants(t *testing.T) {
	games := []models.Game{
		game("g1",
			shot(models.ShotTypeTriple, models.ShotResultConvertido, "Ana"),
			shot(models.ShotTypeLibre, models.ShotResultFallado, "Leo"),
			shot(models.ShotTypeDoble, models.ShotResultFallado, "Ana"),
		),
		game("g2",
			shot(models.ShotTypeTriple, models.ShotResultFallado, "Leo"),
		),
	}

	got := Team(games, ScopeAll)

	if got.MadeShots > got.TotalShots {
		t.Errorf("made %d exceeds total %d", got.MadeShots, got.TotalShots)
	}

	sum := 0
	for _, row := range got.StatsByType {
		sum += row.Attempts
	}
	if sum != got.TotalShots {
		t.Errorf("per-type attempts sum to %d, total is %d", sum, got.TotalShots)
	}
}

func TestTypeBreakdownOrder(t *testing.T) {
	got := Team([]models.Game{game("g1")}, ScopeAll)

	want := []models.ShotType{models.ShotTypeTriple, models.ShotTypeDoble, models.ShotTypeLibre}
	for i, row := range got.StatsByType {
		if row.Type != want[i] {
			t.Errorf("breakdown[%d] = %s, want %s", i, row.Type, want[i])
		}
	}
}

func TestScopeSelection(t *testing.T) {
	g1 := game("g1",
		shot(models.ShotTypeTriple, models.ShotResultConvertido, "Ana"),
		shot(models.ShotTypeDoble, models.ShotResultFallado, "Ana"),
	)
	games := []models.Game{g1}

	all := Team(games, ScopeAll)
	scoped := Team(games, "g1")
	if all.TotalShots != scoped.TotalShots || all.MadeShots != scoped.MadeShots || all.Percentage != scoped.Percentage {
		t.Errorf("single game: all = %+v, scoped = %+v", all, scoped)
	}
	for i := range all.StatsByType {
		if all.StatsByType[i] != scoped.StatsByType[i] {
			t.Errorf("breakdown[%d]: all = %+v, scoped = %+v", i, all.StatsByType[i], scoped.StatsByType[i])
		}
	}

	unknown := Team(games, "no-such-game")
	if unknown.TotalShots != 0 {
		t.Errorf("unknown game id selected %d shots, want 0", unknown.TotalShots)
	}
}

func TestSelectShotsFlattensInOrder(t *testing.T) {
	games := []models.Game{
		game("g1",
			shot(models.ShotTypeTriple, models.ShotResultConvertido, "a"),
			shot(models.ShotTypeDoble, models.ShotResultFallado, "b"),
		),
		game("g2",
			shot(models.ShotTypeLibre, models.ShotResultFallado, "c"),
		),
	}

	shots := SelectShots(games, ScopeAll)
	if len(shots) != 3 {
		t.Fatalf("got %d shots, want 3", len(shots))
	}
	wantPlayers := []string{"a", "b", "c"}
	for i, s := range shots {
		if s.PlayerName != wantPlayers[i] {
			t.Errorf("shots[%d].PlayerName = %s, want %s", i, s.PlayerName, wantPlayers[i])
		}
	}
}

func TestPlayersAggregation(t *testing.T) {
	players := []models.Player{
		{ID: "p1", Name: "Ana"},
		{ID: "p2", Name: "Leo"},
	}
	games := []models.Game{game("g1",
		shot(models.ShotTypeDoble, models.ShotResultConvertido, "Ana"),
		shot(models.ShotTypeLibre, models.ShotResultFallado, "Leo"),
		shot(models.ShotTypeDoble, models.ShotResultFallado, "Ana"),
	)}

	got := Players(games, players, ScopeAll)
	if len(got) != 2 {
		t.Fatalf("got %d player lines, want 2", len(got))
	}

	ana := got[0]
	if ana.Name != "Ana" || ana.Attempts != 2 || ana.Made != 1 || ana.Percentage != 50 {
		t.Errorf("Ana: got %+v, want attempts=2 made=1 percentage=50", ana)
	}

	leo := got[1]
	if leo.Name != "Leo" || leo.Attempts != 1 || leo.Made != 0 || leo.Percentage != 0 {
		t.Errorf("Leo: got %+v, want attempts=1 made=0 percentage=0", leo)
	}
}

func TestPlayersNameJoinGap(t *testing.T) {
	// Shots store the name at recording time; a renamed player no longer
	// matches them. This behaviour is deliberate.
	players := []models.Player{{ID: "p1", Name: "Anita"}}
	games := []models.Game{game("g1",
		shot(models.ShotTypeTriple, models.ShotResultConvertido, "Ana"),
	)}

	got := Players(games, players, ScopeAll)
	if got[0].Attempts != 0 || got[0].Made != 0 || got[0].Percentage != 0 {
		t.Errorf("renamed player still matched old shots: %+v", got[0])
	}
}

func TestPlayersRosterOrderAndZeroLines(t *testing.T) {
	players := []models.Player{
		{ID: "p1", Name: "Zoe"},
		{ID: "p2", Name: "Abel"},
	}

	got := Players(nil, players, ScopeAll)
	if got[0].Name != "Zoe" || got[1].Name != "Abel" {
		t.Errorf("player lines not in roster order: %v, %v", got[0].Name, got[1].Name)
	}
	for _, line := range got {
		if line.Attempts != 0 || line.Made != 0 || line.Percentage != 0 || line.Points != 0 {
			t.Errorf("%s: got %+v, want zeros", line.Name, line)
		}
	}
}

func TestPoints(t *testing.T) {
	games := []models.Game{game("g1",
		shot(models.ShotTypeTriple, models.ShotResultConvertido, "Ana"),
		shot(models.ShotTypeDoble, models.ShotResultConvertido, "Ana"),
		shot(models.ShotTypeLibre, models.ShotResultConvertido, "Ana"),
		shot(models.ShotTypeTriple, models.ShotResultFallado, "Ana"),
	)}

	got := Team(games, ScopeAll)
	if got.Points != 6 {
		t.Errorf("points = %d, want 6 (3+2+1, misses score nothing)", got.Points)
	}
}

func TestPercentageTable(t *testing.T) {
	cases := []struct {
		made, attempts, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 13},
		{3, 3, 100},
	}

	for _, tc := range cases {
		if got := percentage(tc.made, tc.attempts); got != tc.want {
			t.Errorf("percentage(%d, %d) = %d, want %d", tc.made, tc.attempts, got, tc.want)
		}
	}
}
