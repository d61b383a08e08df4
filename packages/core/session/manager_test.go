package session

import (
	"testing"
	"time"

	"core/store"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

func newTestManager() (*Manager, *store.MemoryStore, *clockwork.FakeClock) {
	st := store.NewMemoryStore()
	clock := clockwork.NewFakeClock()
	return NewManager(st, clock, zerolog.Nop()), st, clock
}

func TestForUserCachesSessions(t *testing.T) {
	m, _, _ := newTestManager()

	first, err := m.ForUser("user-1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.ForUser("user-1")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("same user got two distinct sessions")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestForUserIsolatesUsers(t *testing.T) {
	m, _, clock := newTestManager()

	a, _ := m.ForUser("user-a")
	b, _ := m.ForUser("user-b")

	a.SetTeamName("Halcones")
	settle(a, clock)

	if got := b.Snapshot().TeamName; got != "" {
		t.Errorf("user-b sees user-a's team name %q", got)
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
}

func TestForUserPropagatesLoadFailure(t *testing.T) {
	m, st, _ := newTestManager()

	st.ForceError(errStoreDown)
	if _, err := m.ForUser("user-1"); err == nil {
		t.Error("load failure swallowed")
	}
	if m.Count() != 0 {
		t.Error("failed load left a resident session")
	}
}

func TestDropFlushesPendingWrite(t *testing.T) {
	m, st, _ := newTestManager()

	sess, _ := m.ForUser("user-1")
	sess.SetTeamName("Halcones")

	// Quiet period has not elapsed; logout must not lose the rename.
	m.Drop("user-1")

	if got := st.TeamWrites(); got != 1 {
		t.Errorf("pending write not flushed on drop: %d writes", got)
	}
	if m.Count() != 0 {
		t.Error("session still resident after drop")
	}
}

func TestEvictIdle(t *testing.T) {
	m, st, clock := newTestManager()

	idle, _ := m.ForUser("idle-user")
	idle.SetTeamName("Halcones")

	clock.Advance(3 * time.Hour)
	fresh, _ := m.ForUser("fresh-user")
	fresh.SetTeamName("Panteras")

	evicted := m.EvictIdle(2 * time.Hour)
	if evicted != 1 {
		t.Fatalf("evicted %d sessions, want 1", evicted)
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want the fresh session to survive", m.Count())
	}

	// The idle session's pending rename was flushed before eviction.
	team, err := st.FindTeamByOwner("idle-user")
	if err != nil || team == nil {
		t.Fatalf("FindTeamByOwner: team=%v err=%v", team, err)
	}
	if team.Name != "Halcones" {
		t.Errorf("flushed name = %q", team.Name)
	}

	if _, err := m.ForUser("fresh-user"); err != nil {
		t.Fatal(err)
	}
	if m.Count() != 1 {
		t.Error("re-access of surviving session changed residency")
	}
}
