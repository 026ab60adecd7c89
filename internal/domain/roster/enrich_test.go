package roster

import (
	"testing"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
)

func TestEnrich_ResolvesOwnersAndFallbacks(t *testing.T) {
	t.Parallel()

	rosters := []Roster{
		{ID: 1, OwnerID: "u1"},
		{ID: 2, OwnerID: "u2"},
		{ID: 3, OwnerID: "ghost"},
		{ID: 4},
	}
	users := []league.User{
		{ID: "u1", DisplayName: "alice", TeamName: "Gridiron Gang"},
		{ID: "u2", DisplayName: "bob", TeamName: "   "},
	}

	got := Enrich(rosters, users)
	if len(got) != len(rosters) {
		t.Fatalf("expected %d rosters, got=%d", len(rosters), len(got))
	}

	want := []struct {
		team string
		user string
	}{
		{"Gridiron Gang", "alice"},
		{"Roster u2", "bob"},
		{"Roster 3", UnknownUser},
		{"Roster 4", UnknownUser},
	}
	for i, w := range want {
		if got[i].TeamName != w.team || got[i].Username != w.user {
			t.Fatalf("roster %d: got team=%q user=%q want team=%q user=%q", got[i].ID, got[i].TeamName, got[i].Username, w.team, w.user)
		}
	}
	if rosters[0].TeamName != "" {
		t.Fatalf("expected input rosters to stay untouched")
	}
}

func TestEnrich_EveryRosterGetsIdentity(t *testing.T) {
	t.Parallel()

	rosters := make([]Roster, 0, 12)
	for i := 1; i <= 12; i++ {
		ownerID := ""
		if i%3 == 0 {
			ownerID = "u3"
		}
		rosters = append(rosters, Roster{ID: i, OwnerID: ownerID})
	}

	for _, users := range [][]league.User{nil, {{ID: "u3"}}, {{ID: "u3", DisplayName: "carol", TeamName: "Carol FC"}}} {
		for _, item := range Enrich(rosters, users) {
			if item.TeamName == "" || item.Username == "" {
				t.Fatalf("roster %d missing identity: %+v", item.ID, item)
			}
		}
	}
}

func TestBuildOwnerIndex_UsernameFallsBackToAccountName(t *testing.T) {
	t.Parallel()

	idx := BuildOwnerIndex([]league.User{{ID: "u9", Username: "dave_account"}, {ID: " "}})
	owner, ok := idx.Lookup("u9")
	if !ok {
		t.Fatalf("expected u9 to be indexed")
	}
	if owner.Username != "dave_account" || owner.TeamName != "Roster u9" {
		t.Fatalf("unexpected owner: %+v", owner)
	}
	if _, ok := idx.Lookup(""); ok {
		t.Fatalf("blank user id must not resolve")
	}
	if len(idx) != 1 {
		t.Fatalf("expected blank user ids to be skipped, got=%d entries", len(idx))
	}
}
