package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/player"
)

func TestSplitPoints(t *testing.T) {
	cases := map[float64][2]int{
		1432.56: {1432, 56},
		98.1:    {98, 10},
		0:       {0, 0},
		77.999:  {78, 0},
	}
	for in, want := range cases {
		whole, hundredths := splitPoints(in)
		if whole != want[0] || hundredths != want[1] {
			t.Fatalf("splitPoints(%v)=%d,%d want %d,%d", in, whole, hundredths, want[0], want[1])
		}
	}
}

func TestPreviousRosterToDomain(t *testing.T) {
	row := previousRosterTableModel{
		LeagueID:    "prev",
		RosterID:    3,
		OwnerID:     sql.NullString{String: "u3", Valid: true},
		TeamName:    sql.NullString{},
		Wins:        9,
		Losses:      5,
		PointsFor:   1500.25,
		PointsAgain: 1320.5,
	}

	got := row.toDomain()
	if got.ID != 3 || got.OwnerID != "u3" || got.TeamName != "" {
		t.Fatalf("unexpected roster: %+v", got)
	}
	if got.Settings.PointsFor() != 1500.25 || got.Settings.PointsAgainst() != 1320.5 {
		t.Fatalf("unexpected points: for=%v against=%v", got.Settings.PointsFor(), got.Settings.PointsAgainst())
	}
}

func TestPlayerRowRoundTrip(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	row := playerRow(player.Player{ID: "4046", FirstName: "Patrick", LastName: "Mahomes", Position: "QB", Team: "KC", Active: true}, now)
	if !row.UpdatedAt.Equal(now) || row.Status.Valid || !row.Team.Valid {
		t.Fatalf("unexpected row: %+v", row)
	}

	got := row.toDomain()
	if got.DisplayName() != "Patrick Mahomes (QB)" || got.Team != "KC" || got.Status != "" {
		t.Fatalf("unexpected player: %+v", got)
	}
}
