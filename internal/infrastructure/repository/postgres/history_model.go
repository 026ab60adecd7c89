package postgres

import (
	"database/sql"
	"math"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

type previousLeagueTableModel struct {
	LeagueID   string    `db:"league_id"`
	Name       string    `db:"name"`
	Season     int       `db:"season"`
	ArchivedAt time.Time `db:"archived_at"`
}

type previousRosterTableModel struct {
	LeagueID    string         `db:"league_id"`
	RosterID    int            `db:"roster_id"`
	OwnerID     sql.NullString `db:"owner_id"`
	TeamName    sql.NullString `db:"team_name"`
	Username    sql.NullString `db:"username"`
	Wins        int            `db:"wins"`
	Losses      int            `db:"losses"`
	Ties        int            `db:"ties"`
	PointsFor   float64        `db:"points_for"`
	PointsAgain float64        `db:"points_against"`
}

func (m previousRosterTableModel) toDomain() roster.Roster {
	fpts, fptsDecimal := splitPoints(m.PointsFor)
	against, againstDecimal := splitPoints(m.PointsAgain)
	return roster.Roster{
		ID:       m.RosterID,
		LeagueID: m.LeagueID,
		OwnerID:  m.OwnerID.String,
		TeamName: m.TeamName.String,
		Username: m.Username.String,
		Settings: roster.Settings{
			Wins:               m.Wins,
			Losses:             m.Losses,
			Ties:               m.Ties,
			Fpts:               fpts,
			FptsDecimal:        fptsDecimal,
			FptsAgainst:        against,
			FptsAgainstDecimal: againstDecimal,
		},
	}
}

// splitPoints turns a stored numeric(10,2) into Sleeper's whole and
// hundredths pair.
func splitPoints(points float64) (int, int) {
	hundredths := int(math.Round(points * 100))
	return hundredths / 100, hundredths % 100
}
