package roster

import (
	"context"
	"fmt"
)

// Settings holds the season record Sleeper keeps on each roster.
// Points are split into an integer part and hundredths.
type Settings struct {
	Wins               int
	Losses             int
	Ties               int
	Fpts               int
	FptsDecimal        int
	FptsAgainst        int
	FptsAgainstDecimal int
}

func (s Settings) PointsFor() float64 {
	return float64(s.Fpts) + float64(s.FptsDecimal)/100
}

func (s Settings) PointsAgainst() float64 {
	return float64(s.FptsAgainst) + float64(s.FptsAgainstDecimal)/100
}

// Roster is one team in a league. TeamName, Username and Rank are derived
// per request and never come from the upstream payload.
type Roster struct {
	ID       int
	LeagueID string
	OwnerID  string
	Players  []string
	Starters []string
	Taxi     []string
	Settings Settings

	TeamName string
	Username string
	Rank     int
}

// Repository describes roster reads needed by use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Roster, error)
}

// FallbackTeamName labels a roster that cannot be tied to an owner.
func FallbackTeamName(rosterID int) string {
	return fmt.Sprintf("Roster %d", rosterID)
}

// FindByID returns the roster with the given id.
func FindByID(rosters []Roster, rosterID int) (Roster, bool) {
	for _, item := range rosters {
		if item.ID == rosterID {
			return item, true
		}
	}
	return Roster{}, false
}

// NamesByID indexes derived team names by roster id.
func NamesByID(rosters []Roster) map[int]string {
	out := make(map[int]string, len(rosters))
	for _, item := range rosters {
		out[item.ID] = item.TeamName
	}
	return out
}
