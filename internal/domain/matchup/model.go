package matchup

import "context"

const UnknownTeam = "Unknown Team"

// Entry is one roster's line for a week. Entries sharing MatchupID play each
// other; an empty MatchupID means the roster has no opponent that week.
type Entry struct {
	RosterID  int
	MatchupID string
	Points    float64
	Starters  []string
	Players   []string
}

// Side is one team of a paired matchup.
type Side struct {
	RosterID int
	TeamName string
	Points   float64
}

// Pair is a head-to-head fixture for a week.
type Pair struct {
	MatchupID string
	Team1     Side
	Team2     Side
}

// Repository describes weekly matchup reads needed by use cases.
type Repository interface {
	ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]Entry, error)
}
