package matchup

import (
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

// Pairs groups entries by matchup id and emits one pair per group of exactly
// two entries, in order of first appearance. Byes and malformed groups are dropped.
func Pairs(rosters []roster.Roster, entries []Entry) []Pair {
	names := make(map[int]string, len(rosters))
	for _, item := range rosters {
		if strings.TrimSpace(item.TeamName) == "" {
			continue
		}
		names[item.ID] = item.TeamName
	}

	order := make([]string, 0, len(entries)/2+1)
	groups := make(map[string][]Entry, len(entries)/2+1)
	for _, entry := range entries {
		matchupID := strings.TrimSpace(entry.MatchupID)
		if matchupID == "" {
			continue
		}
		if _, ok := groups[matchupID]; !ok {
			order = append(order, matchupID)
		}
		groups[matchupID] = append(groups[matchupID], entry)
	}

	out := make([]Pair, 0, len(order))
	for _, matchupID := range order {
		group := groups[matchupID]
		if len(group) != 2 {
			continue
		}
		out = append(out, Pair{
			MatchupID: matchupID,
			Team1:     side(group[0], names),
			Team2:     side(group[1], names),
		})
	}
	return out
}

func side(entry Entry, names map[int]string) Side {
	name, ok := names[entry.RosterID]
	if !ok {
		name = UnknownTeam
	}
	return Side{
		RosterID: entry.RosterID,
		TeamName: name,
		Points:   entry.Points,
	}
}
