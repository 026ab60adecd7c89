package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

type Bracket string

const (
	BracketWinners Bracket = "winners"
	BracketLosers  Bracket = "losers"
)

func (b Bracket) Validate() error {
	switch b {
	case BracketWinners, BracketLosers:
		return nil
	default:
		return fmt.Errorf("invalid bracket: %s", b)
	}
}

// Feed points at the earlier match whose winner or loser fills a slot.
type Feed struct {
	WinnerOfMatch int
	LoserOfMatch  int
}

// BracketMatch is one playoff game. Roster ids are zero until decided.
type BracketMatch struct {
	Round          int
	Match          int
	Team1RosterID  int
	Team2RosterID  int
	WinnerRosterID int
	LoserRosterID  int
	Team1From      *Feed
	Team2From      *Feed
	Place          int

	Team1Name  string
	Team2Name  string
	WinnerName string
}

// NameTeams fills team names from the roster name index. Undecided slots stay blank.
func NameTeams(matches []BracketMatch, names map[int]string) []BracketMatch {
	out := make([]BracketMatch, 0, len(matches))
	for _, item := range matches {
		item.Team1Name = teamName(item.Team1RosterID, names)
		item.Team2Name = teamName(item.Team2RosterID, names)
		item.WinnerName = teamName(item.WinnerRosterID, names)
		out = append(out, item)
	}
	return out
}

func teamName(rosterID int, names map[int]string) string {
	if rosterID <= 0 {
		return ""
	}
	if name := strings.TrimSpace(names[rosterID]); name != "" {
		return name
	}
	return roster.FallbackTeamName(rosterID)
}

// Archive is a stored snapshot of a finished season.
type Archive struct {
	LeagueID   string
	Name       string
	Season     int
	ArchivedAt time.Time
	Rosters    []roster.Roster
}
