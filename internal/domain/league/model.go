package league

import (
	"fmt"
	"strings"
)

// League is a fantasy league hosted on Sleeper.
type League struct {
	ID               string
	Name             string
	Sport            string
	Season           int
	Status           string
	TotalRosters     int
	DraftRounds      int
	PreviousLeagueID string
	Avatar           string
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Season <= 0 {
		return fmt.Errorf("league season is required")
	}

	return nil
}

// HasPrevious reports whether the league links to a prior season.
func (l League) HasPrevious() bool {
	id := strings.TrimSpace(l.PreviousLeagueID)
	return id != "" && id != "0"
}

// User is a Sleeper account, either looked up directly or listed as a league member.
type User struct {
	ID          string
	Username    string
	DisplayName string
	TeamName    string
	Avatar      string
}

// State is the sport-wide calendar position reported by Sleeper.
type State struct {
	Season      int
	SeasonType  string
	Week        int
	DisplayWeek int
}
