package draftpick

import (
	"context"
	"fmt"
)

// TradedPick is a draft pick whose ownership has changed hands.
// RosterID is the roster the pick originally belonged to.
type TradedPick struct {
	Season          int
	Round           int
	RosterID        int
	PreviousOwnerID int
	OwnerID         int
}

// Window is the range of future drafts tracked per roster:
// seasons [StartSeason, StartSeason+Seasons) and rounds 1..Rounds.
type Window struct {
	StartSeason int
	Seasons     int
	Rounds      int
}

func (w Window) Validate() error {
	if w.StartSeason <= 0 {
		return fmt.Errorf("window start season is required")
	}
	if w.Seasons < 1 {
		return fmt.Errorf("window seasons must be >= 1")
	}
	if w.Rounds < 1 {
		return fmt.Errorf("window rounds must be >= 1")
	}
	return nil
}

func (w Window) ContainsSeason(season int) bool {
	return season >= w.StartSeason && season < w.StartSeason+w.Seasons
}

// Slot is a pick the roster currently holds.
type Slot struct {
	Season           int
	Round            int
	OriginalRosterID int
	OriginalTeam     string
	Label            string
}

// Traded reports whether the slot was acquired from another roster.
func (s Slot) Traded() bool {
	return s.OriginalTeam != ""
}

// Repository describes traded pick reads needed by use cases.
type Repository interface {
	ListTradedByLeague(ctx context.Context, leagueID string) ([]TradedPick, error)
}
