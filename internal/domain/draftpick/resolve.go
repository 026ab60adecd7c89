package draftpick

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

type pickKey struct {
	season   int
	round    int
	original int
}

// Resolve lists the picks rosterID holds inside the window. The last traded
// record for a pick decides its current owner, so a pick traded away and back
// counts as the roster's own. names maps roster ids to team names. An invalid
// window yields no slots.
func Resolve(picks []TradedPick, rosterID int, window Window, names map[int]string) []Slot {
	if err := window.Validate(); err != nil {
		return []Slot{}
	}

	owners := make(map[pickKey]int, len(picks))
	for _, pick := range picks {
		owners[pickKey{season: pick.Season, round: pick.Round, original: pick.RosterID}] = pick.OwnerID
	}

	slots := make([]Slot, 0, window.Seasons*window.Rounds)
	for key, owner := range owners {
		if owner != rosterID || key.original == rosterID {
			continue
		}
		if key.round < 1 || !window.ContainsSeason(key.season) {
			continue
		}
		team := strings.TrimSpace(names[key.original])
		if team == "" {
			team = roster.FallbackTeamName(key.original)
		}
		slots = append(slots, Slot{
			Season:           key.season,
			Round:            key.round,
			OriginalRosterID: key.original,
			OriginalTeam:     team,
			Label:            fmt.Sprintf("%s (%s)", baseLabel(key.season, key.round), team),
		})
	}

	for season := window.StartSeason; season < window.StartSeason+window.Seasons; season++ {
		for round := 1; round <= window.Rounds; round++ {
			owner, traded := owners[pickKey{season: season, round: round, original: rosterID}]
			if traded && owner != rosterID {
				continue
			}
			slots = append(slots, Slot{
				Season:           season,
				Round:            round,
				OriginalRosterID: rosterID,
				Label:            baseLabel(season, round),
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Label < slots[j].Label })

	out := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if len(out) > 0 && out[len(out)-1].Label == slot.Label {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// Labels returns the display label of each slot.
func Labels(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.Label)
	}
	return out
}

func baseLabel(season, round int) string {
	return fmt.Sprintf("%04d Round %02d", season, round)
}
