package roster

import "sort"

// Rank orders rosters by wins then points-for, both descending, and assigns
// 1-based ranks. Ties keep their input order.
func Rank(rosters []Roster) []Roster {
	out := make([]Roster, len(rosters))
	copy(out, rosters)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Settings.Wins != out[j].Settings.Wins {
			return out[i].Settings.Wins > out[j].Settings.Wins
		}
		return out[i].Settings.PointsFor() > out[j].Settings.PointsFor()
	})

	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
