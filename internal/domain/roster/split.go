package roster

// Sections is a roster broken into its lineup groups.
type Sections struct {
	Starters []string
	Bench    []string
	Taxi     []string
}

// Split derives bench as every player id not present anywhere in starters.
// Player order and duplicates are kept.
func Split(item Roster) Sections {
	starterSet := make(map[string]struct{}, len(item.Starters))
	for _, playerID := range item.Starters {
		starterSet[playerID] = struct{}{}
	}

	bench := make([]string, 0, len(item.Players))
	for _, playerID := range item.Players {
		if _, ok := starterSet[playerID]; ok {
			continue
		}
		bench = append(bench, playerID)
	}

	return Sections{
		Starters: append([]string(nil), item.Starters...),
		Bench:    bench,
		Taxi:     append([]string(nil), item.Taxi...),
	}
}

// PlayerIDs returns every id across sections in display order, without repeats.
func (s Sections) PlayerIDs() []string {
	seen := make(map[string]struct{}, len(s.Starters)+len(s.Bench)+len(s.Taxi))
	out := make([]string, 0, len(s.Starters)+len(s.Bench)+len(s.Taxi))
	for _, group := range [][]string{s.Starters, s.Bench, s.Taxi} {
		for _, playerID := range group {
			if _, ok := seen[playerID]; ok {
				continue
			}
			seen[playerID] = struct{}{}
			out = append(out, playerID)
		}
	}
	return out
}
