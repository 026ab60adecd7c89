package roster

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
)

const UnknownUser = "Unknown User"

// Owner is the display identity resolved for a league member.
type Owner struct {
	TeamName string
	Username string
}

// OwnerIndex maps user ids to their display identity.
type OwnerIndex map[string]Owner

// BuildOwnerIndex keys users by id. A user without a team name is shown as
// "Roster {user_id}". Later duplicates replace earlier ones.
func BuildOwnerIndex(users []league.User) OwnerIndex {
	out := make(OwnerIndex, len(users))
	for _, user := range users {
		userID := strings.TrimSpace(user.ID)
		if userID == "" {
			continue
		}

		teamName := strings.TrimSpace(user.TeamName)
		if teamName == "" {
			teamName = fmt.Sprintf("Roster %s", userID)
		}
		username := strings.TrimSpace(user.DisplayName)
		if username == "" {
			username = strings.TrimSpace(user.Username)
		}
		if username == "" {
			username = UnknownUser
		}

		out[userID] = Owner{TeamName: teamName, Username: username}
	}
	return out
}

func (idx OwnerIndex) Lookup(userID string) (Owner, bool) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Owner{}, false
	}
	owner, ok := idx[userID]
	return owner, ok
}

// Resolve returns the owner of a roster or the roster fallback identity.
func (idx OwnerIndex) Resolve(item Roster) Owner {
	if owner, ok := idx.Lookup(item.OwnerID); ok {
		return owner
	}
	return Owner{TeamName: FallbackTeamName(item.ID), Username: UnknownUser}
}

// Enrich returns copies of rosters with TeamName and Username filled in.
func Enrich(rosters []Roster, users []league.User) []Roster {
	idx := BuildOwnerIndex(users)
	out := make([]Roster, 0, len(rosters))
	for _, item := range rosters {
		owner := idx.Resolve(item)
		item.TeamName = owner.TeamName
		item.Username = owner.Username
		out = append(out, item)
	}
	return out
}
