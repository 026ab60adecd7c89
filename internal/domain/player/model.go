package player

import (
	"fmt"
	"strings"
	"time"
)

// Player is an entry of the Sleeper player directory.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  string
	Team      string
	Status    string
	Active    bool
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.FullName()) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("player position is required")
	}
	if p.FirstName == "Player" && p.LastName == "Invalid" {
		return fmt.Errorf("player %s is a placeholder record", p.ID)
	}

	return nil
}

func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// DisplayName renders "First Last (POS)".
func (p Player) DisplayName() string {
	position := strings.TrimSpace(p.Position)
	if position == "" {
		return p.FullName()
	}
	return fmt.Sprintf("%s (%s)", p.FullName(), position)
}

// IndexByID keys players by id.
func IndexByID(players []Player) map[string]Player {
	out := make(map[string]Player, len(players))
	for _, item := range players {
		out[item.ID] = item
	}
	return out
}
