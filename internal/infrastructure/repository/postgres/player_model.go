package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/player"
)

type playerTableModel struct {
	PlayerID  string         `db:"player_id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Position  string         `db:"position"`
	Team      sql.NullString `db:"team"`
	Status    sql.NullString `db:"status"`
	Active    bool           `db:"active"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func playerRow(item player.Player, now time.Time) playerTableModel {
	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}
	return playerTableModel{
		PlayerID:  item.ID,
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Position:  item.Position,
		Team:      nullString(item.Team),
		Status:    nullString(item.Status),
		Active:    item.Active,
		UpdatedAt: updatedAt.UTC(),
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.PlayerID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Position:  m.Position,
		Team:      m.Team.String,
		Status:    m.Status.String,
		Active:    m.Active,
		UpdatedAt: m.UpdatedAt,
	}
}
