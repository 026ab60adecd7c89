package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

const playersTable = "players"

var playerSelectColumns = []string{
	"player_id",
	"first_name",
	"last_name",
	"position",
	"team",
	"status",
	"active",
	"updated_at",
}

var playerUpsertSuffix = qb.OnConflictUpdate(
	[]string{"player_id"},
	"first_name",
	"last_name",
	"position",
	"team",
	"status",
	"active",
	"updated_at",
)

type PlayerRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db, now: time.Now}
}

// GetByIDs binds the id list as one array parameter so the statement shape
// does not change with the roster size.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, _, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Expr("player_id = ANY($1)")).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(playerIDs)); err != nil {
		if !shouldRetryStatement(err) {
			return nil, fmt.Errorf("select players by ids: %w", err)
		}
		return r.getByIDsExpanded(ctx, playerIDs)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) getByIDsExpanded(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.InStrings("player_id", playerIDs)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players fallback query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players fallback: %w", err)
	}
	return playersFromRows(rows), nil
}

func (r *PlayerRepository) UpsertMany(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	now := r.now().UTC()
	seen := make(map[string]struct{}, len(players))
	rows := make([]playerTableModel, 0, len(players))
	for _, item := range players {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		rows = append(rows, playerRow(item, now))
	}

	query, args, err := qb.InsertModels(playersTable, rows, playerUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
