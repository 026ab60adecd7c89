package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sleeper-league/internal/domain/history"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

// ArchiveRepository reads finished seasons kept in previous_leagues and
// previous_rosters.
type ArchiveRepository struct {
	db *sqlx.DB
}

func NewArchiveRepository(db *sqlx.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) GetByLeague(ctx context.Context, leagueID string) (history.Archive, bool, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return history.Archive{}, false, nil
	}

	query, args, err := qb.Select("league_id", "name", "season", "archived_at").
		From("previous_leagues").
		Where(qb.Eq("league_id", leagueID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return history.Archive{}, false, fmt.Errorf("build get previous league query: %w", err)
	}

	var row previousLeagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return history.Archive{}, false, nil
		}
		return history.Archive{}, false, fmt.Errorf("get previous league: %w", err)
	}

	rosters, err := r.listRosters(ctx, leagueID)
	if err != nil {
		return history.Archive{}, false, err
	}

	return history.Archive{
		LeagueID:   row.LeagueID,
		Name:       row.Name,
		Season:     row.Season,
		ArchivedAt: row.ArchivedAt,
		Rosters:    rosters,
	}, true, nil
}

func (r *ArchiveRepository) listRosters(ctx context.Context, leagueID string) ([]roster.Roster, error) {
	query, args, err := qb.Select(
		"league_id",
		"roster_id",
		"owner_id",
		"team_name",
		"username",
		"wins",
		"losses",
		"ties",
		"points_for",
		"points_against",
	).
		From("previous_rosters").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("roster_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list previous rosters query: %w", err)
	}

	var rows []previousRosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list previous rosters: %w", err)
	}

	out := make([]roster.Roster, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
