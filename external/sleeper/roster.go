package sleeper

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/draftpick"
	"github.com/riskibarqy/sleeper-league/internal/domain/history"
	"github.com/riskibarqy/sleeper-league/internal/domain/matchup"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

func (c *Client) ListByLeague(ctx context.Context, leagueID string) ([]roster.Roster, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}

	var payload []rosterPayload
	if err := c.doJSON(ctx, "/league/"+escape(leagueID)+"/rosters", &payload); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch rosters league_id=%s: %w", leagueID, err)
	}

	out := make([]roster.Roster, 0, len(payload))
	for _, item := range payload {
		mapped := item.toDomain()
		if mapped.LeagueID == "" {
			mapped.LeagueID = leagueID
		}
		out = append(out, mapped)
	}
	return out, nil
}

func (c *Client) ListByLeagueWeek(ctx context.Context, leagueID string, week int) ([]matchup.Entry, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}
	if week <= 0 {
		return nil, fmt.Errorf("week must be greater than zero")
	}

	var payload []matchupPayload
	if err := c.doJSON(ctx, "/league/"+escape(leagueID)+"/matchups/"+itoa(week), &payload); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch matchups league_id=%s week=%d: %w", leagueID, week, err)
	}

	out := make([]matchup.Entry, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) ListTradedByLeague(ctx context.Context, leagueID string) ([]draftpick.TradedPick, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}

	var payload []tradedPickPayload
	if err := c.doJSON(ctx, "/league/"+escape(leagueID)+"/traded_picks", &payload); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch traded picks league_id=%s: %w", leagueID, err)
	}

	out := make([]draftpick.TradedPick, 0, len(payload))
	for _, item := range payload {
		pick, ok := item.toDomain()
		if !ok {
			c.logger.WarnContext(ctx, "skip malformed traded pick", "league_id", leagueID, "season", item.Season, "round", item.Round, "roster_id", item.RosterID)
			continue
		}
		out = append(out, pick)
	}
	return out, nil
}

func (c *Client) ListBracket(ctx context.Context, leagueID string, bracket history.Bracket) ([]history.BracketMatch, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}
	if err := bracket.Validate(); err != nil {
		return nil, err
	}

	var payload []bracketPayload
	path := "/league/" + escape(leagueID) + "/" + string(bracket) + "_bracket"
	if err := c.doJSON(ctx, path, &payload); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch %s bracket league_id=%s: %w", bracket, leagueID, err)
	}

	out := make([]history.BracketMatch, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}
