package sleeper

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
)

func (c *Client) GetUser(ctx context.Context, username string) (league.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return league.User{}, false, fmt.Errorf("username is required")
	}

	var payload *userPayload
	if err := c.doJSON(ctx, "/user/"+escape(username), &payload); err != nil {
		if IsNotFound(err) {
			return league.User{}, false, nil
		}
		return league.User{}, false, fmt.Errorf("fetch user username=%s: %w", username, err)
	}
	if payload == nil || strings.TrimSpace(payload.UserID) == "" {
		return league.User{}, false, nil
	}

	return payload.toDomain(), true, nil
}

func (c *Client) ListByUser(ctx context.Context, userID string, season int) ([]league.League, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}

	var payload []leaguePayload
	path := "/user/" + escape(userID) + "/leagues/" + escape(c.sport) + "/" + itoa(season)
	if err := c.doJSON(ctx, path, &payload); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch leagues user_id=%s season=%d: %w", userID, season, err)
	}

	out := make([]league.League, 0, len(payload))
	skipped := 0
	for _, item := range payload {
		mapped := item.toDomain()
		if err := mapped.Validate(); err != nil {
			skipped++
			continue
		}
		out = append(out, mapped)
	}
	if skipped > 0 {
		c.logger.WarnContext(ctx, "sleeper leagues skipped", "user_id", userID, "season", season, "skipped", skipped)
	}
	return out, nil
}

func (c *Client) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, false, fmt.Errorf("league id is required")
	}

	var payload *leaguePayload
	if err := c.doJSON(ctx, "/league/"+escape(leagueID), &payload); err != nil {
		if IsNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("fetch league league_id=%s: %w", leagueID, err)
	}
	if payload == nil || strings.TrimSpace(payload.LeagueID) == "" {
		return league.League{}, false, nil
	}

	return payload.toDomain(), true, nil
}

func (c *Client) ListUsers(ctx context.Context, leagueID string) ([]league.User, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}

	var payload []userPayload
	if err := c.doJSON(ctx, "/league/"+escape(leagueID)+"/users", &payload); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch league users league_id=%s: %w", leagueID, err)
	}

	out := make([]league.User, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) CurrentState(ctx context.Context) (league.State, error) {
	var payload statePayload
	if err := c.doJSON(ctx, "/state/"+escape(c.sport), &payload); err != nil {
		return league.State{}, fmt.Errorf("fetch sport state sport=%s: %w", c.sport, err)
	}
	return payload.toDomain(), nil
}
