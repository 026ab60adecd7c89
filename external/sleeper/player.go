package sleeper

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/sleeper-league/internal/domain/player"
)

// ListAll downloads the player directory of the configured sport. Placeholder
// and incomplete records are skipped.
func (c *Client) ListAll(ctx context.Context) ([]player.Player, error) {
	var payload map[string]playerPayload
	if err := c.doJSON(ctx, "/players/"+escape(c.sport), &payload); err != nil {
		return nil, fmt.Errorf("fetch players sport=%s: %w", c.sport, err)
	}

	out := make([]player.Player, 0, len(payload))
	skipped := 0
	for key, item := range payload {
		mapped := item.toDomain(key)
		if err := mapped.Validate(); err != nil {
			skipped++
			continue
		}
		out = append(out, mapped)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	c.logger.InfoContext(ctx, "sleeper players fetched", "sport", c.sport, "players", len(out), "skipped", skipped)
	return out, nil
}
