package history

import "context"

// BracketRepository reads playoff brackets of a league.
type BracketRepository interface {
	ListBracket(ctx context.Context, leagueID string, bracket Bracket) ([]BracketMatch, error)
}

// ArchiveRepository reads stored season snapshots keyed by league id.
type ArchiveRepository interface {
	GetByLeague(ctx context.Context, leagueID string) (Archive, bool, error)
}
