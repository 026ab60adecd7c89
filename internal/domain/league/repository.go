package league

import "context"

// Repository describes league reads needed by use cases.
type Repository interface {
	GetUser(ctx context.Context, username string) (User, bool, error)
	ListByUser(ctx context.Context, userID string, season int) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	ListUsers(ctx context.Context, leagueID string) ([]User, error)
}

// StateReader exposes the current week of the configured sport.
type StateReader interface {
	CurrentState(ctx context.Context) (State, error)
}
