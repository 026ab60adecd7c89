package player

import "context"

// Repository resolves player ids to directory records. Unknown ids are
// omitted from the result rather than reported as errors.
type Repository interface {
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	UpsertMany(ctx context.Context, players []Player) error
}

// Source lists the full upstream player directory.
type Source interface {
	ListAll(ctx context.Context) ([]Player, error)
}
