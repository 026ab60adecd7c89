package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/sleeper-league/internal/domain/draftpick"
	"github.com/riskibarqy/sleeper-league/internal/domain/history"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/matchup"
	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

type stubLeagueRepository struct {
	users      map[string]league.User
	userErr    error
	leagues    map[string]league.League
	leagueErr  error
	byUser     map[string][]league.League
	byUserErr  error
	members    map[string][]league.User
	membersErr error
}

func (s *stubLeagueRepository) GetUser(_ context.Context, username string) (league.User, bool, error) {
	if s.userErr != nil {
		return league.User{}, false, s.userErr
	}
	item, ok := s.users[username]
	return item, ok, nil
}

func (s *stubLeagueRepository) ListByUser(_ context.Context, userID string, _ int) ([]league.League, error) {
	if s.byUserErr != nil {
		return nil, s.byUserErr
	}
	return s.byUser[userID], nil
}

func (s *stubLeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	if s.leagueErr != nil {
		return league.League{}, false, s.leagueErr
	}
	item, ok := s.leagues[leagueID]
	return item, ok, nil
}

func (s *stubLeagueRepository) ListUsers(_ context.Context, leagueID string) ([]league.User, error) {
	if s.membersErr != nil {
		return nil, s.membersErr
	}
	return s.members[leagueID], nil
}

type stubStateReader struct {
	state league.State
	err   error
}

func (s stubStateReader) CurrentState(context.Context) (league.State, error) {
	return s.state, s.err
}

type stubRosterRepository struct {
	rosters map[string][]roster.Roster
	err     error
}

func (s *stubRosterRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.Roster, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rosters[leagueID], nil
}

type stubMatchupRepository struct {
	mu      sync.Mutex
	entries map[int][]matchup.Entry
	err     error
	weeks   []int
}

func (s *stubMatchupRepository) ListByLeagueWeek(_ context.Context, _ string, week int) ([]matchup.Entry, error) {
	s.mu.Lock()
	s.weeks = append(s.weeks, week)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.entries[week], nil
}

type stubPickRepository struct {
	picks []draftpick.TradedPick
	err   error
}

func (s stubPickRepository) ListTradedByLeague(context.Context, string) ([]draftpick.TradedPick, error) {
	return s.picks, s.err
}

type stubBracketRepository struct {
	brackets map[history.Bracket][]history.BracketMatch
	err      error
}

func (s stubBracketRepository) ListBracket(_ context.Context, _ string, bracket history.Bracket) ([]history.BracketMatch, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.brackets[bracket], nil
}

type stubArchiveRepository struct {
	archives map[string]history.Archive
	err      error
}

func (s stubArchiveRepository) GetByLeague(_ context.Context, leagueID string) (history.Archive, bool, error) {
	if s.err != nil {
		return history.Archive{}, false, s.err
	}
	item, ok := s.archives[leagueID]
	return item, ok, nil
}

type stubPlayerRepository struct {
	mu      sync.Mutex
	index   map[string]player.Player
	err     error
	failIDs map[string]bool
	calls   int
}

func (s *stubPlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := s.index[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) UpsertMany(_ context.Context, players []player.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	for _, item := range players {
		if s.failIDs[item.ID] {
			return errBatchRejected
		}
	}
	if s.index == nil {
		s.index = make(map[string]player.Player)
	}
	for _, item := range players {
		s.index[item.ID] = item
	}
	return nil
}

type stubPlayerSource struct {
	players []player.Player
	err     error
	block   chan struct{}
}

func (s stubPlayerSource) ListAll(ctx context.Context) ([]player.Player, error) {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.players, s.err
}
