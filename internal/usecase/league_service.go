package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/matchup"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

const defaultWeek = 1

type LeagueServiceConfig struct {
	DefaultSeason int
}

type LeagueService struct {
	leagueRepo    league.Repository
	stateReader   league.StateReader
	rosterRepo    roster.Repository
	matchupRepo   matchup.Repository
	defaultSeason int
	logger        *logging.Logger
}

// UserLeagues is the league list of one user for a season.
type UserLeagues struct {
	UserID  string
	Season  int
	Leagues []league.League
	Notices []string
}

// LeagueDetails is the standings and weekly matchups view of a league.
type LeagueDetails struct {
	League      league.League
	LeagueFound bool
	Week        int
	Standings   []roster.Roster
	Matchups    []matchup.Pair
	Notices     []string
}

func NewLeagueService(
	leagueRepo league.Repository,
	stateReader league.StateReader,
	rosterRepo roster.Repository,
	matchupRepo matchup.Repository,
	cfg LeagueServiceConfig,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		leagueRepo:    leagueRepo,
		stateReader:   stateReader,
		rosterRepo:    rosterRepo,
		matchupRepo:   matchupRepo,
		defaultSeason: cfg.DefaultSeason,
		logger:        logger,
	}
}

func (s *LeagueService) FindUser(ctx context.Context, username string) (league.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.FindUser")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return league.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	user, exists, err := s.leagueRepo.GetUser(ctx, username)
	if err != nil {
		s.logger.WarnContext(ctx, "lookup user failed", "username", username, "error", err)
		return league.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, username)
	}
	if !exists {
		return league.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, username)
	}

	return user, nil
}

func (s *LeagueService) ListUserLeagues(ctx context.Context, userID string, season int) (UserLeagues, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListUserLeagues")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UserLeagues{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if season < 0 {
		return UserLeagues{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if season == 0 {
		season = s.defaultSeason
	}

	out := UserLeagues{UserID: userID, Season: season, Leagues: []league.League{}}
	var msgs notices

	leagues, err := s.leagueRepo.ListByUser(ctx, userID, season)
	if err != nil {
		s.logger.WarnContext(ctx, "list user leagues failed", "user_id", userID, "season", season, "error", err)
		msgs.add(NoticeLeaguesUnavailable)
	} else if leagues != nil {
		out.Leagues = leagues
	}

	out.Notices = msgs.list()
	return out, nil
}

// GetDetails builds standings and the matchups of week. A zero week means the
// current week of the sport, or week 1 when that is unknown.
func (s *LeagueService) GetDetails(ctx context.Context, leagueID string, week int) (LeagueDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetDetails")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueDetails{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if week < 0 {
		return LeagueDetails{}, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}

	var (
		item        league.League
		leagueFound bool
		leagueErr   error
		rosters     []roster.Roster
		rostersErr  error
		users       []league.User
		usersErr    error
		state       league.State
		stateErr    error
	)

	var wg conc.WaitGroup
	wg.Go(func() { item, leagueFound, leagueErr = s.leagueRepo.GetByID(ctx, leagueID) })
	wg.Go(func() { rosters, rostersErr = s.rosterRepo.ListByLeague(ctx, leagueID) })
	wg.Go(func() { users, usersErr = s.leagueRepo.ListUsers(ctx, leagueID) })
	if week == 0 {
		wg.Go(func() { state, stateErr = s.stateReader.CurrentState(ctx) })
	}
	wg.Wait()

	var msgs notices
	switch {
	case leagueErr != nil:
		s.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", leagueErr)
		msgs.add(NoticeLeagueUnavailable)
	case !leagueFound:
		msgs.add(NoticeLeagueNotFound)
	}
	if rostersErr != nil {
		s.logger.WarnContext(ctx, "list rosters failed", "league_id", leagueID, "error", rostersErr)
		msgs.add(NoticeRostersUnavailable)
		rosters = nil
	}
	if usersErr != nil {
		s.logger.WarnContext(ctx, "list league users failed", "league_id", leagueID, "error", usersErr)
		msgs.add(NoticeUsersUnavailable)
		users = nil
	}

	if week == 0 {
		week = state.Week
		if stateErr != nil {
			s.logger.WarnContext(ctx, "get sport state failed", "error", stateErr)
			msgs.add(NoticeWeekUnavailable)
		}
		if week <= 0 {
			week = defaultWeek
		}
	}

	standings := roster.Rank(roster.Enrich(rosters, users))

	entries, err := s.matchupRepo.ListByLeagueWeek(ctx, leagueID, week)
	if err != nil {
		s.logger.WarnContext(ctx, "list matchups failed", "league_id", leagueID, "week", week, "error", err)
		msgs.add(NoticeMatchupsUnavailable)
		entries = nil
	}

	return LeagueDetails{
		League:      item,
		LeagueFound: leagueFound && leagueErr == nil,
		Week:        week,
		Standings:   standings,
		Matchups:    matchup.Pairs(standings, entries),
		Notices:     msgs.list(),
	}, nil
}
