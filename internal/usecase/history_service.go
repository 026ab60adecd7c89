package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/sleeper-league/internal/domain/history"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

const (
	HistorySourceSleeper = "sleeper"
	HistorySourceArchive = "archive"
)

type HistoryService struct {
	leagueRepo  league.Repository
	rosterRepo  roster.Repository
	bracketRepo history.BracketRepository
	archiveRepo history.ArchiveRepository
	logger      *logging.Logger
}

// LeagueHistory is the final standings and playoff brackets of the season
// before a league.
type LeagueHistory struct {
	League           league.League
	PreviousLeagueID string
	PreviousSeason   int
	Source           string
	Standings        []roster.Roster
	WinnersBracket   []history.BracketMatch
	LosersBracket    []history.BracketMatch
	Notices          []string
}

// NewHistoryService wires the history reads. archiveRepo may be nil when no
// archive store is configured.
func NewHistoryService(
	leagueRepo league.Repository,
	rosterRepo roster.Repository,
	bracketRepo history.BracketRepository,
	archiveRepo history.ArchiveRepository,
	logger *logging.Logger,
) *HistoryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HistoryService{
		leagueRepo:  leagueRepo,
		rosterRepo:  rosterRepo,
		bracketRepo: bracketRepo,
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

func (s *HistoryService) GetHistory(ctx context.Context, leagueID string) (LeagueHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.GetHistory")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueHistory{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	out := LeagueHistory{
		Standings:      []roster.Roster{},
		WinnersBracket: []history.BracketMatch{},
		LosersBracket:  []history.BracketMatch{},
	}
	var msgs notices

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		msgs.add(NoticeLeagueUnavailable)
	case !exists:
		msgs.add(NoticeLeagueNotFound)
	}
	out.League = item

	if !item.HasPrevious() {
		// Leagues without a Sleeper predecessor may still have a stored season.
		if archived, ok := s.loadArchive(ctx, leagueID); ok {
			out.Source = HistorySourceArchive
			out.PreviousSeason = archived.Season
			out.Standings = roster.Rank(archived.Rosters)
			out.Notices = msgs.list()
			return out, nil
		}
		msgs.add(NoticeNoHistory)
		out.Notices = msgs.list()
		return out, nil
	}
	previousID := strings.TrimSpace(item.PreviousLeagueID)
	out.PreviousLeagueID = previousID

	var (
		previous      league.League
		previousFound bool
		previousErr   error
		rosters       []roster.Roster
		rostersErr    error
		users         []league.User
		usersErr      error
		winners       []history.BracketMatch
		winnersErr    error
		losers        []history.BracketMatch
		losersErr     error
	)

	var wg conc.WaitGroup
	wg.Go(func() { previous, previousFound, previousErr = s.leagueRepo.GetByID(ctx, previousID) })
	wg.Go(func() { rosters, rostersErr = s.rosterRepo.ListByLeague(ctx, previousID) })
	wg.Go(func() { users, usersErr = s.leagueRepo.ListUsers(ctx, previousID) })
	wg.Go(func() { winners, winnersErr = s.bracketRepo.ListBracket(ctx, previousID, history.BracketWinners) })
	wg.Go(func() { losers, losersErr = s.bracketRepo.ListBracket(ctx, previousID, history.BracketLosers) })
	wg.Wait()

	if previousErr != nil {
		s.logger.WarnContext(ctx, "get previous league failed", "league_id", previousID, "error", previousErr)
	} else if previousFound {
		out.PreviousSeason = previous.Season
	}
	if rostersErr != nil {
		s.logger.WarnContext(ctx, "list previous rosters failed", "league_id", previousID, "error", rostersErr)
		rosters = nil
	}
	if usersErr != nil {
		s.logger.WarnContext(ctx, "list previous league users failed", "league_id", previousID, "error", usersErr)
		msgs.add(NoticeUsersUnavailable)
		users = nil
	}

	if len(rosters) > 0 {
		out.Source = HistorySourceSleeper
		out.Standings = roster.Rank(roster.Enrich(rosters, users))
	} else if archived, ok := s.loadArchive(ctx, previousID); ok {
		out.Source = HistorySourceArchive
		if out.PreviousSeason == 0 {
			out.PreviousSeason = archived.Season
		}
		out.Standings = roster.Rank(archived.Rosters)
	} else {
		msgs.add(NoticeNoHistoricalData)
		out.Notices = msgs.list()
		return out, nil
	}

	names := roster.NamesByID(out.Standings)
	if winnersErr != nil || losersErr != nil {
		s.logger.WarnContext(ctx, "list previous brackets failed", "league_id", previousID, "winners_error", winnersErr, "losers_error", losersErr)
		msgs.add(NoticeBracketUnavailable)
	}
	if winnersErr == nil {
		out.WinnersBracket = history.NameTeams(winners, names)
	}
	if losersErr == nil {
		out.LosersBracket = history.NameTeams(losers, names)
	}

	out.Notices = msgs.list()
	return out, nil
}

func (s *HistoryService) loadArchive(ctx context.Context, leagueID string) (history.Archive, bool) {
	if s.archiveRepo == nil {
		return history.Archive{}, false
	}

	archived, exists, err := s.archiveRepo.GetByLeague(ctx, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "get league archive failed", "league_id", leagueID, "error", err)
		return history.Archive{}, false
	}
	if !exists || len(archived.Rosters) == 0 {
		return history.Archive{}, false
	}

	for i := range archived.Rosters {
		if strings.TrimSpace(archived.Rosters[i].TeamName) == "" {
			archived.Rosters[i].TeamName = roster.FallbackTeamName(archived.Rosters[i].ID)
		}
		if strings.TrimSpace(archived.Rosters[i].Username) == "" {
			archived.Rosters[i].Username = roster.UnknownUser
		}
	}
	return archived, true
}
