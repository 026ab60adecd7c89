package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/sleeper-league/internal/domain/draftpick"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

const leagueStatusPreDraft = "pre_draft"

// DraftPickConfig sets the future draft window. A zero StartSeason follows the
// league: its own season before the draft runs, the next season afterwards.
// FallbackSeason stands in when the league itself cannot be loaded.
type DraftPickConfig struct {
	StartSeason    int
	Seasons        int
	Rounds         int
	FallbackSeason int
}

type RosterService struct {
	leagueRepo league.Repository
	rosterRepo roster.Repository
	pickRepo   draftpick.Repository
	playerRepo player.Repository
	picks      DraftPickConfig
	logger     *logging.Logger
}

// PlayerRef is a roster slot rendered for display. Name falls back to the id
// when the player is not in the directory.
type PlayerRef struct {
	ID       string
	Name     string
	Position string
	Team     string
	Known    bool
}

type RosterDetails struct {
	LeagueID   string
	RosterID   int
	Found      bool
	TeamName   string
	Username   string
	Rank       int
	Record     roster.Settings
	Starters   []PlayerRef
	Bench      []PlayerRef
	Taxi       []PlayerRef
	Window     draftpick.Window
	DraftPicks []draftpick.Slot
	Notices    []string
}

type RosterDraftPicks struct {
	LeagueID string
	RosterID int
	Window   draftpick.Window
	Picks    []draftpick.Slot
	Notices  []string
}

func NewRosterService(
	leagueRepo league.Repository,
	rosterRepo roster.Repository,
	pickRepo draftpick.Repository,
	playerRepo player.Repository,
	picks DraftPickConfig,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	if picks.Seasons < 1 {
		picks.Seasons = 3
	}
	if picks.Rounds < 1 {
		picks.Rounds = 4
	}
	return &RosterService{
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
		pickRepo:   pickRepo,
		playerRepo: playerRepo,
		picks:      picks,
		logger:     logger,
	}
}

// leagueSnapshot is the shared league data a roster view is built from.
type leagueSnapshot struct {
	league      league.League
	leagueFound bool
	rosters     []roster.Roster
	picks       []draftpick.TradedPick
}

func (s *RosterService) load(ctx context.Context, leagueID string, withUsers bool, msgs *notices) leagueSnapshot {
	var (
		out        leagueSnapshot
		leagueErr  error
		rosters    []roster.Roster
		rostersErr error
		users      []league.User
		usersErr   error
		picksErr   error
	)

	var wg conc.WaitGroup
	wg.Go(func() { out.league, out.leagueFound, leagueErr = s.leagueRepo.GetByID(ctx, leagueID) })
	wg.Go(func() { rosters, rostersErr = s.rosterRepo.ListByLeague(ctx, leagueID) })
	wg.Go(func() { out.picks, picksErr = s.pickRepo.ListTradedByLeague(ctx, leagueID) })
	wg.Go(func() { users, usersErr = s.leagueRepo.ListUsers(ctx, leagueID) })
	wg.Wait()

	if leagueErr != nil {
		s.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", leagueErr)
		msgs.add(NoticeLeagueUnavailable)
		out.leagueFound = false
	}
	if rostersErr != nil {
		s.logger.WarnContext(ctx, "list rosters failed", "league_id", leagueID, "error", rostersErr)
		msgs.add(NoticeRostersUnavailable)
		rosters = nil
	}
	if usersErr != nil {
		s.logger.WarnContext(ctx, "list league users failed", "league_id", leagueID, "error", usersErr)
		if withUsers {
			msgs.add(NoticeUsersUnavailable)
		}
		users = nil
	}
	if picksErr != nil {
		s.logger.WarnContext(ctx, "list traded picks failed", "league_id", leagueID, "error", picksErr)
		msgs.add(NoticePicksUnavailable)
		out.picks = nil
	}

	out.rosters = roster.Rank(roster.Enrich(rosters, users))
	return out
}

func (s *RosterService) GetDetails(ctx context.Context, leagueID string, rosterID int) (RosterDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetDetails")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return RosterDetails{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if rosterID <= 0 {
		return RosterDetails{}, fmt.Errorf("%w: roster id must be positive", ErrInvalidInput)
	}

	var msgs notices
	snapshot := s.load(ctx, leagueID, true, &msgs)
	window := s.window(snapshot)
	out := RosterDetails{
		LeagueID:   leagueID,
		RosterID:   rosterID,
		Window:     window,
		Starters:   []PlayerRef{},
		Bench:      []PlayerRef{},
		Taxi:       []PlayerRef{},
		DraftPicks: []draftpick.Slot{},
	}

	item, found := roster.FindByID(snapshot.rosters, rosterID)
	if !found {
		msgs.add(NoticeRosterNotFound)
		out.Notices = msgs.list()
		return out, nil
	}

	sections := roster.Split(item)
	directory := s.lookupPlayers(ctx, sections.PlayerIDs(), &msgs)

	out.Found = true
	out.TeamName = item.TeamName
	out.Username = item.Username
	out.Rank = item.Rank
	out.Record = item.Settings
	out.Starters = playerRefs(sections.Starters, directory)
	out.Bench = playerRefs(sections.Bench, directory)
	out.Taxi = playerRefs(sections.Taxi, directory)
	out.DraftPicks = draftpick.Resolve(snapshot.picks, rosterID, window, roster.NamesByID(snapshot.rosters))
	out.Notices = msgs.list()
	return out, nil
}

func (s *RosterService) ListDraftPicks(ctx context.Context, leagueID string, rosterID int) (RosterDraftPicks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListDraftPicks")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return RosterDraftPicks{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if rosterID <= 0 {
		return RosterDraftPicks{}, fmt.Errorf("%w: roster id must be positive", ErrInvalidInput)
	}

	var msgs notices
	snapshot := s.load(ctx, leagueID, false, &msgs)
	window := s.window(snapshot)
	out := RosterDraftPicks{
		LeagueID: leagueID,
		RosterID: rosterID,
		Window:   window,
		Picks:    []draftpick.Slot{},
	}

	if len(snapshot.rosters) > 0 {
		if _, found := roster.FindByID(snapshot.rosters, rosterID); !found {
			msgs.add(NoticeRosterNotFound)
			out.Notices = msgs.list()
			return out, nil
		}
	}

	out.Picks = draftpick.Resolve(snapshot.picks, rosterID, window, roster.NamesByID(snapshot.rosters))
	out.Notices = msgs.list()
	return out, nil
}

func (s *RosterService) window(snapshot leagueSnapshot) draftpick.Window {
	out := draftpick.Window{
		StartSeason: s.picks.StartSeason,
		Seasons:     s.picks.Seasons,
		Rounds:      s.picks.Rounds,
	}
	if snapshot.leagueFound && snapshot.league.DraftRounds > 0 {
		out.Rounds = snapshot.league.DraftRounds
	}
	if out.StartSeason > 0 {
		return out
	}

	switch {
	case snapshot.leagueFound && snapshot.league.Season > 0 && snapshot.league.Status == leagueStatusPreDraft:
		out.StartSeason = snapshot.league.Season
	case snapshot.leagueFound && snapshot.league.Season > 0:
		out.StartSeason = snapshot.league.Season + 1
	default:
		out.StartSeason = s.picks.FallbackSeason + 1
	}
	return out
}

func (s *RosterService) lookupPlayers(ctx context.Context, playerIDs []string, msgs *notices) map[string]player.Player {
	if len(playerIDs) == 0 {
		return nil
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		s.logger.WarnContext(ctx, "lookup players failed", "count", len(playerIDs), "error", err)
		msgs.add(NoticePlayersUnavailable)
		return nil
	}
	return player.IndexByID(players)
}

func playerRefs(playerIDs []string, directory map[string]player.Player) []PlayerRef {
	out := make([]PlayerRef, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		item, ok := directory[playerID]
		if !ok {
			out = append(out, PlayerRef{ID: playerID, Name: playerID})
			continue
		}
		out = append(out, PlayerRef{
			ID:       playerID,
			Name:     item.DisplayName(),
			Position: item.Position,
			Team:     item.Team,
			Known:    true,
		})
	}
	return out
}
