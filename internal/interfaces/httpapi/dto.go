package httpapi

import (
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/draftpick"
	"github.com/riskibarqy/sleeper-league/internal/domain/history"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/matchup"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

type getUserRequest struct {
	Username string `validate:"required,max=64"`
}

type listUserLeaguesRequest struct {
	UserID string `validate:"required,max=64"`
	Season int    `validate:"omitempty,min=2000,max=2100"`
}

type getLeagueRequest struct {
	LeagueID string `validate:"required,max=64"`
	Week     int    `validate:"omitempty,min=1,max=25"`
}

type leagueRequest struct {
	LeagueID string `validate:"required,max=64"`
}

type rosterRequest struct {
	LeagueID string `validate:"required,max=64"`
	RosterID int    `validate:"required,min=1"`
}

type userDTO struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
}

type leagueDTO struct {
	LeagueID         string `json:"leagueId"`
	Name             string `json:"name"`
	Sport            string `json:"sport,omitempty"`
	Season           int    `json:"season,omitempty"`
	Status           string `json:"status,omitempty"`
	TotalRosters     int    `json:"totalRosters,omitempty"`
	PreviousLeagueID string `json:"previousLeagueId,omitempty"`
}

type userLeaguesDTO struct {
	UserID  string      `json:"userId"`
	Season  int         `json:"season"`
	Leagues []leagueDTO `json:"leagues"`
	Notices []string    `json:"notices"`
}

type standingDTO struct {
	Rank          int     `json:"rank"`
	RosterID      int     `json:"rosterId"`
	TeamName      string  `json:"teamName"`
	Username      string  `json:"username"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type matchupSideDTO struct {
	RosterID int     `json:"rosterId"`
	TeamName string  `json:"teamName"`
	Points   float64 `json:"points"`
}

type matchupDTO struct {
	MatchupID string         `json:"matchupId"`
	Team1     matchupSideDTO `json:"team1"`
	Team2     matchupSideDTO `json:"team2"`
}

type leagueDetailsDTO struct {
	League    *leagueDTO    `json:"league"`
	Week      int           `json:"week"`
	Standings []standingDTO `json:"standings"`
	Matchups  []matchupDTO  `json:"matchups"`
	Notices   []string      `json:"notices"`
}

type playerRefDTO struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Team     string `json:"team,omitempty"`
}

type draftPickDTO struct {
	Season           int    `json:"season"`
	Round            int    `json:"round"`
	OriginalRosterID int    `json:"originalRosterId"`
	OriginalTeam     string `json:"originalTeam,omitempty"`
	Traded           bool   `json:"traded"`
	Label            string `json:"label"`
}

type draftWindowDTO struct {
	StartSeason int `json:"startSeason"`
	Seasons     int `json:"seasons"`
	Rounds      int `json:"rounds"`
}

type rosterDetailsDTO struct {
	LeagueID   string         `json:"leagueId"`
	RosterID   int            `json:"rosterId"`
	Found      bool           `json:"found"`
	TeamName   string         `json:"teamName,omitempty"`
	Username   string         `json:"username,omitempty"`
	Rank       int            `json:"rank,omitempty"`
	Wins       int            `json:"wins"`
	Losses     int            `json:"losses"`
	Ties       int            `json:"ties"`
	PointsFor  float64        `json:"pointsFor"`
	Starters   []playerRefDTO `json:"starters"`
	Bench      []playerRefDTO `json:"bench"`
	Taxi       []playerRefDTO `json:"taxi"`
	Window     draftWindowDTO `json:"draftWindow"`
	DraftPicks []draftPickDTO `json:"draftPicks"`
	Notices    []string       `json:"notices"`
}

type rosterDraftPicksDTO struct {
	LeagueID string         `json:"leagueId"`
	RosterID int            `json:"rosterId"`
	Window   draftWindowDTO `json:"draftWindow"`
	Picks    []draftPickDTO `json:"picks"`
	Labels   []string       `json:"labels"`
	Notices  []string       `json:"notices"`
}

type bracketMatchDTO struct {
	Round          int    `json:"round"`
	Match          int    `json:"match"`
	Team1RosterID  int    `json:"team1RosterId,omitempty"`
	Team1Name      string `json:"team1Name,omitempty"`
	Team2RosterID  int    `json:"team2RosterId,omitempty"`
	Team2Name      string `json:"team2Name,omitempty"`
	WinnerRosterID int    `json:"winnerRosterId,omitempty"`
	WinnerName     string `json:"winnerName,omitempty"`
	Place          int    `json:"place,omitempty"`
}

type leagueHistoryDTO struct {
	LeagueID         string            `json:"leagueId"`
	PreviousLeagueID string            `json:"previousLeagueId,omitempty"`
	PreviousSeason   int               `json:"previousSeason,omitempty"`
	Source           string            `json:"source,omitempty"`
	Standings        []standingDTO     `json:"standings"`
	WinnersBracket   []bracketMatchDTO `json:"winnersBracket"`
	LosersBracket    []bracketMatchDTO `json:"losersBracket"`
	Notices          []string          `json:"notices"`
}

type playerSyncDTO struct {
	RunID         string `json:"runId"`
	Fetched       int    `json:"fetched"`
	Upserted      int    `json:"upserted"`
	Batches       int    `json:"batches"`
	FailedBatches int    `json:"failedBatches"`
	StartedAt     string `json:"startedAt"`
	FinishedAt    string `json:"finishedAt"`
	DurationMs    int64  `json:"durationMs"`
}

func userToDTO(v league.User) userDTO {
	return userDTO{
		UserID:      v.ID,
		Username:    v.Username,
		DisplayName: v.DisplayName,
		Avatar:      v.Avatar,
	}
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		LeagueID:         v.ID,
		Name:             v.Name,
		Sport:            v.Sport,
		Season:           v.Season,
		Status:           v.Status,
		TotalRosters:     v.TotalRosters,
		PreviousLeagueID: v.PreviousLeagueID,
	}
}

func userLeaguesToDTO(v usecase.UserLeagues) userLeaguesDTO {
	items := make([]leagueDTO, 0, len(v.Leagues))
	for _, item := range v.Leagues {
		items = append(items, leagueToDTO(item))
	}
	return userLeaguesDTO{
		UserID:  v.UserID,
		Season:  v.Season,
		Leagues: items,
		Notices: noticesOrEmpty(v.Notices),
	}
}

func standingsToDTO(rosters []roster.Roster) []standingDTO {
	out := make([]standingDTO, 0, len(rosters))
	for _, item := range rosters {
		out = append(out, standingDTO{
			Rank:          item.Rank,
			RosterID:      item.ID,
			TeamName:      item.TeamName,
			Username:      item.Username,
			Wins:          item.Settings.Wins,
			Losses:        item.Settings.Losses,
			Ties:          item.Settings.Ties,
			PointsFor:     item.Settings.PointsFor(),
			PointsAgainst: item.Settings.PointsAgainst(),
		})
	}
	return out
}

func matchupsToDTO(pairs []matchup.Pair) []matchupDTO {
	out := make([]matchupDTO, 0, len(pairs))
	for _, item := range pairs {
		out = append(out, matchupDTO{
			MatchupID: item.MatchupID,
			Team1:     matchupSideDTO{RosterID: item.Team1.RosterID, TeamName: item.Team1.TeamName, Points: item.Team1.Points},
			Team2:     matchupSideDTO{RosterID: item.Team2.RosterID, TeamName: item.Team2.TeamName, Points: item.Team2.Points},
		})
	}
	return out
}

func leagueDetailsToDTO(v usecase.LeagueDetails) leagueDetailsDTO {
	out := leagueDetailsDTO{
		Week:      v.Week,
		Standings: standingsToDTO(v.Standings),
		Matchups:  matchupsToDTO(v.Matchups),
		Notices:   noticesOrEmpty(v.Notices),
	}
	if v.LeagueFound {
		item := leagueToDTO(v.League)
		out.League = &item
	}
	return out
}

func playerRefsToDTO(refs []usecase.PlayerRef) []playerRefDTO {
	out := make([]playerRefDTO, 0, len(refs))
	for _, item := range refs {
		out = append(out, playerRefDTO{
			PlayerID: item.ID,
			Name:     item.Name,
			Position: item.Position,
			Team:     item.Team,
		})
	}
	return out
}

func draftPickSlotsToDTO(slots []draftpick.Slot) []draftPickDTO {
	out := make([]draftPickDTO, 0, len(slots))
	for _, item := range slots {
		out = append(out, draftPickDTO{
			Season:           item.Season,
			Round:            item.Round,
			OriginalRosterID: item.OriginalRosterID,
			OriginalTeam:     item.OriginalTeam,
			Traded:           item.Traded(),
			Label:            item.Label,
		})
	}
	return out
}

func windowToDTO(w draftpick.Window) draftWindowDTO {
	return draftWindowDTO{StartSeason: w.StartSeason, Seasons: w.Seasons, Rounds: w.Rounds}
}

func rosterDetailsToDTO(v usecase.RosterDetails) rosterDetailsDTO {
	return rosterDetailsDTO{
		LeagueID:   v.LeagueID,
		RosterID:   v.RosterID,
		Found:      v.Found,
		TeamName:   v.TeamName,
		Username:   v.Username,
		Rank:       v.Rank,
		Wins:       v.Record.Wins,
		Losses:     v.Record.Losses,
		Ties:       v.Record.Ties,
		PointsFor:  v.Record.PointsFor(),
		Starters:   playerRefsToDTO(v.Starters),
		Bench:      playerRefsToDTO(v.Bench),
		Taxi:       playerRefsToDTO(v.Taxi),
		Window:     windowToDTO(v.Window),
		DraftPicks: draftPickSlotsToDTO(v.DraftPicks),
		Notices:    noticesOrEmpty(v.Notices),
	}
}

func draftPicksToDTO(v usecase.RosterDraftPicks) rosterDraftPicksDTO {
	return rosterDraftPicksDTO{
		LeagueID: v.LeagueID,
		RosterID: v.RosterID,
		Window:   windowToDTO(v.Window),
		Picks:    draftPickSlotsToDTO(v.Picks),
		Labels:   draftpick.Labels(v.Picks),
		Notices:  noticesOrEmpty(v.Notices),
	}
}

func bracketToDTO(matches []history.BracketMatch) []bracketMatchDTO {
	out := make([]bracketMatchDTO, 0, len(matches))
	for _, item := range matches {
		out = append(out, bracketMatchDTO{
			Round:          item.Round,
			Match:          item.Match,
			Team1RosterID:  item.Team1RosterID,
			Team1Name:      item.Team1Name,
			Team2RosterID:  item.Team2RosterID,
			Team2Name:      item.Team2Name,
			WinnerRosterID: item.WinnerRosterID,
			WinnerName:     item.WinnerName,
			Place:          item.Place,
		})
	}
	return out
}

func historyToDTO(leagueID string, v usecase.LeagueHistory) leagueHistoryDTO {
	return leagueHistoryDTO{
		LeagueID:         leagueID,
		PreviousLeagueID: v.PreviousLeagueID,
		PreviousSeason:   v.PreviousSeason,
		Source:           v.Source,
		Standings:        standingsToDTO(v.Standings),
		WinnersBracket:   bracketToDTO(v.WinnersBracket),
		LosersBracket:    bracketToDTO(v.LosersBracket),
		Notices:          noticesOrEmpty(v.Notices),
	}
}

func playerSyncToDTO(v usecase.PlayerSyncResult) playerSyncDTO {
	return playerSyncDTO{
		RunID:         v.RunID,
		Fetched:       v.Fetched,
		Upserted:      v.Upserted,
		Batches:       v.Batches,
		FailedBatches: v.FailedBatches,
		StartedAt:     v.StartedAt.Format(time.RFC3339),
		FinishedAt:    v.FinishedAt.Format(time.RFC3339),
		DurationMs:    v.DurationMs(),
	}
}

func noticesOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
