package sleeper

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/draftpick"
	"github.com/riskibarqy/sleeper-league/internal/domain/history"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/matchup"
	"github.com/riskibarqy/sleeper-league/internal/domain/player"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

type userPayload struct {
	UserID      string        `json:"user_id"`
	Username    string        `json:"username"`
	DisplayName string        `json:"display_name"`
	Avatar      string        `json:"avatar"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

func (p userPayload) toDomain() league.User {
	out := league.User{
		ID:          p.UserID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Avatar:      p.Avatar,
	}
	if p.Metadata != nil {
		out.TeamName = strings.TrimSpace(p.Metadata.TeamName)
	}
	return out
}

type leaguePayload struct {
	LeagueID         string          `json:"league_id"`
	Name             string          `json:"name"`
	Sport            string          `json:"sport"`
	Season           string          `json:"season"`
	Status           string          `json:"status"`
	TotalRosters     int             `json:"total_rosters"`
	PreviousLeagueID *string         `json:"previous_league_id"`
	Avatar           string          `json:"avatar"`
	Settings         *leagueSettings `json:"settings"`
}

type leagueSettings struct {
	DraftRounds int `json:"draft_rounds"`
}

func (p leaguePayload) toDomain() league.League {
	out := league.League{
		ID:           p.LeagueID,
		Name:         p.Name,
		Sport:        p.Sport,
		Season:       parseSeason(p.Season),
		Status:       p.Status,
		TotalRosters: p.TotalRosters,
		Avatar:       p.Avatar,
	}
	if p.PreviousLeagueID != nil {
		out.PreviousLeagueID = strings.TrimSpace(*p.PreviousLeagueID)
	}
	if p.Settings != nil {
		out.DraftRounds = p.Settings.DraftRounds
	}
	return out
}

type statePayload struct {
	Week        int    `json:"week"`
	DisplayWeek int    `json:"display_week"`
	Season      string `json:"season"`
	SeasonType  string `json:"season_type"`
}

func (p statePayload) toDomain() league.State {
	return league.State{
		Season:      parseSeason(p.Season),
		SeasonType:  p.SeasonType,
		Week:        p.Week,
		DisplayWeek: p.DisplayWeek,
	}
}

type rosterPayload struct {
	RosterID int             `json:"roster_id"`
	LeagueID string          `json:"league_id"`
	OwnerID  *string         `json:"owner_id"`
	Players  []string        `json:"players"`
	Starters []string        `json:"starters"`
	Taxi     []string        `json:"taxi"`
	Settings *rosterSettings `json:"settings"`
}

type rosterSettings struct {
	Wins               int `json:"wins"`
	Losses             int `json:"losses"`
	Ties               int `json:"ties"`
	Fpts               int `json:"fpts"`
	FptsDecimal        int `json:"fpts_decimal"`
	FptsAgainst        int `json:"fpts_against"`
	FptsAgainstDecimal int `json:"fpts_against_decimal"`
}

func (p rosterPayload) toDomain() roster.Roster {
	out := roster.Roster{
		ID:       p.RosterID,
		LeagueID: p.LeagueID,
		Players:  p.Players,
		Starters: p.Starters,
		Taxi:     p.Taxi,
	}
	if p.OwnerID != nil {
		out.OwnerID = strings.TrimSpace(*p.OwnerID)
	}
	if p.Settings != nil {
		out.Settings = roster.Settings{
			Wins:               p.Settings.Wins,
			Losses:             p.Settings.Losses,
			Ties:               p.Settings.Ties,
			Fpts:               p.Settings.Fpts,
			FptsDecimal:        p.Settings.FptsDecimal,
			FptsAgainst:        p.Settings.FptsAgainst,
			FptsAgainstDecimal: p.Settings.FptsAgainstDecimal,
		}
	}
	return out
}

type matchupPayload struct {
	RosterID  int      `json:"roster_id"`
	MatchupID *int     `json:"matchup_id"`
	Points    float64  `json:"points"`
	Starters  []string `json:"starters"`
	Players   []string `json:"players"`
}

func (p matchupPayload) toDomain() matchup.Entry {
	out := matchup.Entry{
		RosterID: p.RosterID,
		Points:   p.Points,
		Starters: p.Starters,
		Players:  p.Players,
	}
	if p.MatchupID != nil {
		out.MatchupID = strconv.Itoa(*p.MatchupID)
	}
	return out
}

type tradedPickPayload struct {
	Season          string `json:"season"`
	Round           int    `json:"round"`
	RosterID        int    `json:"roster_id"`
	PreviousOwnerID int    `json:"previous_owner_id"`
	OwnerID         int    `json:"owner_id"`
}

func (p tradedPickPayload) toDomain() (draftpick.TradedPick, bool) {
	season := parseSeason(p.Season)
	if season <= 0 || p.Round <= 0 || p.RosterID <= 0 {
		return draftpick.TradedPick{}, false
	}
	return draftpick.TradedPick{
		Season:          season,
		Round:           p.Round,
		RosterID:        p.RosterID,
		PreviousOwnerID: p.PreviousOwnerID,
		OwnerID:         p.OwnerID,
	}, true
}

type bracketPayload struct {
	Round   int          `json:"r"`
	Match   int          `json:"m"`
	Team1   *int         `json:"t1"`
	Team2   *int         `json:"t2"`
	Winner  *int         `json:"w"`
	Loser   *int         `json:"l"`
	Team1Fr *bracketFeed `json:"t1_from"`
	Team2Fr *bracketFeed `json:"t2_from"`
	Place   int          `json:"p"`
}

type bracketFeed struct {
	Winner int `json:"w"`
	Loser  int `json:"l"`
}

func (p bracketPayload) toDomain() history.BracketMatch {
	return history.BracketMatch{
		Round:          p.Round,
		Match:          p.Match,
		Team1RosterID:  intValue(p.Team1),
		Team2RosterID:  intValue(p.Team2),
		WinnerRosterID: intValue(p.Winner),
		LoserRosterID:  intValue(p.Loser),
		Team1From:      p.Team1Fr.toDomain(),
		Team2From:      p.Team2Fr.toDomain(),
		Place:          p.Place,
	}
}

func (f *bracketFeed) toDomain() *history.Feed {
	if f == nil || (f.Winner == 0 && f.Loser == 0) {
		return nil
	}
	return &history.Feed{WinnerOfMatch: f.Winner, LoserOfMatch: f.Loser}
}

type playerPayload struct {
	PlayerID  string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Status    string `json:"status"`
	Active    bool   `json:"active"`
}

func (p playerPayload) toDomain(key string) player.Player {
	playerID := strings.TrimSpace(p.PlayerID)
	if playerID == "" {
		playerID = strings.TrimSpace(key)
	}
	return player.Player{
		ID:        playerID,
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Position:  strings.ToUpper(strings.TrimSpace(p.Position)),
		Team:      strings.ToUpper(strings.TrimSpace(p.Team)),
		Status:    p.Status,
		Active:    p.Active,
	}
}

func parseSeason(raw string) int {
	season, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || season <= 0 {
		return 0
	}
	return season
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
