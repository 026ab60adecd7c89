package usecase

// Notices attached to best-effort results when an input could not be loaded.
const (
	NoticeLeagueUnavailable   = "League details are unavailable."
	NoticeLeagueNotFound      = "League not found."
	NoticeLeaguesUnavailable  = "Leagues are unavailable."
	NoticeRostersUnavailable  = "Rosters are unavailable."
	NoticeUsersUnavailable    = "League members are unavailable."
	NoticeMatchupsUnavailable = "Matchups are unavailable."
	NoticeWeekUnavailable     = "Current week is unavailable, showing week 1."
	NoticeRosterNotFound      = "Roster not found."
	NoticePlayersUnavailable  = "Player names are unavailable."
	NoticePicksUnavailable    = "Traded picks are unavailable."
	NoticeNoHistory           = "No history available for this league."
	NoticeNoHistoricalData    = "No historical data found."
	NoticeBracketUnavailable  = "Playoff brackets are unavailable."
)

type notices []string

func (n *notices) add(msg string) {
	for _, existing := range *n {
		if existing == msg {
			return
		}
	}
	*n = append(*n, msg)
}

func (n notices) list() []string {
	if len(n) == 0 {
		return []string{}
	}
	return append([]string(nil), n...)
}
