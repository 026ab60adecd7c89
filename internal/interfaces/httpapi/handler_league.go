package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	req := getUserRequest{Username: strings.TrimSpace(r.PathValue("username"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	user, err := h.leagueService.FindUser(ctx, req.Username)
	if err != nil {
		h.logger.WarnContext(ctx, "find user failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(user))
}

func (h *Handler) ListUserLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserLeagues")
	defer span.End()

	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := listUserLeaguesRequest{UserID: strings.TrimSpace(r.PathValue("userID")), Season: season}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.leagueService.ListUserLeagues(ctx, req.UserID, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "list user leagues failed", "user_id", req.UserID, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userLeaguesToDTO(result))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	week, err := queryInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := getLeagueRequest{LeagueID: strings.TrimSpace(r.PathValue("leagueID")), Week: week}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.leagueService.GetDetails(ctx, req.LeagueID, req.Week)
	if err != nil {
		h.logger.WarnContext(ctx, "get league details failed", "league_id", req.LeagueID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueDetailsToDTO(details))
}

func (h *Handler) GetLeagueHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueHistory")
	defer span.End()

	req := leagueRequest{LeagueID: strings.TrimSpace(r.PathValue("leagueID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.historyService.GetHistory(ctx, req.LeagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league history failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, historyToDTO(req.LeagueID, result))
}
