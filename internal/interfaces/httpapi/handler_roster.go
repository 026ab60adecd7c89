package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	req, err := h.rosterRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.rosterService.GetDetails(ctx, req.LeagueID, req.RosterID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster details failed", "league_id", req.LeagueID, "roster_id", req.RosterID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterDetailsToDTO(details))
}

func (h *Handler) ListRosterDraftPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRosterDraftPicks")
	defer span.End()

	req, err := h.rosterRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.rosterService.ListDraftPicks(ctx, req.LeagueID, req.RosterID)
	if err != nil {
		h.logger.WarnContext(ctx, "list draft picks failed", "league_id", req.LeagueID, "roster_id", req.RosterID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftPicksToDTO(result))
}

func (h *Handler) rosterRequest(r *http.Request) (rosterRequest, error) {
	rosterID, err := pathInt(r, "rosterID")
	if err != nil {
		return rosterRequest{}, err
	}
	req := rosterRequest{LeagueID: strings.TrimSpace(r.PathValue("leagueID")), RosterID: rosterID}
	if err := h.validateRequest(r.Context(), req); err != nil {
		return rosterRequest{}, err
	}
	return req, nil
}
