package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/users/{username}", handler.GetUser)
	mux.HandleFunc("GET /v1/users/{userID}/leagues", handler.ListUserLeagues)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/history", handler.GetLeagueHistory)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rosters/{rosterID}", handler.GetRoster)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rosters/{rosterID}/draft-picks", handler.ListRosterDraftPicks)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-players", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunPlayerSyncJob)))
}
