package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/instances", handler.ListInstances)
	mux.HandleFunc("GET /v1/instances/{chatID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/instances/{chatID}/captains", handler.GetCaptainRatings)
	mux.HandleFunc("GET /v1/instances/{chatID}/defenders", handler.GetDefenderCounts)
	mux.HandleFunc("GET /v1/instances/{chatID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/instances/{chatID}/events", handler.ListEventsByMatch)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recompute", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeJob)))
	mux.Handle("POST /v1/internal/export/standings-image", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ExportStandingsImage)))
}
