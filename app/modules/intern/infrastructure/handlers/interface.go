package internhandlers

import "net/http"

// Handlers serves the dashboard HTTP API.
type Handlers interface {
	HandleInternData(w http.ResponseWriter, r *http.Request)
	HandleLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleLeaderboardExport(w http.ResponseWriter, r *http.Request)
	HandleLeaderboardChart(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
}
