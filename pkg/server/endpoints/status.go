package endpoints

import (
	"net/http"

	"github.com/cairncms/cairn/pkg/server"
)

// RegisterStatusEndpoints registers unauthenticated service and health
// routes
func RegisterStatusEndpoints(srv *server.Server) {
	router := srv.Router

	// GET / - service banner
	router.HandleFunc(
		"/",
		func(w http.ResponseWriter, r *http.Request) {
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"service": "cairn",
				"status":  "ok",
			})
		},
	).Methods("GET")

	// GET /health - database reachability
	router.HandleFunc(
		"/health",
		func(w http.ResponseWriter, r *http.Request) {
			if err := srv.Health.Ping(r.Context()); err != nil {
				respondWithError(w, http.StatusServiceUnavailable, "database unreachable")
				return
			}
			respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
		},
	).Methods("GET")
}
