package endpoints

import (
	"net/http"

	"github.com/cairncms/cairn/pkg/identity"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/middleware"
)

// RegisterWhoamiEndpoint registers an introspection route describing the
// calling session
func RegisterWhoamiEndpoint(srv *server.Server, authn *middleware.SessionAuthenticator) {
	// GET /whoami - who does the server think is calling?
	srv.Router.Handle(
		"/whoami",
		authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := identity.Get(r.Context())
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"account":  id.Account,
				"session":  id.Session,
				"clientIp": id.RemoteIP.String(),
			})
		})),
	).Methods("GET")
}
