package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cairncms/cairn/pkg/access"
	"github.com/cairncms/cairn/pkg/audit"
	"github.com/cairncms/cairn/pkg/identity"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/middleware"
)

// RegisterAuthenticationEndpoints registers sign-in, session confirmation,
// registration and activation routes
func RegisterAuthenticationEndpoints(srv *server.Server, authn *middleware.SessionAuthenticator) {
	router := srv.Router
	manager := srv.Manager
	registrar := srv.Registrar

	// POST /authentication/authenticate - local credentials, returns a session
	router.HandleFunc(
		"/authentication/authenticate",
		func(w http.ResponseWriter, r *http.Request) {
			var creds access.Credentials
			if !decodeJSON(w, r, &creds) {
				return
			}

			clientIP := middleware.ClientIP(r).String()
			session, account, err := manager.Authenticate(r.Context(), creds)
			if err != nil {
				audit.Log(audit.AuthenticateEvent{
					Method:       "local",
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.AuthenticateEvent{
				AccountID: account.ID,
				Method:    session.Method.String(),
				ClientIP:  clientIP,
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"session": session,
				"account": account,
			})
		},
	).Methods("POST")

	// POST /authentication/google - Google ID token, returns a session.
	// The Authorization header carries the ID token; a JSON body field is
	// accepted as fallback.
	router.HandleFunc(
		"/authentication/google",
		func(w http.ResponseWriter, r *http.Request) {
			idToken := middleware.TokenFromRequest(r)
			if idToken == "" {
				var body struct {
					Token string `json:"token"`
				}
				if !decodeJSON(w, r, &body) {
					return
				}
				idToken = body.Token
			}

			clientIP := middleware.ClientIP(r).String()
			session, account, err := manager.GoogleAuthenticate(r.Context(), idToken)
			if err != nil {
				audit.Log(audit.AuthenticateEvent{
					Method:       "google",
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.AuthenticateEvent{
				AccountID: account.ID,
				Method:    "google",
				ClientIP:  clientIP,
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"session": session,
				"account": account,
			})
		},
	).Methods("POST")

	// POST /authentication/confirm - resolve a bearer token to its session
	router.HandleFunc(
		"/authentication/confirm",
		func(w http.ResponseWriter, r *http.Request) {
			token := middleware.TokenFromRequest(r)
			if token == "" {
				var body struct {
					Token string `json:"token"`
				}
				if !decodeJSON(w, r, &body) {
					return
				}
				token = body.Token
			}

			session, account, err := manager.ConfirmToken(r.Context(), token)
			if err != nil {
				respondWithAccessError(w, err)
				return
			}
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"session": session,
				"account": account,
			})
		},
	).Methods("POST")

	// POST /authentication/logout - revoke the calling session
	router.Handle(
		"/authentication/logout",
		authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := identity.Get(r.Context())
			if err := manager.Logout(r.Context(), id.Session.Token); err != nil {
				respondWithAccessError(w, err)
				return
			}
			respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
		})),
	).Methods("POST")

	// POST /authentication/register - create an inactive account
	router.HandleFunc(
		"/authentication/register",
		func(w http.ResponseWriter, r *http.Request) {
			var req access.Registration
			if !decodeJSON(w, r, &req) {
				return
			}

			clientIP := middleware.ClientIP(r).String()
			account, err := registrar.Register(r.Context(), req)
			if err != nil {
				audit.Log(audit.RegistrationEvent{
					ClientIP:     clientIP,
					Operation:    "register",
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.RegistrationEvent{
				AccountID: account.ID,
				ClientIP:  clientIP,
				Operation: "register",
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, account)
		},
	).Methods("POST")

	// GET /authentication/activate/{code} - activate a registered account
	router.HandleFunc(
		"/authentication/activate/{code}",
		func(w http.ResponseWriter, r *http.Request) {
			code := mux.Vars(r)["code"]

			clientIP := middleware.ClientIP(r).String()
			account, err := registrar.Activate(r.Context(), code)
			if err != nil {
				audit.Log(audit.RegistrationEvent{
					ClientIP:     clientIP,
					Operation:    "activate",
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.RegistrationEvent{
				AccountID: account.ID,
				ClientIP:  clientIP,
				Operation: "activate",
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, account)
		},
	).Methods("GET")
}
