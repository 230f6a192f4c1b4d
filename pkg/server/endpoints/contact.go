package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cairncms/cairn/pkg/ratelimit"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/middleware"
)

// RegisterContactEndpoints registers the public contact form. Submissions
// are rate limited per client address.
func RegisterContactEndpoints(srv *server.Server) {
	limiter := ratelimit.NewLimiter(srv.Config.ContactWindow(), srv.Config.ContactMaxPerWindow)

	// POST /contact/email - relay a contact form message
	srv.Router.HandleFunc(
		"/contact/email",
		func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Name    string `json:"name"`
				Email   string `json:"email"`
				Subject string `json:"subject"`
				Message string `json:"message"`
			}
			if !decodeJSON(w, r, &body) {
				return
			}
			if !strings.Contains(body.Email, "@") || body.Message == "" {
				respondWithError(w, http.StatusBadRequest, "email and message are required")
				return
			}

			clientIP := middleware.ClientIP(r).String()
			if !limiter.Allow(clientIP) {
				respondWithError(w, http.StatusTooManyRequests, "too many messages, try again later")
				return
			}

			subject := body.Subject
			if subject == "" {
				subject = "Contact form message"
			}
			message := fmt.Sprintf("From: %s <%s>\n\n%s", body.Name, body.Email, body.Message)
			if err := srv.Mailer.Send(r.Context(), srv.Config.SMTPFrom, subject, message); err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to send message")
				return
			}

			respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
		},
	).Methods("POST")
}
