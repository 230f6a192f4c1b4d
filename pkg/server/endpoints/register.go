package endpoints

import (
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/middleware"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	authn := middleware.NewSessionAuthenticator(srv.Manager)

	RegisterAuthenticationEndpoints(srv, authn)
	RegisterGroupEndpoints(srv, authn)
	RegisterArticleEndpoints(srv, authn)
	RegisterPageEndpoints(srv, authn)
	RegisterCommentEndpoints(srv, authn)
	RegisterContactEndpoints(srv)
	RegisterWhoamiEndpoint(srv, authn)
	RegisterStatusEndpoints(srv)
}
