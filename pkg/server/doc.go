// Package server provides the HTTP server for the Cairn API.
//
// This package implements the core HTTP server that handles all Cairn REST
// API requests. It uses gorilla/mux for routing and provides middleware for
// session authentication.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, verifier)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds the stores backing each content type plus the
// access-layer services built on them:
//
//   - Manager: session authentication (local credentials and Google)
//   - GroupsSvc: group lifecycle and membership
//   - Registrar: sign-up and activation
//   - Resolver: group permission checks
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all Cairn API endpoints including:
//
//   - /authentication/authenticate - credential sign-in
//   - /authentication/google - Google ID token sign-in
//   - /authentication/confirm - session token confirmation
//   - /group/{id} - group management
//   - /articles/, /pages/, /comments/ - content
//   - /whoami - session introspection
package server
