// Package main provides cairnctl, the CLI for the Cairn content management
// server.
//
// Cairn is a multi-tenant content backend. Accounts authenticate with local
// credentials or a Google ID token, organize themselves into groups, and
// publish articles and pages scoped to those groups.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage interfaces and their GORM implementations
//   - pkg/access: sessions, registration and group permissions
//   - pkg/rights: the group permission bit set
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Run database migrations
//	cairnctl db migrate
//
//	# Create an account
//	cairnctl account create --email admin@example.com --username admin
//
//	# Start the server
//	cairnctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - CAIRN_SESSION_TTL_HOURS: session lifetime in hours (default: 720)
//   - CAIRN_GOOGLE_AUDIENCE: OAuth client ID for Google sign-in
//   - CAIRN_LOG_LEVEL: log level (debug, info, warn, error)
//   - CAIRN_PORT: server port (default: 8080)
package main
