// Package config provides configuration management for the server.
//
// Configuration is loaded from an optional cairn.yml file and overridden
// by environment variables. The loader tracks where each value came from
// so operators can inspect the effective configuration.
//
// # Key Configuration Options
//
//   - CAIRN_BIND_ADDRESS / CAIRN_PORT: HTTP listen address
//   - DATABASE_URL: Postgres connection string
//   - CAIRN_SESSION_TTL_HOURS: Session lifetime (0 disables expiry)
//   - CAIRN_GOOGLE_AUDIENCE: OAuth client ID for google sign-in
//   - CAIRN_PUBLIC_BASE_URL: Base address for activation links
//   - CAIRN_CONFIG_PATH: Directory holding cairn.yml
package config
