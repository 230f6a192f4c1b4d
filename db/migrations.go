// Package db holds the SQL migration files, embedded for production
// builds of cairnctl.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
