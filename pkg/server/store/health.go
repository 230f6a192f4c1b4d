package store

import "context"

// HealthStore abstracts the connectivity probe
type HealthStore interface {
	// Ping checks that the backing database is reachable
	Ping(ctx context.Context) error
}
