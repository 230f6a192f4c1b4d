package store

import (
	"context"

	"github.com/cairncms/cairn/pkg/model"
)

// SessionsStore abstracts session storage operations
type SessionsStore interface {
	// CreateSession persists a new session
	CreateSession(ctx context.Context, session *model.Session) error

	// SessionByToken retrieves a session by exact token match
	SessionByToken(ctx context.Context, token string) (*model.Session, error)

	// DeleteSession removes a session, revoking its token
	DeleteSession(ctx context.Context, token string) error
}
