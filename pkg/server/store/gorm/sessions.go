package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Ensure SessionsStore implements store.SessionsStore
var _ store.SessionsStore = (*SessionsStore)(nil)

// SessionsStore implements store.SessionsStore using GORM
type SessionsStore struct {
	db *gorm.DB
}

// NewSessionsStore creates a new SessionsStore
func NewSessionsStore(db *gorm.DB) *SessionsStore {
	return &SessionsStore{db: db}
}

// CreateSession persists a new session
func (s *SessionsStore) CreateSession(ctx context.Context, session *model.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

// SessionByToken retrieves a session by exact token match
func (s *SessionsStore) SessionByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	tx := s.db.WithContext(ctx).Where("token = ?", token).First(&session)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &session, nil
}

// DeleteSession removes a session, revoking its token
func (s *SessionsStore) DeleteSession(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error
}
