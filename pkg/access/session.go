package access

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cairncms/cairn/pkg/crypto"
	"github.com/cairncms/cairn/pkg/googleauth"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// Manager issues and confirms sessions
type Manager struct {
	accounts store.AccountsStore
	sessions store.SessionsStore
	verifier googleauth.Verifier
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a new Manager. A zero ttl means sessions never
// expire. verifier may be nil when federated sign-in is not configured.
func NewManager(accounts store.AccountsStore, sessions store.SessionsStore, verifier googleauth.Verifier, ttl time.Duration) *Manager {
	return &Manager{
		accounts: accounts,
		sessions: sessions,
		verifier: verifier,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Authenticate checks local credentials and issues a session. The account
// returned has its password hash cleared.
func (m *Manager) Authenticate(ctx context.Context, creds Credentials) (*model.Session, *model.Account, error) {
	method, err := creds.Method()
	if err != nil {
		return nil, nil, err
	}
	if creds.Password == "" {
		return nil, nil, NewValidationError("password is required")
	}

	var account *model.Account
	switch method {
	case model.MethodEmail:
		account, err = m.accounts.AccountByEmail(ctx, creds.Email, true)
	case model.MethodUsername:
		account, err = m.accounts.AccountByUsername(ctx, creds.Username, true)
	case model.MethodApplication:
		account, err = m.accounts.AccountByApplication(ctx, creds.Application, true)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, NewAuthenticationError("invalid credentials")
		}
		return nil, nil, err
	}

	if !crypto.VerifyPassword(creds.Password, account.Password) {
		return nil, nil, NewAuthenticationError("invalid credentials")
	}

	session, err := m.issueSession(ctx, account.ID, method)
	if err != nil {
		return nil, nil, err
	}
	return session, account.Sanitized(), nil
}

// ConfirmToken resolves a bearer token to its session and account. Expired
// sessions are deleted on sight and rejected.
func (m *Manager) ConfirmToken(ctx context.Context, token string) (*model.Session, *model.Account, error) {
	if token == "" {
		return nil, nil, NewAuthenticationError("invalid session token")
	}

	session, err := m.sessions.SessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, NewAuthenticationError("invalid session token")
		}
		return nil, nil, err
	}

	if m.ttl > 0 && m.now().After(session.ExpiresAt(m.ttl)) {
		// Best effort; the token is rejected either way.
		_ = m.sessions.DeleteSession(ctx, token)
		return nil, nil, NewAuthenticationError("session expired")
	}

	account, err := m.accounts.AccountByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, NewAuthenticationError("invalid session token")
		}
		return nil, nil, err
	}
	if !account.Active {
		return nil, nil, NewAuthenticationError("invalid session token")
	}

	return session, account.Sanitized(), nil
}

// GoogleAuthenticate verifies a Google ID token and issues a session,
// creating the account on first sign-in.
func (m *Manager) GoogleAuthenticate(ctx context.Context, idToken string) (*model.Session, *model.Account, error) {
	if m.verifier == nil {
		return nil, nil, NewAuthenticationError("google sign-in is not configured")
	}
	if idToken == "" {
		return nil, nil, NewValidationError("token is required")
	}

	claims, err := m.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, nil, NewAuthenticationError("invalid google token")
	}

	account, err := m.accounts.AccountByEmail(ctx, claims.Email, false)
	switch {
	case errors.Is(err, store.ErrNotFound):
		username := strings.TrimSpace(claims.GivenName + " " + claims.FamilyName)
		if username == "" {
			username = claims.Email
		}
		account = &model.Account{
			ID:        uuid.NewString(),
			Email:     claims.Email,
			Username:  username,
			Fullname:  claims.Name,
			Role:      "none",
			Active:    true,
			Source:    "google",
			SourceSub: claims.Subject,
		}
		if err := m.accounts.CreateAccount(ctx, account); err != nil {
			// The display-name default can collide with a taken username.
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				account.Username = claims.Email
				err = m.accounts.CreateAccount(ctx, account)
			}
			if err != nil {
				return nil, nil, err
			}
		}
	case err != nil:
		return nil, nil, err
	default:
		// The email already has an account. Only hand it over when it is
		// the same federated identity; a local account with a matching
		// email is not proof of ownership.
		if account.Source != "google" || account.SourceSub != claims.Subject {
			return nil, nil, NewAuthenticationError("invalid google token")
		}
		if !account.Active {
			return nil, nil, NewAuthenticationError("invalid google token")
		}
	}

	session, err := m.issueSession(ctx, account.ID, model.MethodGoogle)
	if err != nil {
		return nil, nil, err
	}
	return session, account.Sanitized(), nil
}

// Logout revokes a session token. Revoking a token that no longer resolves
// is not an error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	err := m.sessions.DeleteSession(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func (m *Manager) issueSession(ctx context.Context, accountID string, method model.Method) (*model.Session, error) {
	token, err := crypto.RandomToken(crypto.SessionTokenLength)
	if err != nil {
		return nil, err
	}
	session := &model.Session{
		ID:        uuid.NewString(),
		Token:     token,
		AccountID: accountID,
		Method:    method,
	}
	if err := m.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
