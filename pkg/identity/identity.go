package identity

import (
	"context"
	"net"

	"github.com/cairncms/cairn/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request. It combines
// the confirmed session with the account it resolves to and the client IP.
type Identity struct {
	// Session is the confirmed session backing this request
	Session *model.Session

	// Account is the sanitized account the session belongs to
	Account *model.Account

	// RemoteIP is the client IP address
	RemoteIP net.IP
}

// FromSession creates an Identity from a confirmed session and its account.
func FromSession(session *model.Session, account *model.Account) *Identity {
	return &Identity{
		Session: session,
		Account: account,
	}
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// AccountID returns the id of the authenticated account.
func (i *Identity) AccountID() string {
	if i.Account == nil {
		return ""
	}
	return i.Account.ID
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
