package store

import (
	"context"

	"github.com/cairncms/cairn/pkg/model"
)

// AccountsStore abstracts account storage operations
type AccountsStore interface {
	// CreateAccount persists a new account
	CreateAccount(ctx context.Context, account *model.Account) error

	// AccountByID retrieves an account by id
	AccountByID(ctx context.Context, id string) (*model.Account, error)

	// AccountByEmail retrieves an account by email, optionally requiring
	// it to be active
	AccountByEmail(ctx context.Context, email string, activeOnly bool) (*model.Account, error)

	// AccountByUsername retrieves an account by username
	AccountByUsername(ctx context.Context, username string, activeOnly bool) (*model.Account, error)

	// AccountByApplication retrieves an account that lists the application
	// key among its applications
	AccountByApplication(ctx context.Context, application string, activeOnly bool) (*model.Account, error)

	// ActivateAccount flips the account matching the activation code to
	// active and returns it. Calling it again with the same code returns
	// the already-active account.
	ActivateAccount(ctx context.Context, code string) (*model.Account, error)
}
