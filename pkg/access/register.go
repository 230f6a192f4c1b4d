package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cairncms/cairn/pkg/crypto"
	"github.com/cairncms/cairn/pkg/mailer"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/server/store"
)

// uniqueViolation is the Postgres error code for a unique constraint hit
const uniqueViolation = "23505"

// Registration is a sign-up request
type Registration struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname,omitempty"`
}

// Registrar creates accounts and walks them through activation
type Registrar struct {
	accounts store.AccountsStore
	mail     mailer.Mailer
	baseURL  string
}

// NewRegistrar creates a new Registrar. baseURL is the public address
// activation links are built against.
func NewRegistrar(accounts store.AccountsStore, mail mailer.Mailer, baseURL string) *Registrar {
	return &Registrar{
		accounts: accounts,
		mail:     mail,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Register creates an inactive account and mails its activation link. The
// account returned has its password hash cleared.
func (r *Registrar) Register(ctx context.Context, req Registration) (*model.Account, error) {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, NewValidationError("a valid email is required")
	}
	if req.Username == "" {
		return nil, NewValidationError("username is required")
	}
	if req.Password == "" {
		return nil, NewValidationError("password is required")
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	code, err := crypto.RandomToken(crypto.ActivationCodeLength)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		ID:             uuid.NewString(),
		Email:          req.Email,
		Username:       req.Username,
		Fullname:       req.Fullname,
		Password:       hash,
		Role:           "none",
		Active:         false,
		ActivationCode: code,
	}
	if err := r.accounts.CreateAccount(ctx, account); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, NewValidationError("email or username is already taken")
		}
		return nil, err
	}

	link := fmt.Sprintf("%s/authentication/activate/%s", r.baseURL, code)
	body := fmt.Sprintf("Welcome, %s!\r\n\r\nActivate your account by visiting:\r\n%s\r\n", account.Username, link)
	if err := r.mail.Send(ctx, account.Email, "Activate your account", body); err != nil {
		return nil, fmt.Errorf("account created but activation mail failed: %w", err)
	}

	return account.Sanitized(), nil
}

// Activate turns the account matching the code active. Activating an
// already-active account succeeds and returns it unchanged.
func (r *Registrar) Activate(ctx context.Context, code string) (*model.Account, error) {
	if code == "" {
		return nil, NewValidationError("activation code is required")
	}
	account, err := r.accounts.ActivateAccount(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewNotFoundError("activation code not found")
		}
		return nil, err
	}
	return account.Sanitized(), nil
}
